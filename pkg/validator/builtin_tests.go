package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/vars"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRegex        = regexp.MustCompile(`(?i)^[^@\s]+@[a-z0-9-]+(\.[a-z0-9-]+)*$`)
	urlRegex          = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://[a-z0-9-]+(\.[a-z0-9-]+)*(:\d+)?([/?#]\S*)?$`)
)

// Default message templates of the built-in tests.
var builtinMessages = map[string]string{
	"pass":          "{label} is valid",
	"fail":          "{label} is invalid",
	"empty":         "{label} must be empty",
	"not-empty":     "{label} is required",
	"max-length":    "{label} must be at most {param} characters long",
	"min-length":    "{label} must be at least {param} characters long",
	"in":            "{label} must be one of: {param}",
	"not-in":        "{label} must not be one of: {param}",
	"numeric":       "{label} must be a number",
	"integer":       "{label} must be an integer",
	"alpha":         "{label} may only contain letters",
	"alpha-numeric": "{label} may only contain letters and digits",
	"array":         "{label} must be a list",
	"min-count":     "{label} must have at least {param} items",
	"max-count":     "{label} must have at most {param} items",
	"==":            "{label} must be equal to {param}",
	"!=":            "{label} must not be equal to {param}",
	">":             "{label} must be greater than {param}",
	">=":            "{label} must be greater than or equal to {param}",
	"<":             "{label} must be less than {param}",
	"<=":            "{label} must be less than or equal to {param}",
	"match":         "{label} has an invalid format",
	"not-match":     "{label} has an invalid format",
	"email":         "{label} must be a valid email address",
	"url":           "{label} must be a valid URL",
	"uuid":          "{label} must be a valid UUID",
}

func registerBuiltinTests(r *Registry) {
	patterns := r.patterns

	complexTests := map[string]ComplexTestFunc{
		"pass":      func(bool, any, ...string) bool { return true },
		"fail":      func(bool, any, ...string) bool { return false },
		"empty":     isEmptyField,
		"not-empty": func(exists bool, value any, _ ...string) bool { return !isEmptyField(exists, value) },
	}
	for name, fn := range complexTests {
		r.DefineComplexTest(name, builtinMessages[name], fn)
	}

	tests := map[string]TestFunc{
		"max-length": func(value any, params ...string) bool {
			n, ok := runeLength(value)
			return ok && n <= intParam(params)
		},
		"min-length": func(value any, params ...string) bool {
			n, ok := runeLength(value)
			return ok && n >= intParam(params)
		},
		"in": inList,
		"not-in": func(value any, params ...string) bool {
			return !inList(value, params...)
		},
		"numeric": func(value any, _ ...string) bool { return isNumeric(value) },
		"integer": func(value any, _ ...string) bool { return isIntegerKind(value) },
		"alpha": func(value any, _ ...string) bool {
			s, ok := value.(string)
			return ok && alphaRegex.MatchString(s)
		},
		"alpha-numeric": func(value any, _ ...string) bool {
			s, ok := value.(string)
			return ok && alphanumericRegex.MatchString(s)
		},
		"array": func(value any, _ ...string) bool { return vars.Iterable(value) },
		"min-count": func(value any, params ...string) bool {
			n := vars.Count(value)
			return n >= 0 && n >= intParam(params)
		},
		"max-count": func(value any, params ...string) bool {
			n := vars.Count(value)
			return n >= 0 && n <= intParam(params)
		},
		"==": func(value any, params ...string) bool {
			return looseEquals(value, operandParam(params, ""))
		},
		"!=": func(value any, params ...string) bool {
			return !looseEquals(value, operandParam(params, ""))
		},
		">":  comparison(func(c int) bool { return c > 0 }),
		">=": comparison(func(c int) bool { return c >= 0 }),
		"<":  comparison(func(c int) bool { return c < 0 }),
		"<=": comparison(func(c int) bool { return c <= 0 }),
		"match": func(value any, params ...string) bool {
			return matchPattern(patterns, value, operandParam(params, ""))
		},
		"not-match": func(value any, params ...string) bool {
			return !matchPattern(patterns, value, operandParam(params, ""))
		},
		"email": stringMatcher(emailRegex),
		"url":   stringMatcher(urlRegex),
		"uuid": func(value any, _ ...string) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			_, err := uuid.Parse(s)
			return err == nil
		},
	}
	for name, fn := range tests {
		r.DefineTest(name, builtinMessages[name], fn)
	}
}

// isEmptyField reports whether a field is missing or blank. "0", numeric
// zero, false and empty collections are not empty.
func isEmptyField(exists bool, value any, _ ...string) bool {
	return !exists || isBlank(value)
}

func runeLength(value any) (int, bool) {
	s, ok := stringify(value)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(s), true
}

// inList reports whether value loosely equals one of the comma-separated,
// trimmed tokens of the first parameter.
func inList(value any, params ...string) bool {
	if len(params) == 0 {
		return false
	}
	for token := range strings.SplitSeq(params[0], ",") {
		if looseEquals(value, strings.TrimSpace(token)) {
			return true
		}
	}
	return false
}

func comparison(accept func(int) bool) TestFunc {
	return func(value any, params ...string) bool {
		c, ok := compareTo(value, operandParam(params, "0"))
		return ok && accept(c)
	}
}

func stringMatcher(re *regexp.Regexp) TestFunc {
	return func(value any, _ ...string) bool {
		s, ok := value.(string)
		return ok && re.MatchString(s)
	}
}
