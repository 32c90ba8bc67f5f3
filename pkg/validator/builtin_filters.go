package validator

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func registerBuiltinFilters(r *Registry) {
	r.DefineFilter("trim", cutsetFilter(sanitizer.Trim))
	r.DefineFilter("ltrim", cutsetFilter(sanitizer.TrimLeft))
	r.DefineFilter("rtrim", cutsetFilter(sanitizer.TrimRight))

	r.DefineFilter("lower", stringFilter(sanitizer.ToLower))
	r.DefineFilter("upper", stringFilter(sanitizer.ToUpper))
	r.DefineFilter("title", stringFilter(sanitizer.ToTitle))
	r.DefineFilter("squish", stringFilter(sanitizer.Squish))
	r.DefineFilter("strip-tags", stringFilter(sanitizer.StripHTML))
	r.DefineFilter("slug", stringFilter(sanitizer.Slug))

	r.DefineComplexFilter("default", func(exists bool, value any, params ...string) any {
		if exists && !isBlank(value) {
			return value
		}
		return strings.Join(params, " ")
	})
}

// cutsetFilter adapts a trim helper taking an optional cutset parameter.
// Values without a string form pass through unchanged.
func cutsetFilter(trim func(s, cutset string) string) FilterFunc {
	return func(value any, params ...string) any {
		s, ok := stringify(value)
		if !ok {
			return value
		}
		return trim(s, operandParam(params, ""))
	}
}

// stringFilter adapts a string transform. Values without a string form pass
// through unchanged.
func stringFilter(transform func(string) string) FilterFunc {
	return func(value any, _ ...string) any {
		s, ok := stringify(value)
		if !ok {
			return value
		}
		return transform(s)
	}
}
