package validator

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var numericStringRegex = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

// isBlank reports whether a simple rule should be skipped for value: nil,
// nil pointers and the empty string. "0", numeric zero, false and empty
// collections are meaningful and never blank.
func isBlank(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// stringify returns the string form of scalar values. Booleans follow the
// form convention of "1" for true and "" for false. Collections and other
// composite values are not stringable.
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case []byte:
		return string(v), true
	case bool:
		if v {
			return "1", true
		}
		return "", true
	case fmt.Stringer:
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

func isIntegerKind(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// toNumber converts numeric values and numeric strings to float64.
func toNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		return parseNumeric(rv.String())
	}
	return 0, false
}

func parseNumeric(s string) (float64, bool) {
	if !numericStringRegex.MatchString(s) {
		return 0, false
	}
	// Out of range literals are still numeric; ParseFloat yields ±Inf for them.
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, true
}

func isNumeric(value any) bool {
	_, ok := toNumber(value)
	return ok
}

// looseEquals compares value with a textual operand: numerically when both
// sides are numeric, by string form otherwise.
func looseEquals(value any, operand string) bool {
	if a, ok := toNumber(value); ok {
		if b, ok := parseNumeric(operand); ok {
			return a == b
		}
	}
	s, ok := stringify(value)
	return ok && s == operand
}

// compareTo orders value against a textual operand with the same numeric or
// string semantics as looseEquals. The boolean is false when value has no
// comparable form.
func compareTo(value any, operand string) (int, bool) {
	if a, ok := toNumber(value); ok {
		if b, ok := parseNumeric(operand); ok {
			return cmp.Compare(a, b), true
		}
	}
	s, ok := stringify(value)
	if !ok {
		return 0, false
	}
	return strings.Compare(s, operand), true
}

// intParam parses the first parameter as an int, defaulting to 0.
func intParam(params []string) int {
	if len(params) == 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(params[0]))
	if err != nil {
		return 0
	}
	return n
}

// operandParam returns the first parameter or def when it is absent or empty.
func operandParam(params []string, def string) string {
	if len(params) == 0 || params[0] == "" {
		return def
	}
	return params[0]
}
