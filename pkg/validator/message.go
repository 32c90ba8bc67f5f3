package validator

import (
	"fmt"
	"regexp"
)

// DefaultInvalidMessage is used for failures of inline callables.
const DefaultInvalidMessage = "{label} is invalid"

var placeholderRegex = regexp.MustCompile(`\{(\w+)\}`)

// renderMessage substitutes {name} placeholders. Unknown placeholders are
// kept verbatim.
func renderMessage(tmpl string, params map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[1:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func displayValue(value any) string {
	if s, ok := stringify(value); ok {
		return s
	}
	return fmt.Sprint(value)
}
