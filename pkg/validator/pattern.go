package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// compilePattern compiles an RE2 expression. Patterns written with slash
// delimiters and trailing flags ("/^a+$/i") are translated to inline flags.
// Supported flags are i, m, s and U; u is accepted and ignored.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if body, flags, ok := splitDelimited(pattern); ok {
		if flags = strings.ReplaceAll(flags, "u", ""); flags != "" {
			body = "(?" + flags + ")" + body
		}
		return regexp.Compile(body)
	}
	return regexp.Compile(pattern)
}

func splitDelimited(pattern string) (body, flags string, ok bool) {
	if len(pattern) < 2 || pattern[0] != '/' {
		return "", "", false
	}
	end := strings.LastIndexByte(pattern, '/')
	if end == 0 {
		return "", "", false
	}
	flags = pattern[end+1:]
	if strings.Trim(flags, "imsUu") != "" {
		return "", "", false
	}
	return pattern[1:end], flags, true
}

// matchPattern reports whether value matches pattern, caching the compiled
// expression. Invalid patterns and non-string values never match.
func matchPattern(patterns *cache.LRUCache[string, *regexp.Regexp], value any, pattern string) bool {
	s, ok := stringify(value)
	if !ok {
		return false
	}
	re, err := patterns.Fetch(pattern, func() (*regexp.Regexp, error) {
		return compilePattern(pattern)
	})
	if err != nil {
		return false
	}
	return re.MatchString(s)
}
