package sanitizer

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCutset is the character set removed by the trim helpers when no
// explicit cutset is given: space, tab, newline, carriage return, NUL and
// vertical tab.
const DefaultCutset = " \t\n\r\x00\x0B"

// Trim removes leading and trailing characters contained in cutset.
// An empty cutset falls back to DefaultCutset.
func Trim(s, cutset string) string {
	return strings.Trim(s, orDefault(cutset))
}

// TrimLeft removes leading characters contained in cutset.
func TrimLeft(s, cutset string) string {
	return strings.TrimLeft(s, orDefault(cutset))
}

// TrimRight removes trailing characters contained in cutset.
func TrimRight(s, cutset string) string {
	return strings.TrimRight(s, orDefault(cutset))
}

// TrimSpace removes DefaultCutset characters from both ends.
func TrimSpace(s string) string {
	return Trim(s, "")
}

// ToLower converts s to lower case using language-neutral Unicode rules.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToUpper converts s to upper case using language-neutral Unicode rules.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToTitle capitalises the first letter of every word and lowercases the rest.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// Squish collapses runs of whitespace into a single space and trims the ends.
func Squish(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// ToKebabCase lowercases s and joins runs of letters and digits with single
// hyphens.
func ToKebabCase(s string) string {
	s = ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteRune('-')
			prevDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// Slug turns free text, possibly containing markup, into a URL-safe slug.
func Slug(s string) string {
	return slugify(s)
}

var slugify = Compose(StripHTML, ToKebabCase)

func orDefault(cutset string) string {
	if cutset == "" {
		return DefaultCutset
	}
	return cutset
}
