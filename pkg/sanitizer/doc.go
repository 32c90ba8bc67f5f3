// Package sanitizer provides the string transformations behind the
// validator's built-in filters: trimming with optional cutsets, case
// conversion, whitespace normalisation, tag stripping and slug generation.
//
// Every helper is a pure func(string) string (or takes an extra argument), so
// they can be chained with Apply or stored as reusable pipelines with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.Squish,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  <b>Mixed</b>   CASE ") // "mixed case"
//
// Case conversion uses golang.org/x/text/cases, so it handles Unicode
// special casing (for example the German sharp s) correctly.
//
// None of the helpers returns an error and none keeps global mutable state;
// they are safe for concurrent use.
package sanitizer
