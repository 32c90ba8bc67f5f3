// Package validator checks and transforms request-like data field by field
// using named rules.
//
// A Validator wraps a target (a *vars.Vars, *vars.List, plain map, url.Values,
// struct or any Source) and hands out one Context per field. Each Context
// chains tests and filters against the field's current value:
//
//	v := validator.New(form)
//
//	v.Check("name", "Name").Filter("trim").Is("not-empty").Is("max-length 255")
//	v.Check("age").Is("integer").Is(">= 18")
//	v.Check("tags").IsAll("in a,b,c")
//
//	if v.Invalid() {
//	    for field, ctx := range v.Errors().All() {
//	        log.Println(field, ctx.(*validator.Context).Message())
//	    }
//	}
//
// # Rules
//
// Rules live in a Registry with two namespaces, tests and filters. A rule
// expression is the rule name optionally followed by a space and a raw
// parameter string ("max-length 255", "in a,b,c", "match ^[a-z]+$").
// Inline callables can be used instead of names through IsFunc and
// FilterFunc; their parameters are split on single spaces.
//
// Simple rules receive only the value and are skipped (treated as passing,
// value unchanged) when the field is missing or blank. The values "0", numeric
// zero, false and empty collections are never considered blank. Complex rules
// receive the existence flag as well and handle emptiness themselves.
//
// Unknown test names fail closed; unknown filter names replace the value with
// nil. Neither case panics or returns an error.
//
// # Results
//
// Result, Errors and Values expose the per-field state as *vars.Vars and are
// recomputed on every call, so they always reflect the latest checks. Err
// returns the failures as ValidationErrors, which implements error and
// carries translation keys ("validation.<rule>") for i18n.
//
// # Concurrency
//
// A Validator and its Contexts belong to a single flow. A Registry may be
// shared: New clones it so per-validator definitions do not leak.
package validator
