package validator

import (
	"strings"
)

// Quantifier selects how a test treats collection values.
type Quantifier string

const (
	QuantifierNone Quantifier = ""
	QuantifierAll  Quantifier = "all"
	QuantifierAny  Quantifier = "any"
)

// Outcome records one applied test or filter.
type Outcome struct {
	Rule       string
	Param      string
	Filter     bool
	Quantifier Quantifier
	Passed     bool
}

// Context accumulates the checks applied to one field. It is created by
// Validator.Check and is not safe for concurrent use.
type Context struct {
	v        *Validator
	field    string
	label    string
	exists   bool
	value    any
	failed   bool
	rule     string
	param    string
	inline   bool
	outcomes []Outcome
}

func newContext(v *Validator, field, label string) *Context {
	exists, value := v.Lookup(field)
	return &Context{v: v, field: field, label: label, exists: exists, value: value}
}

// Is applies the test expression "name [param]".
func (c *Context) Is(expr string) *Context {
	name, param := parseExpr(expr)
	return c.test(QuantifierNone, name, name, param)
}

// IsAll applies the test expression to every element of a collection value.
func (c *Context) IsAll(expr string) *Context {
	name, param := parseExpr(expr)
	return c.test(QuantifierAll, name, name, param)
}

// IsAny requires at least one element of a collection value to pass the test
// expression.
func (c *Context) IsAny(expr string) *Context {
	name, param := parseExpr(expr)
	return c.test(QuantifierAny, name, name, param)
}

// IsFunc applies an inline test such as a TestFunc, ComplexTestFunc or
// func(any) bool. Inline tests always run as simple rules: they are skipped
// for missing or blank values.
func (c *Context) IsFunc(fn any, params ...string) *Context {
	return c.test(QuantifierNone, fn, "", strings.Join(params, " "))
}

// Filter applies the filter expression "name [param]" and stores the result
// as the field's value.
func (c *Context) Filter(expr string) *Context {
	name, param := parseExpr(expr)
	return c.filter(false, name, name, param)
}

// FilterMap applies the filter expression to every element of a collection
// value.
func (c *Context) FilterMap(expr string) *Context {
	name, param := parseExpr(expr)
	return c.filter(true, name, name, param)
}

// FilterFunc applies an inline filter such as a FilterFunc,
// ComplexFilterFunc or func(string) string. Like IsFunc it is skipped for
// missing or blank values.
func (c *Context) FilterFunc(fn any, params ...string) *Context {
	return c.filter(false, fn, "", strings.Join(params, " "))
}

// Fail marks the field invalid, reporting the message of rule.
func (c *Context) Fail(rule string) *Context {
	if c.failed {
		return c
	}
	c.markFailed(rule, "", false)
	c.outcomes = append(c.outcomes, Outcome{Rule: rule})
	return c
}

func (c *Context) test(q Quantifier, rule any, name, param string) *Context {
	if c.failed {
		return c
	}

	exec := c.v.ExecTest
	switch q {
	case QuantifierAll:
		exec = c.v.ExecTestAll
	case QuantifierAny:
		exec = c.v.ExecTestAny
	}

	passed, value := exec(c.exists, c.value, rule, param)
	c.value = value
	c.outcomes = append(c.outcomes, Outcome{Rule: name, Param: param, Quantifier: q, Passed: passed})
	if !passed {
		c.markFailed(name, param, name == "")
	}
	return c
}

func (c *Context) filter(each bool, rule any, name, param string) *Context {
	if c.failed {
		return c
	}

	exec := c.v.ExecFilter
	if each {
		exec = c.v.ExecFilterMap
	}

	_, c.value = exec(c.exists, c.value, rule, param)
	q := QuantifierNone
	if each {
		q = QuantifierAll
	}
	c.outcomes = append(c.outcomes, Outcome{Rule: name, Param: param, Filter: true, Quantifier: q, Passed: true})
	return c
}

func (c *Context) markFailed(rule, param string, inline bool) {
	c.failed = true
	c.rule = rule
	c.param = param
	c.inline = inline
}

// Field returns the field name.
func (c *Context) Field() string { return c.field }

// Label returns the display label, falling back to the field name.
func (c *Context) Label() string {
	if c.label != "" {
		return c.label
	}
	return c.field
}

// Exists reports whether the field was present in the target.
func (c *Context) Exists() bool { return c.exists }

// Value returns the current, possibly filtered, value.
func (c *Context) Value() any { return c.value }

// Valid reports whether every applied test passed.
func (c *Context) Valid() bool { return !c.failed }

// Invalid reports whether a test failed.
func (c *Context) Invalid() bool { return c.failed }

// Rule returns the name of the failed rule, or "" when valid or when an
// inline callable failed.
func (c *Context) Rule() string { return c.rule }

// Param returns the parameter of the failed rule.
func (c *Context) Param() string { return c.param }

// Outcomes returns the applied tests and filters in order.
func (c *Context) Outcomes() []Outcome {
	return append([]Outcome(nil), c.outcomes...)
}

// Message renders the failure message, or "" when the field is valid.
func (c *Context) Message() string {
	if !c.failed {
		return ""
	}
	tmpl := DefaultInvalidMessage
	if !c.inline {
		tmpl = c.v.messageFor(c.rule)
	}
	return renderMessage(tmpl, c.messageParams())
}

// ValidationError returns the failure as a ValidationError.
func (c *Context) ValidationError() ValidationError {
	key := "validation.invalid"
	if c.rule != "" {
		key = "validation." + c.rule
	}
	return ValidationError{
		Field:          c.field,
		Message:        c.Message(),
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": c.field,
			"label": c.Label(),
			"param": c.param,
		},
	}
}

func (c *Context) messageParams() map[string]string {
	return map[string]string{
		"field": c.field,
		"label": c.Label(),
		"param": c.param,
		"value": displayValue(c.value),
	}
}

// parseExpr splits "name param..." at the first space.
func parseExpr(expr string) (string, string) {
	name, param, _ := strings.Cut(strings.TrimLeft(expr, " "), " ")
	return name, param
}
