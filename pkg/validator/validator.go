package validator

import (
	"iter"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/vars"
)

// Validator owns the per-field contexts checked against one target.
type Validator struct {
	registry      *Registry
	target        any
	fields        *vars.Vars
	messages      map[string]string
	logger        *slog.Logger
	passByDefault bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry uses a clone of r instead of a fresh built-in registry.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r.Clone()
		}
	}
}

// WithLogger sets the logger used to report unresolved rules.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithMessages overrides message templates keyed by rule name.
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) {
		v.OverrideErrorMessages(messages)
	}
}

// New creates a validator for target.
func New(target any, opts ...Option) *Validator {
	v := &Validator{
		target:   target,
		fields:   vars.New(),
		messages: make(map[string]string),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = NewRegistry()
	}
	if v.logger == nil {
		v.logger = logger.Discard()
	}
	v.logger = v.logger.With(logger.Component("validator"))
	return v
}

// EmptyResult creates a validator whose every field in values passes. The
// target is loose, so unknown fields exist, and Result reports a passing
// context for fields that were never checked.
func EmptyResult(values *vars.Vars, opts ...Option) *Validator {
	target := vars.New()
	if values != nil {
		target = values.Clone()
	}
	target.SetLoose(true)

	v := New(target, opts...)
	v.passByDefault = true
	for name := range target.All() {
		v.Check(name).Is("pass")
	}
	return v
}

// Registry returns the validator's own registry. Definitions added to it
// affect only this validator.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Lookup reports whether the target holds name and its value.
func (v *Validator) Lookup(name string) (bool, any) {
	return lookupField(v.target, name)
}

// Check returns the context of name, creating it on first use. Repeated calls
// reuse the existing context; a non-empty label replaces the stored one.
func (v *Validator) Check(name string, label ...string) *Context {
	if val, ok := v.fields.Lookup(name); ok {
		c := val.(*Context)
		if l := firstLabel(label); l != "" {
			c.label = l
		}
		return c
	}
	return v.Recheck(name, label...)
}

// Recheck replaces the context of name with a fresh one.
func (v *Validator) Recheck(name string, label ...string) *Context {
	c := newContext(v, name, firstLabel(label))
	v.fields.Set(name, c)
	return c
}

// Uncheck forgets name. Unknown names are ignored.
func (v *Validator) Uncheck(name string) {
	v.fields.Remove(name)
}

// Result returns every checked field mapped to its *Context.
func (v *Validator) Result() *vars.Vars {
	result := v.fields.Clone()
	if v.passByDefault {
		result.SetLoose(true)
		result.SetDefault(&Context{v: v, exists: true})
	}
	return result
}

// Errors returns the invalid fields mapped to their *Context.
func (v *Validator) Errors() *vars.Vars {
	errs := vars.New()
	for name, c := range v.contexts() {
		if c.Invalid() {
			errs.Set(name, c)
		}
	}
	return errs
}

// Values returns every checked field mapped to its current value.
func (v *Validator) Values() *vars.Vars {
	values := vars.New()
	for name, c := range v.contexts() {
		values.Set(name, c.Value())
	}
	return values
}

// Valid reports whether no checked field is invalid.
func (v *Validator) Valid() bool {
	for _, c := range v.contexts() {
		if c.Invalid() {
			return false
		}
	}
	return true
}

// Invalid reports whether a checked field is invalid.
func (v *Validator) Invalid() bool {
	return !v.Valid()
}

// Err returns the failures as ValidationErrors, or nil when valid.
func (v *Validator) Err() error {
	var errs ValidationErrors
	for _, c := range v.contexts() {
		if c.Invalid() {
			errs.Add(c.ValidationError())
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// OverrideErrorMessages merges message templates over the registry's,
// keyed by rule name.
func (v *Validator) OverrideErrorMessages(messages map[string]string) {
	maps.Copy(v.messages, messages)
}

func (v *Validator) messageFor(rule string) string {
	if tmpl, ok := v.messages[rule]; ok {
		return tmpl
	}
	return v.registry.MessageFor(rule)
}

func (v *Validator) contexts() iter.Seq2[string, *Context] {
	return func(yield func(string, *Context) bool) {
		for name, val := range v.fields.All() {
			if c, ok := val.(*Context); ok && !yield(name, c) {
				return
			}
		}
	}
}

func firstLabel(label []string) string {
	if len(label) > 0 {
		return label[0]
	}
	return ""
}
