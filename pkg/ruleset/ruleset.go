package ruleset

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field is the ordered list of steps applied to one field.
type Field struct {
	Name  string
	Label string
	Steps []Step
}

// Set is a parsed rule set document.
type Set struct {
	Fields   []Field
	Messages map[string]string
}

// Apply checks every field of the set against v, in document order. Message
// overrides of the set are merged into v first.
func (s *Set) Apply(v *validator.Validator) {
	if len(s.Messages) > 0 {
		v.OverrideErrorMessages(s.Messages)
	}
	for _, f := range s.Fields {
		c := v.Check(f.Name, f.Label)
		for _, step := range f.Steps {
			c = step.apply(c)
		}
	}
}

// Validate creates a validator for target and applies the set to it.
func (s *Set) Validate(target any, opts ...validator.Option) *validator.Validator {
	v := validator.New(target, opts...)
	s.Apply(v)
	return v
}

// FieldNames returns the field names in document order.
func (s *Set) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
