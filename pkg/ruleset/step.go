package ruleset

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Verb selects which Context method a step calls.
type Verb string

const (
	VerbIs        Verb = "is"
	VerbIsAll     Verb = "is-all"
	VerbIsAny     Verb = "is-any"
	VerbFilter    Verb = "filter"
	VerbFilterMap Verb = "filter-map"
	VerbFail      Verb = "fail"
)

// Step is one verb applied with a rule expression ("max-length 255").
type Step struct {
	Verb Verb
	Expr string
}

// ParseStep splits "verb expression" at the first space.
func ParseStep(s string) (Step, error) {
	verb, expr, _ := strings.Cut(strings.TrimSpace(s), " ")
	step := Step{Verb: Verb(verb), Expr: strings.TrimLeft(expr, " ")}
	if err := step.validate(); err != nil {
		return Step{}, err
	}
	return step, nil
}

func (s Step) validate() error {
	switch s.Verb {
	case VerbIs, VerbIsAll, VerbIsAny, VerbFilter, VerbFilterMap, VerbFail:
	default:
		return fmt.Errorf("%w: unknown verb %q", ErrInvalidStep, s.Verb)
	}
	if s.Expr == "" {
		return fmt.Errorf("%w: %q needs a rule", ErrInvalidStep, s.Verb)
	}
	return nil
}

// String returns the step in its document form.
func (s Step) String() string {
	return string(s.Verb) + " " + s.Expr
}

func (s Step) apply(c *validator.Context) *validator.Context {
	switch s.Verb {
	case VerbIs:
		return c.Is(s.Expr)
	case VerbIsAll:
		return c.IsAll(s.Expr)
	case VerbIsAny:
		return c.IsAny(s.Expr)
	case VerbFilter:
		return c.Filter(s.Expr)
	case VerbFilterMap:
		return c.FilterMap(s.Expr)
	case VerbFail:
		return c.Fail(s.Expr)
	}
	return c
}
