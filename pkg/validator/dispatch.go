package validator

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/vars"
)

// resolved is a rule ready to be invoked.
type resolved struct {
	name    string
	call    callback
	complex bool
	params  []string
}

// resolveTest turns a rule name or inline callable into an invocable test.
// Registered names receive the raw parameter string as their only parameter;
// inline callables are simple and receive the parameter split on spaces.
func (r *Registry) resolveTest(rule any, param string) (resolved, bool) {
	if name, ok := rule.(string); ok {
		reg, ok := r.tests[name]
		if !ok {
			return resolved{}, false
		}
		return resolved{name: name, call: reg.call, complex: reg.Complex, params: []string{param}}, true
	}

	var fn TestFunc
	switch f := rule.(type) {
	case ComplexTestFunc:
		return inlineComplex(f != nil, f.callback, param)
	case func(bool, any, ...string) bool:
		return inlineComplex(f != nil, ComplexTestFunc(f).callback, param)
	case TestFunc:
		fn = f
	case func(any, ...string) bool:
		fn = f
	case func(any) bool:
		fn = func(value any, _ ...string) bool { return f(value) }
	case func(string) bool:
		fn = func(value any, _ ...string) bool {
			s, ok := stringify(value)
			return ok && f(s)
		}
	default:
		return resolved{}, false
	}
	if fn == nil {
		return resolved{}, false
	}
	return resolved{call: fn.callback(), params: splitParams(param)}, true
}

// resolveFilter is the filter counterpart of resolveTest.
func (r *Registry) resolveFilter(rule any, param string) (resolved, bool) {
	if name, ok := rule.(string); ok {
		reg, ok := r.filters[name]
		if !ok {
			return resolved{}, false
		}
		return resolved{name: name, call: reg.call, complex: reg.Complex, params: []string{param}}, true
	}

	var fn FilterFunc
	switch f := rule.(type) {
	case ComplexFilterFunc:
		return inlineComplex(f != nil, f.callback, param)
	case func(bool, any, ...string) any:
		return inlineComplex(f != nil, ComplexFilterFunc(f).callback, param)
	case FilterFunc:
		fn = f
	case func(any, ...string) any:
		fn = f
	case func(any) any:
		fn = func(value any, _ ...string) any { return f(value) }
	case func(string) string:
		fn = stringFilter(f)
	default:
		return resolved{}, false
	}
	if fn == nil {
		return resolved{}, false
	}
	return resolved{call: fn.callback(), params: splitParams(param)}, true
}

// inlineComplex resolves an inline callable that takes the existence flag.
// Like every inline callable it runs as a simple rule, so it is skipped for
// missing or blank values and otherwise receives exists as true.
func inlineComplex(ok bool, call func() callback, param string) (resolved, bool) {
	if !ok {
		return resolved{}, false
	}
	return resolved{call: call(), params: splitParams(param)}, true
}

func splitParams(param string) []string {
	if param == "" {
		return nil
	}
	return strings.Split(param, " ")
}

// invoke calls the rule. Simple rules are skipped for missing or blank values;
// the second result reports whether the callback ran.
func (rr resolved) invoke(exists bool, value any) (any, bool) {
	if !rr.complex && (!exists || isBlank(value)) {
		return nil, false
	}
	return rr.call(exists, value, rr.params), true
}

func (rr resolved) test(exists bool, value any) bool {
	result, called := rr.invoke(exists, value)
	if !called {
		return true
	}
	passed, _ := result.(bool)
	return passed
}

func (rr resolved) filter(exists bool, value any) any {
	result, called := rr.invoke(exists, value)
	if !called {
		return value
	}
	return result
}

// ExecTest runs a validity test against a value. Unresolved rules fail.
// The value is returned unchanged.
func (v *Validator) ExecTest(exists bool, value any, rule any, param string) (bool, any) {
	rr, ok := v.registry.resolveTest(rule, param)
	if !ok {
		v.unresolved("test", rule, param)
		return false, value
	}
	return rr.test(exists, value), value
}

// ExecTestAll runs a test against every element of a collection, stopping at
// the first failure. Every element is tested with the collection's own
// existence flag. Non-collections and unresolved rules fail; an empty
// collection passes.
func (v *Validator) ExecTestAll(exists bool, value any, rule any, param string) (bool, any) {
	rr, ok := v.registry.resolveTest(rule, param)
	if !ok {
		v.unresolved("test", rule, param)
		return false, value
	}
	seq, ok := vars.Iterate(value)
	if !ok {
		return false, value
	}
	for _, elem := range seq {
		if !rr.test(exists, elem) {
			return false, value
		}
	}
	return true, value
}

// ExecTestAny runs a test against the elements of a collection until one
// passes. Non-collections, empty collections and unresolved rules fail.
func (v *Validator) ExecTestAny(exists bool, value any, rule any, param string) (bool, any) {
	rr, ok := v.registry.resolveTest(rule, param)
	if !ok {
		v.unresolved("test", rule, param)
		return false, value
	}
	seq, ok := vars.Iterate(value)
	if !ok {
		return false, value
	}
	for _, elem := range seq {
		if rr.test(exists, elem) {
			return true, value
		}
	}
	return false, value
}

// ExecFilter runs a filter and returns its result as the new value. An
// unresolved filter yields nil.
func (v *Validator) ExecFilter(exists bool, value any, filter any, param string) (bool, any) {
	rr, ok := v.registry.resolveFilter(filter, param)
	if !ok {
		v.unresolved("filter", filter, param)
		return true, nil
	}
	return true, rr.filter(exists, value)
}

// ExecFilterMap runs a filter over every element of a collection and returns
// a collection of the same kind. Non-collections are returned unchanged; an
// unresolved filter yields nil.
func (v *Validator) ExecFilterMap(exists bool, value any, filter any, param string) (bool, any) {
	rr, ok := v.registry.resolveFilter(filter, param)
	if !ok {
		v.unresolved("filter", filter, param)
		return true, nil
	}
	mapped, ok := mapCollection(value, func(elem any) any {
		return rr.filter(exists, elem)
	})
	if !ok {
		return true, value
	}
	return true, mapped
}

func (v *Validator) unresolved(kind string, rule any, param string) {
	v.logger.Debug(kind+" not resolved", logger.Rule(rule), logger.Param(param))
}

// mapCollection applies fn to each element, keeping order and container
// kind. Typed slices and maps keep their type when every result is assignable
// to the element type and fall back to an any element type otherwise.
func mapCollection(value any, fn func(any) any) (any, bool) {
	switch c := value.(type) {
	case nil:
		return nil, false
	case *vars.List:
		if c == nil {
			return nil, false
		}
		out := c.Clone()
		for i, elem := range c.All() {
			out.Set(i, fn(elem))
		}
		return out, true
	case *vars.Vars:
		if c == nil {
			return nil, false
		}
		out := c.Clone()
		for key, elem := range c.All() {
			out.Set(key, fn(elem))
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		results := make([]any, rv.Len())
		for i := range results {
			results[i] = fn(rv.Index(i).Interface())
		}
		return buildSlice(rv.Type(), results), true
	case reflect.Map:
		seq, _ := vars.Iterate(value)
		keys := make([]reflect.Value, 0, rv.Len())
		results := make([]any, 0, rv.Len())
		for key, elem := range seq {
			keys = append(keys, reflect.ValueOf(key))
			results = append(results, fn(elem))
		}
		return buildMap(rv.Type(), keys, results), true
	}
	return nil, false
}

func buildSlice(typ reflect.Type, results []any) any {
	elemType := typ.Elem()
	if !assignableAll(elemType, results) {
		return results
	}
	var out reflect.Value
	if typ.Kind() == reflect.Array {
		out = reflect.New(typ).Elem()
	} else {
		out = reflect.MakeSlice(typ, len(results), len(results))
	}
	for i, r := range results {
		setElem(out.Index(i), r)
	}
	return out.Interface()
}

func buildMap(typ reflect.Type, keys []reflect.Value, results []any) any {
	elemType := typ.Elem()
	if !assignableAll(elemType, results) {
		typ = reflect.MapOf(typ.Key(), reflect.TypeFor[any]())
	}
	out := reflect.MakeMapWithSize(typ, len(keys))
	for i, key := range keys {
		elem := reflect.New(typ.Elem()).Elem()
		setElem(elem, results[i])
		out.SetMapIndex(key, elem)
	}
	return out.Interface()
}

func assignableAll(elemType reflect.Type, results []any) bool {
	for _, r := range results {
		if r == nil {
			if !nillable(elemType) {
				return false
			}
			continue
		}
		if !reflect.TypeOf(r).AssignableTo(elemType) {
			return false
		}
	}
	return true
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// setElem stores r into dst; nil leaves the zero value.
func setElem(dst reflect.Value, r any) {
	if r != nil {
		dst.Set(reflect.ValueOf(r))
	}
}
