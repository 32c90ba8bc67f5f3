package vars

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Iterable reports whether Iterate can walk v.
func Iterable(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case *Vars, *List, []any, []string, map[string]any:
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// Iterate adapts a collection to a key/value sequence. Lists, slices and
// arrays yield their int index as key; Vars yield their insertion order; plain
// maps yield their keys in sorted order. The boolean result is false when v is
// not a collection.
func Iterate(v any) (iter.Seq2[any, any], bool) {
	switch c := v.(type) {
	case nil:
		return nil, false
	case *Vars:
		return func(yield func(any, any) bool) {
			for key, value := range c.All() {
				if !yield(key, value) {
					return
				}
			}
		}, true
	case *List:
		return func(yield func(any, any) bool) {
			for i, value := range c.All() {
				if !yield(i, value) {
					return
				}
			}
		}, true
	case []any:
		return func(yield func(any, any) bool) {
			for i, value := range c {
				if !yield(i, value) {
					return
				}
			}
		}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any, any) bool) {
			for i := range rv.Len() {
				if !yield(i, rv.Index(i).Interface()) {
					return
				}
			}
		}, true
	case reflect.Map:
		keys := sortedMapKeys(rv)
		return func(yield func(any, any) bool) {
			for _, key := range keys {
				if !yield(key.Interface(), rv.MapIndex(key).Interface()) {
					return
				}
			}
		}, true
	}
	return nil, false
}

// Count returns the number of elements in a collection, or -1 when v is not
// iterable.
func Count(v any) int {
	switch c := v.(type) {
	case nil:
		return -1
	case *Vars:
		return c.Len()
	case *List:
		return c.Len()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return -1
}

func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	if rv.Type().Key().Kind() == reflect.String {
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Compare(a.String(), b.String())
		})
		return keys
	}
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})
	return keys
}
