package vars

import (
	"iter"
	"maps"
	"slices"
)

// Vars is an insertion-ordered mapping from string keys to arbitrary values.
// The zero value is ready to use.
type Vars struct {
	keys   []string
	values map[string]any
	def    any
	loose  bool
}

// New creates an empty Vars.
func New() *Vars {
	return &Vars{values: make(map[string]any)}
}

// FromMap creates a Vars holding the entries of m. Keys are inserted in sorted
// order because map iteration order is undefined.
func FromMap(m map[string]any) *Vars {
	v := New()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		v.Set(key, m[key])
	}
	return v
}

// Get returns the value stored under key or the default value when the key is
// absent.
func (v *Vars) Get(key string) any {
	if value, ok := v.Lookup(key); ok {
		return value
	}
	return v.def
}

// Lookup returns the value stored under key and whether it was present.
// Loose mode does not affect Lookup.
func (v *Vars) Lookup(key string) (any, bool) {
	if v == nil || v.values == nil {
		return nil, false
	}
	value, ok := v.values[key]
	return value, ok
}

// Set stores value under key. New keys are appended to the iteration order;
// existing keys keep their position.
func (v *Vars) Set(key string, value any) {
	if v.values == nil {
		v.values = make(map[string]any)
	}
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Remove deletes key. Removing an absent key is a no-op.
func (v *Vars) Remove(key string) {
	if _, ok := v.values[key]; !ok {
		return
	}
	delete(v.values, key)
	v.keys = slices.DeleteFunc(v.keys, func(k string) bool { return k == key })
}

// Has reports whether key is present. In loose mode it always reports true.
func (v *Vars) Has(key string) bool {
	if v == nil {
		return false
	}
	if v.loose {
		return true
	}
	_, ok := v.values[key]
	return ok
}

// Len returns the number of stored entries.
func (v *Vars) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns the keys in insertion order.
func (v *Vars) Keys() []string {
	if v == nil {
		return nil
	}
	return slices.Clone(v.keys)
}

// Default returns the value returned by Get for absent keys.
func (v *Vars) Default() any { return v.def }

// SetDefault sets the value returned by Get for absent keys.
func (v *Vars) SetDefault(value any) { v.def = value }

// Loose reports whether loose mode is enabled.
func (v *Vars) Loose() bool { return v != nil && v.loose }

// SetLoose toggles loose mode, in which Has reports true for every key.
func (v *Vars) SetLoose(loose bool) { v.loose = loose }

// All iterates over the entries in insertion order.
func (v *Vars) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if v == nil {
			return
		}
		for _, key := range v.keys {
			if !yield(key, v.values[key]) {
				return
			}
		}
	}
}

// Map returns a copy of the entries as a plain map.
func (v *Vars) Map() map[string]any {
	if v == nil {
		return map[string]any{}
	}
	return maps.Clone(v.values)
}

// Clone returns a shallow copy including the default value and loose flag.
func (v *Vars) Clone() *Vars {
	if v == nil {
		return nil
	}
	c := &Vars{
		keys:   slices.Clone(v.keys),
		values: maps.Clone(v.values),
		def:    v.def,
		loose:  v.loose,
	}
	if c.values == nil {
		c.values = make(map[string]any)
	}
	return c
}

// Merge copies every entry of other into v, overwriting existing keys.
func (v *Vars) Merge(other *Vars) {
	for key, value := range other.All() {
		v.Set(key, value)
	}
}
