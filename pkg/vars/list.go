package vars

import (
	"iter"
	"slices"
)

// List is an index-addressed sequence of arbitrary values.
// The zero value is an empty list.
type List struct {
	items []any
	def   any
	loose bool
}

// NewList creates a list holding items.
func NewList(items ...any) *List {
	return &List{items: slices.Clone(items)}
}

// Get returns the item at index i or the default value when i is out of range.
func (l *List) Get(i int) any {
	if value, ok := l.Lookup(i); ok {
		return value
	}
	return l.def
}

// Lookup returns the item at index i and whether i is in range.
func (l *List) Lookup(i int) (any, bool) {
	if l == nil || i < 0 || i >= len(l.items) {
		return nil, false
	}
	return l.items[i], true
}

// Set replaces the item at index i. Setting index Len() appends.
// It reports false when i is outside [0, Len()].
func (l *List) Set(i int, value any) bool {
	switch {
	case i >= 0 && i < len(l.items):
		l.items[i] = value
		return true
	case i == len(l.items):
		l.items = append(l.items, value)
		return true
	}
	return false
}

// Append adds items to the end of the list.
func (l *List) Append(items ...any) {
	l.items = append(l.items, items...)
}

// Remove deletes the item at index i, shifting later items down.
// Out of range indexes are ignored.
func (l *List) Remove(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items = slices.Delete(l.items, i, i+1)
}

// Has reports whether i is a valid index. In loose mode it always reports true.
func (l *List) Has(i int) bool {
	if l == nil {
		return false
	}
	if l.loose {
		return true
	}
	return i >= 0 && i < len(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Values returns a copy of the items.
func (l *List) Values() []any {
	if l == nil {
		return nil
	}
	return slices.Clone(l.items)
}

// Default returns the value returned by Get for out of range indexes.
func (l *List) Default() any { return l.def }

// SetDefault sets the value returned by Get for out of range indexes.
func (l *List) SetDefault(value any) { l.def = value }

// Loose reports whether loose mode is enabled.
func (l *List) Loose() bool { return l != nil && l.loose }

// SetLoose toggles loose mode, in which Has reports true for every index.
func (l *List) SetLoose(loose bool) { l.loose = loose }

// All iterates over index/item pairs in order.
func (l *List) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		if l == nil {
			return
		}
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Clone returns a shallow copy including the default value and loose flag.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	return &List{items: slices.Clone(l.items), def: l.def, loose: l.loose}
}
