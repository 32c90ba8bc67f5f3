// Package vars provides the loosely typed containers used to carry
// request-like data through the validator: Vars, an insertion-ordered keyed
// mapping, and List, an index-addressed sequence.
//
// Both containers return a configurable default value when a lookup misses and
// support a "loose" mode in which Has reports true for every key or index. The
// validator relies on loose mode to give unqueried fields a passing result.
//
// # Usage
//
//	data := vars.New()
//	data.Set("name", "Al")
//	data.Set("tags", vars.NewList("a", "b"))
//
//	name := data.Get("name")        // "Al"
//	missing := data.Get("nickname") // nil, or the configured default
//
//	for key, value := range data.All() {
//	    fmt.Println(key, value)
//	}
//
// Iterate adapts any supported collection (Vars, List, slices, arrays and
// maps) to a single iter.Seq2 so callers can walk heterogeneous values without
// type switches.
//
// # Concurrency
//
// The containers are plain data structures and are not safe for concurrent
// mutation. Guard them externally when sharing across goroutines.
package vars
