// Package cache provides a small generic, thread-safe LRU cache.
//
// The validator uses it to keep compiled regular expressions for the match
// and not-match rules, so a pattern used across many requests is compiled
// once and bounded memory is retained for rarely used ones.
//
// # Usage
//
//	patterns := cache.NewLRUCache[string, *regexp.Regexp](128)
//
//	re, err := patterns.Fetch(`^[a-z]+$`, func() (*regexp.Regexp, error) {
//		return regexp.Compile(`^[a-z]+$`)
//	})
//
// Fetch only stores values whose constructor succeeded; failed constructions
// are returned to the caller and retried on the next call.
//
// All methods are O(1) and safe for concurrent use.
package cache
