package validator

import (
	"maps"
	"regexp"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// NotRegisteredMessage is returned by MessageFor for unknown rule names.
const NotRegisteredMessage = "not registered"

// DefaultPatternCacheSize bounds the number of compiled match patterns kept
// by a registry.
const DefaultPatternCacheSize = 128

// Registry holds named validity tests and filters. NewRegistry returns a
// registry pre-populated with the built-in rules.
type Registry struct {
	tests    map[string]Rule
	filters  map[string]Rule
	patterns *cache.LRUCache[string, *regexp.Regexp]
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	patternCacheSize int
}

// WithPatternCacheSize sets how many compiled regular expressions the match
// rules keep. Non-positive sizes are ignored.
func WithPatternCacheSize(n int) RegistryOption {
	return func(o *registryOptions) {
		if n > 0 {
			o.patternCacheSize = n
		}
	}
}

// NewRegistry creates a registry holding the built-in tests and filters.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := &registryOptions{patternCacheSize: DefaultPatternCacheSize}
	for _, opt := range opts {
		opt(o)
	}

	r := &Registry{
		tests:    make(map[string]Rule),
		filters:  make(map[string]Rule),
		patterns: cache.NewLRUCache[string, *regexp.Regexp](o.patternCacheSize),
	}
	registerBuiltinTests(r)
	registerBuiltinFilters(r)
	return r
}

// DefineTest registers or replaces a simple validity test.
func (r *Registry) DefineTest(name, message string, fn TestFunc) {
	r.tests[name] = Rule{Name: name, Message: message, call: fn.callback()}
}

// DefineComplexTest registers or replaces a validity test that receives the
// existence flag.
func (r *Registry) DefineComplexTest(name, message string, fn ComplexTestFunc) {
	r.tests[name] = Rule{Name: name, Message: message, Complex: true, call: fn.callback()}
}

// DefineFilter registers or replaces a simple filter.
func (r *Registry) DefineFilter(name string, fn FilterFunc) {
	r.filters[name] = Rule{Name: name, call: fn.callback()}
}

// DefineComplexFilter registers or replaces a filter that receives the
// existence flag.
func (r *Registry) DefineComplexFilter(name string, fn ComplexFilterFunc) {
	r.filters[name] = Rule{Name: name, Complex: true, call: fn.callback()}
}

// IsDefined reports whether a validity test is registered under name.
func (r *Registry) IsDefined(name string) bool {
	_, ok := r.tests[name]
	return ok
}

// IsFilterDefined reports whether a filter is registered under name.
func (r *Registry) IsFilterDefined(name string) bool {
	_, ok := r.filters[name]
	return ok
}

// Tests returns the registered test names in sorted order.
func (r *Registry) Tests() []string {
	return slices.Sorted(maps.Keys(r.tests))
}

// Filters returns the registered filter names in sorted order.
func (r *Registry) Filters() []string {
	return slices.Sorted(maps.Keys(r.filters))
}

// Test returns the validity test registered under name.
func (r *Registry) Test(name string) (Rule, bool) {
	rule, ok := r.tests[name]
	return rule, ok
}

// Filter returns the filter registered under name.
func (r *Registry) Filter(name string) (Rule, bool) {
	rule, ok := r.filters[name]
	return rule, ok
}

// MessageFor returns the message template of the test registered under name,
// or NotRegisteredMessage.
func (r *Registry) MessageFor(name string) string {
	if rule, ok := r.tests[name]; ok {
		return rule.Message
	}
	return NotRegisteredMessage
}

// SetMessages replaces the message templates of registered tests. Names
// without a registered test are ignored.
func (r *Registry) SetMessages(messages map[string]string) {
	for name, tmpl := range messages {
		if rule, ok := r.tests[name]; ok {
			rule.Message = tmpl
			r.tests[name] = rule
		}
	}
}

// Clone returns an independent copy of the registry. The compiled pattern
// cache is shared.
func (r *Registry) Clone() *Registry {
	return &Registry{
		tests:    maps.Clone(r.tests),
		filters:  maps.Clone(r.filters),
		patterns: r.patterns,
	}
}
