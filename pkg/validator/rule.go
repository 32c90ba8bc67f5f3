package validator

// TestFunc is a simple validity test. It is not called for missing or blank
// values.
type TestFunc func(value any, params ...string) bool

// ComplexTestFunc is a validity test that also receives the existence flag
// and is always called.
type ComplexTestFunc func(exists bool, value any, params ...string) bool

// FilterFunc is a simple filter returning the replacement value. It is not
// called for missing or blank values.
type FilterFunc func(value any, params ...string) any

// ComplexFilterFunc is a filter that also receives the existence flag and is
// always called.
type ComplexFilterFunc func(exists bool, value any, params ...string) any

// callback is the uniform shape every rule is invoked through.
type callback func(exists bool, value any, params []string) any

// Rule is a registered test or filter.
type Rule struct {
	Name    string
	Message string
	Complex bool

	call callback
}

func (f TestFunc) callback() callback {
	return func(_ bool, value any, params []string) any { return f(value, params...) }
}

func (f ComplexTestFunc) callback() callback {
	return func(exists bool, value any, params []string) any { return f(exists, value, params...) }
}

func (f FilterFunc) callback() callback {
	return func(_ bool, value any, params []string) any { return f(value, params...) }
}

func (f ComplexFilterFunc) callback() callback {
	return func(exists bool, value any, params []string) any { return f(exists, value, params...) }
}
