package validator_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/pkg/vars"
)

func TestExecTest_ShortCircuit(t *testing.T) {
	t.Parallel()

	v := validator.New(nil)

	t.Run("missing field passes simple tests", func(t *testing.T) {
		for _, rule := range []string{"integer", "email", "min-length", "in"} {
			passed, _ := v.ExecTest(false, nil, rule, "5")
			assert.True(t, passed, rule)
		}
	})

	t.Run("blank values pass simple tests", func(t *testing.T) {
		var nilPtr *int
		for _, value := range []any{nil, "", nilPtr} {
			passed, _ := v.ExecTest(true, value, "email", "")
			assert.True(t, passed, "%#v", value)
		}
	})

	t.Run("meaningful empties reach the callback", func(t *testing.T) {
		for _, value := range []any{"0", 0, false, []any{}} {
			calls := 0
			fn := validator.TestFunc(func(any, ...string) bool {
				calls++
				return false
			})
			passed, _ := v.ExecTest(true, value, fn, "")
			assert.False(t, passed, "%#v", value)
			assert.Equal(t, 1, calls, "%#v", value)
		}
	})

	t.Run("simple callback is skipped for missing field", func(t *testing.T) {
		called := false
		passed, _ := v.ExecTest(false, "value", func(any) bool {
			called = true
			return false
		}, "")
		assert.True(t, passed)
		assert.False(t, called)
	})
}

func TestExecTest_Resolution(t *testing.T) {
	t.Parallel()

	t.Run("unknown test fails closed", func(t *testing.T) {
		v := validator.New(nil)
		passed, value := v.ExecTest(true, "x", "no-such-rule", "")
		assert.False(t, passed)
		assert.Equal(t, "x", value)
	})

	t.Run("unsupported rule kind fails closed", func(t *testing.T) {
		v := validator.New(nil)
		passed, _ := v.ExecTest(true, "x", 42, "")
		assert.False(t, passed)
	})

	t.Run("registered rule receives raw param", func(t *testing.T) {
		v := validator.New(nil)
		var got []string
		v.Registry().DefineTest("capture", "", func(_ any, params ...string) bool {
			got = params
			return true
		})

		passed, _ := v.ExecTest(true, "x", "capture", "a b  c")
		assert.True(t, passed)
		assert.Equal(t, []string{"a b  c"}, got)
	})

	t.Run("inline callable receives split params", func(t *testing.T) {
		v := validator.New(nil)
		var got []string
		fn := func(_ any, params ...string) bool {
			got = params
			return true
		}

		v.ExecTest(true, "x", fn, "a b c")
		assert.Equal(t, []string{"a", "b", "c"}, got)

		v.ExecTest(true, "x", fn, "")
		assert.Empty(t, got)
	})

	t.Run("inline string predicate", func(t *testing.T) {
		v := validator.New(nil)
		isOK := func(s string) bool { return s == "ok" }

		passed, _ := v.ExecTest(true, "ok", isOK, "")
		assert.True(t, passed)
		passed, _ = v.ExecTest(true, "no", isOK, "")
		assert.False(t, passed)
		passed, _ = v.ExecTest(true, []int{1}, isOK, "")
		assert.False(t, passed)
	})

	t.Run("inline complex callables run as simple rules", func(t *testing.T) {
		v := validator.New(nil)
		var gotExists bool
		var gotParams []string
		calls := 0
		test := validator.ComplexTestFunc(func(exists bool, value any, params ...string) bool {
			calls++
			gotExists, gotParams = exists, params
			return value == "a"
		})

		passed, _ := v.ExecTest(true, "a", test, "x y")
		assert.True(t, passed)
		assert.True(t, gotExists)
		assert.Equal(t, []string{"x", "y"}, gotParams)

		passed, _ = v.ExecTest(false, nil, test, "")
		assert.True(t, passed)
		assert.Equal(t, 1, calls)

		plain := func(exists bool, value any, _ ...string) bool { return exists && value == "b" }
		passed, _ = v.ExecTest(true, "b", plain, "")
		assert.True(t, passed)

		filter := validator.ComplexFilterFunc(func(exists bool, value any, params ...string) any {
			return value.(string) + strings.Join(params, "")
		})
		ok, got := v.ExecFilter(true, "a", filter, "b c")
		assert.True(t, ok)
		assert.Equal(t, "abc", got)

		_, got = v.ExecFilter(true, "", filter, "b")
		assert.Equal(t, "", got)

		c := validator.New(map[string]any{"x": "a"}).Check("x").FilterFunc(filter, "!").IsFunc(test)
		assert.Equal(t, "a!", c.Value())
		assert.True(t, c.Invalid())
	})

	t.Run("nil inline callables fail closed", func(t *testing.T) {
		v := validator.New(nil)
		var test validator.ComplexTestFunc
		var filter validator.ComplexFilterFunc

		passed, _ := v.ExecTest(true, "a", test, "")
		assert.False(t, passed)
		ok, got := v.ExecFilter(true, "a", filter, "")
		assert.True(t, ok)
		assert.Nil(t, got)
	})

	t.Run("complex test always runs", func(t *testing.T) {
		v := validator.New(nil)
		var gotExists *bool
		v.Registry().DefineComplexTest("required-flag", "", func(exists bool, _ any, _ ...string) bool {
			gotExists = &exists
			return exists
		})

		passed, _ := v.ExecTest(false, nil, "required-flag", "")
		assert.False(t, passed)
		require.NotNil(t, gotExists)
		assert.False(t, *gotExists)
	})

	t.Run("unresolved rules are logged at debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
		v := validator.New(nil, validator.WithLogger(log))

		v.ExecTest(true, "x", "no-such-rule", "p")
		v.ExecFilter(true, "x", "no-such-filter", "")

		out := buf.String()
		assert.Contains(t, out, "test not resolved")
		assert.Contains(t, out, "filter not resolved")
		assert.Contains(t, out, "no-such-rule")
	})
}

func TestExecTest_Quantifiers(t *testing.T) {
	t.Parallel()

	v := validator.New(nil)

	tests := []struct {
		name  string
		value any
		all   bool
		any   bool
	}{
		{"empty collection", []any{}, true, false},
		{"all match", []any{1, 2}, true, true},
		{"some match", []any{"x", 1}, false, true},
		{"none match", []string{"x", "y"}, false, false},
		{"list", vars.NewList(1, 2), true, true},
		{"map", map[string]any{"a": 1, "b": "x"}, false, true},
		{"scalar", "x", false, false},
		{"nil", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all, value := v.ExecTestAll(true, tt.value, "integer", "")
			assert.Equal(t, tt.all, all)
			assert.Equal(t, tt.value, value)

			anyOf, _ := v.ExecTestAny(true, tt.value, "integer", "")
			assert.Equal(t, tt.any, anyOf)
		})
	}

	t.Run("elements reuse the outer exists flag", func(t *testing.T) {
		passed, _ := v.ExecTestAll(false, []any{"x"}, "integer", "")
		assert.True(t, passed)
	})

	t.Run("all stops at first failure", func(t *testing.T) {
		var seen []any
		fn := func(value any) bool {
			seen = append(seen, value)
			return value != "stop"
		}
		v.ExecTestAll(true, []any{"a", "stop", "b"}, fn, "")
		assert.Equal(t, []any{"a", "stop"}, seen)
	})

	t.Run("any stops at first success", func(t *testing.T) {
		var seen []any
		fn := func(value any) bool {
			seen = append(seen, value)
			return value == "hit"
		}
		v.ExecTestAny(true, []any{"a", "hit", "b"}, fn, "")
		assert.Equal(t, []any{"a", "hit"}, seen)
	})

	t.Run("unknown rule fails", func(t *testing.T) {
		all, _ := v.ExecTestAll(true, []any{}, "no-such-rule", "")
		anyOf, _ := v.ExecTestAny(true, []any{1}, "no-such-rule", "")
		assert.False(t, all)
		assert.False(t, anyOf)
	})
}

func TestExecFilter(t *testing.T) {
	t.Parallel()

	v := validator.New(nil)

	tests := []struct {
		name   string
		filter string
		param  string
		value  any
		want   any
	}{
		{"trim", "trim", "", "  hi \n", "hi"},
		{"trim cutset", "trim", "x", "xxhixx", "hi"},
		{"ltrim", "ltrim", "", "  hi  ", "hi  "},
		{"rtrim", "rtrim", "", "  hi  ", "  hi"},
		{"lower", "lower", "", "ABC", "abc"},
		{"upper", "upper", "", "abc", "ABC"},
		{"title", "title", "", "hello world", "Hello World"},
		{"squish", "squish", "", " a   b\n c ", "a b c"},
		{"strip-tags", "strip-tags", "", "<b>hi</b>", "hi"},
		{"slug", "slug", "", "Hello World!", "hello-world"},
		{"non-string passes through", "trim", "", []any{" a "}, []any{" a "}},
		{"blank value unchanged", "upper", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, got := v.ExecFilter(true, tt.value, tt.filter, tt.param)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing value is left alone", func(t *testing.T) {
		ok, got := v.ExecFilter(false, nil, "trim", "")
		assert.True(t, ok)
		assert.Nil(t, got)
	})

	t.Run("default fills missing and blank values", func(t *testing.T) {
		_, got := v.ExecFilter(false, nil, "default", "n/a")
		assert.Equal(t, "n/a", got)
		_, got = v.ExecFilter(true, "", "default", "n/a")
		assert.Equal(t, "n/a", got)
		_, got = v.ExecFilter(true, "0", "default", "n/a")
		assert.Equal(t, "0", got)
	})

	t.Run("unknown filter yields nil", func(t *testing.T) {
		ok, got := v.ExecFilter(true, "x", "no-such-filter", "")
		assert.True(t, ok)
		assert.Nil(t, got)
	})

	t.Run("inline filters", func(t *testing.T) {
		_, got := v.ExecFilter(true, "abc", strings.ToUpper, "")
		assert.Equal(t, "ABC", got)

		_, got = v.ExecFilter(true, "abc", func(value any, params ...string) any {
			return value.(string) + strings.Join(params, "+")
		}, "x y")
		assert.Equal(t, "abcx+y", got)
	})
}

func TestExecFilterMap(t *testing.T) {
	t.Parallel()

	v := validator.New(nil)

	t.Run("list keeps kind and order", func(t *testing.T) {
		in := vars.NewList(" a ", " b ")
		_, got := v.ExecFilterMap(true, in, "trim", "")

		out, ok := got.(*vars.List)
		require.True(t, ok)
		assert.Equal(t, []any{"a", "b"}, out.Values())
		assert.Equal(t, []any{" a ", " b "}, in.Values())
	})

	t.Run("vars keeps keys", func(t *testing.T) {
		in := vars.New()
		in.Set("z", " 1 ")
		in.Set("a", " 2 ")
		_, got := v.ExecFilterMap(true, in, "trim", "")

		out, ok := got.(*vars.Vars)
		require.True(t, ok)
		assert.Equal(t, []string{"z", "a"}, out.Keys())
		assert.Equal(t, "1", out.Get("z"))
	})

	t.Run("typed slice keeps type", func(t *testing.T) {
		_, got := v.ExecFilterMap(true, []string{" a ", "b "}, "trim", "")
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("typed map keeps type", func(t *testing.T) {
		_, got := v.ExecFilterMap(true, map[string]string{"k": " v "}, "trim", "")
		assert.Equal(t, map[string]string{"k": "v"}, got)
	})

	t.Run("incompatible results widen to any", func(t *testing.T) {
		_, got := v.ExecFilterMap(true, []int{1, 2}, "trim", "")
		assert.Equal(t, []any{"1", "2"}, got)
	})

	t.Run("scalar is returned unchanged", func(t *testing.T) {
		ok, got := v.ExecFilterMap(true, " x ", "trim", "")
		assert.True(t, ok)
		assert.Equal(t, " x ", got)
	})

	t.Run("unknown filter yields nil", func(t *testing.T) {
		_, got := v.ExecFilterMap(true, []string{"a"}, "no-such-filter", "")
		assert.Nil(t, got)
	})

	t.Run("nil containers are returned unchanged", func(t *testing.T) {
		var list *vars.List
		var fields *vars.Vars

		require.NotPanics(t, func() {
			ok, got := v.ExecFilterMap(true, list, "trim", "")
			assert.True(t, ok)
			assert.Equal(t, list, got)

			_, got = v.ExecFilterMap(true, fields, "trim", "")
			assert.Equal(t, fields, got)
		})

		require.NotPanics(t, func() {
			c := validator.New(map[string]any{"tags": list}).Check("tags").FilterMap("trim")
			assert.True(t, c.Valid())
		})
	})

	t.Run("elements reuse the outer exists flag", func(t *testing.T) {
		_, got := v.ExecFilterMap(false, []any{" a "}, "default", "x")
		assert.Equal(t, []any{"x"}, got)
	})
}
