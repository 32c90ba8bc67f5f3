package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestContext_Chain(t *testing.T) {
	t.Parallel()

	t.Run("filters feed later tests", func(t *testing.T) {
		v := validator.New(map[string]any{"name": "  Al  "})
		c := v.Check("name", "Name").Filter("trim").Is("max-length 2")

		assert.True(t, c.Valid())
		assert.Equal(t, "Al", c.Value())
		assert.Equal(t, "Al", v.Values().Get("name"))
	})

	t.Run("first failure is kept", func(t *testing.T) {
		v := validator.New(map[string]any{"age": "abc"})
		c := v.Check("age").Is("numeric").Is("> 18")

		assert.True(t, c.Invalid())
		assert.Equal(t, "numeric", c.Rule())
		assert.Empty(t, c.Param())
		assert.Len(t, c.Outcomes(), 1)
	})

	t.Run("filters are skipped after failure", func(t *testing.T) {
		v := validator.New(map[string]any{"code": " x "})
		c := v.Check("code").Is("numeric").Filter("trim")

		assert.Equal(t, " x ", c.Value())
	})

	t.Run("param is split at first space", func(t *testing.T) {
		v := validator.New(map[string]any{"slug": "ab c"})
		c := v.Check("slug").Is("match ^[a-z]+ [a-z]$")

		assert.True(t, c.Valid())
		outcomes := c.Outcomes()
		require.Len(t, outcomes, 1)
		assert.Equal(t, "match", outcomes[0].Rule)
		assert.Equal(t, "^[a-z]+ [a-z]$", outcomes[0].Param)
	})

	t.Run("quantifiers", func(t *testing.T) {
		v := validator.New(map[string]any{"tags": []string{"a", "b"}, "ids": []any{"x", 1}})

		assert.True(t, v.Check("tags").IsAll("in a,b,c").Valid())
		assert.True(t, v.Check("ids").IsAny("integer").Valid())
		assert.False(t, v.Recheck("ids").IsAll("integer").Valid())
	})

	t.Run("filter map", func(t *testing.T) {
		v := validator.New(map[string]any{"tags": []string{" A ", "b "}})
		c := v.Check("tags").FilterMap("trim").FilterMap("lower")

		assert.Equal(t, []string{"a", "b"}, c.Value())
		require.Len(t, c.Outcomes(), 2)
		assert.True(t, c.Outcomes()[0].Filter)
		assert.Equal(t, validator.QuantifierAll, c.Outcomes()[0].Quantifier)
	})

	t.Run("inline callables", func(t *testing.T) {
		v := validator.New(map[string]any{"word": "hello"})
		c := v.Check("word").
			FilterFunc(strings.ToUpper).
			IsFunc(func(value any, params ...string) bool {
				return strings.HasPrefix(value.(string), params[0])
			}, "HE")

		assert.True(t, c.Valid())
		assert.Equal(t, "HELLO", c.Value())
	})

	t.Run("fail marks invalid", func(t *testing.T) {
		v := validator.New(map[string]any{"email": "taken@example.com"})
		c := v.Check("email", "Email").Is("email").Fail("fail")

		assert.True(t, c.Invalid())
		assert.Equal(t, "fail", c.Rule())
		assert.Equal(t, "Email is invalid", c.Message())
	})

	t.Run("existence snapshot", func(t *testing.T) {
		v := validator.New(map[string]any{"present": ""})

		assert.True(t, v.Check("present").Exists())
		assert.False(t, v.Check("missing").Exists())
		assert.True(t, v.Check("missing").Is("email").Valid())
		assert.False(t, v.Check("missing2").Is("not-empty").Valid())
	})
}

func TestContext_Message(t *testing.T) {
	t.Parallel()

	t.Run("valid context has no message", func(t *testing.T) {
		v := validator.New(map[string]any{"x": "1"})
		assert.Empty(t, v.Check("x").Is("numeric").Message())
	})

	t.Run("renders placeholders", func(t *testing.T) {
		v := validator.New(map[string]any{"name": "Alexander"})
		c := v.Check("name", "Name").Is("max-length 3")

		assert.Equal(t, "Name must be at most 3 characters long", c.Message())
	})

	t.Run("label falls back to field", func(t *testing.T) {
		v := validator.New(map[string]any{})
		c := v.Check("email").Is("not-empty")

		assert.Equal(t, "email", c.Label())
		assert.Equal(t, "email is required", c.Message())
	})

	t.Run("overrides win over registry", func(t *testing.T) {
		v := validator.New(map[string]any{"age": 10}, validator.WithMessages(map[string]string{
			">=": "{label} ({value}) must be {param} or older {unknown}",
		}))
		c := v.Check("age", "Age").Is(">= 18")

		assert.Equal(t, "Age (10) must be 18 or older {unknown}", c.Message())
	})

	t.Run("inline failure uses generic message", func(t *testing.T) {
		v := validator.New(map[string]any{"x": "a"})
		c := v.Check("x", "X").IsFunc(func(any) bool { return false })

		assert.Empty(t, c.Rule())
		assert.Equal(t, "X is invalid", c.Message())
	})

	t.Run("unknown rule message", func(t *testing.T) {
		v := validator.New(map[string]any{"x": "a"})
		c := v.Check("x").Is("no-such-rule")

		assert.Equal(t, validator.NotRegisteredMessage, c.Message())
	})

	t.Run("validation error", func(t *testing.T) {
		v := validator.New(map[string]any{"tags": "d"})
		ve := v.Check("tags", "Tags").Is("in a,b,c").ValidationError()

		assert.Equal(t, "tags", ve.Field)
		assert.Equal(t, "Tags must be one of: a,b,c", ve.Message)
		assert.Equal(t, "validation.in", ve.TranslationKey)
		assert.Equal(t, map[string]any{"field": "tags", "label": "Tags", "param": "a,b,c"}, ve.TranslationValues)
	})
}
