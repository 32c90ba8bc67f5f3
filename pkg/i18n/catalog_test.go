package i18n_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func testCatalog() i18n.Catalog {
	return i18n.Catalog{
		"en": {"validation.email": "bad email", "title": "Sign up"},
		"de": {"validation.email": "ungültige E-Mail"},
	}
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()
	cat := testCatalog()

	assert.Equal(t, "de", cat.Resolve("de"))
	assert.Equal(t, "de", cat.Resolve("DE"))
	assert.Equal(t, "de", cat.Resolve("de-AT"))
	assert.Equal(t, "en", cat.Resolve("fr"))
	assert.Equal(t, "en", cat.Resolve(""))
	assert.Equal(t, "", i18n.Catalog{"fr": {}}.Resolve("de"))
}

func TestCatalog_Messages(t *testing.T) {
	t.Parallel()
	cat := testCatalog()

	assert.Equal(t, map[string]string{"email": "ungültige E-Mail"}, cat.Messages("de-CH"))
	assert.Equal(t, map[string]string{"email": "bad email"}, cat.Messages("pt"))
	assert.Empty(t, i18n.Catalog{}.Messages("en"))
	assert.NotNil(t, i18n.Catalog{}.Messages("en"))
}

func TestCatalog_Merge(t *testing.T) {
	t.Parallel()
	cat := testCatalog()
	cat.Merge(i18n.Catalog{
		"de": {"validation.url": "ungültige URL"},
		"es": {"validation.email": "correo inválido"},
	})

	assert.Equal(t, "ungültige URL", cat["de"]["validation.url"])
	assert.Equal(t, "ungültige E-Mail", cat["de"]["validation.email"])
	assert.Equal(t, "correo inválido", cat["es"]["validation.email"])
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml and logs", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en:\n  validation:\n    url: not a url\n"), 0o600))

		buf := &bytes.Buffer{}
		cat, err := i18n.LoadFile(context.Background(), path,
			i18n.WithLogger(logger.New(logger.WithOutput(buf))),
		)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"url": "not a url"}, cat.Messages("en"))
		assert.Contains(t, buf.String(), "message catalog loaded")
	})

	t.Run("loads json", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "messages.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"en":{"validation":{"url":"nope"}}}`), 0o600))

		cat, err := i18n.LoadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "nope", cat.Messages("en")["url"])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.LoadFile(context.Background(), "messages.ini")
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.LoadFile(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	override := filepath.Join(dir, "override.json")
	require.NoError(t, os.WriteFile(base, []byte("en:\n  validation:\n    email: base email\n    url: base url\n"), 0o600))
	require.NoError(t, os.WriteFile(override, []byte(`{"en": {"validation": {"email": "custom email"}}, "de": {"validation": {"url": "URL"}}}`), 0o600))

	t.Run("later files win", func(t *testing.T) {
		cat, err := i18n.LoadFiles(ctx, []string{base, override})
		require.NoError(t, err)

		assert.Equal(t, []string{"de", "en"}, cat.Languages())
		assert.Equal(t, map[string]string{"email": "custom email", "url": "base url"}, cat.Messages("en"))
	})

	t.Run("no files", func(t *testing.T) {
		cat, err := i18n.LoadFiles(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, cat.Languages())
	})

	t.Run("stops at first failure", func(t *testing.T) {
		_, err := i18n.LoadFiles(ctx, []string{base, filepath.Join(dir, "missing.yaml")})
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})
}
