package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultLanguage is used when a requested language has no messages.
const DefaultLanguage = "en"

// MessagePrefix is the key prefix holding validation messages.
const MessagePrefix = "validation."

// Catalog maps a lowercase language code to flattened message keys.
type Catalog map[string]map[string]string

// Languages returns the catalog languages in sorted order.
func (c Catalog) Languages() []string {
	return slices.Sorted(maps.Keys(c))
}

// Resolve returns the catalog language that best serves lang: the exact
// code, then its base language, then DefaultLanguage. It returns "" when none
// of them is present.
func (c Catalog) Resolve(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := c[lang]; ok {
		return lang
	}
	if tag, err := language.Parse(lang); err == nil {
		base, _ := tag.Base()
		if _, ok := c[base.String()]; ok {
			return base.String()
		}
	}
	if _, ok := c[DefaultLanguage]; ok {
		return DefaultLanguage
	}
	return ""
}

// Messages returns the rule → template map for lang with MessagePrefix
// stripped. Keys outside the prefix are ignored. The result is never nil.
func (c Catalog) Messages(lang string) map[string]string {
	out := make(map[string]string)
	for key, tmpl := range c[c.Resolve(lang)] {
		if rule, ok := strings.CutPrefix(key, MessagePrefix); ok {
			out[rule] = tmpl
		}
	}
	return out
}

// Merge copies other into c; entries in other win.
func (c Catalog) Merge(other Catalog) {
	for lang, messages := range other {
		if c[lang] == nil {
			c[lang] = make(map[string]string, len(messages))
		}
		maps.Copy(c[lang], messages)
	}
}

// LoadOption configures LoadFile.
type LoadOption func(*loadOptions)

type loadOptions struct {
	logger *slog.Logger
}

// WithLogger logs catalog loading through l.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// LoadFile reads and parses a catalog file, picking the parser by extension.
func LoadFile(ctx context.Context, path string, opts ...LoadOption) (Catalog, error) {
	o := &loadOptions{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	cat, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, err
	}

	o.logger.InfoContext(ctx, "message catalog loaded",
		slog.String("path", path),
		slog.Any("languages", cat.Languages()),
	)
	return cat, nil
}

// LoadFiles loads several catalog files and merges them in order, so entries
// from later files win.
func LoadFiles(ctx context.Context, paths []string, opts ...LoadOption) (Catalog, error) {
	merged := make(Catalog)
	for _, path := range paths {
		cat, err := LoadFile(ctx, path, opts...)
		if err != nil {
			return nil, err
		}
		merged.Merge(cat)
	}
	return merged, nil
}
