package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes catalog content of one file format.
type Parser interface {
	// Parse decodes content into a catalog keyed by language code.
	Parse(ctx context.Context, content []byte) (Catalog, error)

	// SupportsFileExtension reports whether the parser handles ext,
	// with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser chosen by the file extension, or nil for
// unknown extensions.
func NewParserForFile(filename string) Parser {
	ext := filepath.Ext(filename)
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// fromDocument converts a decoded document into a catalog. Every top-level
// key must hold a mapping.
func fromDocument(data map[string]any) (Catalog, error) {
	cat := make(Catalog, len(data))
	for lang, val := range data {
		section, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected mapping, got %T", ErrInvalidStructure, lang, val)
		}
		messages := make(map[string]string)
		flatten("", section, messages)
		cat[strings.ToLower(lang)] = messages
	}
	return cat, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, val := range node {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := val.(type) {
		case map[string]any:
			flatten(key, v, out)
		case string:
			out[key] = v
		case nil:
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

func trimExt(ext string) string {
	return strings.TrimPrefix(ext, ".")
}
