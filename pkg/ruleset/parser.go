package ruleset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a rule set document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForFile picks the format from a file extension.
func FormatForFile(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

type document struct {
	Messages map[string]string `yaml:"messages" json:"messages"`
	Fields   []fieldDocument   `yaml:"fields" json:"fields"`
}

type fieldDocument struct {
	Name  string   `yaml:"name" json:"name"`
	Label string   `yaml:"label" json:"label"`
	Rules []string `yaml:"rules" json:"rules"`
}

// Parse decodes a rule set document.
func Parse(content []byte, format Format) (*Set, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &doc)
	case FormatJSON:
		err = json.Unmarshal(content, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	return doc.toSet()
}

// LoadFile reads and parses a rule set file.
func LoadFile(path string) (*Set, error) {
	format, err := FormatForFile(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(content, format)
}

func (d document) toSet() (*Set, error) {
	set := &Set{Messages: d.Messages, Fields: make([]Field, 0, len(d.Fields))}
	for i, fd := range d.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("%w: field #%d", ErrMissingFieldName, i+1)
		}
		f := Field{Name: fd.Name, Label: fd.Label, Steps: make([]Step, 0, len(fd.Rules))}
		for _, raw := range fd.Rules {
			step, err := ParseStep(raw)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fd.Name, err)
			}
			f.Steps = append(f.Steps, step)
		}
		set.Fields = append(set.Fields, f)
	}
	return set, nil
}
