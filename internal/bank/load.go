package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFormat marks raw input that does not decode into a valid bank.
var ErrInvalidFormat = errors.New("invalid bank format")

// Format selects the document syntax of a bank.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes and validates a bank. Every failure matches ErrInvalidFormat.
func Parse(data []byte, format Format) (*Bank, error) {
	var (
		raw []rawTheme
		err error
	)
	switch format {
	case FormatYAML:
		raw, err = parseYAML(data)
	case FormatJSON, "":
		raw, err = parseJSON(data)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	collector := &issueCollector{}
	themes := resolve(raw, collector)
	collector.checkThemeSet(themes)
	if err := collector.result(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return build(themes), nil
}

func parseJSON(data []byte) ([]rawTheme, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse json: top level must be an object of themes")
	}

	var themes []rawTheme
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		name, _ := token.(string)
		var questions []rawQuestion
		if err := decoder.Decode(&questions); err != nil {
			return nil, fmt.Errorf("parse json: theme %q: %w", name, err)
		}
		themes = append(themes, rawTheme{Name: name, Questions: questions})
	}
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return themes, nil
}

func parseYAML(data []byte) ([]rawTheme, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: document is empty")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse yaml: top level must be a mapping of themes")
	}

	themes := make([]rawTheme, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		var questions []rawQuestion
		if err := value.Decode(&questions); err != nil {
			return nil, fmt.Errorf("parse yaml: theme %q: %w", key.Value, err)
		}
		themes = append(themes, rawTheme{Name: key.Value, Questions: questions})
	}
	return themes, nil
}
