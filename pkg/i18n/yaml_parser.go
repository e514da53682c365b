package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements Parser for flat YAML bundle files.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns the key/value pairs.
// Values must be scalars; nested structures are rejected so that bundle
// files stay interchangeable with the properties format.
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]string, len(data))
	for key, val := range data {
		switch v := val.(type) {
		case string:
			result[key] = v
		case nil:
			result[key] = ""
		case bool, int, int64, float64:
			result[key] = fmt.Sprint(v)
		default:
			return nil, errors.Join(ErrFailedToParseYAML,
				fmt.Errorf("key %q: expected scalar value, got %T", key, val))
		}
	}
	return result, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
