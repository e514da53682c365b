package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// PropertiesParser implements Parser for Java-style .properties files:
// one "key=value" (or "key: value") pair per line, "#" and "!" comments,
// backslash line continuations, and \n, \t, \r, \\, \=, \:, \# escapes.
type PropertiesParser struct{}

// NewPropertiesParser creates a new PropertiesParser instance.
func NewPropertiesParser() *PropertiesParser {
	return &PropertiesParser{}
}

// Parse parses properties content and returns the key/value pairs.
func (p *PropertiesParser) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	result := make(map[string]string)
	lines := strings.Split(content, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimLeft(lines[i], " \t")
		line = strings.TrimSuffix(line, "\r")
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}

		// Trailing backslash joins the next line, with its leading
		// whitespace stripped.
		lineNo := i + 1
		for hasContinuation(line) && i+1 < len(lines) {
			i++
			next := strings.TrimLeft(strings.TrimSuffix(lines[i], "\r"), " \t")
			line = line[:len(line)-1] + next
		}

		key, value, err := splitProperty(line)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseProperties,
				fmt.Errorf("line %d: %w", lineNo, err))
		}
		result[key] = value
	}

	return result, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *PropertiesParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "properties")
}

// hasContinuation reports whether the line ends with an odd number of
// backslashes, meaning the final one escapes the line break.
func hasContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// splitProperty splits a logical line into key and value at the first
// unescaped '=' or ':' and unescapes both parts.
func splitProperty(line string) (string, string, error) {
	sep := -1
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++ // skip escaped char
		case '=', ':':
			sep = i
		}
		if sep >= 0 {
			break
		}
	}
	if sep < 0 {
		return "", "", fmt.Errorf("missing separator in %q", line)
	}

	key := unescapeProperty(strings.TrimSpace(line[:sep]))
	value := unescapeProperty(strings.TrimLeft(line[sep+1:], " \t"))
	if key == "" {
		return "", "", fmt.Errorf("empty key in %q", line)
	}
	return key, value, nil
}

func unescapeProperty(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
