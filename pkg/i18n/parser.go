package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser turns the content of a single bundle file into a flat key→template
// map. Which locale the map belongs to is derived from the file name by the
// adapter, not by the parser.
type Parser interface {
	// Parse processes content and returns the key/value pairs it contains.
	Parse(ctx context.Context, content string) (map[string]string, error)

	// SupportsFileExtension reports whether the parser handles files with
	// the given extension. The extension may be passed with or without the
	// leading dot.
	SupportsFileExtension(ext string) bool
}

// parserFor picks the first parser supporting the file's extension.
func parserFor(parsers []Parser, filename string) Parser {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return nil
	}
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// localeFromFilename derives the bundle locale from a file name following
// the "<name>_<locale>.<ext>" convention, where the locale part may carry a
// region ("labels_pt_BR.properties" → "pt-br"). A name without a locale
// suffix ("labels.properties") identifies the base bundle and yields "".
func localeFromFilename(filename string) string {
	stem := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	idx := strings.Index(stem, "_")
	if idx < 0 || idx == len(stem)-1 {
		return ""
	}
	return CanonicalLocale(stem[idx+1:])
}
