package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// BundleAdapter defines how translation bundles are loaded.
type BundleAdapter interface {
	Load(ctx context.Context) (Catalog, error)
}

// MapAdapter serves a Catalog from memory. Intended for tests and for
// applications that build their bundles in code.
type MapAdapter struct {
	Base    map[string]string
	Locales map[string]map[string]string
}

// Load implements the BundleAdapter interface.
func (a *MapAdapter) Load(_ context.Context) (Catalog, error) {
	return Catalog{Base: a.Base, Locales: a.Locales}, nil
}

// FSAdapter loads every parsable bundle file from one directory of a
// filesystem, typically an embed.FS. File names determine the target locale
// (see localeFromFilename); files later in directory order win on key
// conflicts within the same locale.
type FSAdapter struct {
	fsys    fs.FS
	dir     string
	parsers []Parser
}

// NewFSAdapter creates an adapter over fsys rooted at dir. Without explicit
// parsers it understands properties and YAML files.
// Returns nil if fsys is nil or dir is empty.
func NewFSAdapter(fsys fs.FS, dir string, parsers ...Parser) *FSAdapter {
	if fsys == nil || dir == "" {
		return nil
	}
	if len(parsers) == 0 {
		parsers = []Parser{NewPropertiesParser(), NewYAMLParser()}
	}
	return &FSAdapter{fsys: fsys, dir: dir, parsers: parsers}
}

// Load implements the BundleAdapter interface. Files no parser understands
// are skipped; files that fail to read or parse abort the load, since a
// broken bundle at startup is a packaging error rather than a runtime
// condition to tolerate.
func (a *FSAdapter) Load(ctx context.Context) (Catalog, error) {
	if a == nil {
		return Catalog{}, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return Catalog{}, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return Catalog{}, errors.Join(ErrFailedToReadFile, err)
	}

	catalog := Catalog{
		Base:    make(map[string]string),
		Locales: make(map[string]map[string]string),
	}
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := parserFor(a.parsers, entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Catalog{}, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return Catalog{}, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", filePath, err))
		}
		msgs, err := parser.Parse(ctx, string(content))
		if err != nil {
			return Catalog{}, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}

		locale := localeFromFilename(entry.Name())
		if locale == "" {
			mergeBundle(catalog.Base, msgs)
		} else {
			if catalog.Locales[locale] == nil {
				catalog.Locales[locale] = make(map[string]string, len(msgs))
			}
			mergeBundle(catalog.Locales[locale], msgs)
		}
		loaded++
	}

	if loaded == 0 {
		return Catalog{}, fmt.Errorf("%w: no bundle files in %q", ErrNoTranslations, a.dir)
	}
	return catalog, nil
}

func mergeBundle(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
