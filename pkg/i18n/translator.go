package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultLocale is used when no locale can be determined for a lookup.
const DefaultLocale = "en"

// Catalog is the in-memory form of the loaded bundles: one key→template map
// per locale plus a base map consulted when a locale-specific key is missing.
type Catalog struct {
	Base    map[string]string
	Locales map[string]map[string]string
}

// Translator answers translation lookups against an immutable Catalog.
// It is loaded once via NewTranslator and is safe for concurrent use
// without locking because the catalog is never mutated afterwards.
type Translator struct {
	catalog       Catalog
	defaultLocale string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads bundles from the adapter and returns a ready Translator.
// An adapter that yields no translations at all is a configuration error.
func NewTranslator(ctx context.Context, adapter BundleAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLocale: DefaultLocale,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalog, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	normalized, err := normalizeCatalog(catalog)
	if err != nil {
		return nil, err
	}
	t.catalog = normalized

	t.logger.InfoContext(ctx, "translations loaded",
		slog.Any("locales", t.SupportedLocales()),
		slog.Int("base_keys", len(t.catalog.Base)))
	return t, nil
}

// normalizeCatalog canonicalizes locale codes and rejects unusable catalogs.
func normalizeCatalog(c Catalog) (Catalog, error) {
	if len(c.Base) == 0 && len(c.Locales) == 0 {
		return Catalog{}, ErrNoTranslations
	}

	out := Catalog{
		Base:    make(map[string]string, len(c.Base)),
		Locales: make(map[string]map[string]string, len(c.Locales)),
	}
	for k, v := range c.Base {
		out.Base[k] = v
	}
	for locale, msgs := range c.Locales {
		canon := CanonicalLocale(locale)
		if canon == "" {
			return Catalog{}, ErrEmptyLocale
		}
		if msgs == nil {
			return Catalog{}, fmt.Errorf("nil bundle for locale %q", locale)
		}
		if out.Locales[canon] == nil {
			out.Locales[canon] = make(map[string]string, len(msgs))
		}
		for k, v := range msgs {
			out.Locales[canon][k] = v
		}
	}
	return out, nil
}

// CanonicalLocale normalizes a locale code for catalog lookups:
// lowercase, with underscores converted to hyphens.
func CanonicalLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// SupportedLocales returns the locale codes with a bundle, sorted.
func (t *Translator) SupportedLocales() []string {
	locales := make([]string, 0, len(t.catalog.Locales))
	for locale := range t.catalog.Locales {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Has reports whether a translation exists for the locale and key,
// counting the base bundle.
func (t *Translator) Has(locale, key string) bool {
	if msgs, ok := t.catalog.Locales[CanonicalLocale(locale)]; ok {
		if _, ok := msgs[key]; ok {
			return true
		}
	}
	_, ok := t.catalog.Base[key]
	return ok
}

// T translates key for the given locale. Lookup order is the locale bundle,
// then the base bundle, then the key itself as a visible fallback. Positional
// arguments replace {0}, {1}, … placeholders in the resolved template.
//
//	translator.T("en", "greeting", "John") // "Hello, John!" for "greeting=Hello, {0}!"
//
// T never fails: with fallback-to-key enabled (the default) a missing
// translation renders as the raw key, otherwise as an empty string.
func (t *Translator) T(locale, key string, args ...any) string {
	canon := CanonicalLocale(locale)
	if msgs, ok := t.catalog.Locales[canon]; ok {
		if tmpl, ok := msgs[key]; ok {
			return expand(tmpl, args)
		}
	}
	if tmpl, ok := t.catalog.Base[key]; ok {
		return expand(tmpl, args)
	}

	if t.logMissing {
		t.logger.Warn("translation not found", slog.String("locale", canon), slog.String("key", key))
	}
	if t.fallbackToKey {
		return expand(key, args)
	}
	return ""
}

// Tc translates key using the locale stored in the request context. A
// context without a locale falls back to the translator's default locale.
func (t *Translator) Tc(ctx context.Context, key string, args ...any) string {
	locale, ok := contextLocale(ctx)
	if !ok {
		locale = t.defaultLocale
	}
	return t.T(locale, key, args...)
}

// placeholderRegex matches positional placeholders in the form {0}, {1}, …
var placeholderRegex = regexp.MustCompile(`\{(\d+)\}`)

// expand substitutes positional arguments into a template. Placeholders
// without a corresponding argument are kept verbatim so a half-filled
// template stays visible instead of silently losing text.
func expand(tmpl string, args []any) string {
	if len(args) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		idx, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || idx < 0 || idx >= len(args) {
			return match
		}
		return fmt.Sprint(args[idx])
	})
}
