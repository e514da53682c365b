package i18n

import "context"

type localeContextKey struct{}

type sourceContextKey struct{}

// SetLocale stores the locale code in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, CanonicalLocale(locale))
}

// GetLocale returns the locale stored in the context, or DefaultLocale
// when none is set.
func GetLocale(ctx context.Context) string {
	if locale, ok := contextLocale(ctx); ok {
		return locale
	}
	return DefaultLocale
}

// contextLocale returns the stored locale and whether one was set.
func contextLocale(ctx context.Context) (string, bool) {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale, locale != ""
}

// SetLocaleSource stores which signal produced the active locale.
func SetLocaleSource(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, sourceContextKey{}, src)
}

// LocaleSource returns the source of the active locale, or SourceDefault
// when none is recorded.
func LocaleSource(ctx context.Context) Source {
	src, _ := ctx.Value(sourceContextKey{}).(Source)
	if src == "" {
		return SourceDefault
	}
	return src
}
