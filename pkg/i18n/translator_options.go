package i18n

import "log/slog"

// Option configures a Translator instance.
type Option func(*Translator)

// WithDefaultLocale sets the locale assumed when a context carries none.
func WithDefaultLocale(locale string) Option {
	return func(t *Translator) {
		if locale != "" {
			t.defaultLocale = CanonicalLocale(locale)
		}
	}
}

// WithFallbackToKey controls whether a missing translation renders as the
// key itself. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger supplies a logger for load and missing-key reporting.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging enables a warning log per missing key.
// Default is false to avoid excessive logging.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.logMissing = log
	}
}
