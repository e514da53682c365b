package web

// Config holds the web module settings, loaded from the environment.
type Config struct {
	CookieName string   `env:"LOCALE_COOKIE_NAME" envDefault:"locale"`
	Locales    []string `env:"SUPPORTED_LOCALES" envSeparator:"," envDefault:"en,fi,de"`
}
