package i18n

import "errors"

var (
	// Translator construction
	ErrNilAdapter     = errors.New("bundle adapter is nil")
	ErrNoTranslations = errors.New("no translations loaded")
	ErrEmptyLocale    = errors.New("empty locale code in catalog")

	// Resolver construction
	ErrNoSupportedLocales = errors.New("supported locale list is empty")

	// Bundle loading
	ErrLoadingCancelled  = errors.New("loading translation bundles cancelled")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseFile = errors.New("failed to parse translation file")

	// Parsers
	ErrFailedToParseProperties = errors.New("failed to parse properties content")
	ErrFailedToParseYAML       = errors.New("failed to parse YAML content")
)
