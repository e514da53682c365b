package web

import "embed"

//go:embed translations
var translationsFS embed.FS

// TranslationsFS exposes the embedded translation bundles.
func TranslationsFS() embed.FS { return translationsFS }
