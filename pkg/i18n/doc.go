// Package i18n provides locale resolution and translation lookup for
// server-rendered views.
//
// The package has two halves. The Translator side loads key/value bundles
// once at startup through a BundleAdapter and answers lookups for the rest
// of the process lifetime; bundles are immutable after loading, so a single
// Translator is safe to share across concurrent requests. Lookups fall back
// from the locale-specific bundle to a base bundle shared by all locales,
// and finally to the key itself, so rendering never fails on a missing
// translation.
//
// The Resolver side picks the active locale for an incoming request from,
// in priority order, a locale cookie, the Accept-Language header, and the
// first supported locale. Middleware runs the resolver once per request and
// stores the result in the request context, where GetLocale and
// LocaleSource retrieve it.
//
// # Usage
//
//	translator, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(bundleFS, "translations"))
//	if err != nil {
//		// fatal: no bundles
//	}
//
//	resolver, err := i18n.NewResolver(language.English, language.Finnish)
//	if err != nil {
//		// fatal: empty supported list
//	}
//
//	mux.Use(i18n.Middleware(resolver, "locale"))
//
//	// in a handler
//	label := translator.T(i18n.GetLocale(r.Context()), "yourName")
//
// Bundle files follow the naming convention "<name>_<locale>.<ext>" for
// locale-specific bundles and "<name>.<ext>" for the base bundle. Properties
// and YAML formats are supported out of the box; see Parser for adding more.
package i18n
