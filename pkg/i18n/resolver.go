package i18n

import (
	"golang.org/x/text/language"
)

// Source identifies where a resolved locale came from.
type Source string

const (
	// SourceCookie means the locale came from a stored cookie preference.
	SourceCookie Source = "cookie"
	// SourceHeader means the locale was negotiated from Accept-Language.
	SourceHeader Source = "header"
	// SourceDefault means neither signal matched and the first supported
	// locale was used.
	SourceDefault Source = "default"
)

// Resolver picks the active locale for a request from a cookie value, an
// Accept-Language header, and an ordered list of supported locales. The
// first supported locale acts as the default.
type Resolver struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewResolver builds a Resolver for the given supported locales.
// An empty list is a configuration error: resolution must always be able to
// return a locale.
func NewResolver(supported ...language.Tag) (*Resolver, error) {
	if len(supported) == 0 {
		return nil, ErrNoSupportedLocales
	}
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return &Resolver{
		supported: tags,
		matcher:   language.NewMatcher(tags),
	}, nil
}

// Supported returns the supported locales in configuration order.
func (r *Resolver) Supported() []language.Tag {
	tags := make([]language.Tag, len(r.supported))
	copy(tags, r.supported)
	return tags
}

// Default returns the locale used when no signal matches.
func (r *Resolver) Default() language.Tag {
	return r.supported[0]
}

// Resolve determines the active locale. Priority order:
//
//  1. cookieValue, if it parses to a tag that exactly matches a supported
//     locale. Malformed or unsupported values are ignored.
//  2. acceptLanguage, negotiated with standard matching, so a region
//     variant such as "en-GB" selects a supported "en".
//  3. The first supported locale.
//
// Resolve never fails; the returned Source reports which signal won.
func (r *Resolver) Resolve(cookieValue, acceptLanguage string) (language.Tag, Source) {
	if tag, ok := r.matchCookie(cookieValue); ok {
		return tag, SourceCookie
	}

	if acceptLanguage != "" {
		if prefs, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			if _, idx, conf := r.matcher.Match(prefs...); conf > language.No {
				return r.supported[idx], SourceHeader
			}
		}
	}

	return r.supported[0], SourceDefault
}

// matchCookie applies the exact-match policy for stored preferences: the
// cookie tag must equal a supported tag, so "fi-FI" does not select "fi".
func (r *Resolver) matchCookie(value string) (language.Tag, bool) {
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	for _, s := range r.supported {
		if tag == s {
			return s, true
		}
	}
	return language.Und, false
}
