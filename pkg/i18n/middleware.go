package i18n

import "net/http"

// Middleware resolves the active locale once per request and stores it,
// together with its source, in the request context. The cookie named
// cookieName carries the stored preference; the Accept-Language header and
// the resolver default cover the remaining cases.
func Middleware(resolver *Resolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cookieValue string
			if cookieName != "" {
				if c, err := r.Cookie(cookieName); err == nil {
					cookieValue = c.Value
				}
			}

			tag, src := resolver.Resolve(cookieValue, r.Header.Get("Accept-Language"))

			ctx := SetLocale(r.Context(), tag.String())
			ctx = SetLocaleSource(ctx, src)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
