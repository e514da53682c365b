// Package cookie provides a small cookie manager with configurable
// defaults.
//
// A Manager carries default attributes (path, domain, max age, Secure,
// HttpOnly, SameSite) applied to every cookie it writes; individual calls
// can override them with functional options. Defaults favour safe values:
// path "/", HttpOnly, SameSite=Lax.
//
//	manager := cookie.New(cookie.WithMaxAge(365 * 24 * 60 * 60))
//	_ = manager.Set(w, "locale", "fi")
//	value, err := manager.Get(r, "locale")
//	manager.Delete(w, "locale")
//
// Set and Delete are best-effort by nature: they only append Set-Cookie
// headers, and whether the client honours them is outside the server's
// control.
package cookie
