// Package handler provides a small Response abstraction for HTTP handlers
// that render templ components.
//
// A handler function returns a Response instead of writing to the
// ResponseWriter directly; Wrap renders it and routes rendering errors to a
// configurable error handler. Responses are datastar-aware: for requests
// coming from the datastar client they stream SSE element patches so parts
// of the page update in place, and for plain requests they fall back to
// whole-page HTML or ordinary redirects.
//
//	mux.Get("/", handler.Wrap(func(w http.ResponseWriter, r *http.Request) handler.Response {
//		return handler.Templ(templates.Page(state))
//	}))
//
//	// patch two fragments and show a toast in one response
//	return handler.TemplMulti(
//		handler.Patch(templates.NameField(labels), handler.WithTarget("#name-field")),
//		handler.Patch(templates.Toast(msg), handler.WithTarget("#toast")),
//	)
package handler
