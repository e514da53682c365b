package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

// Render redirects via SSE for datastar requests, which makes the browser
// perform a full page load of the target, and via a standard HTTP redirect
// otherwise.
func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.Redirect(rr.url)
	}

	http.Redirect(w, r, rr.url, rr.code)
	return nil
}

// Redirect creates a datastar-aware redirect response. The code applies to
// plain HTTP requests only.
func Redirect(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}
