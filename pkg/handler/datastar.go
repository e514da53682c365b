package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Datastar detection constants.
const (
	// datastarAcceptHeader is the Accept value the datastar client sends.
	datastarAcceptHeader = "text/event-stream"
	// datastarQueryParam carries datastar signals on GET requests.
	datastarQueryParam = "datastar"
)

// Patch mode aliases for convenience.
const (
	PatchOuter   = datastar.ElementPatchModeOuter   // Morphs element (default)
	PatchInner   = datastar.ElementPatchModeInner   // Replace inner HTML
	PatchReplace = datastar.ElementPatchModeReplace // Replace entire element
	PatchRemove  = datastar.ElementPatchModeRemove  // Remove element
	PatchAppend  = datastar.ElementPatchModeAppend  // Append inside element
	PatchPrepend = datastar.ElementPatchModePrepend // Prepend inside element
)

// IsDataStar reports whether the request came from the datastar client and
// therefore expects SSE patches instead of a full HTML document.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), datastarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(datastarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// NewSSE creates a Server-Sent Event generator for datastar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
