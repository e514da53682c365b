package handler

import (
	"log/slog"
	"net/http"
)

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code, and write the body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Func is an HTTP handler that returns a Response instead of writing to w
// directly. Writing to w before returning is allowed for side effects such
// as Set-Cookie headers.
type Func func(w http.ResponseWriter, r *http.Request) Response

// ErrorHandler handles rendering errors.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// WithErrorHandler sets a custom error handler for failed renders.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(logger *slog.Logger) WrapOption {
	return func(c *wrapConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Wrap turns a Func into an http.HandlerFunc. A nil Response ends the
// request with 204 No Content; a failed render goes to the error handler,
// which defaults to logging and a 500.
func Wrap(fn Func, opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			cfg.logger.ErrorContext(r.Context(), "response rendering failed",
				slog.String("path", r.URL.Path), slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(w, r)
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}
