// Package web wires the HTTP surface of the localization demo: the page,
// the locale cookie endpoints and the greet endpoint.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/MichailMastanov/localization-example/internal/greeter"
	"github.com/MichailMastanov/localization-example/pkg/cookie"
	"github.com/MichailMastanov/localization-example/pkg/handler"
	"github.com/MichailMastanov/localization-example/pkg/i18n"
	"github.com/MichailMastanov/localization-example/pkg/requestid"
)

// Handler serves the demo page and its locale and greet endpoints.
type Handler struct {
	cookieName string
	translator *i18n.Translator
	resolver   *i18n.Resolver
	cookies    *cookie.Manager
	greeter    *greeter.Service
	log        *slog.Logger
}

// New creates the web handler.
func New(
	cfg Config,
	translator *i18n.Translator,
	resolver *i18n.Resolver,
	cookies *cookie.Manager,
	greetSvc *greeter.Service,
	log *slog.Logger,
) *Handler {
	return &Handler{
		cookieName: cfg.CookieName,
		translator: translator,
		resolver:   resolver,
		cookies:    cookies,
		greeter:    greetSvc,
		log:        log,
	}
}

// Router builds the chi router with the module's middleware and routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(h.resolver, h.cookieName))

	wrap := func(fn handler.Func) http.HandlerFunc {
		return handler.Wrap(fn, handler.WithLogger(h.log))
	}

	r.Get("/", wrap(h.home))
	r.Post("/locale", wrap(h.changeLocale))
	r.Post("/locale/clear", wrap(h.clearLocale))
	r.Post("/greet", wrap(h.greet))

	return r
}
