package web

import (
	"net/http"

	"github.com/MichailMastanov/localization-example/internal/web/templates"
	"github.com/MichailMastanov/localization-example/pkg/handler"
	"github.com/MichailMastanov/localization-example/pkg/i18n"
	"github.com/MichailMastanov/localization-example/pkg/logger"
)

// home renders the full demo page in the locale resolved by the middleware.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) handler.Response {
	locale := i18n.GetLocale(r.Context())
	return handler.Templ(templates.Page(h.pageData(r, locale, "")))
}

// changeLocale stores the selected locale in the cookie and re-renders the
// localized parts of the page in place. Unknown locales are ignored.
func (h *Handler) changeLocale(w http.ResponseWriter, r *http.Request) handler.Response {
	locale, ok := h.supportedLocale(r.FormValue("locale"))
	if !ok {
		h.log.WarnContext(r.Context(), "ignoring unsupported locale",
			logger.Locale(r.FormValue("locale")))
		if handler.IsDataStar(r) {
			return nil
		}
		return handler.Redirect("/", http.StatusSeeOther)
	}

	if err := h.cookies.Set(w, h.cookieName, locale); err != nil {
		h.log.ErrorContext(r.Context(), "failed to set locale cookie", logger.Error(err))
	}

	if !handler.IsDataStar(r) {
		return handler.Redirect("/", http.StatusSeeOther)
	}

	// The request context still carries the locale resolved on the way in,
	// so the labels are built from the newly selected one.
	d := h.pageData(r, locale, "")
	d.HasCookie = true
	d.CookieInfo = h.translator.T(locale, "cookieFound", locale)

	return handler.TemplMulti(
		handler.Patch(templates.TitleTag(d), handler.WithTarget("title")),
		handler.Patch(templates.Main(d), handler.WithTarget("#page")),
		handler.Patch(templates.Toast(h.translator.T(locale, "localeSaved")), handler.WithTarget("#toast")),
	)
}

// clearLocale deletes the locale cookie and forces a full page load, which
// re-resolves the locale from the Accept-Language header.
func (h *Handler) clearLocale(w http.ResponseWriter, r *http.Request) handler.Response {
	h.cookies.Delete(w, h.cookieName)
	return handler.Redirect("/", http.StatusSeeOther)
}

// greet responds with a localized greeting toast.
func (h *Handler) greet(w http.ResponseWriter, r *http.Request) handler.Response {
	msg := h.greeter.Greet(r.Context(), r.FormValue("name"))

	locale := i18n.GetLocale(r.Context())
	return handler.TemplPartial(
		templates.Toast(msg),
		templates.Page(h.pageData(r, locale, msg)),
		handler.WithTarget("#toast"),
	)
}

// supportedLocale canonicalizes the raw value and reports whether it is one
// of the configured locales.
func (h *Handler) supportedLocale(raw string) (string, bool) {
	locale := i18n.CanonicalLocale(raw)
	for _, tag := range h.resolver.Supported() {
		if i18n.CanonicalLocale(tag.String()) == locale {
			return locale, true
		}
	}
	return "", false
}

// pageData assembles the labels and state for the page in the given locale.
func (h *Handler) pageData(r *http.Request, locale, toast string) templates.PageData {
	languages := make([]templates.Language, 0, len(h.resolver.Supported()))
	for _, tag := range h.resolver.Supported() {
		code := i18n.CanonicalLocale(tag.String())
		languages = append(languages, templates.Language{
			Code: code,
			// Display names live in the base bundle only, so every locale
			// shows each language in that language's own name.
			Name: h.translator.T(locale, code),
		})
	}

	d := templates.PageData{
		Locale:         locale,
		Title:          h.translator.T(locale, "appTitle"),
		SelectLanguage: h.translator.T(locale, "selectLanguage"),
		YourName:       h.translator.T(locale, "yourName"),
		HelloButton:    h.translator.T(locale, "helloButton"),
		ClearCookie:    h.translator.T(locale, "clearCookie"),
		Toast:          toast,
		Languages:      languages,
	}

	if value, err := h.cookies.Get(r, h.cookieName); err == nil {
		d.HasCookie = true
		d.CookieInfo = h.translator.T(locale, "cookieFound", value)
	} else {
		d.CookieInfo = h.translator.T(locale, "cookieMissing")
	}

	return d
}
