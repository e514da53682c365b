package web_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/MichailMastanov/localization-example/internal/greeter"
	"github.com/MichailMastanov/localization-example/internal/web"
	"github.com/MichailMastanov/localization-example/pkg/cookie"
	"github.com/MichailMastanov/localization-example/pkg/i18n"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	adapter := i18n.NewFSAdapter(web.TranslationsFS(), "translations")

	translator, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)

	resolver, err := i18n.NewResolver(language.English, language.Finnish, language.German)
	require.NoError(t, err)

	h := web.New(
		web.Config{CookieName: "locale"},
		translator,
		resolver,
		cookie.New(),
		greeter.New(translator),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return h.Router()
}

func formRequest(target string, form url.Values, datastar bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if datastar {
		req.Header.Set("Accept", "text/event-stream")
	}
	return req
}

func TestHomeLocaleResolution(t *testing.T) {
	router := newRouter(t)

	cases := []struct {
		name           string
		cookie         string
		acceptLanguage string
		wantLang       string
		wantLabel      string
	}{
		{name: "default without hints", wantLang: "en", wantLabel: "Select language"},
		{name: "header match", acceptLanguage: "fi", wantLang: "fi", wantLabel: "Valitse kieli"},
		{name: "cookie beats header", cookie: "fi", acceptLanguage: "en", wantLang: "fi", wantLabel: "Valitse kieli"},
		{name: "unsupported header falls back", acceptLanguage: "fr", wantLang: "en", wantLabel: "Select language"},
		{name: "unsupported cookie ignored", cookie: "xx", acceptLanguage: "de", wantLang: "de", wantLabel: "Sprache wählen"},
		{name: "regional cookie is not exact", cookie: "fi-FI", acceptLanguage: "de", wantLang: "de", wantLabel: "Sprache wählen"},
		{name: "cookie case insensitive", cookie: "FI", wantLang: "fi", wantLabel: "Valitse kieli"},
		{name: "regional header matches base", acceptLanguage: "en-GB", wantLang: "en", wantLabel: "Select language"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "locale", Value: tc.cookie})
			}
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, `<html lang="`+tc.wantLang+`">`)
			assert.Contains(t, body, tc.wantLabel)
		})
	}
}

func TestHomeCookiePanel(t *testing.T) {
	router := newRouter(t)

	t.Run("without cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Contains(t, rec.Body.String(), "No language cookie set")
		assert.NotContains(t, rec.Body.String(), "Clear language cookie")
	})

	t.Run("with cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "locale", Value: "fi"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), "Kieli luettu evästeestä: fi")
		assert.Contains(t, rec.Body.String(), "Poista kielieväste")
	})
}

func TestChangeLocale(t *testing.T) {
	router := newRouter(t)

	t.Run("datastar patch", func(t *testing.T) {
		req := formRequest("/locale", url.Values{"locale": {"fi"}}, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "locale", cookies[0].Name)
		assert.Equal(t, "fi", cookies[0].Value)

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		body := rec.Body.String()
		assert.Contains(t, body, "Valitse kieli")
		assert.Contains(t, body, "Kielivalinta tallennettu")
		assert.Contains(t, body, "Kieli luettu evästeestä: fi")
	})

	t.Run("patch covers heading, title and language", func(t *testing.T) {
		req := formRequest("/locale", url.Values{"locale": {"fi"}}, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		// Every translated label must switch, not just the form controls:
		// the heading, the document title and the announced language too.
		body := rec.Body.String()
		assert.Contains(t, body, "<h1>Lokalisointidemo</h1>")
		assert.Contains(t, body, "<title>Lokalisointidemo</title>")
		assert.Contains(t, body, `<main id="page" lang="fi">`)
		assert.NotContains(t, body, "Localization Demo")
	})

	t.Run("plain form redirects", func(t *testing.T) {
		req := formRequest("/locale", url.Values{"locale": {"de"}}, false)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "de", cookies[0].Value)
	})

	t.Run("unsupported locale is ignored", func(t *testing.T) {
		req := formRequest("/locale", url.Values{"locale": {"xx"}}, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestClearLocale(t *testing.T) {
	router := newRouter(t)

	expiredLocaleCookie := func(t *testing.T, rec *httptest.ResponseRecorder) {
		t.Helper()
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "locale", cookies[0].Name)
		assert.Less(t, cookies[0].MaxAge, 0)
	}

	t.Run("plain form redirects", func(t *testing.T) {
		req := formRequest("/locale/clear", url.Values{}, false)
		req.AddCookie(&http.Cookie{Name: "locale", Value: "fi"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		expiredLocaleCookie(t, rec)
	})

	t.Run("datastar forces full reload", func(t *testing.T) {
		req := formRequest("/locale/clear", url.Values{}, true)
		req.AddCookie(&http.Cookie{Name: "locale", Value: "fi"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		// An SSE redirect makes the browser load / from scratch, which
		// re-resolves the locale with the cookie gone.
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		expiredLocaleCookie(t, rec)
	})
}

func TestGreet(t *testing.T) {
	router := newRouter(t)

	t.Run("named", func(t *testing.T) {
		req := formRequest("/greet", url.Values{"name": {"Maria"}}, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), "Hello, Maria!")
	})

	t.Run("blank name", func(t *testing.T) {
		req := formRequest("/greet", url.Values{"name": {"  "}}, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), "Hello there!")
	})

	t.Run("uses cookie locale", func(t *testing.T) {
		req := formRequest("/greet", url.Values{"name": {"Maria"}}, true)
		req.AddCookie(&http.Cookie{Name: "locale", Value: "fi"})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), "Hei, Maria!")
	})

	t.Run("plain request renders full page", func(t *testing.T) {
		req := formRequest("/greet", url.Values{"name": {"Maria"}}, false)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		body := rec.Body.String()
		assert.Contains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, "Hello, Maria!")
	})
}
