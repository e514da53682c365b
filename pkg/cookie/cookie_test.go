package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichailMastanov/localization-example/pkg/cookie"
)

func TestManagerSet(t *testing.T) {
	manager := cookie.New()

	rec := httptest.NewRecorder()
	require.NoError(t, manager.Set(rec, "locale", "fi"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "locale", c.Name)
	assert.Equal(t, "fi", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestManagerSetPerCallOverride(t *testing.T) {
	manager := cookie.New(cookie.WithMaxAge(60))

	rec := httptest.NewRecorder()
	require.NoError(t, manager.Set(rec, "locale", "en", cookie.WithMaxAge(3600)))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestManagerSetInvalidName(t *testing.T) {
	manager := cookie.New()

	rec := httptest.NewRecorder()
	err := manager.Set(rec, "bad name;", "v")
	require.Error(t, err)
	assert.Empty(t, rec.Result().Cookies())
}

func TestManagerGet(t *testing.T) {
	manager := cookie.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "locale", Value: "fi"})

	value, err := manager.Get(req, "locale")
	require.NoError(t, err)
	assert.Equal(t, "fi", value)

	_, err = manager.Get(req, "missing")
	require.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManagerDelete(t *testing.T) {
	manager := cookie.New()

	rec := httptest.NewRecorder()
	manager.Delete(rec, "locale")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "locale", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestNewFromConfig(t *testing.T) {
	manager := cookie.NewFromConfig(cookie.Config{
		Path:     "/app",
		MaxAge:   86400,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	rec := httptest.NewRecorder()
	require.NoError(t, manager.Set(rec, "locale", "en"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, 86400, c.MaxAge)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}
