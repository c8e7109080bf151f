package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse_landing/config"
	"pulse_landing/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale(t *testing.T) {
	require.NoError(t, i18n.Load())

	e := echo.New()
	cfg := &config.Config{Environment: "development"}

	run := func(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		handler := Locale(cfg)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return c, rec
	}

	t.Run("PriorityQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
		c, rec := run(t, req)

		assert.Equal(t, "es", c.Get("locale"))
		found := false
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == LangCookieName {
				assert.Equal(t, "es", cookie.Value)
				assert.False(t, cookie.Secure)
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("UnsupportedQueryParam", func(t *testing.T) {
		c, _ := run(t, httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("PriorityCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "es"})
		req.Header.Set("Accept-Language", "en-US")
		c, _ := run(t, req)
		assert.Equal(t, "es", c.Get("locale"))
	})

	t.Run("PriorityHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr-FR,es;q=0.9")
		c, _ := run(t, req)
		assert.Equal(t, "es", c.Get("locale"))
	})

	t.Run("DefaultLanguage", func(t *testing.T) {
		c, _ := run(t, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("RequestContext", func(t *testing.T) {
		c, _ := run(t, httptest.NewRequest(http.MethodGet, "/?lang=es", nil))
		assert.Equal(t, "es", i18n.GetLocale(c.Request().Context()))
	})
}

func TestFromAcceptLanguage(t *testing.T) {
	require.NoError(t, i18n.Load())

	assert.Equal(t, "es", fromAcceptLanguage("es-ES,es;q=0.9"))
	assert.Equal(t, "en", fromAcceptLanguage("de-DE, en;q=0.5"))
	assert.Equal(t, "en", fromAcceptLanguage("de"))
	assert.Equal(t, "en", fromAcceptLanguage(""))
}

func TestGetLocale(t *testing.T) {
	e := echo.New()

	c := e.NewContext(nil, nil)
	c.Set("locale", "es")
	assert.Equal(t, "es", GetLocale(c))

	assert.Equal(t, "en", GetLocale(e.NewContext(nil, nil)))
}
