package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pulse_landing/config"
	"pulse_landing/middleware"
	"pulse_landing/services"
	"pulse_landing/services/i18n"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	require.NoError(t, i18n.Load())

	cfg := &config.Config{
		Environment:    "test",
		BrandName:      "Pulse",
		SessionTTL:     time.Hour,
		FormRateLimit:  100,
		AllowedOrigins: []string{"*"},
		HTMXEnabled:    true,
	}
	services.InitViewStateStore(cfg)
	return newServer(cfg)
}

// visitor replays cookies between requests the way a browser would
type visitor struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
	csrf    string
}

func newVisitor(t *testing.T, e *echo.Echo) *visitor {
	return &visitor{t: t, e: e, cookies: map[string]*http.Cookie{}}
}

func (v *visitor) do(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range v.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		v.cookies[cookie.Name] = cookie
	}
	return rec
}

func (v *visitor) open() *goquery.Document {
	v.t.Helper()
	rec := v.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(v.t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(v.t, err)
	v.csrf = doc.Find(`#subscribe input[name="_csrf"]`).AttrOr("value", "")
	require.NotEmpty(v.t, v.csrf)
	return doc
}

func (v *visitor) htmxPost(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	req.Header.Set(middleware.CSRFHeader, v.csrf)
	return v.do(req)
}

func submitLabel(t *testing.T, rec *httptest.ResponseRecorder) (string, bool) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	sel := doc.Find("#hero-submit")
	_, disabled := sel.Attr("disabled")
	return strings.TrimSpace(sel.Text()), disabled
}

func TestHealthRoute(t *testing.T) {
	e := testServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStaticAssets(t *testing.T) {
	e := testServer(t)
	for _, path := range []string{"/static/css/style.css", "/static/js/theme.js"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestLandingPageHeaders(t *testing.T) {
	e := testServer(t)
	v := newVisitor(t, e)
	rec := v.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "nonce-")
	assert.Contains(t, v.cookies, middleware.SessionCookieName)
	assert.Contains(t, v.cookies, "_csrf")
}

func TestSubscribeFlow(t *testing.T) {
	e := testServer(t)
	v := newVisitor(t, e)
	doc := v.open()

	_, disabled := doc.Find("#hero-submit").Attr("disabled")
	assert.True(t, disabled)

	label, disabled := submitLabel(t, v.htmxPost("/email", url.Values{"email": {"x@y.com"}}))
	assert.Equal(t, "Get updates", label)
	assert.False(t, disabled)

	label, disabled = submitLabel(t, v.htmxPost("/subscribe", url.Values{}))
	assert.Equal(t, "Subscribed", label)
	assert.True(t, disabled)

	// a reload shows the same state for the same visitor
	doc = v.open()
	assert.Equal(t, "Subscribed", strings.TrimSpace(doc.Find("#cta-submit").Text()))
	assert.Equal(t, "x@y.com", doc.Find("#email").AttrOr("value", ""))

	// a different visitor starts fresh
	other := newVisitor(t, e).open()
	assert.Equal(t, "Get updates", strings.TrimSpace(other.Find("#hero-submit").Text()))
	assert.Equal(t, "", other.Find("#email").AttrOr("value", ""))
}

func TestPlanSelectionFlow(t *testing.T) {
	e := testServer(t)
	v := newVisitor(t, e)
	v.open()

	rec := v.htmxPost("/plan/pro", url.Values{})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = v.htmxPost("/plan/team", url.Values{})
	require.Equal(t, http.StatusOK, rec.Code)

	doc := v.open()
	selected := doc.Find(`.plan-card[data-selected="true"]`)
	assert.Equal(t, 1, selected.Length())
	assert.Equal(t, "team", selected.AttrOr("data-plan", ""))

	rec = v.htmxPost("/plan/enterprise", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormPostsRequireCSRFToken(t *testing.T) {
	e := testServer(t)
	v := newVisitor(t, e)
	v.open()
	v.csrf = "forged"

	rec := v.htmxPost("/subscribe", url.Values{"email": {"x@y.com"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPlainFormPostRedirects(t *testing.T) {
	e := testServer(t)
	v := newVisitor(t, e)
	v.open()

	form := url.Values{"email": {"x@y.com"}, middleware.CSRFFormField: {v.csrf}}
	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := v.do(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#subscribe", rec.Header().Get(echo.HeaderLocation))

	doc := v.open()
	assert.Equal(t, "Subscribed", strings.TrimSpace(doc.Find("#hero-submit").Text()))
}

func TestCookielessVisitsDoNotStoreState(t *testing.T) {
	e := testServer(t)
	store, ok := services.ViewStates.(*services.MemoryViewStateStore)
	require.True(t, ok)

	for i := 0; i < 200; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 0, store.Len())

	v := newVisitor(t, e)
	v.open()
	v.htmxPost("/email", url.Values{"email": {"x@y.com"}})
	assert.Equal(t, 1, store.Len())
}

