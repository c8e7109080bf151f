package handlers

import (
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"pulse_landing/config"
	"pulse_landing/middleware"
	"pulse_landing/services"
	"pulse_landing/services/i18n"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testYear = time.Date(2030, 7, 4, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
	Clock = services.FixedClock{T: testYear}
	os.Exit(m.Run())
}

func setupTestStore(t *testing.T) *services.MemoryViewStateStore {
	store := services.NewMemoryViewStateStore(time.Hour, services.SystemClock{})
	services.ViewStates = store
	return store
}

// setupEcho builds a context as the page middleware chain would leave it
func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{
		Environment: "test",
		BrandName:   "Pulse",
		HTMXEnabled: true,
	})
	c.Set(middleware.ContextKeySessionID, uuid.New().String())
	c.Set("csrf", "test-csrf-token")

	return e, c, rec
}

func withSession(c echo.Context, sessionID string) echo.Context {
	c.Set(middleware.ContextKeySessionID, sessionID)
	return c
}

func asHTMX(c echo.Context) echo.Context {
	c.Request().Header.Set("HX-Request", "true")
	return c
}

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}
