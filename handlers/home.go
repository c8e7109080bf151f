package handlers

import (
	"log"
	"net/http"

	"pulse_landing/config"
	"pulse_landing/middleware"
	"pulse_landing/models"
	"pulse_landing/services"
	"pulse_landing/templates/pages"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Clock feeds the footer year
var Clock services.Clock = services.SystemClock{}

// LandingHandler renders the whole page for the visitor's current state
func LandingHandler(c echo.Context) error {
	state, err := services.ViewStates.Load(middleware.GetSessionID(c))
	if err != nil {
		log.Printf("Error loading view state: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load page")
	}

	return render(c, http.StatusOK, pages.Landing(c.Request().Context(), landingView(c, state)))
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func landingView(c echo.Context, state models.ViewState) pages.LandingView {
	view := pages.LandingView{
		State:     state,
		Brand:     "Pulse",
		CSRFToken: middleware.GetCSRFToken(c),
		HTMX:      true,
		Clock:     Clock,
	}
	if cfg, ok := c.Get("config").(*config.Config); ok {
		view.Brand = cfg.BrandName
		view.HTMX = cfg.HTMXEnabled
	}
	return view
}

func render(c echo.Context, status int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return node.Render(c.Response())
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
