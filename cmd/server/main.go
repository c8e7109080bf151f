package main

import (
	"log"
	"net/http"
	"time"

	"pulse_landing/config"
	"pulse_landing/handlers"
	"pulse_landing/middleware"
	"pulse_landing/services"
	"pulse_landing/services/i18n"
	"pulse_landing/static"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	services.InitViewStateStore(cfg)
	middleware.InitAssetVersions(static.FS, static.CSSPath, static.ThemeJSPath)

	e := newServer(cfg)

	// Drop idle visitor state every hour
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			services.ViewStates.CleanupExpired()
		}
	}()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.StaticFS("/static", static.FS)
	e.GET("/health", handlers.HealthHandler)

	page := e.Group("")
	page.Use(middleware.CSPNonce())
	page.Use(middleware.Locale(cfg))
	page.Use(middleware.ViewSession(cfg))
	page.Use(middleware.CSRF(cfg))
	{
		page.GET("/", handlers.LandingHandler)

		forms := page.Group("")
		forms.Use(middleware.NewFormRateLimiter(cfg).Middleware())
		{
			forms.POST("/email", handlers.EmailChangeHandler)
			forms.POST("/subscribe", handlers.SubscribeHandler)
			forms.POST("/plan/:id", handlers.SelectPlanHandler)
		}
	}

	return e
}
