package middleware

import (
	"net/http"

	"pulse_landing/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the visitor session cookie
	SessionCookieName = "pulse_session"
	// ContextKeySessionID is the context key for the visitor session id
	ContextKeySessionID = "session_id"
)

// ViewSession makes sure every request carries a visitor session id.
// Missing or malformed cookies get a fresh id, which also resets the page state.
func ViewSession(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = id.String()
				}
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
				setSessionCookie(c, sessionID, cfg.IsProduction())
			}

			c.Set(ContextKeySessionID, sessionID)
			return next(c)
		}
	}
}

// GetSessionID returns the visitor session id set by ViewSession
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(ContextKeySessionID).(string); ok {
		return id
	}
	return ""
}

// setSessionCookie issues a browser-session cookie; closing the browser remounts the page
func setSessionCookie(c echo.Context, sessionID string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
