package session

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "onboardo/internal/errors"
)

const contextKey = "session"

// Load resolves the session cookie once per request and stashes the typed
// session in the echo context. Handlers read it via FromContext instead of
// consulting any ambient global.
func Load(store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, apperrors.ErrSessionNotFound) {
					// Stale cookie, treat the caller as anonymous.
					return next(c)
				}
				return err
			}
			c.Set(contextKey, sess)
			return next(c)
		}
	}
}

// FromContext returns the current session, or nil for an anonymous caller.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(contextKey).(*Session)
	return sess
}

// RequireAuth redirects anonymous callers to the login form.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if FromContext(c) == nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireGuest redirects already-authenticated callers to the home page.
func RequireGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if FromContext(c) != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}
