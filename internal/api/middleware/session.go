package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

// RequireSession rejects requests from tabs without a session and stores the
// session on the context for RequireRole and the handlers.
func RequireSession(sessions ports.SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := sessions.Current(c.Request().Context(), TabID(c))
			if err != nil {
				return err
			}
			c.Set(ctxKeySession, s)
			return next(c)
		}
	}
}

// CurrentSession returns the session set by RequireSession.
func CurrentSession(c echo.Context) *domain.Session {
	s, _ := c.Get(ctxKeySession).(*domain.Session)
	return s
}
