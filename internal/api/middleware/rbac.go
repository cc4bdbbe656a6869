package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/storefront/gateway/internal/core/domain"
)

// RequireRole lets the request through when the session holds any of roles.
// It must run after RequireSession.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := CurrentSession(c)
			if s == nil {
				return domain.ErrNoSession
			}
			for _, r := range roles {
				if domain.HasRole(s, r) {
					return next(c)
				}
			}
			return domain.ErrForbidden
		}
	}
}
