package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TabCookie holds the tab identity for browser clients.
	TabCookie = "sf_tab"
	// TabHeader carries the tab identity for clients that manage it themselves.
	// It takes precedence over the cookie.
	TabHeader = "X-Tab-ID"

	// ContextKeyTab is the echo context key holding the tab identity.
	ContextKeyTab = "tab_id"
	ctxKeySession = "session"
)

// Tab resolves the caller's tab identity from TabHeader or TabCookie and
// stores it on the context. Missing or malformed identities are replaced with
// a fresh UUID that is returned in both the header and the cookie.
func Tab(secureCookie bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := presentedTab(c)
			if !ok {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     TabCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Response().Header().Set(TabHeader, id)
			c.Set(ContextKeyTab, id)
			return next(c)
		}
	}
}

func presentedTab(c echo.Context) (string, bool) {
	if h := c.Request().Header.Get(TabHeader); h != "" {
		if _, err := uuid.Parse(h); err == nil {
			return h, true
		}
	}
	if ck, err := c.Cookie(TabCookie); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			return ck.Value, true
		}
	}
	return "", false
}

// TabID returns the tab identity set by Tab, or "" outside of it.
func TabID(c echo.Context) string {
	id, _ := c.Get(ContextKeyTab).(string)
	return id
}
