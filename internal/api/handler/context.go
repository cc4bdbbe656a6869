package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/gateway/internal/api/middleware"
)

// ctxTab returns the tab identity set by the Tab middleware.
func ctxTab(c echo.Context) (string, error) {
	tab := middleware.TabID(c)
	if tab == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing tab identity")
	}
	return tab, nil
}

// bindValid binds the request body into req and runs struct validation.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
