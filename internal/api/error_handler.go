package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var (
		authErr   *domain.AuthError
		decodeErr *domain.DecodeError
	)
	switch {
	case errors.As(err, &authErr) && authErr.StatusCode == 0:
		log.Warn().Err(err).Str("path", c.Path()).Msg("authentication service unreachable")
		return http.StatusBadGateway, "authentication service unavailable"
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.As(err, &decodeErr):
		log.Warn().Err(err).Str("path", c.Path()).Msg("malformed token from backend")
		return http.StatusBadGateway, "authentication service returned an unreadable token"
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "not logged in"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrLoginInProgress):
		return http.StatusConflict, "a login is already in progress for this tab"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
