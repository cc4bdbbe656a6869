package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates against the backend and opens a session for the tab.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Tab-ID  header    string        false  "Tab identity"
// @Param        body      body      loginRequest  true   "Login credentials"
// @Success      200       {object}  loginResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      409       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Failure      502       {object}  errorResponse
// @Router       /api/authenticate [post]
func (h *AuthHandler) Login(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), tab, domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		UserID:   res.Session.UserID,
		Roles:    res.Session.Roles,
		Redirect: &res.Navigation,
	})
}

// SignOut clears the tab's session.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Param        X-Tab-ID  header    string  false  "Tab identity"
// @Success      200       {object}  signOutResponse
// @Router       /api/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	nav, err := h.authService.SignOut(c.Request().Context(), tab)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signOutResponse{Redirect: nav})
}

// Session reports whether the tab is logged in and with which roles.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Param        X-Tab-ID  header    string  false  "Tab identity"
// @Success      200       {object}  sessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	s, err := h.authService.Current(c.Request().Context(), tab)
	if errors.Is(err, domain.ErrNoSession) {
		return c.JSON(http.StatusOK, sessionResponse{LoggedIn: false, Roles: []string{}})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{LoggedIn: true, UserID: s.UserID, Roles: s.Roles})
}
