package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/gateway/internal/api/middleware"
	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, tabID string, creds domain.Credentials) (*ports.LoginResult, error)
	signOutFn func(ctx context.Context, tabID string) (*domain.Navigation, error)
	currentFn func(ctx context.Context, tabID string) (*domain.Session, error)
}

func (s *stubAuthService) Login(ctx context.Context, tabID string, creds domain.Credentials) (*ports.LoginResult, error) {
	return s.loginFn(ctx, tabID, creds)
}

func (s *stubAuthService) SignOut(ctx context.Context, tabID string) (*domain.Navigation, error) {
	return s.signOutFn(ctx, tabID)
}

func (s *stubAuthService) Current(ctx context.Context, tabID string) (*domain.Session, error) {
	return s.currentFn(ctx, tabID)
}

// newTabContext builds an echo context as if the Tab middleware had run.
func newTabContext(e *echo.Echo, req *http.Request, tab string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyTab, tab)
	return c, rec
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, tabID string, creds domain.Credentials) (*ports.LoginResult, error) {
			if tabID != "tab-1" || creds.Email != "a@x.io" || creds.Password != "pw" {
				t.Fatalf("unexpected args: %s %+v", tabID, creds)
			}
			s := domain.Session{UserID: "42", Roles: []string{domain.RoleAdmin}}
			return &ports.LoginResult{Session: s, Navigation: domain.LandingRoute(&s)}, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"email":"a@x.io","password":"pw"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTabContext(e, req, "tab-1")

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["userId"] != "42" {
		t.Fatalf("unexpected user id: %v", resp["userId"])
	}
	redirect, ok := resp["redirect"].(map[string]any)
	if !ok || redirect["path"] != domain.RouteAdminProducts {
		t.Fatalf("unexpected redirect: %v", resp["redirect"])
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, domain.Credentials) (*ports.LoginResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"email":"a@x.io"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newTabContext(e, req, "tab-1")

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthHandler_Login_PropagatesAuthError(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, domain.Credentials) (*ports.LoginResult, error) {
			return nil, &domain.AuthError{StatusCode: http.StatusUnauthorized}
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"email":"a@x.io","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newTabContext(e, req, "tab-1")

	var ae *domain.AuthError
	if err := h.Login(c); !errors.As(err, &ae) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestAuthHandler_Session_LoggedOut(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		currentFn: func(context.Context, string) (*domain.Session, error) { return nil, domain.ErrNoSession },
	}
	h := NewAuthHandler(stub)

	c, rec := newTabContext(e, httptest.NewRequest(http.MethodGet, "/api/session", nil), "tab-1")
	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.LoggedIn || resp.UserID != "" {
		t.Fatalf("expected logged out, got %+v", resp)
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	e := newTestEcho()
	var signedOut string
	stub := &stubAuthService{
		signOutFn: func(_ context.Context, tabID string) (*domain.Navigation, error) {
			signedOut = tabID
			return &domain.Navigation{Path: domain.RouteLogin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTabContext(e, httptest.NewRequest(http.MethodPost, "/api/signout", nil), "tab-9")
	if err := h.SignOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if signedOut != "tab-9" {
		t.Fatalf("wrong tab signed out: %q", signedOut)
	}
	if !strings.Contains(rec.Body.String(), `"path":"/login"`) {
		t.Fatalf("expected login redirect, got %s", rec.Body.String())
	}
}

func TestAuthHandler_NoTab(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/signout", nil), httptest.NewRecorder())
	var he *echo.HTTPError
	if err := h.SignOut(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
