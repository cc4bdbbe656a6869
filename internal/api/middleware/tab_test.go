package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/storefront/gateway/internal/core/domain"
)

func runTab(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := Tab(false)(func(c echo.Context) error {
		seen = TabID(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return seen, rec
}

func TestTab_IssuesIdentity(t *testing.T) {
	id, rec := runTab(t, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected generated uuid, got %q", id)
	}
	if rec.Header().Get(TabHeader) != id {
		t.Fatalf("tab header not echoed")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != TabCookie || cookies[0].Value != id {
		t.Fatalf("expected tab cookie, got %v", cookies)
	}
}

func TestTab_HeaderWinsOverCookie(t *testing.T) {
	header, cookie := uuid.NewString(), uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TabHeader, header)
	req.AddCookie(&http.Cookie{Name: TabCookie, Value: cookie})

	id, rec := runTab(t, req)
	if id != header {
		t.Fatalf("expected header identity, got %q", id)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("known tab should not get a new cookie")
	}
}

func TestTab_ReplacesMalformedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TabCookie, Value: "not-a-uuid"})

	id, _ := runTab(t, req)
	if id == "not-a-uuid" {
		t.Fatal("malformed identity must be replaced")
	}
}

type stubReader struct {
	session *domain.Session
}

func (r stubReader) Current(context.Context, string) (*domain.Session, error) {
	if r.session == nil {
		return nil, domain.ErrNoSession
	}
	return r.session, nil
}

func TestRequireSession(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := RequireSession(stubReader{})(func(echo.Context) error { return nil })(c)
	if !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	want := &domain.Session{UserID: "9"}
	var got *domain.Session
	err = RequireSession(stubReader{session: want})(func(c echo.Context) error {
		got = CurrentSession(c)
		return nil
	})(c)
	if err != nil || got != want {
		t.Fatalf("session not propagated: %v %v", got, err)
	}
}
