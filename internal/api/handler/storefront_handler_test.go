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
	"github.com/shopspring/decimal"

	"github.com/storefront/gateway/internal/api/middleware"
	"github.com/storefront/gateway/internal/core/domain"
)

type stubStorefront struct {
	page     *domain.PageView
	opened   string
	searched string
	selected string
	result   domain.QueryResult
}

func (s *stubStorefront) Page(context.Context, string) (*domain.PageView, error) {
	return s.page, nil
}

func (s *stubStorefront) Search(_ context.Context, _ string, term string) (*domain.PageView, error) {
	s.searched = term
	return s.page, nil
}

func (s *stubStorefront) SelectCategory(_ context.Context, _ string, name string) (*domain.Navigation, *domain.PageView, error) {
	s.selected = name
	if name == "" {
		return nil, s.page, nil
	}
	nav := domain.CategoryRoute(name)
	return &nav, s.page, nil
}

func (s *stubStorefront) OpenCategory(_ context.Context, _ string, name string) (*domain.PageView, error) {
	s.opened = name
	return s.page, nil
}

func (s *stubStorefront) Categories(context.Context, string) (domain.QueryResult, error) {
	return s.result, nil
}

func (s *stubStorefront) AdminProducts(context.Context, string) (domain.QueryResult, error) {
	return s.result, nil
}

func (s *stubStorefront) Reset(context.Context, string) error { return nil }

func samplePage() *domain.PageView {
	return &domain.PageView{
		Mode:   domain.ModeAll,
		Status: domain.StatusSuccess,
		Primary: []domain.Product{{
			ID: "1", Name: "Boot", UnitPrice: decimal.RequireFromString("49.9"), QuantityInStock: 2, ImageBytes: []byte("img"),
		}},
		Secondary:  []domain.Product{},
		Categories: []domain.Category{{ID: "1", CategoryName: "Shoes"}},
	}
}

func TestStorefrontHandler_Page(t *testing.T) {
	e := newTestEcho()
	h := NewStorefrontHandler(&stubStorefront{page: samplePage()})

	c, rec := newTabContext(e, httptest.NewRequest(http.MethodGet, "/api/home", nil), "tab-1")
	if err := h.Page(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp pageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Primary) != 1 || resp.Primary[0].UnitPrice != "49.90" {
		t.Fatalf("unexpected primary: %+v", resp.Primary)
	}
	if resp.Primary[0].Image != "aW1n" {
		t.Fatalf("image should be base64, got %q", resp.Primary[0].Image)
	}
	if resp.Secondary == nil || len(resp.Categories) != 1 {
		t.Fatalf("unexpected regions: %+v", resp)
	}
}

func TestStorefrontHandler_Search(t *testing.T) {
	e := newTestEcho()
	stub := &stubStorefront{page: samplePage()}
	h := NewStorefrontHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"term":"boot"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTabContext(e, req, "tab-1")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.searched != "boot" || rec.Code != http.StatusOK {
		t.Fatalf("unexpected search: %q %d", stub.searched, rec.Code)
	}
}

func TestStorefrontHandler_SearchLongTerm(t *testing.T) {
	e := newTestEcho()
	stub := &stubStorefront{page: samplePage()}
	h := NewStorefrontHandler(stub)

	term := strings.Repeat("x", 500)
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"term":"`+term+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTabContext(e, req, "tab-1")

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.searched != term || rec.Code != http.StatusOK {
		t.Fatalf("long term not passed through: len=%d code=%d", len(stub.searched), rec.Code)
	}
}

func TestStorefrontHandler_SelectCategory(t *testing.T) {
	e := newTestEcho()
	stub := &stubStorefront{page: samplePage()}
	h := NewStorefrontHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/categories/select", strings.NewReader(`{"categoryName":"Shoes"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTabContext(e, req, "tab-1")

	if err := h.SelectCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp selectCategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Navigation == nil || resp.Navigation.Path != "/categories/Shoes" || resp.Navigation.State["categoryName"] != "Shoes" {
		t.Fatalf("unexpected navigation: %+v", resp.Navigation)
	}
}

func TestStorefrontHandler_OpenCategoryUnescapes(t *testing.T) {
	e := newTestEcho()
	stub := &stubStorefront{page: samplePage()}
	h := NewStorefrontHandler(stub)
	e.GET("/api/categories/:name", h.OpenCategory, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyTab, "tab-1")
			return next(c)
		}
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/Kids%20%2F%20Baby", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.opened != "Kids / Baby" {
		t.Fatalf("unexpected category: %q", stub.opened)
	}
}

func TestStorefrontHandler_QueryErrorIsGeneric(t *testing.T) {
	e := newTestEcho()
	key := domain.AllItemsKey()
	stub := &stubStorefront{result: domain.QueryResult{
		Key:    key,
		Status: domain.StatusError,
		Err:    &domain.QueryError{Key: key, Err: errors.New("dial tcp 10.0.0.3:8082: connection refused")},
	}}
	h := NewStorefrontHandler(stub)

	c, rec := newTabContext(e, httptest.NewRequest(http.MethodGet, "/api/admin/products", nil), "tab-1")
	if err := h.AdminProducts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.3") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}

	var resp queryResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != string(domain.StatusError) || resp.Error != domain.MessageQueryFailed {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
