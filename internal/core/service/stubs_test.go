package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

// stubCatalog serves canned products and counts calls per query.
type stubCatalog struct {
	mu         sync.Mutex
	calls      map[string]int
	items      []domain.Product
	categories []domain.Category
	byCategory map[string][]domain.Product
	search     func(call int, term string) ([]domain.Product, error)
	failKinds  map[domain.QueryKind]error
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		calls:      make(map[string]int),
		byCategory: make(map[string][]domain.Product),
		failKinds:  make(map[domain.QueryKind]error),
	}
}

func (c *stubCatalog) record(key domain.QueryKey) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[key.String()]++
	return c.calls[key.String()], c.failKinds[key.Kind]
}

func (c *stubCatalog) callCount(key domain.QueryKey) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[key.String()]
}

func (c *stubCatalog) ListItems(context.Context) ([]domain.Product, error) {
	if _, err := c.record(domain.AllItemsKey()); err != nil {
		return nil, err
	}
	return c.items, nil
}

func (c *stubCatalog) SearchItemsByName(_ context.Context, term string) ([]domain.Product, error) {
	call, err := c.record(domain.SearchKey(term))
	if err != nil {
		return nil, err
	}
	if c.search != nil {
		return c.search(call, term)
	}
	var out []domain.Product
	for _, p := range c.items {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *stubCatalog) ItemsByCategory(_ context.Context, name string) ([]domain.Product, error) {
	if _, err := c.record(domain.CategoryKey(name)); err != nil {
		return nil, err
	}
	return c.byCategory[name], nil
}

func (c *stubCatalog) ListCategories(context.Context) ([]domain.Category, error) {
	if _, err := c.record(domain.CategoriesKey()); err != nil {
		return nil, err
	}
	return c.categories, nil
}

var _ ports.CatalogClient = (*stubCatalog)(nil)

func makeProducts(n int) []domain.Product {
	out := make([]domain.Product, n)
	for i := range out {
		out[i] = domain.Product{
			ID:              fmt.Sprintf("p%d", i+1),
			Name:            fmt.Sprintf("Product %d", i+1),
			UnitPrice:       decimal.NewFromInt(int64(i + 1)),
			QuantityInStock: i,
		}
	}
	return out
}

// stubAuthenticator returns a fixed response or error.
type stubAuthenticator struct {
	resp  *ports.AuthResponse
	err   error
	calls int
}

func (a *stubAuthenticator) Authenticate(_ context.Context, _ domain.Credentials) (*ports.AuthResponse, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.resp, nil
}

// stubTabs records tab resets.
type stubTabs struct {
	reset []string
}

func (t *stubTabs) Reset(_ context.Context, tabID string) error {
	t.reset = append(t.reset, tabID)
	return nil
}
