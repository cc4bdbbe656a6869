package ports

import (
	"context"

	"github.com/storefront/gateway/internal/core/domain"
)

// Selection is the outcome of choosing a category.
type Selection struct {
	// Navigation is nil when the selection was cleared.
	Navigation *domain.Navigation
	// Pending receives the category fetch result; nil when nothing was triggered.
	Pending <-chan domain.QueryResult
}

// Navigator drives the unfiltered/filtered category state machine of a tab.
type Navigator interface {
	Select(ctx context.Context, tabID, categoryName string) (Selection, error)
	Selected(tabID string) string
}

// StorefrontService assembles page views for a tab.
type StorefrontService interface {
	Page(ctx context.Context, tabID string) (*domain.PageView, error)
	Search(ctx context.Context, tabID, term string) (*domain.PageView, error)
	SelectCategory(ctx context.Context, tabID, categoryName string) (*domain.Navigation, *domain.PageView, error)
	OpenCategory(ctx context.Context, tabID, categoryName string) (*domain.PageView, error)
	Categories(ctx context.Context, tabID string) (domain.QueryResult, error)
	AdminProducts(ctx context.Context, tabID string) (domain.QueryResult, error)
	Reset(ctx context.Context, tabID string) error
}
