package ports

import (
	"context"

	"github.com/storefront/gateway/internal/core/domain"
)

// QueryStore maps (tab, query key) to the latest QueryResult.
type QueryStore interface {
	// Get reports false when the key has never been stored for the tab.
	Get(ctx context.Context, tabID string, key domain.QueryKey) (domain.QueryResult, bool, error)
	// Put replaces the stored result for result.Key.
	Put(ctx context.Context, tabID string, result domain.QueryResult) error
	// DeleteKind drops every result of the given kind for the tab.
	DeleteKind(ctx context.Context, tabID string, kind domain.QueryKind) error
	// DeleteTab drops everything stored for the tab.
	DeleteTab(ctx context.Context, tabID string) error
}
