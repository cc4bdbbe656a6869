package ports

import (
	"context"

	"github.com/storefront/gateway/internal/core/domain"
)

// CatalogClient is the read-only product surface of the remote backend.
type CatalogClient interface {
	ListItems(ctx context.Context) ([]domain.Product, error)
	SearchItemsByName(ctx context.Context, term string) ([]domain.Product, error)
	ItemsByCategory(ctx context.Context, categoryName string) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// AuthResponse is the backend's answer to a successful authentication.
type AuthResponse struct {
	Token  string
	UserID string
}

// Authenticator exchanges credentials for a token. Non-2xx answers and
// transport failures are reported as *domain.AuthError.
type Authenticator interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (*AuthResponse, error)
}
