package ports

import (
	"context"

	"github.com/storefront/gateway/internal/core/domain"
)

// LoginResult is what a successful login hands back to the view.
type LoginResult struct {
	Session    domain.Session
	Navigation domain.Navigation
}

// AuthService owns the only mutation handle on the session store.
type AuthService interface {
	SessionReader
	Login(ctx context.Context, tabID string, creds domain.Credentials) (*LoginResult, error)
	SignOut(ctx context.Context, tabID string) (*domain.Navigation, error)
}
