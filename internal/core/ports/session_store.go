package ports

import (
	"context"

	"github.com/storefront/gateway/internal/core/domain"
)

// SessionStore persists the session of each tab. Only Token and UserID are
// stored; Roles on a returned session is left empty for the caller to derive.
type SessionStore interface {
	// Set replaces any previous session of the tab.
	Set(ctx context.Context, tabID string, s domain.Session) error
	// Get returns domain.ErrNoSession when the tab has no session.
	Get(ctx context.Context, tabID string) (*domain.Session, error)
	// Clear drops token and user id together.
	Clear(ctx context.Context, tabID string) error
}

// SessionReader is the read-only view handed to consumers of authorization state.
type SessionReader interface {
	Current(ctx context.Context, tabID string) (*domain.Session, error)
}

// LoginGuard keeps at most one login attempt outstanding per tab.
type LoginGuard interface {
	// Acquire returns false when another attempt for the tab holds the guard.
	Acquire(ctx context.Context, tabID string) (bool, error)
	Release(ctx context.Context, tabID string) error
}
