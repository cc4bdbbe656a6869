package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// loginGuardTTL bounds how long a crashed login attempt can block its tab.
const loginGuardTTL = 30 * time.Second

// LoginGuard marks a tab's login attempt as in flight with SET NX.
// Key format: storefront:tab:<tab_id>:login
type LoginGuard struct {
	client *redis.Client
}

// NewLoginGuard creates a LoginGuard wrapping the given Redis client.
func NewLoginGuard(client *redis.Client) *LoginGuard {
	return &LoginGuard{client: client}
}

// Acquire reports whether this caller now owns the tab's login slot.
func (g *LoginGuard) Acquire(ctx context.Context, tabID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(tabID), "1", loginGuardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("login guard acquire: %w", err)
	}
	return ok, nil
}

// Release frees the tab's login slot.
func (g *LoginGuard) Release(ctx context.Context, tabID string) error {
	if err := g.client.Del(ctx, g.key(tabID)).Err(); err != nil {
		return fmt.Errorf("login guard release: %w", err)
	}
	return nil
}

func (g *LoginGuard) key(tabID string) string {
	return tabKey(tabID, "login")
}
