package memory

import (
	"context"
	"sync"
)

// LoginGuard marks tabs with a login attempt in flight.
type LoginGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewLoginGuard() *LoginGuard {
	return &LoginGuard{inFlight: make(map[string]struct{})}
}

func (g *LoginGuard) Acquire(_ context.Context, tabID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[tabID]; busy {
		return false, nil
	}
	g.inFlight[tabID] = struct{}{}
	return true, nil
}

func (g *LoginGuard) Release(_ context.Context, tabID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, tabID)
	return nil
}
