// Package memory provides process-local implementations of the storage ports.
// They back the gateway in development and in tests; state is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/storefront/gateway/internal/core/domain"
)

type storedSession struct {
	token  string
	userID string
}

// SessionStore keeps one session per tab in a map.
type SessionStore struct {
	mu   sync.RWMutex
	tabs map[string]storedSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{tabs: make(map[string]storedSession)}
}

func (s *SessionStore) Set(_ context.Context, tabID string, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[tabID] = storedSession{token: session.Token, userID: session.UserID}
	return nil
}

func (s *SessionStore) Get(_ context.Context, tabID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.tabs[tabID]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &domain.Session{Token: stored.token, UserID: stored.userID}, nil
}

func (s *SessionStore) Clear(_ context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tabs, tabID)
	return nil
}
