package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/gateway/internal/core/domain"
)

const (
	fieldToken  = "token"
	fieldUserID = "userId"
)

// SessionStore keeps each tab's session in one hash with the fields token
// and userId. Key format: storefront:tab:<tab_id>:session
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore. A positive ttl is an absolute
// lifetime set at login; reads do not extend it.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Set replaces the hash in one transaction so no reader sees a mix of the
// old and new session.
func (s *SessionStore) Set(ctx context.Context, tabID string, session domain.Session) error {
	key := s.key(tabID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fieldToken, session.Token, fieldUserID, session.UserID)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, tabID string) (*domain.Session, error) {
	fields, err := s.client.HMGet(ctx, s.key(tabID), fieldToken, fieldUserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	tok, _ := fields[0].(string)
	userID, _ := fields[1].(string)
	if tok == "" {
		return nil, domain.ErrNoSession
	}
	return &domain.Session{Token: tok, UserID: userID}, nil
}

// Clear deletes the whole hash; a single DEL removes both fields at once.
func (s *SessionStore) Clear(ctx context.Context, tabID string) error {
	if err := s.client.Del(ctx, s.key(tabID)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *SessionStore) key(tabID string) string {
	return tabKey(tabID, "session")
}
