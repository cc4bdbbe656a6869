package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront/gateway/internal/core/domain"
)

const sessionCollection = "tab_sessions"

// SessionStore keeps one document per tab, keyed by the tab ID.
type SessionStore struct {
	coll *mongo.Collection
}

func NewSessionStore(db *mongo.Database) *SessionStore {
	return &SessionStore{coll: db.Collection(sessionCollection)}
}

type mongoSession struct {
	TabID     string    `bson:"_id"`
	Token     string    `bson:"token"`
	UserID    string    `bson:"userId"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// EnsureTTL creates a TTL index so sessions are removed by the server ttl
// after login. Reads do not extend the lifetime. A non-positive ttl leaves
// sessions in place.
func (s *SessionStore) EnsureTTL(ctx context.Context, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "updated_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	if err != nil {
		return fmt.Errorf("create session ttl index: %w", err)
	}
	return nil
}

// Set replaces the tab's document in a single write, never merging fields.
func (s *SessionStore) Set(ctx context.Context, tabID string, session domain.Session) error {
	doc := mongoSession{
		TabID:     tabID,
		Token:     session.Token,
		UserID:    session.UserID,
		UpdatedAt: time.Now().UTC(),
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": tabID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, tabID string) (*domain.Session, error) {
	var ms mongoSession
	if err := s.coll.FindOne(ctx, bson.M{"_id": tabID}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &domain.Session{Token: ms.Token, UserID: ms.UserID}, nil
}

// Clear removes the document; both fields disappear in the same write.
func (s *SessionStore) Clear(ctx context.Context, tabID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": tabID}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
