package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/gateway/internal/core/domain"
)

// QueryStore keeps every query result of a tab as one field of a hash,
// keyed by the query key string. Key format: storefront:tab:<tab_id>:queries
type QueryStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryStore creates a QueryStore; a positive ttl expires idle tabs.
func NewQueryStore(client *redis.Client, ttl time.Duration) *QueryStore {
	return &QueryStore{client: client, ttl: ttl}
}

type queryRecord struct {
	Status     domain.QueryStatus `json:"status"`
	Products   []domain.Product   `json:"products,omitempty"`
	Categories []domain.Category  `json:"categories,omitempty"`
	Error      string             `json:"error,omitempty"`
	Generation uint64             `json:"generation"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (s *QueryStore) Get(ctx context.Context, tabID string, key domain.QueryKey) (domain.QueryResult, bool, error) {
	raw, err := s.client.HGet(ctx, s.key(tabID), key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.QueryResult{}, false, nil
		}
		return domain.QueryResult{}, false, fmt.Errorf("query get: %w", err)
	}

	var rec queryRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.QueryResult{}, false, fmt.Errorf("query get: decode %s: %w", key, err)
	}

	res := domain.QueryResult{
		Key:        key,
		Status:     rec.Status,
		Products:   rec.Products,
		Categories: rec.Categories,
		Generation: rec.Generation,
		UpdatedAt:  rec.UpdatedAt,
	}
	if rec.Error != "" {
		res.Err = &domain.QueryError{Key: key, Err: errors.New(rec.Error)}
	}
	// omitempty drops empty lists; a successful empty result must stay non-nil.
	if res.Status == domain.StatusSuccess {
		if key.Kind == domain.KindCategories && res.Categories == nil {
			res.Categories = []domain.Category{}
		}
		if key.Kind != domain.KindCategories && res.Products == nil {
			res.Products = []domain.Product{}
		}
	}
	return res, true, nil
}

func (s *QueryStore) Put(ctx context.Context, tabID string, result domain.QueryResult) error {
	rec := queryRecord{
		Status:     result.Status,
		Products:   result.Products,
		Categories: result.Categories,
		Generation: result.Generation,
		UpdatedAt:  result.UpdatedAt,
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("query put: encode %s: %w", result.Key, err)
	}

	key := s.key(tabID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, result.Key.String(), raw)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("query put: %w", err)
	}
	return nil
}

func (s *QueryStore) DeleteKind(ctx context.Context, tabID string, kind domain.QueryKind) error {
	key := s.key(tabID)
	fields, err := s.client.HKeys(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("query delete kind: %w", err)
	}

	prefix := string(kind) + ":"
	var matched []string
	for _, f := range fields {
		if strings.HasPrefix(f, prefix) {
			matched = append(matched, f)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, key, matched...).Err(); err != nil {
		return fmt.Errorf("query delete kind: %w", err)
	}
	return nil
}

func (s *QueryStore) DeleteTab(ctx context.Context, tabID string) error {
	if err := s.client.Del(ctx, s.key(tabID)).Err(); err != nil {
		return fmt.Errorf("query delete tab: %w", err)
	}
	return nil
}

func (s *QueryStore) key(tabID string) string {
	return tabKey(tabID, "queries")
}
