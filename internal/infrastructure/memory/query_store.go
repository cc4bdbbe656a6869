package memory

import (
	"context"
	"sync"

	"github.com/storefront/gateway/internal/core/domain"
)

// QueryStore keeps query results per tab and key.
type QueryStore struct {
	mu   sync.RWMutex
	tabs map[string]map[domain.QueryKey]domain.QueryResult
}

func NewQueryStore() *QueryStore {
	return &QueryStore{tabs: make(map[string]map[domain.QueryKey]domain.QueryResult)}
}

func (s *QueryStore) Get(_ context.Context, tabID string, key domain.QueryKey) (domain.QueryResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.tabs[tabID][key]
	return res, ok, nil
}

func (s *QueryStore) Put(_ context.Context, tabID string, result domain.QueryResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	results, ok := s.tabs[tabID]
	if !ok {
		results = make(map[domain.QueryKey]domain.QueryResult)
		s.tabs[tabID] = results
	}
	results[result.Key] = result
	return nil
}

func (s *QueryStore) DeleteKind(_ context.Context, tabID string, kind domain.QueryKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.tabs[tabID] {
		if key.Kind == kind {
			delete(s.tabs[tabID], key)
		}
	}
	return nil
}

func (s *QueryStore) DeleteTab(_ context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tabs, tabID)
	return nil
}
