package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/gateway/internal/api/metrics"
	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

// QueryService exposes the backend reads as triggered, cached results.
//
// Every trigger bumps a per-(tab, key) generation. A response is stored only
// if its generation is still the latest, so when the same key is re-triggered
// the last trigger wins regardless of arrival order.
type QueryService struct {
	catalog ports.CatalogClient
	store   ports.QueryStore
	queue   ports.FetchQueue
	log     zerolog.Logger
	now     func() time.Time

	// mu guards seq and generations, and is held across every store write
	// that depends on them.
	mu          sync.Mutex
	seq         uint64
	generations map[string]uint64
}

func NewQueryService(catalog ports.CatalogClient, store ports.QueryStore, log zerolog.Logger) *QueryService {
	return &QueryService{
		catalog:     catalog,
		store:       store,
		log:         log,
		now:         time.Now,
		generations: make(map[string]uint64),
	}
}

// UseQueue routes fetches through q. Without a queue each fetch runs on its
// own goroutine.
func (s *QueryService) UseQueue(q ports.FetchQueue) {
	s.queue = q
}

// Trigger marks key as loading and schedules a fetch. Data from the previous
// result stays visible while loading.
func (s *QueryService) Trigger(ctx context.Context, tabID string, key domain.QueryKey) <-chan domain.QueryResult {
	job := ports.FetchJob{
		TabID: tabID,
		Key:   key,
		Done:  make(chan domain.QueryResult, 1),
	}

	s.mu.Lock()
	s.seq++
	job.Generation = s.seq
	s.generations[job.ShardKey()] = job.Generation

	loading := domain.QueryResult{Key: key, Status: domain.StatusLoading, Generation: job.Generation, UpdatedAt: s.now()}
	if prev, ok, err := s.store.Get(ctx, tabID, key); err == nil && ok {
		loading.Products = prev.Products
		loading.Categories = prev.Categories
	}
	if err := s.store.Put(ctx, tabID, loading); err != nil {
		s.log.Warn().Err(err).Str("tab", tabID).Str("key", key.String()).Msg("failed to mark query loading")
	}
	s.mu.Unlock()

	if s.queue != nil {
		err := s.queue.Enqueue(ctx, job)
		if err == nil {
			return job.Done
		}
		s.log.Debug().Err(err).Str("tab", tabID).Str("key", key.String()).Msg("queue rejected fetch, running inline")
	}
	go func() { _ = s.Process(context.WithoutCancel(ctx), job) }()
	return job.Done
}

// Enable triggers key only if it was never fetched for the tab.
func (s *QueryService) Enable(ctx context.Context, tabID string, key domain.QueryKey) <-chan domain.QueryResult {
	if _, ok, err := s.store.Get(ctx, tabID, key); err == nil && ok {
		return nil
	}
	return s.Trigger(ctx, tabID, key)
}

// Result returns the stored result for key, or idle when there is none.
func (s *QueryService) Result(ctx context.Context, tabID string, key domain.QueryKey) domain.QueryResult {
	res, ok, err := s.store.Get(ctx, tabID, key)
	if err != nil {
		s.log.Warn().Err(err).Str("tab", tabID).Str("key", key.String()).Msg("failed to read query result")
		return domain.QueryResult{Key: key, Status: domain.StatusError, Err: &domain.QueryError{Key: key, Err: err}}
	}
	if !ok {
		return domain.IdleResult(key)
	}
	return res
}

// Clear drops every cached result of kind for the tab. Fetches of that kind
// still in flight are discarded when they land.
func (s *QueryService) Clear(ctx context.Context, tabID string, kind domain.QueryKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropGenerations(tabID + "\x00" + string(kind) + ":")

	if err := s.store.DeleteKind(ctx, tabID, kind); err != nil {
		return fmt.Errorf("clear %s results: %w", kind, err)
	}
	return nil
}

// Forget drops all results and generations of the tab.
func (s *QueryService) Forget(ctx context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropGenerations(tabID + "\x00")

	if err := s.store.DeleteTab(ctx, tabID); err != nil {
		return fmt.Errorf("forget tab: %w", err)
	}
	return nil
}

// Process runs one fetch job and stores its result unless superseded.
// The result is always delivered on job.Done.
func (s *QueryService) Process(ctx context.Context, job ports.FetchJob) error {
	kind := string(job.Key.Kind)
	start := s.now()

	result := s.fetch(ctx, job.Key)
	result.Generation = job.Generation
	result.UpdatedAt = s.now()

	metrics.QueryDuration.WithLabelValues(kind).Observe(result.UpdatedAt.Sub(start).Seconds())
	metrics.QueriesTotal.WithLabelValues(kind, string(result.Status)).Inc()

	if !s.commit(ctx, job, result) {
		metrics.QueriesSupersededTotal.WithLabelValues(kind).Inc()
		s.log.Debug().Str("tab", job.TabID).Str("key", job.Key.String()).Uint64("generation", job.Generation).Msg("superseded response discarded")
	}

	if job.Done != nil {
		select {
		case job.Done <- result:
		default:
		}
	}
	return result.Err
}

func (s *QueryService) fetch(ctx context.Context, key domain.QueryKey) domain.QueryResult {
	res := domain.QueryResult{Key: key}
	var err error

	switch key.Kind {
	case domain.KindAllItems:
		res.Products, err = s.catalog.ListItems(ctx)
	case domain.KindSearch:
		res.Products, err = s.catalog.SearchItemsByName(ctx, key.Arg)
	case domain.KindCategory:
		res.Products, err = s.catalog.ItemsByCategory(ctx, key.Arg)
	case domain.KindCategories:
		res.Categories, err = s.catalog.ListCategories(ctx)
	default:
		err = fmt.Errorf("unknown query kind %q", key.Kind)
	}

	if err != nil {
		var qe *domain.QueryError
		if !errors.As(err, &qe) {
			qe = &domain.QueryError{Key: key, Err: err}
		}
		return domain.QueryResult{Key: key, Status: domain.StatusError, Err: qe}
	}

	if res.Products == nil && key.Kind != domain.KindCategories {
		res.Products = []domain.Product{}
	}
	if res.Categories == nil && key.Kind == domain.KindCategories {
		res.Categories = []domain.Category{}
	}
	res.Status = domain.StatusSuccess
	return res
}

// dropGenerations must be called with s.mu held.
func (s *QueryService) dropGenerations(prefix string) {
	for k := range s.generations {
		if strings.HasPrefix(k, prefix) {
			delete(s.generations, k)
		}
	}
}

// commit writes result if job is still the latest trigger for its key. The
// check and the write happen under s.mu, so a concurrent Trigger, Clear or
// Forget either sees the write or prevents it.
func (s *QueryService) commit(ctx context.Context, job ports.FetchJob, result domain.QueryResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[job.ShardKey()] != job.Generation {
		return false
	}
	if err := s.store.Put(ctx, job.TabID, result); err != nil {
		s.log.Error().Err(err).Str("tab", job.TabID).Str("key", job.Key.String()).Msg("failed to store query result")
	}
	return true
}

// Await waits for a triggered fetch to finish or ctx to end.
func Await(ctx context.Context, pending <-chan domain.QueryResult) (domain.QueryResult, error) {
	select {
	case res := <-pending:
		return res, nil
	case <-ctx.Done():
		return domain.QueryResult{}, ctx.Err()
	}
}
