package ports

import (
	"context"

	"github.com/storefront/gateway/internal/core/domain"
)

// FetchJob is one backend read scheduled by the query service.
type FetchJob struct {
	TabID      string
	Key        domain.QueryKey
	Generation uint64
	// Done receives the fetched result once; it is buffered so workers never block.
	Done chan domain.QueryResult
}

// ShardKey identifies the (tab, key) slot a job's result is written to.
func (j FetchJob) ShardKey() string {
	return j.TabID + "\x00" + j.Key.String()
}

// FetchProcessor executes fetch jobs; it is what dispatcher workers call.
type FetchProcessor interface {
	Process(ctx context.Context, job FetchJob) error
}

// FetchQueue accepts fetch jobs for asynchronous execution. Enqueue never
// blocks: it returns an error when ctx is done or the queue is full.
type FetchQueue interface {
	Enqueue(ctx context.Context, job FetchJob) error
}

// QueryService exposes each backend read as an on-demand asynchronous result.
type QueryService interface {
	// Trigger starts a fetch for key and returns a channel that receives its result.
	Trigger(ctx context.Context, tabID string, key domain.QueryKey) <-chan domain.QueryResult
	// Enable triggers key only when it has never been fetched for the tab.
	// It returns nil when nothing was triggered.
	Enable(ctx context.Context, tabID string, key domain.QueryKey) <-chan domain.QueryResult
	// Result returns the current result; never-triggered keys report idle.
	Result(ctx context.Context, tabID string, key domain.QueryKey) domain.QueryResult
	// Clear drops every cached result of kind for the tab.
	Clear(ctx context.Context, tabID string, kind domain.QueryKind) error
	// Forget drops all query state of the tab.
	Forget(ctx context.Context, tabID string) error
}
