package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/storefront/gateway/internal/api/metrics"
	"github.com/storefront/gateway/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrQueueFull is returned by Enqueue when the target worker channel has no room.
var ErrQueueFull = errors.New("fetch queue full")

// Dispatcher spreads fetch jobs over a fixed set of intake workers by hashing
// (tab, query key). Each worker starts every job on its own goroutine, so a
// hung fetch never delays another one.
type Dispatcher struct {
	workers   []chan ports.FetchJob
	processor ports.FetchProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers intake workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.FetchProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.FetchJob, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.FetchJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop taking jobs when ctx is
// cancelled; jobs still queued at that point are dropped.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its shard key. It never
// blocks: a done ctx or a full worker channel is reported as an error.
func (d *Dispatcher) Enqueue(ctx context.Context, job ports.FetchJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	idx := d.shardIndex(job.ShardKey())
	select {
	case d.workers[idx] <- job:
	default:
		return ErrQueueFull
	}
	metrics.FetchQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a shard key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.FetchJob) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.FetchQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			metrics.FetchesInFlight.Inc()
			go d.run(ctx, id, job)
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, id int, job ports.FetchJob) {
	defer metrics.FetchesInFlight.Dec()

	if err := d.processor.Process(ctx, job); err != nil {
		d.log.Warn().Err(err).
			Str("tab", job.TabID).
			Str("key", job.Key.String()).
			Int("worker_id", id).
			Msg("fetch failed")
	}
}
