// Package metrics defines and registers all custom Prometheus metrics for the
// storefront gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Query metrics ─────────────────────────────────────────────────────────────

// QueriesTotal counts completed backend reads.
// Labels:
//   - kind: the query kind ("items", "categories", "search", "category")
//   - status: "success" or "error"
var QueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of completed backend queries, by kind and outcome.",
	},
	[]string{"kind", "status"},
)

// QueriesSupersededTotal counts responses discarded because a newer trigger
// for the same key was issued while they were in flight.
var QueriesSupersededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_superseded_total",
		Help:      "Total number of query responses discarded in favour of a newer trigger.",
	},
	[]string{"kind"},
)

// QueryDuration measures backend round-trip time per query kind.
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of backend queries from dequeue to result.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"kind"},
)

// FetchQueueDepth tracks the number of fetch jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var FetchQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fetch_queue_depth",
		Help:      "Current number of fetch jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// FetchesInFlight tracks backend fetches started by the dispatcher and not yet finished.
var FetchesInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fetches_in_flight",
		Help:      "Current number of backend fetches running.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected", "decode_error", "in_progress", "store_error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignOutsTotal counts explicit sign-outs.
var SignOutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signouts_total",
		Help:      "Total number of sign-outs.",
	},
)

// ── Navigation metrics ────────────────────────────────────────────────────────

// CategorySelectionsTotal counts category navigator transitions.
// Label:
//   - to: "filtered" or "unfiltered"
var CategorySelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_selections_total",
		Help:      "Total number of category selections, by resulting state.",
	},
	[]string{"to"},
)

// ActiveTabs tracks how many tabs currently hold view state in this process.
var ActiveTabs = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_tabs",
		Help:      "Number of tabs with view state held in memory.",
	},
)
