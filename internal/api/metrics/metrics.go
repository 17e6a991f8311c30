// Package metrics defines and registers all custom Prometheus metrics for the
// console gateway. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto; the
// echoprometheus middleware adds the standard HTTP metrics on top.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "biblioteca"

// ── List screens ──────────────────────────────────────────────────────────────

// ListReloadsTotal counts collection reloads from the library backend.
// Labels:
//   - resource: "usuarios", "livros", "emprestimos", "reservas", "penalidades"
//   - result: "ok" or "error"
var ListReloadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_reloads_total",
		Help:      "Total number of list reloads from the library backend.",
	},
	[]string{"resource", "result"},
)

// SearchesTotal counts debounced reference searches.
// Labels:
//   - resource: "usuarios" or "livros"
//   - outcome: "issued", "superseded", or "error"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of debounced searches, labelled by outcome.",
	},
	[]string{"resource", "outcome"},
)

// ── Row actions ───────────────────────────────────────────────────────────────

// RowActionsTotal counts confirmed row actions.
// Labels:
//   - resource: the entity the action applies to
//   - action: "excluir", "renovar", "devolver", "cumprir"
//   - result: "ok", "error", or "pending" (duplicate confirm rejected)
var RowActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "row_actions_total",
		Help:      "Total number of confirmed row actions, labelled by result.",
	},
	[]string{"resource", "action", "result"},
)

// ── Batch import ──────────────────────────────────────────────────────────────

// ImportedUsersTotal counts users submitted through the CSV batch import.
var ImportedUsersTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imported_users_total",
		Help:      "Total number of users submitted via CSV batch import.",
	},
)

// ── Upstream client ───────────────────────────────────────────────────────────

// UpstreamRequestDuration measures the latency of calls to the library
// backend.
// Labels:
//   - method: HTTP method
//   - outcome: "ok", "error" (non-2xx), or "unavailable" (transport failure)
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of HTTP requests to the library backend.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method", "outcome"},
)
