// Package metrics defines and registers all custom Prometheus metrics for the
// PostRepublic quote API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "postrepublic"

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesComputedTotal counts completed quote computations.
// Label:
//   - zone: the resolved zone ("1".."8"), or "unresolved"
var QuotesComputedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_computed_total",
		Help:      "Total number of shipping quotes computed, by resolved zone.",
	},
	[]string{"zone"},
)

// ResellerQuotesTotal counts reseller price suggestions.
// Label:
//   - result: "ok" or "infeasible" (combined fees at or above 100%)
var ResellerQuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reseller_quotes_total",
		Help:      "Total number of reseller price suggestions, by result.",
	},
	[]string{"result"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - country: destination country of the order
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of shipping orders created, by destination country.",
	},
	[]string{"country"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotifyDeliveredTotal counts operator notification attempts.
// Label:
//   - result: "ok" or "error"
var NotifyDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notify_delivered_total",
		Help:      "Total number of order notifications attempted, by result.",
	},
	[]string{"result"},
)

// ── Reference-data metrics ────────────────────────────────────────────────────

// RateCacheTotal counts rate-cache lookups.
// Labels:
//   - key: the cache key ("rates:table", "rates:countries", "rates:fuel")
//   - result: "hit" or "miss"
var RateCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_cache_total",
		Help:      "Total number of rate reference-data cache lookups, by key and result.",
	},
	[]string{"key", "result"},
)
