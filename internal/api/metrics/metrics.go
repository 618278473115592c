// Package metrics defines and registers the custom Prometheus metrics of the
// catalog portal. It is the single source of truth for metric names, labels,
// and help strings. HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts signed tokens handed out by the login flow.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_token" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by token authentication.",
	},
	[]string{"reason"},
)

// AuthorizationDeniedTotal counts authenticated requests rejected by a role gate.
// Label:
//   - route: the echo route path (e.g. "/Admin/UserManager")
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of authenticated requests denied for lack of role.",
	},
	[]string{"route"},
)

// LoginRateLimitedTotal counts token requests rejected by the rate limiter.
var LoginRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_rate_limited_total",
		Help:      "Total number of login attempts rejected by the rate limiter.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductQueriesTotal counts product reads.
// Labels:
//   - source: "sql" or "orm"
//   - result: "ok" or "error"
var ProductQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_queries_total",
		Help:      "Total number of product queries, by data access path and result.",
	},
	[]string{"source", "result"},
)

// ProductQueryDuration measures product read latency per data access path.
var ProductQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "product_query_duration_seconds",
		Help:      "Duration of product queries, by data access path.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"source"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts login audit writes.
// Label:
//   - result: "stored", "failed" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of login audit events, by outcome.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of audit events waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of login events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)
