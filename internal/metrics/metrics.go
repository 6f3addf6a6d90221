// Package metrics defines and registers all custom Prometheus metrics
// for the course marketplace. It is the single source of truth for
// metric names, labels, and help strings, and carries no transport
// dependencies so any layer can record.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coursemarket"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts created principals.
// Label:
//   - kind: "learner" or "instructor"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of principals created, by kind.",
	},
	[]string{"kind"},
)

// SigninsTotal counts signin attempts.
// Labels:
//   - kind: "learner" or "instructor"
//   - result: "ok", "not_found", "bad_password", or "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// AuthRejectionsTotal counts requests rejected by the auth gate. The
// reason label carries the internal classification (missing, malformed,
// expired, signature, kind_mismatch); clients only ever see 401.
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth gate, by kind and reason.",
	},
	[]string{"kind", "reason"},
)

// ── Course metrics ────────────────────────────────────────────────────────────

// CoursesCreatedTotal counts newly created courses.
var CoursesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_created_total",
		Help:      "Total number of courses created.",
	},
)

// CatalogCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of public catalog cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Purchase metrics ──────────────────────────────────────────────────────────

// PurchasesTotal counts purchase requests that completed.
// Label:
//   - result: "created" (new record) or "replayed" (already owned)
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchases recorded, by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of events waiting in each audit
// worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit events discarded because a worker
// channel was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit events dropped due to backpressure.",
	},
)
