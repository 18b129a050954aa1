// Package metrics defines and registers all custom Prometheus metrics for the
// commerce API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SigninAttemptsTotal counts signin attempts.
// Labels:
//   - role: "admin", "zone" or "user"
//   - outcome: "accepted" or "rejected"
var SigninAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signin_attempts_total",
		Help:      "Total number of signin attempts, by role and outcome.",
	},
	[]string{"role", "outcome"},
)

// GuardRejectionsTotal counts requests turned away by the access guard.
// Label:
//   - reason: "missing_header", "bad_header", "invalid_token", "revoked", "actor_gone", "wrong_role"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by the access guard.",
	},
	[]string{"reason"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsCreatedTotal counts created records.
// Label:
//   - kind: "product", "category", "zone", "receipt", "order"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by kind.",
	},
	[]string{"kind"},
)

// RecordsDeletedTotal counts deleted records.
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted, by kind.",
	},
	[]string{"kind"},
)

// ── Image janitor metrics ─────────────────────────────────────────────────────

// ImagesReleasedTotal counts uploaded images removed after their record was deleted.
// Label:
//   - result: "removed", "failed" or "dropped"
var ImagesReleasedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_released_total",
		Help:      "Total number of released upload files, by result.",
	},
	[]string{"result"},
)

// JanitorQueueDepth tracks the number of image paths waiting in each janitor worker.
var JanitorQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "janitor_queue_depth",
		Help:      "Current number of image paths pending in each janitor worker channel.",
	},
	[]string{"worker_id"},
)
