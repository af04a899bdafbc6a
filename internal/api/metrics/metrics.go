// Package metrics defines all custom Prometheus metrics for the library
// catalog API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "libraryhub"

// ── Loan lifecycle metrics ────────────────────────────────────────────────────

// LoansCreatedTotal counts successful borrow operations.
var LoansCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_created_total",
		Help:      "Total number of books borrowed.",
	},
)

// LoansReturnedTotal counts successful return operations.
var LoansReturnedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_returned_total",
		Help:      "Total number of books returned.",
	},
)

// LoanRejectionsTotal counts rejected lifecycle operations.
// Label:
//   - reason: "no_session", "book_not_found", "book_unavailable", "record_not_found"
var LoanRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loan_rejections_total",
		Help:      "Total number of borrow/return operations rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsStartedTotal counts issued sessions.
// Labels:
//   - mode: "login" or "register"
//   - role: the role granted to the session
var SessionsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of sessions issued, by mode and role.",
	},
	[]string{"mode", "role"},
)

// ── Activity feed metrics ─────────────────────────────────────────────────────

// ActivityQueueDepth tracks the current number of entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
