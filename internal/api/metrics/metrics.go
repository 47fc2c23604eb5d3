// Package metrics defines all custom Prometheus metrics for the recruitment
// API. It is the single source of truth for metric names, labels, and help
// strings; collectors register themselves via promauto at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruitment"

// SubmissionsCreatedTotal counts persisted candidate submissions.
// Label:
//   - role: the role the candidate applied for
var SubmissionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_created_total",
		Help:      "Total number of candidate submissions persisted, by role.",
	},
	[]string{"role"},
)

// SubmissionsRejectedTotal counts submissions that were refused.
// Label:
//   - reason: "duplicate", "validation" or "storage"
var SubmissionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_rejected_total",
		Help:      "Total number of candidate submissions rejected, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success", "missing_credentials", "unknown_account" or "wrong_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// FormSessionsStartedTotal counts new multi-step form sessions.
var FormSessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_sessions_started_total",
		Help:      "Total number of multi-step form sessions created.",
	},
)
