// Package metrics defines and registers all custom Prometheus metrics for the
// admin dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at init
// time via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// LoginAttempts counts authentication attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RecordMutations counts create/update/delete operations on the managed
// collections.
// Labels:
//   - entity: "user", "account", or "plan"
//   - action: "create", "update", or "delete"
var RecordMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of record mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ReportRequests counts report renderings and exports.
// Label:
//   - kind: "revenue", "churn", or "export"
var ReportRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_requests_total",
		Help:      "Total number of report requests, by report kind.",
	},
	[]string{"kind"},
)
