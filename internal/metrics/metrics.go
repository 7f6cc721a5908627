// Package metrics defines and registers all custom Prometheus metrics for the
// WorkBridge client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workbridge"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - mode: "remote" (backend answered) or "fallback" (local store used)
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register/login attempts by mode and result.",
	},
	[]string{"operation", "mode", "result"},
)

// ── Remote API metrics ────────────────────────────────────────────────────────

// RemoteRequestDuration measures backend round-trips.
// Labels:
//   - endpoint: the API path (e.g. "/login/")
//   - outcome: "ok", "status_error" or "unreachable"
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_request_duration_seconds",
		Help:      "Duration of requests to the marketplace backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "outcome"},
)

// ── Portal metrics ────────────────────────────────────────────────────────────

// PortalRequestsTotal counts requests served by the local portal.
// Labels:
//   - method: HTTP method
//   - route: the registered route pattern (e.g. "/jobs/:id/apply")
//   - status: HTTP status code
var PortalRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "portal_requests_total",
		Help:      "Total number of portal HTTP requests.",
	},
	[]string{"method", "route", "status"},
)
