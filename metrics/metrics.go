package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal - power requests by action and status
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "power_controller_requests_total",
			Help: "Total number of instance power requests",
		},
		[]string{"action", "status"},
	)

	// RequestDuration - request processing time
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "power_controller_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	// StateConflicts - benign already-in-state outcomes
	StateConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "power_controller_state_conflicts_total",
			Help: "Total number of requests where the instance was already in the target state",
		},
		[]string{"action"},
	)

	// ValidationFailures - rejected invocation payloads
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "power_controller_validation_failures_total",
			Help: "Total number of requests rejected during input validation",
		},
		[]string{"reason"},
	)
)
