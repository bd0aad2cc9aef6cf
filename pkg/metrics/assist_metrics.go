// Package metrics exposes Prometheus collectors for the AI pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes.
const (
	OutcomeRemote   = "remote"   // provider answered and the answer was accepted
	OutcomeFallback = "fallback" // provider configured but failed, stub answered
	OutcomeStub     = "stub"     // no provider configured
	OutcomeInvalid  = "invalid"  // rejected by validation
)

var (
	AIRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of AI pipeline requests by task and outcome",
		},
		[]string{"task", "outcome"},
	)

	RemoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_remote_call_duration_seconds",
			Help:    "Remote LLM call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"provider", "task", "status"},
	)

	RemoteFailureCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_remote_failures_total",
			Help: "Remote LLM failures by provider, task and reason",
		},
		[]string{"provider", "task", "reason"},
	)
)

// IncrementAIRequest counts one pipeline request.
func IncrementAIRequest(task, outcome string) {
	AIRequestCount.WithLabelValues(task, outcome).Inc()
}

// RecordRemoteCall records the latency of one remote call.
func RecordRemoteCall(provider, task, status string, duration time.Duration) {
	RemoteCallDuration.WithLabelValues(provider, task, status).Observe(duration.Seconds())
}

// IncrementRemoteFailure counts one remote failure.
func IncrementRemoteFailure(provider, task, reason string) {
	RemoteFailureCount.WithLabelValues(provider, task, reason).Inc()
}
