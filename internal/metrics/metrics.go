// Package metrics holds the Prometheus collectors for the diagnostics
// pipeline. Collectors are registered on a caller-supplied registerer so
// tests can use a private registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "diag"

// Request outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeBadRequest  = "bad_request"
	OutcomeServerError = "server_error"
)

// Audit write results.
const (
	AuditOK     = "ok"
	AuditFailed = "failed"
)

type Metrics struct {
	// RequestsTotal labels: outcome
	RequestsTotal *prometheus.CounterVec

	// CompletionDuration covers the completion call only, success or not.
	CompletionDuration prometheus.Histogram

	// AuditWritesTotal labels: result
	AuditWritesTotal *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Diagnostic requests by outcome.",
		}, []string{"outcome"}),

		CompletionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of completion service calls.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}),

		AuditWritesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_writes_total",
			Help:      "Audit log write attempts by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) RecordRequest(outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCompletion(d time.Duration) {
	if m == nil {
		return
	}
	m.CompletionDuration.Observe(d.Seconds())
}

func (m *Metrics) RecordAuditWrite(result string) {
	if m == nil {
		return
	}
	m.AuditWritesTotal.WithLabelValues(result).Inc()
}
