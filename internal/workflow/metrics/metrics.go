package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the routing engine.
type Metrics struct {
	// Routing actions by action kind and outcome ("applied" or an error code)
	ActionsApplied *prometheus.CounterVec

	// Visibility scan latency over a full document snapshot set
	VisibilityScanLatency prometheus.Histogram

	// Documents whose spent processing time exceeded the expected duration
	DeadlineExceeded prometheus.Counter

	// Documents accepted into the submitted state
	DocumentsSubmitted prometheus.Counter
}

// New creates a Metrics instance with all routing engine metrics registered.
func New() *Metrics {
	return &Metrics{
		ActionsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "docflow_routing_actions_total",
			Help: "Total routing actions by action kind and outcome",
		}, []string{"action", "outcome"}),

		VisibilityScanLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "docflow_visibility_scan_duration_seconds",
			Help:    "Duration of visibility filtering over a document snapshot set",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		DeadlineExceeded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "docflow_documents_deadline_exceeded_total",
			Help: "Documents observed past their expected processing time",
		}),

		DocumentsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "docflow_documents_submitted_total",
			Help: "Total documents accepted into the routing workflow",
		}),
	}
}

// IncrementAction records a routing action and its outcome.
func (m *Metrics) IncrementAction(action, outcome string) {
	if m != nil {
		m.ActionsApplied.WithLabelValues(action, outcome).Inc()
	}
}

// ObserveVisibilityScan records the duration of one visibility scan.
func (m *Metrics) ObserveVisibilityScan(d time.Duration) {
	if m != nil {
		m.VisibilityScanLatency.Observe(d.Seconds())
	}
}

// IncrementDeadlineExceeded records a document past its expected duration.
func (m *Metrics) IncrementDeadlineExceeded() {
	if m != nil {
		m.DeadlineExceeded.Inc()
	}
}

// IncrementDocumentsSubmitted records one accepted submission.
func (m *Metrics) IncrementDocumentsSubmitted() {
	if m != nil {
		m.DocumentsSubmitted.Inc()
	}
}
