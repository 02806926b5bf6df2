// README: Prometheus collectors for collaborator calls and pipeline degradations.
package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CollaboratorCalls counts external calls by collaborator and outcome (ok, error, disabled).
	CollaboratorCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buddy_collaborator_calls_total",
			Help: "External collaborator calls by outcome",
		},
		[]string{"collaborator", "outcome"},
	)

	// PipelineDegradations counts fallback payloads, strict retries and corrective regenerations.
	PipelineDegradations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buddy_pipeline_degradations_total",
			Help: "Pipeline fallbacks and regenerations by kind",
		},
		[]string{"kind"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "buddy_http_request_duration_seconds",
			Help:    "HTTP request duration by route and status",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 90},
		},
		[]string{"route", "status"},
	)
)

// ObserveCall records the outcome of a collaborator call.
func ObserveCall(collaborator string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	CollaboratorCalls.WithLabelValues(collaborator, outcome).Inc()
}
