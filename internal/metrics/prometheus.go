package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus metrics for the summarizer service.
type Metrics struct {
	// Pipeline metrics
	RunsTotal     *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec

	// Transport metrics
	UploadsRejected *prometheus.CounterVec
	HistoryRequests prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics on reg. Passing a
// fresh registry keeps tests from colliding on the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "summarizer_pipeline_runs_total",
			Help: "Total number of pipeline runs by outcome",
		}, []string{"outcome"}),
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "summarizer_stage_duration_seconds",
			Help:    "Duration of individual pipeline stages in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8), // 10ms to ~3 minutes
		}, []string{"stage"}),
		UploadsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "summarizer_uploads_rejected_total",
			Help: "Total number of uploads rejected at validation by reason",
		}, []string{"reason"}),
		HistoryRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "summarizer_history_requests_total",
			Help: "Total number of history listing requests",
		}),
	}
}
