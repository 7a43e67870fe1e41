package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resumesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_extractor",
			Subsystem: "pipeline",
			Name:      "resumes_processed_total",
			Help:      "Résumés turned into a valid record, by input type.",
		},
		[]string{"input"},
	)

	resumeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_extractor",
			Subsystem: "pipeline",
			Name:      "failures_total",
			Help:      "Requests that produced no record, by reason.",
		},
		[]string{"reason"},
	)

	enrichmentOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resume_extractor",
			Subsystem: "enrichment",
			Name:      "outcomes_total",
			Help:      "Enrichment results: skipped, enriched or fallback.",
		},
		[]string{"state"},
	)

	processingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_extractor",
			Subsystem: "pipeline",
			Name:      "processing_duration_seconds",
			Help:      "Time spent turning one input into a record.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"input"},
	)
)

// ObserveProcessed records a successful run for the given input type.
func ObserveProcessed(input string, started time.Time) {
	resumesProcessedTotal.WithLabelValues(input).Inc()
	processingDuration.WithLabelValues(input).Observe(time.Since(started).Seconds())
}

func ObserveFailure(reason string) {
	resumeFailuresTotal.WithLabelValues(reason).Inc()
}

func ObserveEnrichment(state string) {
	enrichmentOutcomesTotal.WithLabelValues(state).Inc()
}
