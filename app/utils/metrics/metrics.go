// Package metrics provides Prometheus metrics for annotate-service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "annotate"

var (
	// HTTPRequestsTotal counts handled requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AnnotationsSavedTotal counts stored annotations.
	AnnotationsSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotations_saved_total",
			Help:      "Total number of annotations saved",
		},
		[]string{"operation"},
	)

	// ValidationFailuresTotal counts rejected submissions.
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected annotation submissions",
		},
		[]string{"operation"},
	)

	// EnrichmentTotal counts enrichment runs.
	EnrichmentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrichment_total",
			Help:      "Total number of search index enrichment runs",
		},
		[]string{"status"},
	)

	// PluginDuration measures enrichment plugin duration.
	PluginDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "enrichment_plugin_duration_seconds",
			Help:      "Duration of enrichment plugins in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"plugin"},
	)

	// ExportsTotal counts exports by format.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Total number of annotation exports",
		},
		[]string{"format"},
	)

	// DuplicateURIsTotal counts resolutions that found more than one annotation.
	DuplicateURIsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_uri_resolutions_total",
			Help:      "Total number of uri resolutions that ignored duplicate annotations",
		},
	)

	// EventsPublishedTotal counts annotation events sent to the stream.
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of annotation events published",
		},
		[]string{"status"},
	)
)

// RecordRequest records one handled HTTP request.
func RecordRequest(method, route, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordSave records a stored annotation. operation is create or update.
func RecordSave(operation string) {
	AnnotationsSavedTotal.WithLabelValues(operation).Inc()
}

// RecordValidationFailure records a rejected submission.
func RecordValidationFailure(operation string) {
	ValidationFailuresTotal.WithLabelValues(operation).Inc()
}

// RecordEnrichment records the outcome of an enrichment run.
func RecordEnrichment(status string) {
	EnrichmentTotal.WithLabelValues(status).Inc()
}

// RecordPlugin records one plugin run.
func RecordPlugin(plugin string, duration float64) {
	PluginDuration.WithLabelValues(plugin).Observe(duration)
}

// RecordExport records an export in the given format.
func RecordExport(format string) {
	ExportsTotal.WithLabelValues(format).Inc()
}

// RecordDuplicateURI records a resolution that skipped duplicates.
func RecordDuplicateURI() {
	DuplicateURIsTotal.Inc()
}

// RecordEventPublish records an event publish attempt.
func RecordEventPublish(status string) {
	EventsPublishedTotal.WithLabelValues(status).Inc()
}
