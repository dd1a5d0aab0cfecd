// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track dashboard-specific operations
var (
	// ArticlesByStatus tracks the number of stored articles per workflow state
	ArticlesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_by_status",
			Help: "Number of articles per workflow status",
		},
		[]string{"status"},
	)

	// TransitionsTotal counts status transitions by target status and outcome
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_transitions_total",
			Help: "Total number of article status transitions",
		},
		[]string{"target", "outcome"},
	)

	// SuggestionsTotal counts AI suggestion requests by action and outcome
	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestions_total",
			Help: "Total number of AI suggestion requests",
		},
		[]string{"action", "outcome"},
	)

	// AutoPublishTotal counts articles published by the worker
	AutoPublishTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "autopublish_articles_total",
			Help: "Total number of articles auto-published by the worker",
		},
	)

	// AutoPublishRunDuration measures one auto-publish sweep in seconds
	AutoPublishRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "autopublish_run_duration_seconds",
			Help:    "Duration of one auto-publish sweep in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordTransition records one status transition attempt.
func RecordTransition(target, outcome string) {
	TransitionsTotal.WithLabelValues(target, outcome).Inc()
}

// RecordSuggestion records one AI suggestion attempt.
func RecordSuggestion(action, outcome string) {
	SuggestionsTotal.WithLabelValues(action, outcome).Inc()
}

// UpdateArticleCounts refreshes the per-status article gauges.
func UpdateArticleCounts(counts map[string]int) {
	for status, count := range counts {
		ArticlesByStatus.WithLabelValues(status).Set(float64(count))
	}
}
