// Package metrics holds the advisor's Prometheus collectors. They register
// with the default registry and are served by the HTTP API at /metrics.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexanderramin/advisor/internal/service"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_recommendations_total",
			Help: "Recommendation requests by outcome status",
		},
		[]string{"status"}, // SUCCESS, NOT_FOUND, ERROR
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_recommend_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	HistoryRowsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_history_rows_imported_total",
			Help: "Academic-history rows stored by successful imports",
		},
	)

	HistoryImportErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_history_import_errors_total",
			Help: "Failed academic-history imports",
		},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_api_requests_total",
			Help: "HTTP API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_api_request_duration_seconds",
			Help:    "HTTP API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

const statusError = "ERROR"

// RecordRecommendation records one recommendation request. status is empty
// when the request failed.
func RecordRecommendation(status string, duration time.Duration) {
	if status == "" {
		status = statusError
	}
	RecommendationsTotal.WithLabelValues(status).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

func RecordImport(rows int, err error) {
	if err != nil {
		HistoryImportErrors.Inc()
		return
	}
	HistoryRowsImported.Add(float64(rows))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Observer feeds service use-case events into the collectors.
type Observer struct{}

func (Observer) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	switch event.Name {
	case "recommend":
		status, _ := event.Fields["status"].(string)
		if event.Err != nil {
			status = ""
		}
		RecordRecommendation(status, event.Duration)
	case "import-history":
		rows, _ := event.Fields["rows"].(int)
		RecordImport(rows, event.Err)
	}
}

var _ service.UseCaseObserver = Observer{}
