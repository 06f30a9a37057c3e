// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Graph query performance (Neo4j)
// - API endpoint latency and throughput
// - Recommendation scoring
// - CSV import pipeline
// - Circuit breaker state

var (
	// Graph Query Metrics
	GraphQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graph_query_duration_seconds",
			Help:    "Duration of Neo4j queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	GraphQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_query_errors_total",
			Help: "Total number of Neo4j query errors",
		},
		[]string{"operation"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end duration of recommendation scoring in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendationEmpty = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_empty_total",
			Help: "Recommendation requests that returned no results",
		},
	)

	// Import Pipeline Metrics
	ImportRecordsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_records_processed_total",
			Help: "Total number of catalog records imported",
		},
	)

	ImportErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_errors_total",
			Help: "Total number of records that failed to import",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordGraphQuery records a graph query metric.
func RecordGraphQuery(operation string, duration time.Duration, err error) {
	GraphQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		GraphQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation records a recommendation request metric.
func RecordRecommendation(duration time.Duration, resultCount int) {
	RecommendationRequests.Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if resultCount == 0 {
		RecommendationEmpty.Inc()
	}
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
