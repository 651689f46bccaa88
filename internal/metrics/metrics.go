// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
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
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Billboard resolution
	BillboardResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "billboard_resolve_duration_seconds",
			Help:    "Time spent resolving an intelligent billboard",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)

	BillboardPagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billboard_pages_fetched_total",
			Help: "Catalog pages fetched by page walkers",
		},
		[]string{"category"}, // "big", "small"
	)

	BillboardTitlesClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billboard_titles_claimed_total",
			Help: "Titles accepted into a billboard",
		},
		[]string{"category"},
	)

	BillboardKeywordsExtracted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "billboard_keywords_extracted",
			Help:    "Number of keyword ids derived from local sales per resolution",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	BillboardCollaboratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billboard_collaborator_failures_total",
			Help: "Collaborator failures absorbed during resolution",
		},
		[]string{"collaborator"}, // "sales", "catalog_page", "catalog_keywords"
	)

	// TMDb client
	TMDbRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Requests sent to the TMDb API",
		},
		[]string{"endpoint", "status_code"},
	)

	TMDbRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "TMDb API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	TMDbRateLimitRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_rate_limit_retries_total",
			Help: "Requests retried after an HTTP 429 from TMDb",
		},
	)

	// Sales repository
	SalesQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_query_duration_seconds",
			Help:    "Duration of sales repository queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver"},
	)

	SalesQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_query_errors_total",
			Help: "Total number of failed sales repository queries",
		},
		[]string{"driver"},
	)

	// Keyword cache
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordTMDbRequest records one HTTP exchange with TMDb. statusCode is
// "error" when no response was received.
func RecordTMDbRequest(endpoint, statusCode string, duration time.Duration) {
	TMDbRequestsTotal.WithLabelValues(endpoint, statusCode).Inc()
	TMDbRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordSalesQuery records a sales repository query.
func RecordSalesQuery(driver string, duration time.Duration, err error) {
	SalesQueryDuration.WithLabelValues(driver).Observe(duration.Seconds())
	if err != nil {
		SalesQueryErrors.WithLabelValues(driver).Inc()
	}
}

// RecordCacheLookup counts a hit or a miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}
