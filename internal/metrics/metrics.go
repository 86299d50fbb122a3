// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kerem-isiktasli/logos/internal/logoserr"
)

// Prometheus Metrics Integration for Production Observability
// This package instruments:
// - Repository query performance (DuckDB)
// - API endpoint latency and throughput
// - Session lifecycle and response scoring
// - Oracle content-generation latency and fallback rate
// - Circuit breaker state transitions
// - Cache efficiency (task cache, bottleneck tracker)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_kind"},
	)

	DBConnectionPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "duckdb_connection_pool_size",
			Help: "Current number of database connections in use",
		},
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
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Session Lifecycle Metrics
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_started_total",
			Help: "Total number of learning sessions started",
		},
	)

	SessionsEnded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_ended_total",
			Help: "Total number of learning sessions ended",
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Current number of active session actors",
		},
	)

	SessionQueueBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "session_queue_build_duration_seconds",
			Help:    "Duration of the state-to-priority queue build at session start",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Response Scoring Metrics
	ResponsesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "responses_scored_total",
			Help: "Total number of responses scored",
		},
		[]string{"correct"}, // "true", "false"
	)

	ResponseScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_scoring_duration_seconds",
			Help:    "Duration of the scoring-to-update pipeline per response",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	StageTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stage_transitions_total",
			Help: "Total number of mastery stage transitions",
		},
		[]string{"trigger"}, // "promotion", "regression"
	)

	ThetaUpdateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "theta_update_duration_seconds",
			Help:    "Duration of a sequential EAP theta update",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	BottleneckDetections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bottleneck_detections_total",
			Help: "Total number of primary-bottleneck detections by component",
		},
		[]string{"component"},
	)

	// Oracle (content generation) Metrics
	OracleRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_requests_total",
			Help: "Total number of oracle content-generation requests",
		},
		[]string{"outcome"}, // "generated", "fallback", "cached", "error"
	)

	OracleRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "oracle_request_duration_seconds",
			Help:    "Duration of oracle content-generation requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "task", "bottleneck"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (LRU or TTL)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics (oracle client)
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
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a repository query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, errorKind(err)).Inc()
	}
}

// errorKind extracts the logoserr.Kind string from err, or "unknown" if
// err does not carry one.
func errorKind(err error) string {
	var le *logoserr.Error
	if errors.As(err, &le) {
		return le.Kind.String()
	}
	type kinder interface{ Kind() string }
	if k, ok := err.(kinder); ok {
		return k.Kind()
	}
	return "unknown"
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSessionStarted records a session start and increments the active gauge.
func RecordSessionStarted(queueBuildDuration time.Duration) {
	SessionsStarted.Inc()
	SessionsActive.Inc()
	SessionQueueBuildDuration.Observe(queueBuildDuration.Seconds())
}

// RecordSessionEnded records a session end and decrements the active gauge.
func RecordSessionEnded() {
	SessionsEnded.Inc()
	SessionsActive.Dec()
}

// RecordResponseScored records one scored response and the pipeline's duration.
func RecordResponseScored(correct bool, duration time.Duration) {
	correctStr := "false"
	if correct {
		correctStr = "true"
	}
	ResponsesScored.WithLabelValues(correctStr).Inc()
	ResponseScoringDuration.Observe(duration.Seconds())
}

// RecordStageTransition records a mastery stage transition by trigger.
func RecordStageTransition(trigger string) {
	StageTransitionsTotal.WithLabelValues(trigger).Inc()
}

// RecordThetaUpdate records the duration of a sequential EAP update.
func RecordThetaUpdate(duration time.Duration) {
	ThetaUpdateDuration.Observe(duration.Seconds())
}

// RecordBottleneckDetection records a primary-bottleneck detection for one component.
func RecordBottleneckDetection(component string) {
	BottleneckDetections.WithLabelValues(component).Inc()
}

// RecordOracleRequest records an oracle content-generation request.
func RecordOracleRequest(outcome string, duration time.Duration) {
	OracleRequestsTotal.WithLabelValues(outcome).Inc()
	OracleRequestDuration.Observe(duration.Seconds())
}

// RecordCacheHit records a cache hit for the given cache type.
func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss records a cache miss for the given cache type.
func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordCacheEviction records a cache eviction for the given cache type.
func RecordCacheEviction(cacheType string) {
	CacheEvictions.WithLabelValues(cacheType).Inc()
}

// SetCacheSize sets the current entry count for the given cache type.
func SetCacheSize(cacheType string, size int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
}

// RecordCircuitBreakerTransition records a state transition for a named circuit breaker.
func RecordCircuitBreakerTransition(name, fromState, toState string, newState float64) {
	CircuitBreakerTransitions.WithLabelValues(name, fromState, toState).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(newState)
}

// RecordCircuitBreakerRequest records the outcome of a request routed through a circuit breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}
