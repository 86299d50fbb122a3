// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus
client library, exposing metrics for the repository layer, the API
surface, and the per-response session pipeline (queue build, scoring,
theta updates, stage transitions, oracle content generation).

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Repository (DuckDB) query performance
  - Session lifecycle (start, end, active count)
  - Response scoring and mastery stage transitions
  - Oracle content-generation latency and fallback rate
  - Circuit breaker state transitions (oracle client)
  - Cache hit/miss rates (task cache, bottleneck tracker)

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Usage Example

	import (
	    "github.com/kerem-isiktasli/logos/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    http.Handle("/metrics", promhttp.Handler())
	    metrics.RecordAPIRequest("POST", "/sessions", "200", elapsed)
	}

Recording a scored response:

	start := time.Now()
	result, err := manager.Submit(ctx, sessionID, req)
	metrics.RecordResponseScored(req.Correct, time.Since(start))
	if err == nil && result.StageChanged {
	    metrics.RecordStageTransition("response")
	}

# Cardinality Management

Endpoint labels are normalized (no query parameters, no path IDs); error
kinds are limited to the logoserr.Kind taxonomy rather than raw error
strings, to keep duckdb_query_errors_total's cardinality bounded.
*/
package metrics
