// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package metrics registers Ascent's Prometheus collectors.

# Overview

Collectors are package-level promauto variables grouped by concern:
  - HTTP request count, latency and in-flight requests
  - Climb detection duration, profile sizes and detected climbs by category
  - Analysis cache hits, misses and size
  - Elevation lookups and the circuit breaker around them

Record* helpers keep label handling in one place so call sites stay short.

# Metrics Endpoint

Metrics are exposed in Prometheus text format:

	curl http://localhost:3857/metrics

# Example Queries

	# p95 detection time
	histogram_quantile(0.95, rate(climb_detection_duration_seconds_bucket[5m]))

	# HC climbs found per minute
	rate(climbs_detected_total{category="HC"}[1m]) * 60

	# analysis cache hit ratio
	rate(analysis_cache_hits_total[5m]) /
	  (rate(analysis_cache_hits_total[5m]) + rate(analysis_cache_misses_total[5m]))
*/
package metrics
