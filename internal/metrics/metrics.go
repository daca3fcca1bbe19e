// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
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
			Help: "Number of API requests currently being processed",
		},
	)

	// Detection Metrics
	DetectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "climb_detection_duration_seconds",
			Help: "Duration of the climb detection pipeline in seconds",
			// typical profiles finish well under a millisecond
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.25},
		},
		[]string{"source"},
	)

	ProfilePoints = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "climb_profile_points",
			Help:    "Number of samples per analyzed elevation profile",
			Buckets: prometheus.ExponentialBuckets(10, 4, 7), // 10 .. 40960
		},
	)

	ClimbsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climbs_detected_total",
			Help: "Total number of climbs detected, by category",
		},
		[]string{"category"},
	)

	ProfilesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climb_profiles_rejected_total",
			Help: "Total number of profiles rejected before detection",
		},
		[]string{"reason"}, // "invalid_profile", "invalid_geometry", "missing_elevation", "too_large"
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_cache_hits_total",
			Help: "Total number of analysis cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_cache_misses_total",
			Help: "Total number of analysis cache misses",
		},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_cache_evictions_total",
			Help: "Total number of analysis cache evictions",
		},
		[]string{"reason"}, // "capacity", "expired"
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analysis_cache_entries",
			Help: "Current number of cached analyses",
		},
	)

	// Elevation Provider Metrics
	ElevationLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elevation_lookups_total",
			Help: "Total number of elevation provider batch requests",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	ElevationLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "elevation_lookup_duration_seconds",
			Help:    "Duration of elevation provider batch requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ElevationPointsLookedUp = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "elevation_points_looked_up_total",
			Help: "Total number of coordinates sent to the elevation provider",
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

// RecordDetection records one pipeline run over a profile of n points and
// counts the climbs it found by category name.
func RecordDetection(source string, n int, categories []string, duration time.Duration) {
	DetectionDuration.WithLabelValues(source).Observe(duration.Seconds())
	ProfilePoints.Observe(float64(n))
	for _, c := range categories {
		ClimbsDetected.WithLabelValues(c).Inc()
	}
}

// RecordRejectedProfile counts a profile refused before detection.
func RecordRejectedProfile(reason string) {
	ProfilesRejected.WithLabelValues(reason).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordElevationLookup records one provider batch request.
func RecordElevationLookup(result string, points int, duration time.Duration) {
	ElevationLookups.WithLabelValues(result).Inc()
	if result != "rejected" {
		ElevationLookupDuration.Observe(duration.Seconds())
		ElevationPointsLookedUp.Add(float64(points))
	}
}
