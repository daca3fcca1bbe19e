// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - Compression: gzip for clients that accept it. Annotated profiles are
    large and repetitive, so they shrink well.
  - Request ID: UUID-based request tracking, propagated into the logging
    context as request_id and correlation_id
  - Prometheus Metrics: request count, latency and in-flight gauge

Every middleware has the http.HandlerFunc -> http.HandlerFunc shape. The
api package adapts them to chi's func(http.Handler) http.Handler.

Middleware Stack:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Use(chiMiddleware(middleware.Compression))
	    ...
	})

Metrics are labelled with the chi route pattern (for example
/api/v1/routes/gpx) rather than the raw path, so unknown paths cannot grow
label cardinality.
*/
package middleware
