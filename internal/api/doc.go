// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package api provides the HTTP interface for Ascent.

Routes are served by a chi router (see NewRouter). Every response uses the
models.APIResponse envelope:

	{"status":"success","data":{...},"metadata":{"timestamp":"...","query_time_ms":3,"cached":false}}
	{"status":"error","error":{"code":"INVALID_PROFILE","message":"..."},"metadata":{...}}

# Endpoints

	GET  /api/v1/health/live     liveness probe
	GET  /api/v1/health/ready    readiness probe, includes elevation breaker state
	POST /api/v1/climbs          detect climbs in a distance/elevation profile
	POST /api/v1/routes/analyze  coordinates or polyline with optional elevations
	POST /api/v1/routes/gpx      raw GPX document
	POST /api/v1/routes/geojson  GeoJSON LineString, Feature or FeatureCollection
	GET  /api/v1/categories      category and gradient band legend
	GET  /metrics                Prometheus exposition

Analysis requests accept an optional "options" object overriding individual
climb thresholds for that request only. Route endpoints read overrides from
query parameters because their bodies are documents, not JSON envelopes.

Results are cached by a digest of the profile and the effective thresholds;
cached responses report metadata.cached=true.

# Middleware

Global: RealIP, Recoverer, request ID, CORS. The /api/v1 group adds a per-IP
rate limit (go-chi/httprate), Prometheus request metrics and gzip compression.
*/
package api
