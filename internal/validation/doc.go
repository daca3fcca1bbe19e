// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator and turns field errors into
// user-facing messages that fit the API's VALIDATION_ERROR format.
//
// # Quick Start
//
//	var req models.RouteRequest
//	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	    // handle decode error
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Field Names
//
// Errors report the JSON name of a field ("points", "min_gradient") rather
// than the Go name, so messages can be matched against the request body.
//
// # Custom Tags
//
//   - finite: float is neither NaN nor ±Inf
//   - position: []float64 of length 2 or 3 in GeoJSON order (lon, lat, ele)
//     with lon in -180..180 and lat in -90..90
//
// Built-in tags cover the rest: required, min, max, gt, gte, lt, lte, oneof,
// dive.
//
// # Thread Safety
//
// GetValidator initialises the instance once with sync.Once. The validator
// caches struct metadata and is safe for concurrent use.
package validation
