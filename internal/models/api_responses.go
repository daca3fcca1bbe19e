// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidProfile    = "INVALID_PROFILE"
	ErrCodeInvalidGeometry   = "INVALID_GEOMETRY"
	ErrCodeMissingElevation  = "MISSING_ELEVATION"
	ErrCodeTooManyPoints     = "TOO_MANY_POINTS"
	ErrCodeBodyTooLarge      = "BODY_TOO_LARGE"
	ErrCodeProviderDown      = "ELEVATION_PROVIDER_UNAVAILABLE"
	ErrCodeProviderFailed    = "ELEVATION_LOOKUP_FAILED"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// APIResponse is the envelope for every JSON response.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"climbs": [...], "points": [...], "segments": [...]},
//	  "metadata": {
//	    "timestamp": "2026-06-01T08:00:00Z",
//	    "query_time_ms": 4,
//	    "cached": false
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "INVALID_PROFILE",
//	    "message": "distance decreases at index 12",
//	    "details": {"index": 12}
//	  },
//	  "metadata": {"timestamp": "2026-06-01T08:00:00Z", "query_time_ms": 0, "cached": false}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache provenance. QueryTimeMS is the time
// spent producing the data; it is 0 for cached responses.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms"`
	Cached      bool      `json:"cached"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error code, a human message and optional
// context such as the offending field or index.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSuccess wraps data in a success envelope stamped with now.
func NewSuccess(data interface{}, queryTime time.Duration, cached bool) APIResponse {
	return APIResponse{
		Status: StatusSuccess,
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: queryTime.Milliseconds(),
			Cached:      cached,
		},
	}
}

// NewError builds an error envelope.
func NewError(code, message string, details map[string]interface{}) APIResponse {
	return APIResponse{
		Status: StatusError,
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
