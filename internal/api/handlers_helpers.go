// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/logging"
	"github.com/tomtom215/ascent/internal/middleware"
	"github.com/tomtom215/ascent/internal/models"
	"github.com/tomtom215/ascent/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondSuccess wraps data in the success envelope. start is when the
// handler began work; it feeds metadata.query_time_ms.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time, cached bool) {
	resp := models.NewSuccess(data, time.Since(start), cached)
	resp.Metadata.RequestID = middleware.GetRequestID(r.Context())
	respondJSON(w, http.StatusOK, &resp)
}

// respondError sends an error response. err, when set, is logged but never
// returned to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		// Sanitize error output to prevent log injection attacks
		event.Str("code", sanitizeLogValue(apiErr.Code)).
			Str("error", sanitizeLogValue(err.Error())).
			Int("status", status).
			Msg("API Error")
	}

	resp := models.NewError(apiErr.Code, apiErr.Message, apiErr.Details)
	resp.Metadata.RequestID = middleware.GetRequestID(r.Context())
	respondJSON(w, status, &resp)
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	if validationErr := validation.ValidateStruct(v); validationErr != nil {
		return validationErr.ToAPIError()
	}
	return nil
}

// errBodyTooLarge is returned by readBody when the request exceeds the limit.
var errBodyTooLarge = errors.New("request body too large")

// readBody reads the whole request body, capped at limit bytes.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", errBodyTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return data, nil
}

// decodeJSON reads a size-limited body and unmarshals it into v. On failure
// it writes the error response and returns false.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	data, err := readBody(w, r, h.maxBodyBytes())
	if err != nil {
		h.respondBodyError(w, r, err)
		return false
	}
	if len(data) == 0 {
		rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Request body is empty", nil, "invalid_json")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Request body is not valid JSON", err, "invalid_json")
		return false
	}
	return true
}

func (h *Handler) respondBodyError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBodyTooLarge) {
		rejectProfile(w, r, http.StatusRequestEntityTooLarge, models.ErrCodeBodyTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", h.maxBodyBytes()), err, "body_too_large")
		return
	}
	rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Failed to read request body", err, "invalid_json")
}

// overrideParams maps query parameters to climb.Overrides fields for the
// endpoints whose body is a document rather than a JSON envelope.
var overrideParams = []string{
	"smoothing_window",
	"min_gradient",
	"min_length",
	"max_gap",
	"min_downhill_gradient",
	"min_downhill_length",
	"look_ahead",
	"min_average_gradient",
	"score_tie_tolerance",
}

// overridesFromQuery parses threshold overrides from the URL query. It returns
// nil when no override parameter is present.
func overridesFromQuery(r *http.Request) (*climb.Overrides, error) {
	query := r.URL.Query()
	o := &climb.Overrides{}
	for _, name := range overrideParams {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		if name == "smoothing_window" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%s must be an integer", name)
			}
			o.SmoothingWindow = &n
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", name)
		}
		setOverride(o, name, v)
	}
	if o.IsZero() {
		return nil, nil
	}
	return o, nil
}

func setOverride(o *climb.Overrides, name string, v float64) {
	switch name {
	case "min_gradient":
		o.MinGradient = &v
	case "min_length":
		o.MinLength = &v
	case "max_gap":
		o.MaxGap = &v
	case "min_downhill_gradient":
		o.MinDownhillGradient = &v
	case "min_downhill_length":
		o.MinDownhillLength = &v
	case "look_ahead":
		o.LookAhead = &v
	case "min_average_gradient":
		o.MinAverageGradient = &v
	case "score_tie_tolerance":
		o.ScoreTieTolerance = &v
	}
}
