// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/ascent/internal/cache"
	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/elevation"
	"github.com/tomtom215/ascent/internal/metrics"
	"github.com/tomtom215/ascent/internal/models"
	"github.com/tomtom215/ascent/internal/profile"
)

// Metric labels for the source of an analyzed profile.
const (
	sourcePoints      = "points"
	sourceCoordinates = "coordinates"
	sourcePolyline    = "polyline"
	sourceGPX         = "gpx"
	sourceGeoJSON     = "geojson"
)

// analysisRequest is the normalized input of every analysis endpoint.
// Exactly one of points and track is set.
type analysisRequest struct {
	name    string
	source  string
	points  []climb.ElevationPoint
	track   *profile.Track
	options *climb.Overrides
}

// rejectProfile counts a rejected request and writes the error response.
func rejectProfile(w http.ResponseWriter, r *http.Request, status int, code, message string, err error, reason string) {
	metrics.RecordRejectedProfile(reason)
	respondError(w, r, status, code, message, err)
}

// Climbs detects climbs in a distance/elevation profile.
//
// POST /api/v1/climbs
//
//	{"points":[{"distance":0,"elevation":120.5},...],"options":{"min_gradient":1}}
func (h *Handler) Climbs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ClimbsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRejectedProfile("validation")
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	h.analyze(w, r, start, &analysisRequest{
		source:  sourcePoints,
		points:  req.Points,
		options: req.Options,
	})
}

// AnalyzeRoute detects climbs along route geometry given either as
// [lon, lat, (ele)] coordinates or as an encoded polyline with a parallel
// elevations array. Missing elevations are looked up when a provider is
// configured.
//
// POST /api/v1/routes/analyze
func (h *Handler) AnalyzeRoute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RouteRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRejectedProfile("validation")
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	var (
		track *profile.Track
		err   error
	)
	source := req.Source()
	switch source {
	case models.SourceCoordinates:
		track, err = profile.FromCoordinates(req.Name, req.Coordinates)
	case models.SourcePolyline:
		track, err = profile.FromPolyline(req.Name, req.Polyline, req.Elevations)
	default:
		rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeValidation,
			"Exactly one of coordinates or polyline is required", nil, "validation")
		return
	}
	if err != nil {
		h.respondGeometryError(w, r, err)
		return
	}

	h.analyze(w, r, start, &analysisRequest{
		name:    req.Name,
		source:  source,
		track:   track,
		options: req.Options,
	})
}

// AnalyzeGPX detects climbs in a raw GPX document. Threshold overrides are
// read from the query string.
//
// POST /api/v1/routes/gpx?min_gradient=1
func (h *Handler) AnalyzeGPX(w http.ResponseWriter, r *http.Request) {
	h.analyzeDocument(w, r, sourceGPX, profile.FromGPX)
}

// AnalyzeGeoJSON detects climbs in a GeoJSON LineString, Feature or
// FeatureCollection. Threshold overrides are read from the query string.
//
// POST /api/v1/routes/geojson
func (h *Handler) AnalyzeGeoJSON(w http.ResponseWriter, r *http.Request) {
	h.analyzeDocument(w, r, sourceGeoJSON, profile.FromGeoJSON)
}

func (h *Handler) analyzeDocument(w http.ResponseWriter, r *http.Request, source string, parse func([]byte) (*profile.Track, error)) {
	start := time.Now()

	options, err := overridesFromQuery(r)
	if err != nil {
		rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil, "validation")
		return
	}
	if options != nil {
		if apiErr := validateRequest(options); apiErr != nil {
			metrics.RecordRejectedProfile("validation")
			respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
			return
		}
	}

	body, err := readBody(w, r, h.maxBodyBytes())
	if err != nil {
		h.respondBodyError(w, r, err)
		return
	}
	if len(body) == 0 {
		rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeInvalidGeometry, "Request body is empty", nil, "invalid_geometry")
		return
	}

	track, err := parse(body)
	if err != nil {
		h.respondGeometryError(w, r, err)
		return
	}

	h.analyze(w, r, start, &analysisRequest{
		name:    track.Name,
		source:  source,
		track:   track,
		options: options,
	})
}

func (h *Handler) respondGeometryError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, profile.ErrTooFewPoints) {
		rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeInvalidGeometry,
			"Route needs at least 2 points", err, "invalid_geometry")
		return
	}
	rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeInvalidGeometry, err.Error(), err, "invalid_geometry")
}

// analyze runs the shared pipeline: resolve thresholds, complete the
// profile, consult the cache, detect and respond.
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request, start time.Time, req *analysisRequest) {
	detector, err := h.detector.WithOverrides(req.options)
	if err != nil {
		rejectProfile(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil, "validation")
		return
	}

	size := len(req.points)
	if req.track != nil {
		size = len(req.track.Line)
	}
	if limit := h.maxPoints(); limit > 0 && size > limit {
		rejectProfile(w, r, http.StatusRequestEntityTooLarge, models.ErrCodeTooManyPoints,
			fmt.Sprintf("Profile has %d points, the limit is %d", size, limit), nil, "too_many_points")
		return
	}

	points := req.points
	if req.track != nil {
		if !h.completeElevations(w, r, req.track) {
			return
		}
		if points, err = req.track.Profile(); err != nil {
			rejectProfile(w, r, http.StatusUnprocessableEntity, models.ErrCodeMissingElevation, err.Error(), nil, "missing_elevation")
			return
		}
	}

	var invalid *climb.InvalidInputError
	if err := climb.Validate(points); errors.As(err, &invalid) {
		metrics.RecordRejectedProfile("invalid_profile")
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    models.ErrCodeInvalidProfile,
			Message: invalid.Error(),
			Details: map[string]interface{}{
				"index":  invalid.Index,
				"reason": invalid.Reason,
			},
		}, nil)
		return
	}

	cfg := detector.Config()
	key := cache.GenerateKey("analysis", req.source, req.name, points, cfg)
	if h.results != nil {
		if cached, ok := h.results.Get(key); ok {
			respondSuccess(w, r, cached, start, true)
			return
		}
	}

	detectStart := time.Now()
	analysis := detector.Analyze(points)
	categories := make([]string, len(analysis.Climbs))
	for i := range analysis.Climbs {
		categories[i] = analysis.Climbs[i].Category.String()
	}
	metrics.RecordDetection(req.source, len(points), categories, time.Since(detectStart))

	resp := models.NewAnalysisResponse(analysis, cfg)
	resp.Name = req.name
	if req.track != nil {
		summary := profile.Summarize(points)
		resp.Summary = &summary
	}

	if h.results != nil {
		h.results.Add(key, resp)
	}
	respondSuccess(w, r, resp, start, false)
}

// completeElevations fills missing elevations from the provider. It writes
// the error response and returns false when that is not possible.
func (h *Handler) completeElevations(w http.ResponseWriter, r *http.Request, track *profile.Track) bool {
	missing := len(track.MissingElevations())
	if missing == 0 {
		return true
	}
	if h.elevation == nil {
		rejectProfile(w, r, http.StatusUnprocessableEntity, models.ErrCodeMissingElevation,
			fmt.Sprintf("%d of %d points have no elevation and no elevation provider is configured", missing, len(track.Line)),
			nil, "missing_elevation")
		return false
	}

	if err := track.FillElevations(r.Context(), h.elevation); err != nil {
		if errors.Is(err, elevation.ErrProviderUnavailable) {
			w.Header().Set("Retry-After", "30")
			respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeProviderDown,
				"Elevation provider is temporarily unavailable", err)
			return false
		}
		respondError(w, r, http.StatusBadGateway, models.ErrCodeProviderFailed, "Elevation lookup failed", err)
		return false
	}
	return true
}

// Categories returns the climb category and gradient band legend.
//
// GET /api/v1/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, models.LegendResponse{
		Categories:    climb.Categories(),
		GradientBands: climb.GradientBands(),
	}, start, false)
}
