// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package api

import (
	"time"

	"github.com/tomtom215/ascent/internal/cache"
	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/config"
	"github.com/tomtom215/ascent/internal/logging"
	"github.com/tomtom215/ascent/internal/models"
	"github.com/tomtom215/ascent/internal/profile"
)

// Version is reported by the readiness probe. cmd/server overrides it at
// startup with the value injected through -ldflags.
var Version = "dev"

// ElevationProvider fills missing elevations and reports the state of the
// circuit breaker guarding it. *elevation.Client implements it.
type ElevationProvider interface {
	profile.ElevationSource
	State() string
	Available() bool
}

// ResultCache is the analysis cache shared by all requests.
type ResultCache = cache.LRU[*models.AnalysisResponse]

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writers, body decoding, query overrides
//   - handlers_health.go: liveness and readiness probes
//   - handlers_analysis.go: climb detection endpoints and the legend
type Handler struct {
	detector  *climb.Detector
	results   *ResultCache
	elevation ElevationProvider
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// results may be nil to disable caching. elevation may be nil when no
// lookup provider is configured; requests whose geometry lacks elevation
// then fail with MISSING_ELEVATION.
//
// Example:
//
//	handler := api.NewHandler(cfg, detector, results, client)
//	router := api.NewRouter(handler, chiMiddleware)
//	http.ListenAndServe(cfg.Server.Addr(), router.Setup())
func NewHandler(cfg *config.Config, detector *climb.Detector, results *ResultCache, elevation ElevationProvider) *Handler {
	return &Handler{
		detector:  detector,
		results:   results,
		elevation: elevation,
		config:    cfg,
		startTime: time.Now(),
	}
}

// ClearCache drops every cached analysis.
func (h *Handler) ClearCache() {
	if h.results != nil {
		h.results.Clear()
		logging.Info().Msg("Analysis cache cleared")
	}
}

func (h *Handler) maxBodyBytes() int64 {
	if h.config == nil {
		return 0
	}
	return h.config.Server.MaxBodyBytes
}

func (h *Handler) maxPoints() int {
	if h.config == nil {
		return 0
	}
	return h.config.Server.MaxPoints
}
