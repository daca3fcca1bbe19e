// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package models

import (
	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/profile"
)

// AnalysisResponse is the data payload of every detection endpoint.
// Summary and Name are only set for route-based requests. The API always
// fills Points and Segments; the CLI leaves them out unless asked.
type AnalysisResponse struct {
	Name     string                  `json:"name,omitempty"`
	Climbs   []climb.Climb           `json:"climbs"`
	Points   []climb.AnnotatedPoint  `json:"points,omitempty"`
	Segments []climb.GradientSegment `json:"segments,omitempty"`
	Summary  *profile.Summary        `json:"summary,omitempty"`
	Config   climb.Config            `json:"config"`
}

// NewAnalysisResponse copies an analysis into a response payload.
func NewAnalysisResponse(a climb.Analysis, cfg climb.Config) *AnalysisResponse {
	return &AnalysisResponse{
		Climbs:   a.Climbs,
		Points:   a.Points,
		Segments: a.Segments,
		Config:   cfg,
	}
}

// LegendResponse lists the rendering tables.
type LegendResponse struct {
	Categories    []climb.CategoryInfo `json:"categories"`
	GradientBands []climb.BandInfo     `json:"gradient_bands"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Uptime    string            `json:"uptime,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
	CacheSize int               `json:"cache_size,omitempty"`
}
