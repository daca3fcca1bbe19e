// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package models

import (
	"github.com/tomtom215/ascent/internal/climb"
)

// ClimbsRequest submits a precomputed elevation profile.
//
//	{
//	  "points": [{"distance": 0, "elevation": 410}, {"distance": 25, "elevation": 411.2}],
//	  "options": {"min_gradient": 1.0}
//	}
type ClimbsRequest struct {
	Points  []climb.ElevationPoint `json:"points" validate:"required,min=2"`
	Options *climb.Overrides       `json:"options,omitempty"`
}

// RouteRequest submits route geometry. Exactly one of Coordinates or
// Polyline must be set; see Source.
//
// Coordinates are [lon, lat] or [lon, lat, ele] in GeoJSON order. When any
// position lacks an elevation, the server looks the missing ones up.
//
// Polyline is a Google encoded polyline (precision 5). Elevations, when
// given, must have one value per decoded vertex.
type RouteRequest struct {
	Name        string           `json:"name,omitempty" validate:"max=200"`
	Coordinates [][]float64      `json:"coordinates,omitempty" validate:"omitempty,min=2,dive,position"`
	Polyline    string           `json:"polyline,omitempty" validate:"max=1000000"`
	Elevations  []float64        `json:"elevations,omitempty" validate:"omitempty,dive,finite"`
	Options     *climb.Overrides `json:"options,omitempty"`
}

// Route sources reported by RouteRequest.Source.
const (
	SourceCoordinates = "coordinates"
	SourcePolyline    = "polyline"
)

// Source reports which geometry field is populated, or "" when both or
// neither are.
func (r *RouteRequest) Source() string {
	hasCoords, hasPolyline := len(r.Coordinates) > 0, r.Polyline != ""
	switch {
	case hasCoords && !hasPolyline:
		return SourceCoordinates
	case hasPolyline && !hasCoords:
		return SourcePolyline
	}
	return ""
}
