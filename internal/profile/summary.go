// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package profile

import "github.com/tomtom215/ascent/internal/climb"

// Summary holds whole-route statistics computed from raw samples.
type Summary struct {
	Points         int     `json:"points"`
	TotalDistance  float64 `json:"total_distance"`
	TotalAscent    float64 `json:"total_ascent"`
	TotalDescent   float64 `json:"total_descent"`
	MinElevation   float64 `json:"min_elevation"`
	MaxElevation   float64 `json:"max_elevation"`
	StartElevation float64 `json:"start_elevation"`
	EndElevation   float64 `json:"end_elevation"`
}

// Summarize sums every rise and drop between consecutive samples. Descent is
// reported as a positive number.
func Summarize(points []climb.ElevationPoint) Summary {
	s := Summary{Points: len(points)}
	if len(points) == 0 {
		return s
	}

	first, last := points[0], points[len(points)-1]
	s.TotalDistance = last.Distance - first.Distance
	s.StartElevation = first.Elevation
	s.EndElevation = last.Elevation
	s.MinElevation = first.Elevation
	s.MaxElevation = first.Elevation

	for i := 1; i < len(points); i++ {
		e := points[i].Elevation
		if delta := e - points[i-1].Elevation; delta > 0 {
			s.TotalAscent += delta
		} else {
			s.TotalDescent -= delta
		}
		s.MinElevation = min(s.MinElevation, e)
		s.MaxElevation = max(s.MaxElevation, e)
	}
	return s
}
