// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package profile

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
)

// FromPolyline decodes a Google encoded polyline (precision 5). elevations is
// either empty, leaving every vertex to be looked up, or has one value per
// decoded vertex.
func FromPolyline(name, encoded string, elevations []float64) (*Track, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: decode polyline: %v", ErrInvalidGeometry, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after polyline", ErrInvalidGeometry, len(rest))
	}
	if len(elevations) != 0 && len(elevations) != len(coords) {
		return nil, fmt.Errorf("%w: %d elevations for %d polyline vertices", ErrInvalidGeometry, len(elevations), len(coords))
	}

	line := make(orb.LineString, len(coords))
	for i, c := range coords {
		// polyline coordinates are [lat, lng]
		line[i] = orb.Point{c[1], c[0]}
	}
	return newTrack(name, line, elevations)
}
