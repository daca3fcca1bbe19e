// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package profile

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/tkrajina/gpxgo/gpx"
)

// FromGPX parses a GPX document. Track segments are concatenated in document
// order; if the file has no track points its routes are used instead.
// Points without <ele> keep a NaN elevation.
func FromGPX(data []byte) (*Track, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse gpx: %v", ErrInvalidGeometry, err)
	}

	name := doc.Name
	var (
		line       orb.LineString
		elevations []float64
	)
	add := func(p *gpx.GPXPoint) {
		line = append(line, orb.Point{p.Longitude, p.Latitude})
		if p.Elevation.NotNull() {
			elevations = append(elevations, p.Elevation.Value())
		} else {
			elevations = append(elevations, math.NaN())
		}
	}

	for ti := range doc.Tracks {
		trk := &doc.Tracks[ti]
		if name == "" {
			name = trk.Name
		}
		for si := range trk.Segments {
			for pi := range trk.Segments[si].Points {
				add(&trk.Segments[si].Points[pi])
			}
		}
	}

	if len(line) == 0 {
		for ri := range doc.Routes {
			rte := &doc.Routes[ri]
			if name == "" {
				name = rte.Name
			}
			for pi := range rte.Points {
				add(&rte.Points[pi])
			}
		}
	}

	return newTrack(name, line, elevations)
}
