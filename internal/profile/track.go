// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package profile

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/tomtom215/ascent/internal/climb"
)

var (
	// ErrTooFewPoints is returned for geometry with fewer than two vertices.
	ErrTooFewPoints = errors.New("route needs at least 2 points")

	// ErrNoElevation is returned when a profile is requested from a track
	// that still has vertices without elevation.
	ErrNoElevation = errors.New("route is missing elevation data")

	// ErrInvalidGeometry is returned for malformed or out-of-range coordinates.
	ErrInvalidGeometry = errors.New("invalid route geometry")
)

// Track is route geometry with one elevation per vertex. Missing elevations
// are NaN.
type Track struct {
	Name       string
	Line       orb.LineString
	Elevations []float64
}

// ElevationSource looks up terrain elevation in meters for points given as
// orb.Point{lon, lat}. Results are in input order.
type ElevationSource interface {
	Lookup(ctx context.Context, points []orb.Point) ([]float64, error)
}

// newTrack validates the geometry and pads elevations with NaN.
func newTrack(name string, line orb.LineString, elevations []float64) (*Track, error) {
	if len(line) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(line))
	}
	for i, p := range line {
		if !validLonLat(p) {
			return nil, fmt.Errorf("%w: vertex %d (%f, %f) is out of range", ErrInvalidGeometry, i, p.Lon(), p.Lat())
		}
	}
	if len(elevations) > len(line) {
		return nil, fmt.Errorf("%w: %d elevations for %d vertices", ErrInvalidGeometry, len(elevations), len(line))
	}

	ele := make([]float64, len(line))
	for i := range ele {
		ele[i] = math.NaN()
		if i < len(elevations) {
			ele[i] = elevations[i]
		}
	}
	return &Track{Name: name, Line: line, Elevations: ele}, nil
}

func validLonLat(p orb.Point) bool {
	lon, lat := p.Lon(), p.Lat()
	return !math.IsNaN(lon) && !math.IsNaN(lat) &&
		lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// MissingElevations returns the indexes of vertices without elevation.
func (t *Track) MissingElevations() []int {
	var missing []int
	for i, e := range t.Elevations {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			missing = append(missing, i)
		}
	}
	return missing
}

// HasElevation reports whether every vertex has an elevation.
func (t *Track) HasElevation() bool {
	return len(t.MissingElevations()) == 0
}

// FillElevations looks up every missing elevation from src in a single call.
func (t *Track) FillElevations(ctx context.Context, src ElevationSource) error {
	missing := t.MissingElevations()
	if len(missing) == 0 {
		return nil
	}

	query := make([]orb.Point, len(missing))
	for i, idx := range missing {
		query[i] = t.Line[idx]
	}
	found, err := src.Lookup(ctx, query)
	if err != nil {
		return fmt.Errorf("look up %d elevations: %w", len(query), err)
	}
	if len(found) != len(query) {
		return fmt.Errorf("elevation source returned %d values for %d points", len(found), len(query))
	}
	for i, idx := range missing {
		t.Elevations[idx] = found[i]
	}
	return nil
}

// Length returns the great-circle length of the track in meters.
func (t *Track) Length() float64 {
	d := CumulativeDistances(t.Line)
	return d[len(d)-1]
}

// Profile pairs cumulative distance with elevation for every vertex.
func (t *Track) Profile() ([]climb.ElevationPoint, error) {
	if missing := t.MissingElevations(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %d of %d vertices, first at index %d",
			ErrNoElevation, len(missing), len(t.Line), missing[0])
	}

	distances := CumulativeDistances(t.Line)
	points := make([]climb.ElevationPoint, len(t.Line))
	for i := range points {
		points[i] = climb.ElevationPoint{Distance: distances[i], Elevation: t.Elevations[i]}
	}
	return points, nil
}

// CumulativeDistances returns the Haversine distance in meters from the first
// vertex to each vertex along line.
func CumulativeDistances(line orb.LineString) []float64 {
	out := make([]float64, len(line))
	for i := 1; i < len(line); i++ {
		out[i] = out[i-1] + geo.DistanceHaversine(line[i-1], line[i])
	}
	return out
}

// FromCoordinates builds a track from [lon, lat] or [lon, lat, ele] tuples,
// the GeoJSON position order.
func FromCoordinates(name string, coords [][]float64) (*Track, error) {
	line := make(orb.LineString, len(coords))
	elevations := make([]float64, len(coords))
	for i, c := range coords {
		if len(c) < 2 || len(c) > 3 {
			return nil, fmt.Errorf("%w: coordinate %d has %d values", ErrInvalidGeometry, i, len(c))
		}
		line[i] = orb.Point{c[0], c[1]}
		elevations[i] = math.NaN()
		if len(c) == 3 {
			elevations[i] = c[2]
		}
	}
	return newTrack(name, line, elevations)
}
