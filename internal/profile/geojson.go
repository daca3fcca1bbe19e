// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package profile

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

// FromGeoJSON parses a FeatureCollection, Feature or bare geometry and uses
// the first LineString or MultiLineString it finds. MultiLineString parts are
// joined in order.
//
// orb points are two-dimensional, so elevations are read from the third
// position value of the raw coordinates with gjson.
func FromGeoJSON(data []byte) (*Track, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed geojson", ErrInvalidGeometry)
	}
	root := gjson.ParseBytes(data)

	switch kind := root.Get("type").String(); kind {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		for i, f := range fc.Features {
			if isLinear(f.Geometry) {
				raw := root.Get(fmt.Sprintf("features.%d.geometry.coordinates", i))
				return fromLinear(featureName(f), f.Geometry, raw)
			}
		}
		return nil, fmt.Errorf("%w: no LineString feature in collection", ErrInvalidGeometry)

	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		if !isLinear(f.Geometry) {
			return nil, fmt.Errorf("%w: feature geometry is %s", ErrInvalidGeometry, geometryType(f.Geometry))
		}
		return fromLinear(featureName(f), f.Geometry, root.Get("geometry.coordinates"))

	case "LineString", "MultiLineString":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		return fromLinear("", g.Geometry(), root.Get("coordinates"))

	default:
		return nil, fmt.Errorf("%w: unsupported geojson type %q", ErrInvalidGeometry, kind)
	}
}

func isLinear(g orb.Geometry) bool {
	switch g.(type) {
	case orb.LineString, orb.MultiLineString:
		return true
	}
	return false
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "null"
	}
	return g.GeoJSONType()
}

func featureName(f *geojson.Feature) string {
	for _, key := range []string{"name", "title"} {
		if name := f.Properties.MustString(key, ""); name != "" {
			return name
		}
	}
	return ""
}

// fromLinear flattens the geometry and pulls elevations from the parallel raw
// coordinate JSON.
func fromLinear(name string, g orb.Geometry, raw gjson.Result) (*Track, error) {
	var (
		line   orb.LineString
		coords []gjson.Result
	)
	switch geom := g.(type) {
	case orb.LineString:
		line = geom
		coords = raw.Array()
	case orb.MultiLineString:
		for _, part := range geom {
			line = append(line, part...)
		}
		for _, part := range raw.Array() {
			coords = append(coords, part.Array()...)
		}
	}

	if len(coords) != len(line) {
		return nil, fmt.Errorf("%w: %d raw coordinates for %d points", ErrInvalidGeometry, len(coords), len(line))
	}

	elevations := make([]float64, len(line))
	for i, c := range coords {
		elevations[i] = math.NaN()
		if values := c.Array(); len(values) >= 3 && values[2].Type == gjson.Number {
			elevations[i] = values[2].Float()
		}
	}
	return newTrack(name, line, elevations)
}
