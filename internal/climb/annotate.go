// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import "sort"

// Annotate decorates every sample with its gradient band and, where the
// sample falls inside a climb, that climb's category. Gradient is measured to
// the next sample; the last sample inherits the final pair's gradient.
// Climbs are applied in slice order, so a later climb wins where two overlap.
func Annotate(points []ElevationPoint, climbs []Climb) []AnnotatedPoint {
	out := make([]AnnotatedPoint, len(points))
	for i, p := range points {
		g := localGradient(points, i)
		band := BandFor(g)
		out[i] = AnnotatedPoint{
			Distance:      p.Distance,
			Elevation:     p.Elevation,
			Gradient:      g,
			GradientBand:  band,
			GradientColor: band.Color(),
			ClimbCategory: CategoryNone,
			ClimbColor:    TransparentColor,
		}
	}

	for ci := range climbs {
		c := &climbs[ci]
		first := sort.Search(len(out), func(i int) bool {
			return out[i].Distance >= c.StartPoint.Distance
		})
		for i := first; i < len(out) && out[i].Distance <= c.EndPoint.Distance; i++ {
			out[i].ClimbCategory = c.Category
			out[i].ClimbColor = c.Color
		}
	}
	return out
}

// Segments groups consecutive annotated points that share a gradient band.
// A run starting at point a and ending at point b spans from a to the sample
// after b, which is where b's gradient stops applying.
func Segments(points []AnnotatedPoint) []GradientSegment {
	segments := []GradientSegment{}
	for a := 0; a < len(points); {
		b := a
		for b+1 < len(points) && points[b+1].GradientBand == points[a].GradientBand {
			b++
		}
		e := min(b+1, len(points)-1)

		seg := GradientSegment{
			StartDistance: points[a].Distance,
			EndDistance:   points[e].Distance,
			Band:          points[a].GradientBand,
			Color:         points[a].GradientColor,
			PointCount:    b - a + 1,
		}
		if run := points[e].Distance - points[a].Distance; run > 0 {
			seg.AverageGradient = (points[e].Elevation - points[a].Elevation) / run * 100
		} else {
			seg.AverageGradient = points[a].Gradient
		}
		segments = append(segments, seg)
		a = b + 1
	}
	return segments
}
