// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// profileBuilder builds a profile from straight legs sampled every step meters.
type profileBuilder struct {
	step   float64
	points []ElevationPoint
}

func newProfile(step, startElevation float64) *profileBuilder {
	return &profileBuilder{
		step:   step,
		points: []ElevationPoint{{Distance: 0, Elevation: startElevation}},
	}
}

// leg appends a straight leg of the given length and gradient in percent.
func (b *profileBuilder) leg(length, gradient float64) *profileBuilder {
	origin := b.points[len(b.points)-1]
	n := int(math.Round(length / b.step))
	for k := 1; k <= n; k++ {
		d := float64(k) * b.step
		b.points = append(b.points, ElevationPoint{
			Distance:  origin.Distance + d,
			Elevation: origin.Elevation + d*gradient/100,
		})
	}
	return b
}

func (b *profileBuilder) build() []ElevationPoint {
	return b.points
}

// rollingProfile is a deterministic hilly profile with sensor noise.
func rollingProfile(seed int64, length, step float64) []ElevationPoint {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test data
	n := int(length/step) + 1
	points := make([]ElevationPoint, n)
	for i := range points {
		d := float64(i) * step
		points[i] = ElevationPoint{
			Distance: d,
			Elevation: 400 +
				250*math.Sin(d/4000) +
				80*math.Sin(d/900+1.3) +
				rng.NormFloat64()*1.5,
		}
	}
	return points
}

func findPoint(t *testing.T, points []ElevationPoint, distance float64) int {
	t.Helper()
	for i, p := range points {
		if p.Distance == distance {
			return i
		}
	}
	t.Fatalf("no point at distance %.1f", distance)
	return -1
}
