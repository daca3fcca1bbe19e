// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid elevation profile")

// InvalidInputError describes the first malformed sample found by Validate.
type InvalidInputError struct {
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: point %d: %s", ErrInvalidInput, e.Index, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validate checks that a profile has at least two samples, finite values,
// non-negative distances and non-decreasing distances. Detect returns no
// climbs for anything Validate rejects other than a negative distance;
// Validate exists for callers that need to know why.
func Validate(points []ElevationPoint) error {
	if len(points) < 2 {
		return &InvalidInputError{Index: -1, Reason: fmt.Sprintf("need at least 2 points, got %d", len(points))}
	}
	for i, p := range points {
		if !isFinite(p.Distance) {
			return &InvalidInputError{Index: i, Reason: "distance is not finite"}
		}
		if !isFinite(p.Elevation) {
			return &InvalidInputError{Index: i, Reason: "elevation is not finite"}
		}
		if p.Distance < 0 {
			return &InvalidInputError{Index: i, Reason: fmt.Sprintf("distance %.2f is negative", p.Distance)}
		}
		if i > 0 && p.Distance < points[i-1].Distance {
			return &InvalidInputError{
				Index:  i,
				Reason: fmt.Sprintf("distance %.2f decreases from %.2f", p.Distance, points[i-1].Distance),
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// wellFormed reports whether the pipeline can run on points at all: at least
// two finite samples with non-decreasing distance. Binary searches over the
// series depend on the ordering.
func wellFormed(points []ElevationPoint) bool {
	if len(points) < 2 {
		return false
	}
	for i, p := range points {
		if !isFinite(p.Distance) || !isFinite(p.Elevation) {
			return false
		}
		if i > 0 && p.Distance < points[i-1].Distance {
			return false
		}
	}
	return true
}

// Gradient returns the gradient in percent from a to b. Pairs that do not
// advance in distance have a gradient of zero.
func Gradient(a, b ElevationPoint) float64 {
	run := b.Distance - a.Distance
	if run <= 0 {
		return 0
	}
	return (b.Elevation - a.Elevation) / run * 100
}

// localGradient is the gradient from points[i] to the next sample. The last
// sample inherits the gradient of the final pair.
func localGradient(points []ElevationPoint, i int) float64 {
	switch {
	case len(points) < 2:
		return 0
	case i >= len(points)-1:
		return Gradient(points[len(points)-2], points[len(points)-1])
	default:
		return Gradient(points[i], points[i+1])
	}
}

// DistanceIndex answers "first sample at or beyond distance d" queries over a
// profile with non-decreasing distances in O(log n).
type DistanceIndex struct {
	points []ElevationPoint
}

// NewDistanceIndex indexes points. The slice is not copied.
func NewDistanceIndex(points []ElevationPoint) *DistanceIndex {
	return &DistanceIndex{points: points}
}

// Len returns the number of indexed samples.
func (x *DistanceIndex) Len() int { return len(x.points) }

// Ceil returns the first index whose distance is >= target. Targets beyond
// the last sample clamp to the last index. It returns -1 for an empty index.
func (x *DistanceIndex) Ceil(target float64) int {
	n := len(x.points)
	if n == 0 {
		return -1
	}
	i := sort.Search(n, func(i int) bool { return x.points[i].Distance >= target })
	if i == n {
		return n - 1
	}
	return i
}

// At returns the sample at Ceil(target) as a ClimbPoint with its local
// gradient.
func (x *DistanceIndex) At(target float64) (ClimbPoint, int) {
	i := x.Ceil(target)
	if i < 0 {
		return ClimbPoint{}, -1
	}
	p := x.points[i]
	return ClimbPoint{
		Distance:  p.Distance,
		Elevation: p.Elevation,
		Gradient:  localGradient(x.points, i),
	}, i
}
