// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		points    []ElevationPoint
		wantIndex int
		wantOK    bool
	}{
		{"valid", []ElevationPoint{{0, 10}, {10, 11}, {10, 12}, {30, 9}}, 0, true},
		{"empty", nil, -1, false},
		{"single point", []ElevationPoint{{0, 10}}, -1, false},
		{"NaN distance", []ElevationPoint{{0, 10}, {math.NaN(), 11}}, 1, false},
		{"infinite elevation", []ElevationPoint{{0, math.Inf(1)}, {10, 11}}, 0, false},
		{"negative distance", []ElevationPoint{{-5, 10}, {10, 11}}, 0, false},
		{"decreasing distance", []ElevationPoint{{0, 10}, {20, 11}, {15, 12}}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.points)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Validate() = %v, want ErrInvalidInput", err)
			}
			var inputErr *InvalidInputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("Validate() = %T, want *InvalidInputError", err)
			}
			if inputErr.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", inputErr.Index, tt.wantIndex)
			}
		})
	}
}

func TestGradient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b ElevationPoint
		want float64
	}{
		{"uphill", ElevationPoint{0, 100}, ElevationPoint{100, 110}, 10},
		{"downhill", ElevationPoint{0, 100}, ElevationPoint{200, 90}, -5},
		{"flat", ElevationPoint{0, 100}, ElevationPoint{50, 100}, 0},
		{"zero run", ElevationPoint{10, 100}, ElevationPoint{10, 150}, 0},
		{"backwards run", ElevationPoint{10, 100}, ElevationPoint{5, 150}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Gradient(tt.a, tt.b); !approxEqual(got, tt.want, epsilon) {
				t.Errorf("Gradient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceIndexCeil(t *testing.T) {
	t.Parallel()

	points := []ElevationPoint{{0, 0}, {10, 1}, {20, 2}, {20, 3}, {40, 4}}
	idx := NewDistanceIndex(points)

	tests := []struct {
		target float64
		want   int
	}{
		{-5, 0},
		{0, 0},
		{5, 1},
		{10, 1},
		{15, 2},
		{20, 2}, // first of the duplicates
		{25, 4},
		{40, 4},
		{99, 4}, // clamps to last
	}
	for _, tt := range tests {
		if got := idx.Ceil(tt.target); got != tt.want {
			t.Errorf("Ceil(%v) = %d, want %d", tt.target, got, tt.want)
		}
	}

	if got := NewDistanceIndex(nil).Ceil(3); got != -1 {
		t.Errorf("empty Ceil() = %d, want -1", got)
	}
}

func TestDistanceIndexAt(t *testing.T) {
	t.Parallel()

	points := []ElevationPoint{{0, 100}, {100, 105}, {200, 103}}
	idx := NewDistanceIndex(points)

	p, i := idx.At(50)
	if i != 1 || p.Distance != 100 || p.Elevation != 105 {
		t.Fatalf("At(50) = %+v, %d", p, i)
	}
	if !approxEqual(p.Gradient, -2, epsilon) {
		t.Errorf("gradient = %v, want -2", p.Gradient)
	}

	last, _ := idx.At(200)
	if !approxEqual(last.Gradient, -2, epsilon) {
		t.Errorf("last point gradient = %v, want inherited -2", last.Gradient)
	}
}
