// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

// descentTracker accumulates a run of consecutive descending pairs. Any rise
// resets the run; level pairs neither extend nor reset it.
type descentTracker struct {
	minGradient float64
	minLength   float64

	length float64
	drop   float64
}

func newDescentTracker(cfg Config) descentTracker {
	return descentTracker{
		minGradient: cfg.MinDownhillGradient,
		minLength:   cfg.MinDownhillLength,
	}
}

// step feeds the pair (a, b) and reports whether the current run has become
// a significant descent: long enough and steep enough on average.
func (t *descentTracker) step(a, b ElevationPoint) bool {
	rise := b.Elevation - a.Elevation
	switch {
	case rise < 0:
		t.length += b.Distance - a.Distance
		t.drop += rise
	case rise > 0:
		t.length, t.drop = 0, 0
		return false
	}
	return t.significant()
}

func (t *descentTracker) significant() bool {
	if t.length <= 0 || t.length < t.minLength {
		return false
	}
	return t.drop/t.length*100 <= t.minGradient
}

// hasSignificantDescent reports whether the pairs of series between index
// from and index to (inclusive) contain a significant descent.
func hasSignificantDescent(series []ElevationPoint, from, to int, cfg Config) bool {
	t := newDescentTracker(cfg)
	for i := from + 1; i <= to && i < len(series); i++ {
		if t.step(series[i-1], series[i]) {
			return true
		}
	}
	return false
}
