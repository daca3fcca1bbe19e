// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import (
	"fmt"
	"math"
)

// Config holds the detection thresholds. All distances are in meters and all
// gradients in percent. A Config is treated as immutable once handed to a
// Detector; use WithOverrides to derive a variant.
type Config struct {
	// SmoothingWindow is the moving-average window in samples. The window is
	// centered, covering [i - window/2, i + window/2].
	// Default: 20.
	SmoothingWindow int `json:"smoothing_window" koanf:"smoothing_window"`

	// MinGradient is the local gradient a pair of samples must reach to be part
	// of a steep section.
	// Default: 0.5.
	MinGradient float64 `json:"min_gradient" koanf:"min_gradient"`

	// MinLength is the minimum distance span of a steep section.
	// Default: 1200.
	MinLength float64 `json:"min_length" koanf:"min_length"`

	// MaxGap is the largest distance between two steep sections that can
	// still be merged into one climb.
	// Default: 10000.
	MaxGap float64 `json:"max_gap" koanf:"max_gap"`

	// MinDownhillGradient is the average gradient at or below which a
	// descending run counts as significant. Must be negative.
	// Default: -3.
	MinDownhillGradient float64 `json:"min_downhill_gradient" koanf:"min_downhill_gradient"`

	// MinDownhillLength is the descending length at which a run counts as
	// significant.
	// Default: 1000.
	MinDownhillLength float64 `json:"min_downhill_length" koanf:"min_downhill_length"`

	// LookAhead bounds how far past a section's end the summit search goes.
	// Default: 10000.
	LookAhead float64 `json:"look_ahead" koanf:"look_ahead"`

	// MinAverageGradient discards scored climbs whose overall gradient is
	// below this value.
	// Default: 1.5.
	MinAverageGradient float64 `json:"min_average_gradient" koanf:"min_average_gradient"`

	// ScoreTieTolerance is the FIETS difference within which two candidates
	// are ranked by length instead of score.
	// Default: 0.1.
	ScoreTieTolerance float64 `json:"score_tie_tolerance" koanf:"score_tie_tolerance"`
}

// DefaultConfig returns the standard detection thresholds.
func DefaultConfig() Config {
	return Config{
		SmoothingWindow:     20,
		MinGradient:         0.5,
		MinLength:           1200,
		MaxGap:              10000,
		MinDownhillGradient: -3,
		MinDownhillLength:   1000,
		LookAhead:           10000,
		MinAverageGradient:  1.5,
		ScoreTieTolerance:   0.1,
	}
}

// Validate checks the thresholds for consistency.
func (c Config) Validate() error {
	if c.SmoothingWindow < 1 {
		return fmt.Errorf("smoothing_window must be positive, got %d", c.SmoothingWindow)
	}
	for name, v := range map[string]float64{
		"min_gradient":          c.MinGradient,
		"min_length":            c.MinLength,
		"max_gap":               c.MaxGap,
		"min_downhill_gradient": c.MinDownhillGradient,
		"min_downhill_length":   c.MinDownhillLength,
		"look_ahead":            c.LookAhead,
		"min_average_gradient":  c.MinAverageGradient,
		"score_tie_tolerance":   c.ScoreTieTolerance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %f", name, v)
		}
	}
	if c.MinLength < 0 {
		return fmt.Errorf("min_length must be non-negative, got %f", c.MinLength)
	}
	if c.MaxGap < 0 {
		return fmt.Errorf("max_gap must be non-negative, got %f", c.MaxGap)
	}
	if c.MinDownhillGradient >= 0 {
		return fmt.Errorf("min_downhill_gradient must be negative, got %f", c.MinDownhillGradient)
	}
	if c.MinDownhillLength <= 0 {
		return fmt.Errorf("min_downhill_length must be positive, got %f", c.MinDownhillLength)
	}
	if c.LookAhead < 0 {
		return fmt.Errorf("look_ahead must be non-negative, got %f", c.LookAhead)
	}
	if c.ScoreTieTolerance < 0 {
		return fmt.Errorf("score_tie_tolerance must be non-negative, got %f", c.ScoreTieTolerance)
	}
	return nil
}

// Overrides is a partial Config. Nil fields keep the base value.
type Overrides struct {
	SmoothingWindow     *int     `json:"smoothing_window,omitempty" validate:"omitempty,min=1,max=1000"`
	MinGradient         *float64 `json:"min_gradient,omitempty" validate:"omitempty,gte=0,lte=100"`
	MinLength           *float64 `json:"min_length,omitempty" validate:"omitempty,gte=0"`
	MaxGap              *float64 `json:"max_gap,omitempty" validate:"omitempty,gte=0"`
	MinDownhillGradient *float64 `json:"min_downhill_gradient,omitempty" validate:"omitempty,lt=0"`
	MinDownhillLength   *float64 `json:"min_downhill_length,omitempty" validate:"omitempty,gt=0"`
	LookAhead           *float64 `json:"look_ahead,omitempty" validate:"omitempty,gte=0"`
	MinAverageGradient  *float64 `json:"min_average_gradient,omitempty"`
	ScoreTieTolerance   *float64 `json:"score_tie_tolerance,omitempty" validate:"omitempty,gte=0"`
}

// IsZero reports whether no field is set.
func (o *Overrides) IsZero() bool {
	return o == nil || *o == Overrides{}
}

// WithOverrides returns a copy of c with every non-nil override applied.
// The receiver is not modified.
func (c Config) WithOverrides(o *Overrides) Config {
	if o == nil {
		return c
	}
	out := c
	if o.SmoothingWindow != nil {
		out.SmoothingWindow = *o.SmoothingWindow
	}
	if o.MinGradient != nil {
		out.MinGradient = *o.MinGradient
	}
	if o.MinLength != nil {
		out.MinLength = *o.MinLength
	}
	if o.MaxGap != nil {
		out.MaxGap = *o.MaxGap
	}
	if o.MinDownhillGradient != nil {
		out.MinDownhillGradient = *o.MinDownhillGradient
	}
	if o.MinDownhillLength != nil {
		out.MinDownhillLength = *o.MinDownhillLength
	}
	if o.LookAhead != nil {
		out.LookAhead = *o.LookAhead
	}
	if o.MinAverageGradient != nil {
		out.MinAverageGradient = *o.MinAverageGradient
	}
	if o.ScoreTieTolerance != nil {
		out.ScoreTieTolerance = *o.ScoreTieTolerance
	}
	return out
}
