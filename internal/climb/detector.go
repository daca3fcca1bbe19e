// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Detector runs the detection pipeline with a fixed Config.
type Detector struct {
	config Config
	logger zerolog.Logger
}

// Stats counts what each pipeline stage produced for one profile.
type Stats struct {
	Points    int `json:"points"`
	Sections  int `json:"sections"`
	Merged    int `json:"merged"`
	Extended  int `json:"extended"`
	Scored    int `json:"scored"`
	Discarded int `json:"discarded"`
	Accepted  int `json:"accepted"`
}

// NewDetector validates cfg and returns a Detector.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDetector(cfg Config, logger zerolog.Logger) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid climb config: %w", err)
	}
	return &Detector{
		config: cfg,
		logger: logger.With().Str("component", "climb-detector").Logger(),
	}, nil
}

// Config returns the detector's thresholds.
func (d *Detector) Config() Config {
	return d.config
}

// WithOverrides returns a Detector whose Config has o applied. The receiver
// is returned unchanged when o sets nothing.
func (d *Detector) WithOverrides(o *Overrides) (*Detector, error) {
	if o.IsZero() {
		return d, nil
	}
	cfg := d.config.WithOverrides(o)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid climb overrides: %w", err)
	}
	return &Detector{config: cfg, logger: d.logger}, nil
}

// Detect returns the resolved climbs of a profile in detection order. An
// empty result is normal and never an error.
func (d *Detector) Detect(points []ElevationPoint) []Climb {
	climbs, stats := detect(points, d.config)
	d.logger.Debug().
		Int("points", stats.Points).
		Int("sections", stats.Sections).
		Int("merged", stats.Merged).
		Int("extended", stats.Extended).
		Int("scored", stats.Scored).
		Int("discarded", stats.Discarded).
		Int("accepted", stats.Accepted).
		Msg("climb detection complete")
	return climbs
}

// Analyze runs Detect and annotates every sample for rendering.
func (d *Detector) Analyze(points []ElevationPoint) Analysis {
	climbs := d.Detect(points)
	annotated := Annotate(points, climbs)
	return Analysis{
		Climbs:   climbs,
		Points:   annotated,
		Segments: Segments(annotated),
	}
}

// Detect runs the pipeline with cfg and no logging. cfg is not validated.
func Detect(points []ElevationPoint, cfg Config) []Climb {
	climbs, _ := detect(points, cfg)
	return climbs
}

func detect(points []ElevationPoint, cfg Config) ([]Climb, Stats) {
	stats := Stats{Points: len(points)}
	climbs := []Climb{}
	if !wellFormed(points) {
		return climbs, stats
	}

	smoothed := Smooth(points, cfg.SmoothingWindow)
	sections := Scan(smoothed, cfg.MinGradient, cfg.MinLength)
	stats.Sections = len(sections)

	merged := Merge(sections, smoothed, cfg)
	stats.Merged = len(merged)

	raw := NewDistanceIndex(points)
	candidates := make([]Climb, 0, len(merged))
	for i := range merged {
		if extendSection(&merged[i], smoothed, cfg) {
			stats.Extended++
		}
		c, ok := Score(merged[i], raw, cfg)
		if !ok {
			stats.Discarded++
			continue
		}
		candidates = append(candidates, c)
	}
	stats.Scored = len(candidates)

	if resolved := Resolve(candidates, cfg.ScoreTieTolerance); resolved != nil {
		climbs = resolved
	}
	stats.Accepted = len(climbs)
	return climbs, stats
}
