// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import "fmt"

// Category is a climb difficulty tier derived from the FIETS score.
type Category int

// Climb categories, hardest first. CategoryNone marks points outside any climb.
const (
	CategoryNone Category = -1
	CategoryHC   Category = 0
	Category1    Category = 1
	Category2    Category = 2
	Category3    Category = 3
	Category4    Category = 4
)

// TransparentColor is the climb color of points that belong to no climb.
const TransparentColor = "transparent"

// CategoryInfo is one row of the category legend.
type CategoryInfo struct {
	Category Category `json:"category"`
	MinScore float64  `json:"min_score"`
	Color    string   `json:"color"`
}

// categoryTable is ordered by descending MinScore. Categorize falls back to
// CAT4 for anything below CAT3, including negative scores.
var categoryTable = []CategoryInfo{
	{Category: CategoryHC, MinScore: 8.0, Color: "#7b1fa2"},
	{Category: Category1, MinScore: 6.0, Color: "#c62828"},
	{Category: Category2, MinScore: 4.5, Color: "#ef6c00"},
	{Category: Category3, MinScore: 3.0, Color: "#f9a825"},
	{Category: Category4, MinScore: 0, Color: "#2e7d32"},
}

var categoryNames = map[Category]string{
	CategoryNone: "NONE",
	CategoryHC:   "HC",
	Category1:    "CAT1",
	Category2:    "CAT2",
	Category3:    "CAT3",
	Category4:    "CAT4",
}

// Categories returns a copy of the category legend, hardest first.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// Categorize maps a FIETS score to its category.
func Categorize(score float64) Category {
	for _, row := range categoryTable {
		if score >= row.MinScore {
			return row.Category
		}
	}
	return Category4
}

// Color returns the display color of the category.
func (c Category) Color() string {
	for _, row := range categoryTable {
		if row.Category == c {
			return row.Color
		}
	}
	return TransparentColor
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	name, ok := categoryNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown climb category %d", int(c))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(text []byte) error {
	for cat, name := range categoryNames {
		if name == string(text) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown climb category %q", text)
}

// GradientBand classifies an instantaneous gradient for chart coloring.
type GradientBand int

// Gradient bands, flattest first.
const (
	BandFlat GradientBand = iota
	BandEasy
	BandModerate
	BandHard
	BandSteep
)

// BandInfo is one row of the gradient legend.
type BandInfo struct {
	Band        GradientBand `json:"band"`
	MinGradient float64      `json:"min_gradient"`
	Color       string       `json:"color"`
}

// bandTable is ordered by descending MinGradient. BandFor falls back to FLAT
// for anything below EASY, including descents.
var bandTable = []BandInfo{
	{Band: BandSteep, MinGradient: 10, Color: "#b71c1c"},
	{Band: BandHard, MinGradient: 6, Color: "#e65100"},
	{Band: BandModerate, MinGradient: 3, Color: "#fbc02d"},
	{Band: BandEasy, MinGradient: 1, Color: "#7cb342"},
	{Band: BandFlat, MinGradient: 0, Color: "#90a4ae"},
}

var bandNames = map[GradientBand]string{
	BandFlat:     "FLAT",
	BandEasy:     "EASY",
	BandModerate: "MODERATE",
	BandHard:     "HARD",
	BandSteep:    "STEEP",
}

// GradientBands returns a copy of the gradient legend, steepest first.
func GradientBands() []BandInfo {
	out := make([]BandInfo, len(bandTable))
	copy(out, bandTable)
	return out
}

// BandFor classifies a gradient in percent. NaN falls into BandFlat.
func BandFor(gradient float64) GradientBand {
	for _, row := range bandTable {
		if gradient >= row.MinGradient {
			return row.Band
		}
	}
	return BandFlat
}

// Color returns the display color of the band.
func (b GradientBand) Color() string {
	for _, row := range bandTable {
		if row.Band == b {
			return row.Color
		}
	}
	return bandTable[len(bandTable)-1].Color
}

func (b GradientBand) String() string {
	if name, ok := bandNames[b]; ok {
		return name
	}
	return fmt.Sprintf("GradientBand(%d)", int(b))
}

// MarshalText encodes the band by name.
func (b GradientBand) MarshalText() ([]byte, error) {
	name, ok := bandNames[b]
	if !ok {
		return nil, fmt.Errorf("unknown gradient band %d", int(b))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a band name.
func (b *GradientBand) UnmarshalText(text []byte) error {
	for band, name := range bandNames {
		if name == string(text) {
			*b = band
			return nil
		}
	}
	return fmt.Errorf("unknown gradient band %q", text)
}
