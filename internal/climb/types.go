// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

// ElevationPoint is a single profile sample. Distance is cumulative from the
// route start and must be non-decreasing along a profile.
type ElevationPoint struct {
	Distance  float64 `json:"distance"`
	Elevation float64 `json:"elevation"`
}

// SteepSection is a contiguous run of smoothed samples taken from index
// StartIndex onward. Gradients holds one entry per consecutive pair in Points.
type SteepSection struct {
	StartIndex int
	Points     []ElevationPoint
	Gradients  []float64
}

// EndIndex returns the index of the section's last point in the series it
// was scanned from.
func (s *SteepSection) EndIndex() int {
	return s.StartIndex + len(s.Points) - 1
}

// Span returns the distance covered by the section.
func (s *SteepSection) Span() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Distance - s.Points[0].Distance
}

func (s *SteepSection) first() ElevationPoint { return s.Points[0] }
func (s *SteepSection) last() ElevationPoint  { return s.Points[len(s.Points)-1] }

// ClimbPoint is a climb boundary resolved against the raw samples.
// Gradient is the local gradient from that sample to the next one.
type ClimbPoint struct {
	Distance  float64 `json:"distance"`
	Elevation float64 `json:"elevation"`
	Gradient  float64 `json:"gradient"`
}

// Climb is a scored, categorized climb.
type Climb struct {
	StartPoint      ClimbPoint `json:"start_point"`
	EndPoint        ClimbPoint `json:"end_point"`
	TotalDistance   float64    `json:"total_distance"`
	ElevationGain   float64    `json:"elevation_gain"`
	AverageGradient float64    `json:"average_gradient"`
	FietsScore      float64    `json:"fiets_score"`
	Category        Category   `json:"category"`
	Color           string     `json:"color"`
	RoadName        string     `json:"road_name,omitempty"`
}

// Overlaps reports whether the distance ranges of c and other intersect.
// Ranges that only touch at an endpoint do not overlap.
func (c *Climb) Overlaps(other *Climb) bool {
	return c.StartPoint.Distance < other.EndPoint.Distance &&
		other.StartPoint.Distance < c.EndPoint.Distance
}

// Contains reports whether distance lies within the climb, inclusive.
func (c *Climb) Contains(distance float64) bool {
	return distance >= c.StartPoint.Distance && distance <= c.EndPoint.Distance
}

// AnnotatedPoint is a raw sample decorated for chart rendering.
// ClimbCategory is CategoryNone with a transparent color outside any climb.
type AnnotatedPoint struct {
	Distance      float64      `json:"distance"`
	Elevation     float64      `json:"elevation"`
	Gradient      float64      `json:"gradient"`
	GradientBand  GradientBand `json:"gradient_band"`
	GradientColor string       `json:"gradient_color"`
	ClimbCategory Category     `json:"climb_category"`
	ClimbColor    string       `json:"climb_color"`
}

// GradientSegment is a maximal run of consecutive annotated points sharing a
// gradient band.
type GradientSegment struct {
	StartDistance   float64      `json:"start_distance"`
	EndDistance     float64      `json:"end_distance"`
	Band            GradientBand `json:"band"`
	Color           string       `json:"color"`
	AverageGradient float64      `json:"average_gradient"`
	PointCount      int          `json:"point_count"`
}

// Analysis bundles the outputs consumed by the rendering layer.
type Analysis struct {
	Climbs   []Climb           `json:"climbs"`
	Points   []AnnotatedPoint  `json:"points"`
	Segments []GradientSegment `json:"segments"`
}
