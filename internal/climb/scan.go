// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

// Scan walks consecutive pairs of the smoothed profile and collects runs whose
// gradient is at least minGradient. A run is kept only if its distance span
// is at least minLength; the run still open at the end of the profile is
// subject to the same test. Profiles with fewer than two samples, any
// non-finite value or a decreasing distance yield no sections.
func Scan(smoothed []ElevationPoint, minGradient, minLength float64) []SteepSection {
	if !wellFormed(smoothed) {
		return nil
	}

	var (
		sections []SteepSection
		current  *SteepSection
	)
	closeCurrent := func() {
		if current != nil && current.Span() >= minLength {
			sections = append(sections, *current)
		}
		current = nil
	}

	for i := 1; i < len(smoothed); i++ {
		g := Gradient(smoothed[i-1], smoothed[i])
		if g < minGradient {
			closeCurrent()
			continue
		}
		if current == nil {
			current = &SteepSection{
				StartIndex: i - 1,
				Points:     []ElevationPoint{smoothed[i-1]},
			}
		}
		current.Points = append(current.Points, smoothed[i])
		current.Gradients = append(current.Gradients, g)
	}
	closeCurrent()

	return sections
}
