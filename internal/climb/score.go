// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

// FietsScore computes (gain/1000) * (gain/(km*10))^2 for a climb of the given
// elevation gain and horizontal distance in meters. The squared term is the
// average gradient in percent. Non-positive distances score zero.
func FietsScore(gain, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	km := distance / 1000
	steepness := gain / (km * 10)
	return (gain / 1000) * steepness * steepness
}

// Score turns a section into a Climb. The section's first and last distances
// are re-resolved against the raw samples at the first index at or beyond
// each distance, so reported elevations are unsmoothed. It returns false when
// the resolved climb has no length or its average gradient is below
// cfg.MinAverageGradient.
func Score(section SteepSection, raw *DistanceIndex, cfg Config) (Climb, bool) {
	if len(section.Points) < 2 || raw.Len() < 2 {
		return Climb{}, false
	}

	start, _ := raw.At(section.first().Distance)
	end, _ := raw.At(section.last().Distance)

	total := end.Distance - start.Distance
	if total <= 0 {
		return Climb{}, false
	}

	gain := end.Elevation - start.Elevation
	avg := gain / total * 100
	if avg < cfg.MinAverageGradient {
		return Climb{}, false
	}

	score := FietsScore(gain, total)
	category := Categorize(score)
	return Climb{
		StartPoint:      start,
		EndPoint:        end,
		TotalDistance:   total,
		ElevationGain:   gain,
		AverageGradient: avg,
		FietsScore:      score,
		Category:        category,
		Color:           category.Color(),
	}, true
}
