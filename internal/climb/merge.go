// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

// Merge joins steep sections, in distance order, that are separated by at
// most cfg.MaxGap meters without a significant descent in between. The
// smoothed samples lying between two merged sections are appended to the
// kept section so its points stay contiguous in smoothed. The first section
// is always kept. Input sections are not modified.
func Merge(sections []SteepSection, smoothed []ElevationPoint, cfg Config) []SteepSection {
	if len(sections) == 0 {
		return nil
	}

	merged := []SteepSection{cloneSection(sections[0])}
	for _, cur := range sections[1:] {
		prev := &merged[len(merged)-1]
		gap := cur.first().Distance - prev.last().Distance
		if gap <= cfg.MaxGap && !hasSignificantDescent(smoothed, prev.EndIndex(), cur.StartIndex, cfg) {
			growTo(prev, smoothed, cur.EndIndex())
			continue
		}
		merged = append(merged, cloneSection(cur))
	}
	return merged
}

// growTo appends smoothed samples to s until it ends at index to.
func growTo(s *SteepSection, smoothed []ElevationPoint, to int) {
	to = min(to, len(smoothed)-1)
	for i := s.EndIndex() + 1; i <= to; i++ {
		s.Points = append(s.Points, smoothed[i])
		s.Gradients = append(s.Gradients, Gradient(smoothed[i-1], smoothed[i]))
	}
}

func cloneSection(s SteepSection) SteepSection {
	return SteepSection{
		StartIndex: s.StartIndex,
		Points:     append([]ElevationPoint(nil), s.Points...),
		Gradients:  append([]float64(nil), s.Gradients...),
	}
}
