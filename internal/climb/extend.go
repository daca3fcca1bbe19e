// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

// ExtendEnd looks past the section's last point, up to cfg.LookAhead meters
// along smoothed, for a strictly higher summit. The search stops at the first
// significant descent. It returns the chosen end point and its index in
// smoothed; when nothing higher is reached before the search stops, that is
// the section's own last point.
func ExtendEnd(section SteepSection, smoothed []ElevationPoint, cfg Config) (ElevationPoint, int) {
	endIdx := section.EndIndex()
	end := section.last()
	if endIdx < 0 || endIdx >= len(smoothed) {
		return end, endIdx
	}

	highest := endIdx
	descent := newDescentTracker(cfg)
	for j := endIdx + 1; j < len(smoothed); j++ {
		if smoothed[j].Distance-end.Distance > cfg.LookAhead {
			break
		}
		if descent.step(smoothed[j-1], smoothed[j]) {
			break
		}
		if smoothed[j].Elevation > smoothed[highest].Elevation {
			highest = j
		}
	}
	return smoothed[highest], highest
}

// extendSection grows section in place to the summit found by ExtendEnd.
func extendSection(section *SteepSection, smoothed []ElevationPoint, cfg Config) bool {
	_, idx := ExtendEnd(*section, smoothed, cfg)
	if idx <= section.EndIndex() {
		return false
	}
	growTo(section, smoothed, idx)
	return true
}
