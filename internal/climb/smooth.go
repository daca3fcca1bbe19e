// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

// Smooth applies a centered moving average to elevations. Element i becomes
// the mean of elevations in [i - window/2, i + window/2] clamped to the slice
// bounds. Distances are copied unchanged. A window larger than the input
// degrades to a global average; a window below 2 returns a plain copy.
//
// Each mean is taken over offsets from the window's first elevation, so a
// window of identical values yields exactly that value. Plateaus must not pick
// up rounding noise or ExtendEnd would treat it as a rise.
func Smooth(points []ElevationPoint, window int) []ElevationPoint {
	out := make([]ElevationPoint, len(points))
	copy(out, points)
	half := window / 2
	if half < 1 || len(points) < 2 {
		return out
	}

	last := len(points) - 1
	for i := range points {
		lo := max(i-half, 0)
		hi := min(i+half, last)
		ref := points[lo].Elevation
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += points[j].Elevation - ref
		}
		out[i].Elevation = ref + sum/float64(hi-lo+1)
	}
	return out
}
