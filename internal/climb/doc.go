// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

// Package climb detects and classifies climbs in a route elevation profile.
//
// # Pipeline
//
// Detection is a linear batch computation over an ordered sequence of
// (distance, elevation) samples:
//
//   - Smooth: centered moving average over raw elevations
//   - Scan: contiguous runs whose local gradient meets MinGradient
//   - Merge: joins runs separated by short gaps without a significant descent
//   - ExtendEnd: moves a climb's summit forward to a higher point within LookAhead
//   - Score: FIETS score and category, resolved against the raw samples
//   - Resolve: greedy-by-score overlap removal with a length tie-break
//   - Annotate: per-point gradient band and climb category for rendering
//
// # Units
//
// All distances are meters and all gradients are percentages. Thresholds live
// in an immutable Config passed to the Detector; DefaultConfig returns the
// standard values.
//
// # Failure Semantics
//
// The pipeline never fails for well-formed input. Fewer than two samples or
// non-finite values yield an empty climb list, which is a normal result.
// Callers that want to reject malformed profiles up front can use Validate,
// which returns an *InvalidInputError.
//
// # Usage
//
//	detector, err := climb.NewDetector(climb.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	analysis := detector.Analyze(points)
//	for _, c := range analysis.Climbs {
//	    fmt.Printf("%s %.1f km @ %.1f%%\n", c.Category, c.TotalDistance/1000, c.AverageGradient)
//	}
//
// # Thread Safety
//
// A Detector holds only its configuration and logger and may be shared by
// concurrent goroutines. Every call allocates its own intermediate state.
package climb
