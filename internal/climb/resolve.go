// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import (
	"math"
	"sort"
)

// Resolve removes overlapping climbs. Candidates are ranked by FIETS score,
// descending; when two scores differ by no more than tieTolerance the longer
// climb ranks first. Walking that ranking, a candidate is accepted unless it
// overlaps one already accepted. Accepted climbs are returned in their
// original order.
//
// This is greedy by score, not a maximum-weight interval schedule; the two
// can disagree and the greedy result is the one callers depend on.
func Resolve(climbs []Climb, tieTolerance float64) []Climb {
	if len(climbs) == 0 {
		return nil
	}

	order := make([]int, len(climbs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ca, cb := &climbs[order[a]], &climbs[order[b]]
		if math.Abs(ca.FietsScore-cb.FietsScore) > tieTolerance {
			return ca.FietsScore > cb.FietsScore
		}
		return ca.TotalDistance > cb.TotalDistance
	})

	accepted := make([]int, 0, len(climbs))
	for _, idx := range order {
		candidate := &climbs[idx]
		free := true
		for _, kept := range accepted {
			if candidate.Overlaps(&climbs[kept]) {
				free = false
				break
			}
		}
		if free {
			accepted = append(accepted, idx)
		}
	}

	sort.Ints(accepted)
	out := make([]Climb, len(accepted))
	for i, idx := range accepted {
		out[i] = climbs[idx]
	}
	return out
}
