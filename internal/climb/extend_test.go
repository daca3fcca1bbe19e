// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package climb

import "testing"

func TestExtendEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		profile      func() []ElevationPoint
		wantDistance float64
	}{
		{
			name: "summit past a short dip",
			profile: func() []ElevationPoint {
				return newProfile(10, 0).leg(2000, 6).leg(300, -1).leg(1000, 4).build()
			},
			wantDistance: 3300,
		},
		{
			name: "significant downhill ends the search",
			profile: func() []ElevationPoint {
				return newProfile(10, 0).leg(2000, 6).leg(1500, -5).leg(2000, 10).build()
			},
			wantDistance: 2000,
		},
		{
			name: "summit beyond look ahead is ignored",
			profile: func() []ElevationPoint {
				return newProfile(10, 0).leg(2000, 6).leg(10000, 0).leg(1000, 5).build()
			},
			wantDistance: 2000,
		},
		{
			name: "long shallow descent does not stop the search",
			profile: func() []ElevationPoint {
				return newProfile(10, 0).leg(2000, 6).leg(1500, -1).leg(1000, 5).build()
			},
			wantDistance: 4500,
		},
		{
			name: "nothing higher keeps the end",
			profile: func() []ElevationPoint {
				return newProfile(10, 0).leg(2000, 6).leg(500, 0).leg(500, -2).build()
			},
			wantDistance: 2000,
		},
		{
			name: "section at the end of the profile",
			profile: func() []ElevationPoint {
				return newProfile(10, 0).leg(2000, 6).build()
			},
			wantDistance: 2000,
		},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			points := tt.profile()
			endIdx := findPoint(t, points, 2000)
			section := SteepSection{StartIndex: 0, Points: points[:endIdx+1]}

			end, idx := ExtendEnd(section, points, cfg)
			if end.Distance != tt.wantDistance {
				t.Errorf("end distance = %v, want %v", end.Distance, tt.wantDistance)
			}
			if points[idx] != end {
				t.Errorf("index %d does not hold the returned point", idx)
			}
		})
	}
}

func TestExtendSectionGrowsPoints(t *testing.T) {
	t.Parallel()

	points := newProfile(10, 0).leg(2000, 6).leg(300, -1).leg(1000, 4).build()
	endIdx := findPoint(t, points, 2000)
	section := SteepSection{
		StartIndex: 0,
		Points:     append([]ElevationPoint(nil), points[:endIdx+1]...),
		Gradients:  make([]float64, endIdx),
	}

	if !extendSection(&section, points, DefaultConfig()) {
		t.Fatal("extendSection() = false, want true")
	}
	if section.EndIndex() != len(points)-1 {
		t.Errorf("EndIndex = %d, want %d", section.EndIndex(), len(points)-1)
	}
	if len(section.Gradients) != len(section.Points)-1 {
		t.Errorf("len(Gradients) = %d, want %d", len(section.Gradients), len(section.Points)-1)
	}
}
