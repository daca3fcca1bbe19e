// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

// Package profile turns route geometry into elevation profiles.
//
// Routes arrive as GPX documents, GeoJSON LineStrings, Google encoded
// polylines with a parallel elevation array, or bare [lon, lat, ele]
// coordinate lists. Each is parsed into a Track: an orb.LineString plus one
// elevation per vertex (NaN where the source had none). Track.Profile then
// measures cumulative great-circle distance along the line and pairs it with
// the elevations to produce the []climb.ElevationPoint the detector consumes.
//
// Tracks with missing elevations can be completed with FillElevations, which
// asks an ElevationSource (see package elevation) for the gaps.
package profile
