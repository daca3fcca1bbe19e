// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package models defines the wire types of the Ascent HTTP API.

Key Components:

  - APIResponse: envelope shared by every endpoint, with Metadata and APIError
  - ClimbsRequest: a ready-made distance/elevation profile plus optional
    detector overrides
  - RouteRequest: raw coordinates, or an encoded polyline with a parallel
    elevation array
  - AnalysisResponse: detected climbs, annotated points, gradient segments and
    an optional profile summary
  - LegendResponse: the category and gradient-band tables used for rendering

Domain values (climb.Climb, climb.AnnotatedPoint, profile.Summary) are
embedded directly rather than copied into parallel DTOs, so their JSON
field names are defined once in the climb and profile packages.

Validation tags are read by the validation package. Limits that depend on
server configuration, such as the maximum number of points, are enforced by
the handlers.
*/
package models
