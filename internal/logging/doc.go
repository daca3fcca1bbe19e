// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

// Package logging provides the process-wide zerolog logger for Ascent.
//
// # Overview
//
// One global logger is configured at startup from the logging section of the
// service configuration:
//   - JSON output for production, console output for development
//   - Request and correlation IDs carried through context.Context
//   - Component loggers for the detector, elevation client and HTTP layer
//   - An slog bridge so the suture supervisor logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("port", 3857).Msg("server starting")
//	logging.Ctx(ctx).Debug().Int("points", n).Msg("profile parsed")
//
//	detectorLogger := logging.Component("climb-detector")
//
// Always end an event chain with Msg or Send; an unterminated chain is
// never written.
package logging
