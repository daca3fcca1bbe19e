// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

// Package services adapts Ascent's long-running components to suture.Service.
//
// Each wrapper translates a component's own lifecycle into
// Serve(ctx) error: it runs until ctx is canceled, then stops the component
// and returns ctx.Err(). Returning any other error asks the supervisor to
// restart the service.
//
//   - HTTPServerService: ListenAndServe/Shutdown of the API server
//   - CacheCleanupService: periodic removal of expired analysis cache entries
package services
