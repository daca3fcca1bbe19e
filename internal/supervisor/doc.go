// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package supervisor runs Ascent's long-lived services under a suture v4
supervisor tree.

The tree has two layers below the root:

	ascent
	├── maintenance-layer   cache cleanup
	└── api-layer           HTTP server

A service that returns an error is restarted with suture's backoff; a crash
in the maintenance layer never stops the API from serving. Supervisor events
are logged through sutureslog, bridged to zerolog by logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewCacheCleanupService(results, cfg.Cache.CleanupInterval))
	err = tree.Serve(ctx) // returns when ctx is canceled

Service wrappers live in the services subpackage.
*/
package supervisor
