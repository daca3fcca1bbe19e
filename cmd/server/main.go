// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

// Package main is the entry point for the Ascent climb detection server.
//
// Ascent finds categorized climbs in route elevation profiles and serves
// them, together with per-point gradient annotations, over a JSON API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Detector: validated climb thresholds
//  4. Analysis cache (optional): LRU with TTL, swept by a maintenance service
//  5. Elevation client (optional): Open-Elevation lookups behind a circuit breaker
//  6. HTTP Server: chi router under the suture supervisor tree
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The supervisor then drains the
// HTTP server for up to SERVER_SHUTDOWN_TIMEOUT before exiting.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/ascent/internal/api"
	"github.com/tomtom215/ascent/internal/cache"
	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/config"
	"github.com/tomtom215/ascent/internal/elevation"
	"github.com/tomtom215/ascent/internal/logging"
	"github.com/tomtom215/ascent/internal/models"
	"github.com/tomtom215/ascent/internal/supervisor"
	"github.com/tomtom215/ascent/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; the configured one is not available yet
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLogging())
	api.Version = version

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Ascent")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	detector, err := climb.NewDetector(cfg.Climb, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid climb detection thresholds")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	var results *api.ResultCache
	if cfg.Cache.Enabled {
		results = cache.NewLRU[*models.AnalysisResponse](cfg.Cache.Capacity, cfg.Cache.TTL)
		tree.AddMaintenanceService(services.NewCacheCleanupService(results, cfg.Cache.CleanupInterval))
		logging.Info().
			Int("capacity", cfg.Cache.Capacity).
			Dur("ttl", cfg.Cache.TTL).
			Msg("Analysis cache enabled")
	}

	// Must stay a nil interface when disabled, not a typed nil.
	var elevationProvider api.ElevationProvider
	if cfg.Elevation.Enabled {
		elevationProvider = elevation.NewClient(cfg.Elevation)
		logging.Info().Str("base_url", cfg.Elevation.BaseURL).Msg("Elevation lookups enabled")
	} else {
		logging.Info().Msg("Elevation lookups disabled; routes must carry elevation")
	}

	handler := api.NewHandler(cfg, detector, results, elevationProvider)
	chiMw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Ascent stopped")
}
