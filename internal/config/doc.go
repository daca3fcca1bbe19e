// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package config provides layered configuration for the Ascent server.

Configuration is loaded with Koanf v2 from three sources, later ones
winning:

 1. Defaults built into defaultConfig
 2. An optional YAML file (CONFIG_PATH, or config.yaml / config.yml in the
    working directory, or /etc/ascent/config.yaml)
 3. Environment variables with an explicit mapping (see envTransformFunc)

Unmapped environment variables are ignored, so the process environment
cannot inject arbitrary keys.

# Sections

  - server: listen address, timeouts, request size and point limits
  - logging: level, format, caller, timestamp
  - climb: detection thresholds (climb.Config)
  - cache: analysis cache capacity and TTL
  - elevation: Open-Elevation lookup client
  - security: CORS origins and per-IP rate limiting

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT,
	HTTP_SHUTDOWN_TIMEOUT, MAX_BODY_BYTES, MAX_POINTS, ENVIRONMENT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER, LOG_TIMESTAMP
	CLIMB_SMOOTHING_WINDOW, CLIMB_MIN_GRADIENT, CLIMB_MIN_LENGTH,
	CLIMB_MAX_GAP, CLIMB_MIN_DOWNHILL_GRADIENT, CLIMB_MIN_DOWNHILL_LENGTH,
	CLIMB_LOOK_AHEAD, CLIMB_MIN_AVERAGE_GRADIENT, CLIMB_SCORE_TIE_TOLERANCE
	CACHE_ENABLED, CACHE_CAPACITY, CACHE_TTL, CACHE_CLEANUP_INTERVAL
	ELEVATION_ENABLED, ELEVATION_URL, ELEVATION_TIMEOUT,
	ELEVATION_BATCH_SIZE, ELEVATION_RPS, ELEVATION_BURST
	CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS,
	RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Example

	server:
	  port: 8080
	climb:
	  min_gradient: 1.0
	  smoothing_window: 10
	elevation:
	  enabled: true
	  base_url: "http://open-elevation:8080"
*/
package config
