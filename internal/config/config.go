// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/elevation"
	"github.com/tomtom215/ascent/internal/logging"
)

// Config is the complete server configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Climb     climb.Config     `koanf:"climb"`
	Cache     CacheConfig      `koanf:"cache"`
	Elevation elevation.Config `koanf:"elevation"`
	Security  SecurityConfig   `koanf:"security"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxBodyBytes caps request bodies, GPX uploads included.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// MaxPoints caps the number of profile samples or route vertices per request.
	MaxPoints int `koanf:"max_points"`

	Environment string `koanf:"environment"` // development, staging or production
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`

	// Timestamp adds an RFC 3339 time field.
	// Default: true
	Timestamp bool `koanf:"timestamp"`
}

// ToLogging converts to the logging package configuration, writing to stderr.
func (l LoggingConfig) ToLogging() logging.Config {
	return logging.Config{
		Level:     l.Level,
		Format:    l.Format,
		Caller:    l.Caller,
		Timestamp: l.Timestamp,
		Output:    os.Stderr,
	}
}

// CacheConfig holds analysis cache settings.
type CacheConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Capacity        int           `koanf:"capacity"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
