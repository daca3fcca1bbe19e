// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package elevation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/ascent/internal/logging"
	"github.com/tomtom215/ascent/internal/metrics"
)

const breakerName = "elevation-api"

var (
	// ErrProviderUnavailable is returned while the circuit breaker is open
	// or refusing half-open probes.
	ErrProviderUnavailable = errors.New("elevation provider unavailable")

	// ErrBadResponse marks a reply that could not be matched to the request.
	ErrBadResponse = errors.New("elevation provider returned a malformed response")
)

// Config controls the provider client.
type Config struct {
	Enabled           bool          `koanf:"enabled"`
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	BatchSize         int           `koanf:"batch_size"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
}

// DefaultConfig points at the public Open-Elevation instance, disabled.
func DefaultConfig() Config {
	return Config{
		Enabled:           false,
		BaseURL:           "https://api.open-elevation.com",
		Timeout:           10 * time.Second,
		BatchSize:         100,
		RequestsPerSecond: 1,
		Burst:             2,
	}
}

// Validate checks the client settings.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.BaseURL == "" {
		return fmt.Errorf("elevation base_url is required when enabled")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("elevation base_url must be http or https, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("elevation timeout must be positive")
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("elevation batch_size must be at least 1, got %d", c.BatchSize)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("elevation requests_per_second must be positive")
	}
	if c.Burst < 1 {
		return fmt.Errorf("elevation burst must be at least 1, got %d", c.Burst)
	}
	return nil
}

type location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type lookupRequest struct {
	Locations []location `json:"locations"`
}

type lookupResponse struct {
	Results []struct {
		Latitude  float64  `json:"latitude"`
		Longitude float64  `json:"longitude"`
		Elevation *float64 `json:"elevation"`
	} `json:"results"`
}

// Client looks up elevations from an Open-Elevation compatible service.
//
// The breaker uses wall-clock time for its interval and timeout. Tests
// drive it through failures against an httptest server rather than faking
// time.
type Client struct {
	http      *http.Client
	baseURL   string
	batchSize int
	limiter   *rate.Limiter
	cb        *gobreaker.CircuitBreaker[[]float64]
}

// NewClient builds a client from cfg. cfg is assumed valid.
func NewClient(cfg Config) *Client {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]float64](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		// Opens at a 60% failure rate once 10 batches have been seen, or
		// straight away after 5 consecutive failures.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= 5 {
				return true
			}
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= 0.6 {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening elevation circuit")
				return true
			}
			return false
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		batchSize: cfg.BatchSize,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cb:        cb,
	}
}

// Name returns the breaker name used in logs and metrics.
func (c *Client) Name() string {
	return breakerName
}

// State reports the breaker state as "closed", "half-open" or "open".
func (c *Client) State() string {
	return stateToString(c.cb.State())
}

// Available is false while the breaker is open.
func (c *Client) Available() bool {
	return c.cb.State() != gobreaker.StateOpen
}

// Lookup returns one elevation per point, in input order. Points are
// orb.Point{lon, lat}.
func (c *Client) Lookup(ctx context.Context, points []orb.Point) ([]float64, error) {
	out := make([]float64, 0, len(points))
	for start := 0; start < len(points); start += c.batchSize {
		end := min(start+c.batchSize, len(points))
		batch, err := c.lookupBatch(ctx, points[start:end])
		if err != nil {
			return nil, fmt.Errorf("batch %d-%d: %w", start, end-1, err)
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (c *Client) lookupBatch(ctx context.Context, points []orb.Point) ([]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	result, err := c.cb.Execute(func() ([]float64, error) {
		return c.query(ctx, points)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordElevationLookup("rejected", len(points), 0)
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Elevation request rejected")
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		metrics.RecordElevationLookup("failure", len(points), time.Since(start))
		return nil, err
	}
	metrics.RecordElevationLookup("success", len(points), time.Since(start))
	return result, nil
}

func (c *Client) query(ctx context.Context, points []orb.Point) ([]float64, error) {
	body := lookupRequest{Locations: make([]location, len(points))}
	for i, p := range points {
		body.Locations[i] = location{Latitude: p.Lat(), Longitude: p.Lon()}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/lookup", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query elevation provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("elevation provider returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode elevation response: %w", err)
	}
	if len(decoded.Results) != len(points) {
		return nil, fmt.Errorf("%w: %d results for %d locations", ErrBadResponse, len(decoded.Results), len(points))
	}

	out := make([]float64, len(points))
	for i, r := range decoded.Results {
		if r.Elevation == nil || math.IsNaN(*r.Elevation) || math.IsInf(*r.Elevation, 0) {
			return nil, fmt.Errorf("%w: no elevation for location %d", ErrBadResponse, i)
		}
		out[i] = *r.Elevation
	}
	return out, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
