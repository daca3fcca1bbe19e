// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ascent/internal/cache"
	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/config"
	"github.com/tomtom215/ascent/internal/models"
)

// testEnvelope mirrors models.APIResponse with the payload left raw.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

// fakeElevation is an ElevationProvider whose elevation rises 5566 m per
// degree of latitude north of 45°N, roughly a 5% grade along a meridian.
type fakeElevation struct {
	err   error
	state string
	calls atomic.Int32
}

func (f *fakeElevation) Lookup(_ context.Context, points []orb.Point) ([]float64, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = 500 + (p.Lat()-45)*5566
	}
	return out, nil
}

func (f *fakeElevation) State() string {
	if f.state == "" {
		return "closed"
	}
	return f.state
}

func (f *fakeElevation) Available() bool {
	return f.State() != "open"
}

type testServerOptions struct {
	elevation    ElevationProvider
	noCache      bool
	maxBodyBytes int64
	maxPoints    int
	rateLimit    int
}

func testConfig(opts testServerOptions) *config.Config {
	cfg := &config.Config{
		Server: config.ServerConfig{
			MaxBodyBytes: 1 << 20,
			MaxPoints:    10000,
		},
		Climb: climb.DefaultConfig(),
		Cache: config.CacheConfig{
			Enabled:  !opts.noCache,
			Capacity: 64,
			TTL:      time.Minute,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     opts.rateLimit,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: opts.rateLimit == 0,
		},
	}
	if opts.maxBodyBytes > 0 {
		cfg.Server.MaxBodyBytes = opts.maxBodyBytes
	}
	if opts.maxPoints > 0 {
		cfg.Server.MaxPoints = opts.maxPoints
	}
	return cfg
}

// newTestServer builds the full router around a fresh Handler.
func newTestServer(t *testing.T, opts testServerOptions) (http.Handler, *Handler) {
	t.Helper()

	cfg := testConfig(opts)
	detector, err := climb.NewDetector(cfg.Climb, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}

	var results *ResultCache
	if cfg.Cache.Enabled {
		results = cache.NewLRU[*models.AnalysisResponse](cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	handler := NewHandler(cfg, detector, results, opts.elevation)
	mw := NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	return NewRouter(handler, mw).Setup(), handler
}

func doRequest(t *testing.T, h http.Handler, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, h http.Handler, path string, v interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return doRequest(t, h, http.MethodPost, path, "application/json", body)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeAnalysis(t *testing.T, rec *httptest.ResponseRecorder) (testEnvelope, models.AnalysisResponse) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	if env.Status != models.StatusSuccess {
		t.Fatalf("status = %q, error = %+v", env.Status, env.Error)
	}
	var analysis models.AnalysisResponse
	if err := json.Unmarshal(env.Data, &analysis); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}
	return env, analysis
}

// expectError checks the HTTP status and the envelope's error code.
func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) testEnvelope {
	t.Helper()

	if rec.Code != status {
		t.Errorf("HTTP status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != models.StatusError {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil || env.Error.Code != code {
		t.Fatalf("error = %+v, want code %s", env.Error, code)
	}
	return env
}

// uniformClimb is a 3 km profile at 10% sampled every 10 m.
func uniformClimb() []climb.ElevationPoint {
	points := make([]climb.ElevationPoint, 0, 301)
	for i := 0; i <= 300; i++ {
		d := float64(i) * 10
		points = append(points, climb.ElevationPoint{Distance: d, Elevation: 100 + d*0.1})
	}
	return points
}

// meridianRoute runs north along 6°E from 45°N in steps of 0.0005°, about
// 55.6 m. withElevation adds a third coordinate rising 2.78 m per step.
func meridianRoute(n int, withElevation bool) [][]float64 {
	coords := make([][]float64, n)
	for i := range coords {
		lat := 45 + float64(i)*0.0005
		if withElevation {
			coords[i] = []float64{6, lat, 500 + float64(i)*2.78}
		} else {
			coords[i] = []float64{6, lat}
		}
	}
	return coords
}
