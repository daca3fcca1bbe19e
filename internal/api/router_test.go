// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ascent/internal/models"
)

func TestRouter_HealthLive(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/health/live", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var health models.HealthResponse
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("health.status = %q, want ok", health.Status)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing on health endpoint")
	}
}

func TestRouter_HealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		provider   ElevationProvider
		wantStatus string
		wantElev   string
	}{
		{"no provider", nil, "ok", "disabled"},
		{"provider closed", &fakeElevation{}, "ok", "closed"},
		{"provider half-open", &fakeElevation{state: "half-open"}, "ok", "half-open"},
		{"provider open", &fakeElevation{state: "open"}, "degraded", "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newTestServer(t, testServerOptions{elevation: tt.provider})
			rec := doRequest(t, srv, http.MethodGet, "/api/v1/health/ready", "", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}

			var health models.HealthResponse
			if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &health); err != nil {
				t.Fatalf("decode health: %v", err)
			}
			if health.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", health.Status, tt.wantStatus)
			}
			if health.Checks["elevation"] != tt.wantElev {
				t.Errorf("checks.elevation = %q, want %q", health.Checks["elevation"], tt.wantElev)
			}
			if health.Checks["cache"] != "ok" {
				t.Errorf("checks.cache = %q, want ok", health.Checks["cache"])
			}
			if health.Version != Version {
				t.Errorf("version = %q, want %q", health.Version, Version)
			}
		})
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/nope", "", nil)
	expectError(t, rec, http.StatusNotFound, models.ErrCodeNotFound)

	rec = doRequest(t, srv, http.MethodGet, "/elsewhere", "", nil)
	expectError(t, rec, http.StatusNotFound, models.ErrCodeNotFound)

	rec = doRequest(t, srv, http.MethodGet, "/api/v1/climbs", "", nil)
	expectError(t, rec, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed)
}

func TestRouter_RequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("X-Request-ID", "trace-1234")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "trace-1234" {
		t.Errorf("X-Request-ID header = %q, want trace-1234", got)
	}
	if got := decodeEnvelope(t, rec).Metadata.RequestID; got != "trace-1234" {
		t.Errorf("metadata.request_id = %q, want trace-1234", got)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{rateLimit: 2})

	for i := 0; i < 2; i++ {
		if rec := doRequest(t, srv, http.MethodGet, "/api/v1/categories", "", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/categories", "", nil)
	expectError(t, rec, http.StatusTooManyRequests, models.ErrCodeRateLimitExceeded)

	// Health probes are outside the limited group.
	if rec := doRequest(t, srv, http.MethodGet, "/api/v1/health/live", "", nil); rec.Code != http.StatusOK {
		t.Errorf("health probe status = %d after rate limit, want 200", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/climbs", nil)
	req.Header.Set("Origin", "https://maps.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("preflight response has no Access-Control-Allow-Origin")
	}
}

func TestRouter_GzipResponses(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
	reader, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	if !strings.Contains(string(body), `"gradient_bands"`) {
		t.Errorf("decompressed body = %s", body)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	doRequest(t, srv, http.MethodGet, "/api/v1/categories", "", nil)

	rec := doRequest(t, srv, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `api_requests_total{endpoint="/api/v1/categories"`) {
		t.Error("/metrics does not expose the request counter for /api/v1/categories")
	}
}
