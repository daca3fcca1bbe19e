// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/twpayne/go-polyline"

	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/elevation"
	"github.com/tomtom215/ascent/internal/metrics"
	"github.com/tomtom215/ascent/internal/models"
)

func TestClimbs_DetectsUniformClimb(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	rec := postJSON(t, srv, "/api/v1/climbs", models.ClimbsRequest{Points: uniformClimb()})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	env, analysis := decodeAnalysis(t, rec)

	if env.Metadata.Cached {
		t.Error("first request reported cached=true")
	}
	if env.Metadata.RequestID == "" {
		t.Error("metadata.request_id is empty")
	}
	if len(analysis.Climbs) != 1 {
		t.Fatalf("got %d climbs, want 1", len(analysis.Climbs))
	}
	c := analysis.Climbs[0]
	if c.Category != climb.CategoryHC {
		t.Errorf("category = %s, want HC", c.Category)
	}
	if math.Abs(c.AverageGradient-10) > 1e-9 {
		t.Errorf("average gradient = %v, want 10", c.AverageGradient)
	}
	if len(analysis.Points) != 301 {
		t.Errorf("got %d annotated points, want 301", len(analysis.Points))
	}
	if len(analysis.Segments) == 0 {
		t.Error("no gradient segments returned")
	}
	if analysis.Summary != nil {
		t.Error("raw point profiles should not carry a route summary")
	}
	if analysis.Config != climb.DefaultConfig() {
		t.Errorf("config = %+v, want defaults", analysis.Config)
	}
}

func TestClimbs_CachesRepeatRequests(t *testing.T) {
	t.Parallel()

	srv, handler := newTestServer(t, testServerOptions{})
	req := models.ClimbsRequest{Points: uniformClimb()}

	first := postJSON(t, srv, "/api/v1/climbs", req)
	second := postJSON(t, srv, "/api/v1/climbs", req)

	env1, a1 := decodeAnalysis(t, first)
	env2, a2 := decodeAnalysis(t, second)
	if env1.Metadata.Cached || !env2.Metadata.Cached {
		t.Errorf("cached flags = %v, %v; want false, true", env1.Metadata.Cached, env2.Metadata.Cached)
	}
	if len(a1.Climbs) != len(a2.Climbs) || a1.Climbs[0] != a2.Climbs[0] {
		t.Error("cached analysis differs from the computed one")
	}
	if got := handler.results.Len(); got != 1 {
		t.Errorf("cache holds %d entries, want 1", got)
	}

	handler.ClearCache()
	third := postJSON(t, srv, "/api/v1/climbs", req)
	if env3 := decodeEnvelope(t, third); env3.Metadata.Cached {
		t.Error("request after ClearCache reported cached=true")
	}
}

func TestClimbs_WithoutCache(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{noCache: true})
	req := models.ClimbsRequest{Points: uniformClimb()}

	postJSON(t, srv, "/api/v1/climbs", req)
	env, _ := decodeAnalysis(t, postJSON(t, srv, "/api/v1/climbs", req))
	if env.Metadata.Cached {
		t.Error("cached=true with caching disabled")
	}
}

func TestClimbs_OptionsOverrideThresholds(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})

	// The same profile is cached under the default thresholds first.
	postJSON(t, srv, "/api/v1/climbs", models.ClimbsRequest{Points: uniformClimb()})

	minGradient := 15.0
	rec := postJSON(t, srv, "/api/v1/climbs", models.ClimbsRequest{
		Points:  uniformClimb(),
		Options: &climb.Overrides{MinGradient: &minGradient},
	})
	env, analysis := decodeAnalysis(t, rec)

	if env.Metadata.Cached {
		t.Error("overridden thresholds were answered from the default cache entry")
	}
	if len(analysis.Climbs) != 0 {
		t.Errorf("got %d climbs with min_gradient=15, want 0", len(analysis.Climbs))
	}
	if analysis.Config.MinGradient != 15 {
		t.Errorf("effective min_gradient = %v, want 15", analysis.Config.MinGradient)
	}
}

func TestClimbs_FlatProfileIsNotAnError(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	points := []climb.ElevationPoint{{Distance: 0, Elevation: 10}, {Distance: 500, Elevation: 10}, {Distance: 1000, Elevation: 10}}

	rec := postJSON(t, srv, "/api/v1/climbs", models.ClimbsRequest{Points: points})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"climbs":[]`) {
		t.Errorf("expected an empty climbs array, got %s", rec.Body.String())
	}
}

func TestClimbs_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		status int
		code   string
		reason string
	}{
		{
			name:   "invalid json",
			body:   `{"points": [`,
			status: http.StatusBadRequest,
			code:   models.ErrCodeInvalidJSON,
			reason: "invalid_json",
		},
		{
			name:   "empty body",
			body:   ``,
			status: http.StatusBadRequest,
			code:   models.ErrCodeInvalidJSON,
			reason: "invalid_json",
		},
		{
			name:   "single point",
			body:   `{"points":[{"distance":0,"elevation":1}]}`,
			status: http.StatusBadRequest,
			code:   models.ErrCodeValidation,
			reason: "validation",
		},
		{
			name:   "decreasing distance",
			body:   `{"points":[{"distance":0,"elevation":1},{"distance":100,"elevation":2},{"distance":50,"elevation":3}]}`,
			status: http.StatusBadRequest,
			code:   models.ErrCodeInvalidProfile,
			reason: "invalid_profile",
		},
		{
			name:   "negative distance",
			body:   `{"points":[{"distance":-5,"elevation":1},{"distance":100,"elevation":2}]}`,
			status: http.StatusBadRequest,
			code:   models.ErrCodeInvalidProfile,
			reason: "invalid_profile",
		},
		{
			name:   "invalid smoothing window",
			body:   `{"points":[{"distance":0,"elevation":1},{"distance":100,"elevation":2}],"options":{"smoothing_window":0}}`,
			status: http.StatusBadRequest,
			code:   models.ErrCodeValidation,
			reason: "validation",
		},
		{
			name:   "positive downhill gradient",
			body:   `{"points":[{"distance":0,"elevation":1},{"distance":100,"elevation":2}],"options":{"min_downhill_gradient":2}}`,
			status: http.StatusBadRequest,
			code:   models.ErrCodeValidation,
			reason: "validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newTestServer(t, testServerOptions{})
			rejected := metrics.ProfilesRejected.WithLabelValues(tt.reason)
			before := testutil.ToFloat64(rejected)

			rec := doRequest(t, srv, http.MethodPost, "/api/v1/climbs", "application/json", []byte(tt.body))
			expectError(t, rec, tt.status, tt.code)

			if testutil.ToFloat64(rejected) <= before {
				t.Errorf("climb_profiles_rejected_total{reason=%q} did not increase", tt.reason)
			}
		})
	}
}

func TestClimbs_InvalidProfileDetails(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	body := `{"points":[{"distance":0,"elevation":1},{"distance":100,"elevation":2},{"distance":50,"elevation":3}]}`

	env := expectError(t, doRequest(t, srv, http.MethodPost, "/api/v1/climbs", "application/json", []byte(body)),
		http.StatusBadRequest, models.ErrCodeInvalidProfile)

	if idx, ok := env.Error.Details["index"].(float64); !ok || idx != 2 {
		t.Errorf("details.index = %v, want 2", env.Error.Details["index"])
	}
	if reason, _ := env.Error.Details["reason"].(string); !strings.Contains(reason, "decreases") {
		t.Errorf("details.reason = %q", reason)
	}
}

func TestClimbs_Limits(t *testing.T) {
	t.Parallel()

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		srv, _ := newTestServer(t, testServerOptions{maxBodyBytes: 256})
		rec := postJSON(t, srv, "/api/v1/climbs", models.ClimbsRequest{Points: uniformClimb()})
		expectError(t, rec, http.StatusRequestEntityTooLarge, models.ErrCodeBodyTooLarge)
	})

	t.Run("too many points", func(t *testing.T) {
		t.Parallel()
		srv, _ := newTestServer(t, testServerOptions{maxPoints: 100})
		rec := postJSON(t, srv, "/api/v1/climbs", models.ClimbsRequest{Points: uniformClimb()})
		expectError(t, rec, http.StatusRequestEntityTooLarge, models.ErrCodeTooManyPoints)
	})
}

func TestAnalyzeRoute_Coordinates(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	rec := postJSON(t, srv, "/api/v1/routes/analyze", models.RouteRequest{
		Name:        "Col de Test",
		Coordinates: meridianRoute(200, true),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	_, analysis := decodeAnalysis(t, rec)

	if analysis.Name != "Col de Test" {
		t.Errorf("name = %q", analysis.Name)
	}
	if len(analysis.Climbs) != 1 {
		t.Fatalf("got %d climbs, want 1", len(analysis.Climbs))
	}
	if analysis.Summary == nil {
		t.Fatal("route analysis has no summary")
	}
	if analysis.Summary.Points != 200 {
		t.Errorf("summary.points = %d, want 200", analysis.Summary.Points)
	}
	if math.Abs(analysis.Summary.TotalAscent-199*2.78) > 1e-6 {
		t.Errorf("summary.total_ascent = %v, want %v", analysis.Summary.TotalAscent, 199*2.78)
	}
	if analysis.Summary.TotalDescent != 0 {
		t.Errorf("summary.total_descent = %v, want 0", analysis.Summary.TotalDescent)
	}
	// 199 steps of 0.0005° latitude, about 11 km
	if analysis.Summary.TotalDistance < 10900 || analysis.Summary.TotalDistance > 11200 {
		t.Errorf("summary.total_distance = %v, want about 11 km", analysis.Summary.TotalDistance)
	}
}

func TestAnalyzeRoute_Polyline(t *testing.T) {
	t.Parallel()

	route := meridianRoute(200, true)
	latLng := make([][]float64, len(route))
	elevations := make([]float64, len(route))
	for i, c := range route {
		latLng[i] = []float64{c[1], c[0]}
		elevations[i] = c[2]
	}

	srv, _ := newTestServer(t, testServerOptions{})
	rec := postJSON(t, srv, "/api/v1/routes/analyze", models.RouteRequest{
		Polyline:   string(polyline.EncodeCoords(latLng)),
		Elevations: elevations,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if _, analysis := decodeAnalysis(t, rec); len(analysis.Climbs) != 1 {
		t.Errorf("got %d climbs, want 1", len(analysis.Climbs))
	}
}

func TestAnalyzeRoute_ElevationLookup(t *testing.T) {
	t.Parallel()

	provider := &fakeElevation{}
	srv, _ := newTestServer(t, testServerOptions{elevation: provider})

	rec := postJSON(t, srv, "/api/v1/routes/analyze", models.RouteRequest{Coordinates: meridianRoute(200, false)})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if _, analysis := decodeAnalysis(t, rec); len(analysis.Climbs) != 1 {
		t.Errorf("got %d climbs, want 1", len(analysis.Climbs))
	}
	if got := provider.calls.Load(); got != 1 {
		t.Errorf("provider called %d times, want 1", got)
	}

	// Geometry that already carries elevation never reaches the provider.
	postJSON(t, srv, "/api/v1/routes/analyze", models.RouteRequest{Coordinates: meridianRoute(50, true)})
	if got := provider.calls.Load(); got != 1 {
		t.Errorf("provider called %d times after a complete route, want 1", got)
	}
}

func TestAnalyzeRoute_ElevationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider ElevationProvider
		status   int
		code     string
	}{
		{
			name:   "no provider configured",
			status: http.StatusUnprocessableEntity,
			code:   models.ErrCodeMissingElevation,
		},
		{
			name:     "breaker open",
			provider: &fakeElevation{err: fmt.Errorf("batch 0: %w", elevation.ErrProviderUnavailable)},
			status:   http.StatusServiceUnavailable,
			code:     models.ErrCodeProviderDown,
		},
		{
			name:     "bad upstream response",
			provider: &fakeElevation{err: errors.New("unexpected status 500")},
			status:   http.StatusBadGateway,
			code:     models.ErrCodeProviderFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newTestServer(t, testServerOptions{elevation: tt.provider})
			rec := postJSON(t, srv, "/api/v1/routes/analyze", models.RouteRequest{Coordinates: meridianRoute(20, false)})
			expectError(t, rec, tt.status, tt.code)
		})
	}
}

func TestAnalyzeRoute_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		code string
	}{
		{"neither source", `{"name":"x"}`, models.ErrCodeValidation},
		{"both sources", `{"coordinates":[[6,45,1],[6,45.1,2]],"polyline":"_p~iF~ps|U_ulLnnqC"}`, models.ErrCodeValidation},
		{"latitude out of range", `{"coordinates":[[6,95,1],[6,45.1,2]]}`, models.ErrCodeValidation},
		{"single coordinate", `{"coordinates":[[6,45,1]]}`, models.ErrCodeValidation},
		{"broken polyline", `{"polyline":"_p~iF~ps|U_"}`, models.ErrCodeInvalidGeometry},
		{"elevation count mismatch", `{"polyline":"_p~iF~ps|U_ulLnnqC","elevations":[1,2,3]}`, models.ErrCodeInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newTestServer(t, testServerOptions{})
			rec := doRequest(t, srv, http.MethodPost, "/api/v1/routes/analyze", "application/json", []byte(tt.body))
			expectError(t, rec, http.StatusBadRequest, tt.code)
		})
	}
}

func gpxDocument(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="ascent-test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk><name>Morning Ride</name><trkseg>
`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "    <trkpt lat=\"%.4f\" lon=\"6.0\"><ele>%.2f</ele></trkpt>\n", 45+float64(i)*0.0005, 500+float64(i)*2.78)
	}
	b.WriteString("  </trkseg></trk>\n</gpx>\n")
	return b.String()
}

func TestAnalyzeGPX(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/routes/gpx", "application/gpx+xml", []byte(gpxDocument(200)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	_, analysis := decodeAnalysis(t, rec)

	if analysis.Name != "Morning Ride" {
		t.Errorf("name = %q, want Morning Ride", analysis.Name)
	}
	if len(analysis.Climbs) != 1 {
		t.Errorf("got %d climbs, want 1", len(analysis.Climbs))
	}
	if analysis.Summary == nil || analysis.Summary.Points != 200 {
		t.Errorf("summary = %+v, want 200 points", analysis.Summary)
	}
}

func TestAnalyzeGPX_QueryOverrides(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/routes/gpx?min_gradient=20&smoothing_window=5", "application/gpx+xml", []byte(gpxDocument(200)))
	_, analysis := decodeAnalysis(t, rec)
	if len(analysis.Climbs) != 0 {
		t.Errorf("got %d climbs with min_gradient=20, want 0", len(analysis.Climbs))
	}
	if analysis.Config.SmoothingWindow != 5 || analysis.Config.MinGradient != 20 {
		t.Errorf("effective config = %+v", analysis.Config)
	}

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/routes/gpx?min_gradient=steep", "application/gpx+xml", []byte(gpxDocument(10)))
	expectError(t, rec, http.StatusBadRequest, models.ErrCodeValidation)

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/routes/gpx?smoothing_window=0", "application/gpx+xml", []byte(gpxDocument(10)))
	expectError(t, rec, http.StatusBadRequest, models.ErrCodeValidation)
}

func TestAnalyzeGPX_Rejections(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/routes/gpx", "application/gpx+xml", nil)
	expectError(t, rec, http.StatusBadRequest, models.ErrCodeInvalidGeometry)

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/routes/gpx", "application/gpx+xml", []byte("<gpx><trk>"))
	expectError(t, rec, http.StatusBadRequest, models.ErrCodeInvalidGeometry)

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/routes/gpx", "application/gpx+xml", []byte(gpxDocument(1)))
	expectError(t, rec, http.StatusBadRequest, models.ErrCodeInvalidGeometry)

	small, _ := newTestServer(t, testServerOptions{maxBodyBytes: 512})
	rec = doRequest(t, small, http.MethodPost, "/api/v1/routes/gpx", "application/gpx+xml", []byte(gpxDocument(200)))
	expectError(t, rec, http.StatusRequestEntityTooLarge, models.ErrCodeBodyTooLarge)
}

func TestAnalyzeGeoJSON(t *testing.T) {
	t.Parallel()

	coords := meridianRoute(200, true)
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("[%g,%g,%g]", c[0], c[1], c[2])
	}
	doc := `{"type":"Feature","properties":{"name":"Alpe"},"geometry":{"type":"LineString","coordinates":[` +
		strings.Join(parts, ",") + `]}}`

	srv, _ := newTestServer(t, testServerOptions{})
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/routes/geojson", "application/geo+json", []byte(doc))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	_, analysis := decodeAnalysis(t, rec)
	if analysis.Name != "Alpe" {
		t.Errorf("name = %q, want Alpe", analysis.Name)
	}
	if len(analysis.Climbs) != 1 {
		t.Errorf("got %d climbs, want 1", len(analysis.Climbs))
	}

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/routes/geojson", "application/geo+json", []byte(`{"type":"Point","coordinates":[6,45]}`))
	expectError(t, rec, http.StatusBadRequest, models.ErrCodeInvalidGeometry)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testServerOptions{})
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/categories", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var legend models.LegendResponse
	env := decodeEnvelope(t, rec)
	if err := json.Unmarshal(env.Data, &legend); err != nil {
		t.Fatalf("decode legend: %v", err)
	}
	if len(legend.Categories) != len(climb.Categories()) {
		t.Errorf("got %d categories, want %d", len(legend.Categories), len(climb.Categories()))
	}
	if len(legend.GradientBands) != len(climb.GradientBands()) {
		t.Errorf("got %d gradient bands, want %d", len(legend.GradientBands), len(climb.GradientBands()))
	}
	if legend.Categories[0].Category != climb.CategoryHC || legend.Categories[0].Color != climb.CategoryHC.Color() {
		t.Errorf("first category = %+v, want HC", legend.Categories[0])
	}
}
