// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/ascent/internal/models"
)

const (
	healthOK       = "ok"
	healthDegraded = "degraded"
	healthDisabled = "disabled"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, models.HealthResponse{
		Status: healthOK,
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	}, start, false)
}

// HealthReady handles readiness probe requests (Kubernetes-style).
//
// Detection itself has no external dependencies, so the service is always
// ready. An open elevation breaker only degrades requests that need
// elevation lookups and is reported as "degraded" with status 200.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	checks := map[string]string{
		"detector":  healthOK,
		"cache":     healthDisabled,
		"elevation": healthDisabled,
	}
	status := healthOK

	var cacheSize int
	if h.results != nil {
		checks["cache"] = healthOK
		cacheSize = h.results.Len()
	}
	if h.elevation != nil {
		checks["elevation"] = h.elevation.State()
		if !h.elevation.Available() {
			status = healthDegraded
		}
	}

	respondSuccess(w, r, models.HealthResponse{
		Status:    status,
		Version:   Version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks:    checks,
		CacheSize: cacheSize,
	}, start, false)
}
