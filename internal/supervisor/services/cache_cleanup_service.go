// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package services

import (
	"context"
	"time"

	"github.com/tomtom215/ascent/internal/logging"
)

// ExpiredEntryCleaner removes expired entries and reports how many went.
// Satisfied by *cache.LRU.
type ExpiredEntryCleaner interface {
	CleanupExpired() int
}

// CacheCleanupService sweeps expired analysis results on a fixed interval.
// Lookups already ignore expired entries; the sweep returns their memory
// without waiting for LRU pressure.
type CacheCleanupService struct {
	cache    ExpiredEntryCleaner
	interval time.Duration
	name     string
}

// NewCacheCleanupService creates the sweeper. A non-positive interval uses
// one minute.
func NewCacheCleanupService(cache ExpiredEntryCleaner, interval time.Duration) *CacheCleanupService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheCleanupService{
		cache:    cache,
		interval: interval,
		name:     "cache-cleanup",
	}
}

// Serve implements suture.Service.
func (s *CacheCleanupService) Serve(ctx context.Context) error {
	logger := logging.Component(s.name)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.cache.CleanupExpired(); removed > 0 {
				logger.Debug().Int("removed", removed).Msg("Expired cache entries removed")
			}
		}
	}
}

// String implements fmt.Stringer for logging.
func (s *CacheCleanupService) String() string {
	return s.name
}
