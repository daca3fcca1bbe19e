// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package cache memoises climb analyses so that repeated requests for the same
route skip the detection pipeline.

LRU is a generic least-recently-used cache with a single TTL for every
entry. Expired entries are dropped lazily on Get and in bulk by
CleanupExpired, which the server runs on a ticker.

Keys come from GenerateKey, which hashes the JSON encoding of whatever
identifies a request (the profile plus the effective detector config), so
two requests that differ only in field order or whitespace share an entry.

Hits, misses, evictions and the current size are exported through the
metrics package. Stats returns the same counters for tests and the
readiness endpoint.

Thread Safety:

All methods are safe for concurrent use.
*/
package cache
