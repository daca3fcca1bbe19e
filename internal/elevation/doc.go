// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

/*
Package elevation resolves terrain heights for coordinates that arrive
without them.

The Client speaks the Open-Elevation lookup protocol:

	POST {base_url}/api/v1/lookup
	{"locations":[{"latitude":46.1,"longitude":7.2}, ...]}

	{"results":[{"latitude":46.1,"longitude":7.2,"elevation":1520}, ...]}

Requests are split into batches of Config.BatchSize, paced by a token
bucket limiter and guarded by a circuit breaker. When the breaker is open
every call fails fast with ErrProviderUnavailable so the API can answer
with a 503 instead of queueing behind a dead upstream.

Client satisfies profile.ElevationSource.
*/
package elevation
