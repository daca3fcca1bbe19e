// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || CorrelationIDFromContext(ctx) != "" {
		t.Fatal("empty context returned IDs")
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithNewCorrelationID(ctx)

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
	if got := CorrelationIDFromContext(ctx); len(got) != 8 {
		t.Errorf("CorrelationIDFromContext() = %q, want 8 characters", got)
	}
	if len(GenerateRequestID()) != 36 {
		t.Error("GenerateRequestID() is not a UUID")
	}
}

func TestCtxAddsFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithCorrelationID(ctx, "abcd1234")

	Ctx(ctx).Warn().Msg("lookup slow")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"correlation_id":"abcd1234"`, "lookup slow"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}
