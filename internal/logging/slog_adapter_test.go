// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandlerWritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf)))

	logger.With("service", "http").
		WithGroup("restart").
		Warn("service failed", "attempt", 3, "backoff", 2*time.Second, "fatal", false)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"restart.service":"http"`,
		`"restart.attempt":3`,
		`"restart.fatal":false`,
		`"message":"service failed"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info enabled on a warn logger")
	}
	if !h.Enabled(t.Context(), slog.LevelError) {
		t.Error("error disabled on a warn logger")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := map[slog.Level]zerolog.Level{
		slog.LevelDebug: zerolog.DebugLevel,
		slog.LevelInfo:  zerolog.InfoLevel,
		slog.LevelWarn:  zerolog.WarnLevel,
		slog.LevelError: zerolog.ErrorLevel,
		slog.Level(12):  zerolog.ErrorLevel,
	}
	for in, want := range tests {
		if got := slogToZerologLevel(in); got != want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", in, got, want)
		}
	}
}
