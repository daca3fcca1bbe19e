// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

// Command climbs detects climbs in a GPX or GeoJSON file and prints the
// analysis as JSON, or as a table with -table.
//
//	climbs -i ride.gpx
//	climbs -i stage.geojson -min-gradient 1 -table
//	climbs -i route.geojson -elevation-url https://api.open-elevation.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ascent/internal/climb"
	"github.com/tomtom215/ascent/internal/elevation"
	"github.com/tomtom215/ascent/internal/logging"
	"github.com/tomtom215/ascent/internal/models"
	"github.com/tomtom215/ascent/internal/profile"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit; it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("climbs", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputFile    = fs.String("i", "", "Input GPX or GeoJSON file")
		outputFile   = fs.String("o", "", "Write JSON to this file instead of stdout")
		format       = fs.String("format", "auto", "Input format: auto, gpx or geojson")
		table        = fs.Bool("table", false, "Print a climb table instead of JSON")
		withPoints   = fs.Bool("points", false, "Include annotated points and gradient segments in JSON output")
		elevationURL = fs.String("elevation-url", "", "Open-Elevation compatible API for points without elevation")
		verbose      = fs.Bool("v", false, "Log pipeline details to stderr")
		showVersion  = fs.Bool("version", false, "Show version information")

		smoothing      = fs.Int("smoothing-window", 0, "Moving average window in samples")
		minGradient    = fs.Float64("min-gradient", 0, "Minimum local gradient of a steep section, percent")
		minLength      = fs.Float64("min-length", 0, "Minimum steep section length, meters")
		maxGap         = fs.Float64("max-gap", 0, "Largest gap between merged sections, meters")
		minAvgGrade    = fs.Float64("min-average-gradient", 0, "Minimum average gradient of a climb, percent")
		lookAhead      = fs.Float64("look-ahead", 0, "How far past a section the summit search goes, meters")
		downhillGrade  = fs.Float64("min-downhill-gradient", 0, "Gradient at or below which a descent counts, percent (negative)")
		downhillLength = fs.Float64("min-downhill-length", 0, "Descent length that ends a climb, meters")
		tieTolerance   = fs.Float64("score-tie-tolerance", 0, "FIETS score difference treated as a tie when resolving overlaps")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "climbs - detect categorized climbs in a route\n\n")
		fmt.Fprintf(stderr, "usage: climbs -i /path/to/route.gpx [options]\n\n")
		fmt.Fprintf(stderr, "options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "climbs %s\n", version)
		return 0
	}
	if *inputFile == "" {
		fs.Usage()
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logging.Init(logging.Config{Level: level, Format: "console", Timestamp: true, Output: stderr})

	// Only flags given on the command line override the defaults.
	overrides := &climb.Overrides{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "smoothing-window":
			overrides.SmoothingWindow = smoothing
		case "min-gradient":
			overrides.MinGradient = minGradient
		case "min-length":
			overrides.MinLength = minLength
		case "max-gap":
			overrides.MaxGap = maxGap
		case "min-average-gradient":
			overrides.MinAverageGradient = minAvgGrade
		case "look-ahead":
			overrides.LookAhead = lookAhead
		case "min-downhill-gradient":
			overrides.MinDownhillGradient = downhillGrade
		case "min-downhill-length":
			overrides.MinDownhillLength = downhillLength
		case "score-tie-tolerance":
			overrides.ScoreTieTolerance = tieTolerance
		}
	})

	detector, err := climb.NewDetector(climb.DefaultConfig().WithOverrides(overrides), logging.Logger())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	track, err := readTrack(*inputFile, *format)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %s: %v\n", *inputFile, err)
		return 1
	}

	if !track.HasElevation() {
		if *elevationURL == "" {
			fmt.Fprintf(stderr, "Error: %d of %d points have no elevation; pass -elevation-url to look them up\n",
				len(track.MissingElevations()), len(track.Line))
			return 1
		}
		if err := fillElevations(track, *elevationURL); err != nil {
			fmt.Fprintf(stderr, "Error looking up elevations: %v\n", err)
			return 1
		}
	}

	points, err := track.Profile()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := climb.Validate(points); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	analysis := detector.Analyze(points)
	summary := profile.Summarize(points)

	if *table {
		printTable(stdout, track.Name, analysis.Climbs, summary)
		return 0
	}

	resp := models.NewAnalysisResponse(analysis, detector.Config())
	resp.Name = track.Name
	resp.Summary = &summary
	if !*withPoints {
		resp.Points = nil
		resp.Segments = nil
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding analysis: %v\n", err)
		return 1
	}
	data = append(data, '\n')

	if *outputFile == "" {
		_, _ = stdout.Write(data)
		return 0
	}
	if err := os.WriteFile(*outputFile, data, 0o600); err != nil {
		fmt.Fprintf(stderr, "Error writing %s: %v\n", *outputFile, err)
		return 1
	}
	return 0
}

// readTrack parses path as GPX or GeoJSON. With format "auto" the file
// extension decides.
func readTrack(path, format string) (*profile.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".gpx":
			format = "gpx"
		case ".geojson", ".json":
			format = "geojson"
		default:
			return nil, fmt.Errorf("cannot tell the format of %q; use -format", filepath.Base(path))
		}
	}

	var track *profile.Track
	switch format {
	case "gpx":
		track, err = profile.FromGPX(data)
	case "geojson":
		track, err = profile.FromGeoJSON(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if track.Name == "" {
		track.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return track, nil
}

func fillElevations(track *profile.Track, baseURL string) error {
	cfg := elevation.DefaultConfig()
	cfg.Enabled = true
	cfg.BaseURL = baseURL
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	return track.FillElevations(ctx, elevation.NewClient(cfg))
}

func printTable(w io.Writer, name string, climbs []climb.Climb, s profile.Summary) {
	fmt.Fprintf(w, "%s: %.1f km, +%.0f m / -%.0f m, %d points\n\n",
		name, s.TotalDistance/1000, s.TotalAscent, s.TotalDescent, s.Points)

	if len(climbs) == 0 {
		fmt.Fprintln(w, "No climbs found.")
		return
	}

	fmt.Fprintf(w, "%-4s %-5s %9s %9s %9s %8s %7s %7s\n", "#", "CAT", "START km", "END km", "LENGTH km", "GAIN m", "AVG %", "FIETS")
	for i := range climbs {
		c := &climbs[i]
		fmt.Fprintf(w, "%-4d %-5s %9.2f %9.2f %9.2f %8.0f %7.1f %7.2f\n",
			i+1, c.Category, c.StartPoint.Distance/1000, c.EndPoint.Distance/1000,
			c.TotalDistance/1000, c.ElevationGain, c.AverageGradient, c.FietsScore)
	}
}
