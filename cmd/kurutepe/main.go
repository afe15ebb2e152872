// kurutepe — Laser Cutting Layout Optimizer
//
// Packs copies of a convex shape (the hull of the input points) into a
// rectangular cutting area and reports the covered fraction.
//
// Usage:
//   kurutepe nest   -in points.csv -pdf layout.pdf -dxf layout.dxf
//   kurutepe nest   -points "0,0;2,0;0,2" -json -
//   kurutepe sweep  -in points.csv -steps 10,5,2,1 -out sweep.html
//   kurutepe serve  -addr :8080
//   kurutepe config -backup settings.json
//
// Build:
//   go build -o kurutepe ./cmd/kurutepe

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/halefoglu/kurutepe/internal/engine"
	"github.com/halefoglu/kurutepe/internal/export"
	"github.com/halefoglu/kurutepe/internal/gcode"
	"github.com/halefoglu/kurutepe/internal/importer"
	"github.com/halefoglu/kurutepe/internal/model"
	"github.com/halefoglu/kurutepe/internal/project"
	"github.com/halefoglu/kurutepe/internal/server"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "nest":
		runNest(os.Args[2:])
	case "sweep":
		runSweep(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "config":
		runConfig(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: kurutepe <nest|sweep|serve|config> [flags]")
}

// defaultSettings loads saved defaults from the user config, falling
// back to the built-in defaults when no config exists.
func defaultSettings() model.NestSettings {
	settings := model.DefaultSettings()
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("warning: cannot read config: %v", err)
		return settings
	}
	config.ApplyToSettings(&settings)
	return settings
}

// addSettingsFlags registers the shared container/grid flags on fs,
// seeded with the saved defaults.
func addSettingsFlags(fs *flag.FlagSet, settings *model.NestSettings) *string {
	fs.Float64Var(&settings.XLimit, "width", settings.XLimit, "container width")
	fs.Float64Var(&settings.YLimit, "height", settings.YLimit, "container height")
	fs.Float64Var(&settings.GridStep, "step", settings.GridStep, "grid step between anchors")
	return fs.String("angles", joinFloats(settings.Angles), "comma-separated rotation angles in degrees")
}

func runNest(args []string) {
	settings := defaultSettings()
	fs := flag.NewFlagSet("nest", flag.ExitOnError)
	in := fs.String("in", "", "input points file (.csv, .txt, .xlsx, .dxf)")
	inline := fs.String("points", "", `inline points as x,y pairs, e.g. "0,0;2,0;0,2"`)
	anglesFlag := addSettingsFlags(fs, &settings)
	jsonOut := fs.String("json", "", "write layout JSON to file ('-' for stdout)")
	pdfOut := fs.String("pdf", "", "write layout PDF to file")
	dxfOut := fs.String("dxf", "", "write layout DXF to file")
	gcodeOut := fs.String("gcode", "", "write laser GCode to file")
	profile := fs.String("profile", "", "laser GCode profile ("+strings.Join(gcode.GetProfileNames(), ", ")+")")
	feed := fs.Float64("feed", 0, "laser feed rate, units/min")
	power := fs.Int("power", 0, "laser power")
	fs.Parse(args)

	if *in == "" && *inline == "" {
		log.Fatal("nest: one of -in or -points is required")
	}
	var err error
	settings.Angles, err = parseFloats(*anglesFlag)
	if err != nil {
		log.Fatalf("nest: invalid -angles: %v", err)
	}

	points := resolvePoints(*in, *inline)
	result, err := engine.New(settings).NestPoints(points)
	if err != nil {
		log.Fatalf("nest: %v", err)
	}

	fmt.Printf("Placed %d shapes, cutting area efficiency: %.2f%%\n",
		len(result.Placements), result.Utilization())

	if *jsonOut != "" {
		writeJSON(*jsonOut, result)
	}
	if *pdfOut != "" {
		if err := export.PDF(*pdfOut, result, settings); err != nil {
			log.Fatalf("nest: pdf export: %v", err)
		}
		log.Printf("wrote %s", *pdfOut)
	}
	if *dxfOut != "" {
		if err := export.DXF(*dxfOut, result); err != nil {
			log.Fatalf("nest: dxf export: %v", err)
		}
		log.Printf("wrote %s", *dxfOut)
	}
	if *gcodeOut != "" {
		writeGCode(*gcodeOut, result, *profile, *feed, *power)
	}

	if *in != "" {
		rememberInput(*in)
	}
}

func runSweep(args []string) {
	settings := defaultSettings()
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	in := fs.String("in", "", "input points file (.csv, .txt, .xlsx, .dxf)")
	inline := fs.String("points", "", `inline points as x,y pairs, e.g. "0,0;2,0;0,2"`)
	anglesFlag := addSettingsFlags(fs, &settings)
	stepsFlag := fs.String("steps", "10,5,2,1", "comma-separated grid steps to compare")
	out := fs.String("out", "sweep.html", "output HTML chart file")
	fs.Parse(args)

	if *in == "" && *inline == "" {
		log.Fatal("sweep: one of -in or -points is required")
	}
	var err error
	settings.Angles, err = parseFloats(*anglesFlag)
	if err != nil {
		log.Fatalf("sweep: invalid -angles: %v", err)
	}
	steps, err := parseFloats(*stepsFlag)
	if err != nil {
		log.Fatalf("sweep: invalid -steps: %v", err)
	}

	shape, err := model.BuildShape(resolvePoints(*in, *inline))
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	results, err := engine.Sweep(shape, settings, steps)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	for _, r := range results {
		fmt.Printf("step %6g: %4d anchors, %3d placed, %.2f%%\n",
			r.GridStep, r.Anchors, r.Placed, r.Utilization)
	}

	if err := export.SweepChart(*out, results); err != nil {
		log.Fatalf("sweep: chart export: %v", err)
	}
	log.Printf("wrote %s", *out)
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "listen address")
	fs.Parse(args)

	if err := server.Run(*addr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// runConfig backs up the saved defaults to a file or restores them from
// an earlier backup.
func runConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	backup := fs.String("backup", "", "write all settings to a backup file")
	restore := fs.String("restore", "", "restore settings from a backup file")
	fs.Parse(args)

	switch {
	case *backup != "":
		config, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		if err := project.ExportAllData(*backup, config); err != nil {
			log.Fatalf("config: %v", err)
		}
		log.Printf("wrote %s", *backup)
	case *restore != "":
		data, err := project.ImportAllData(*restore)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		if err := project.SaveAppConfig(project.DefaultConfigPath(), data.Config); err != nil {
			log.Fatalf("config: %v", err)
		}
		log.Printf("restored settings from %s (created %s)", *restore, data.CreatedAt)
	default:
		log.Fatal("config: one of -backup or -restore is required")
	}
}

// resolvePoints reads the input points from the inline flag when given,
// otherwise from the input file.
func resolvePoints(in, inline string) []model.Point2D {
	if inline != "" {
		result := importer.PointsInline(inline)
		if len(result.Errors) > 0 {
			log.Fatalf("cannot parse -points: %s", strings.Join(result.Errors, "; "))
		}
		return result.Points
	}
	return loadPoints(in)
}

func loadPoints(path string) []model.Point2D {
	result := importer.Points(path)
	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}
	if len(result.Errors) > 0 {
		log.Fatalf("cannot import %s: %s", path, strings.Join(result.Errors, "; "))
	}
	return result.Points
}

func writeJSON(path string, result model.NestResult) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("cannot marshal layout: %v", err)
	}
	if path == "-" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("cannot write %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

func writeGCode(path string, result model.NestResult, profile string, feed float64, power int) {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	opts := gcode.Options{
		Profile:  config.DefaultLaserProfile,
		FeedRate: config.DefaultFeedRate,
		Power:    config.DefaultLaserPower,
	}
	if profile != "" {
		opts.Profile = profile
	}
	if feed > 0 {
		opts.FeedRate = feed
	}
	if power > 0 {
		opts.Power = power
	}

	code := gcode.New(opts).Generate(result)
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		log.Fatalf("cannot write %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

// rememberInput records the input file in the recent list of the saved
// config. Failures here are not fatal.
func rememberInput(path string) {
	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		return
	}
	recent := []string{path}
	for _, r := range config.RecentInputs {
		if r != path && len(recent) < 10 {
			recent = append(recent, r)
		}
	}
	config.RecentInputs = recent
	if err := project.SaveAppConfig(configPath, config); err != nil {
		log.Printf("warning: cannot save config: %v", err)
	}
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
