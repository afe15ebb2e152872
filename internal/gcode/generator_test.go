package gcode

import (
	"strings"
	"testing"

	"github.com/halefoglu/kurutepe/internal/model"
)

func sampleResult() model.NestResult {
	square := model.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	return model.NestResult{
		Container: model.Rect(100, 50),
		Placements: []model.Placement{
			model.NewPlacement(square, 0, 0, 0),
			model.NewPlacement(square.Translate(10, 0), 0, 10, 0),
		},
	}
}

func TestGenerateStructure(t *testing.T) {
	gen := New(DefaultOptions())
	code := gen.Generate(sampleResult())

	for _, want := range []string{"G90", "G21", "M3 S800", "M5", "G1 X", "G0 X", "F1200.000"} {
		if !strings.Contains(code, want) {
			t.Errorf("generated GCode missing %q", want)
		}
	}
	if !strings.Contains(code, "Shapes: 2") {
		t.Error("header should report shape count")
	}
}

func TestGenerateLaserOnOffPerShape(t *testing.T) {
	gen := New(DefaultOptions())
	code := gen.Generate(sampleResult())

	on := strings.Count(code, "M3 S800")
	off := strings.Count(code, "M5")
	if on != 2 {
		t.Errorf("expected 2 laser-on commands, got %d", on)
	}
	// One laser-off per shape plus one in the end code
	if off != 3 {
		t.Errorf("expected 3 laser-off commands, got %d", off)
	}
}

func TestGenerateClosesOutline(t *testing.T) {
	gen := New(DefaultOptions())
	result := model.NestResult{
		Container:  model.Rect(20, 20),
		Placements: []model.Placement{model.NewPlacement(model.Polygon{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 3, Y: 4}}, 0, 0, 0)},
	}
	code := gen.Generate(result)

	// The pass must return to the first vertex
	if strings.Count(code, "X1.000 Y1.000") < 2 {
		t.Error("outline pass should start and end at the first vertex")
	}
}

func TestGetProfile(t *testing.T) {
	if GetProfile("Grbl").LaserOn != "M4 S%d" {
		t.Error("Grbl profile should use M4 in laser mode")
	}
	if GetProfile("nonsense").Name != "Generic" {
		t.Error("unknown profile should fall back to Generic")
	}
	names := GetProfileNames()
	if len(names) != len(LaserProfiles) {
		t.Errorf("expected %d profile names, got %d", len(LaserProfiles), len(names))
	}
}

func TestMarlinProfileCommands(t *testing.T) {
	opts := DefaultOptions()
	opts.Profile = "Marlin"
	opts.Power = 255
	code := New(opts).Generate(sampleResult())

	if !strings.Contains(code, "M106 S255") {
		t.Error("Marlin profile should switch the fan-pin laser on with M106")
	}
	if !strings.Contains(code, "M107") {
		t.Error("Marlin profile should switch the laser off with M107")
	}
}
