// Package gcode produces laser-cutter GCode from a nesting layout. Each
// placed shape is cut as one closed pass around its outline.
package gcode

import (
	"fmt"
	"strings"

	"github.com/halefoglu/kurutepe/internal/model"
)

// LaserProfile defines a post-processor configuration for different
// laser controllers.
type LaserProfile struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	StartCode     []string `json:"start_code"` // Commands at start of file
	LaserOn       string   `json:"laser_on"`   // Laser on command (e.g. "M3 S%d")
	LaserOff      string   `json:"laser_off"`  // Laser off command
	RapidMove     string   `json:"rapid_move"` // G0 or equivalent
	FeedMove      string   `json:"feed_move"`  // G1 or equivalent
	EndCode       []string `json:"end_code"`   // Commands at end of file
	CommentPrefix string   `json:"comment_prefix"`
	DecimalPlaces int      `json:"decimal_places"`
}

// Built-in laser profiles.
var LaserProfiles = []LaserProfile{
	{
		Name:          "Grbl",
		Description:   "Grbl 1.1+ in laser mode ($32=1)",
		StartCode:     []string{"G90", "G21", "M4 S0"},
		LaserOn:       "M4 S%d",
		LaserOff:      "M4 S0",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"M5", "G0 X0 Y0", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
	{
		Name:          "Marlin",
		Description:   "Marlin-based laser engravers",
		StartCode:     []string{"G90", "G21", "M107"},
		LaserOn:       "M106 S%d",
		LaserOff:      "M107",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"M107", "G0 X0 Y0", "M84"},
		CommentPrefix: ";",
		DecimalPlaces: 2,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		StartCode:     []string{"G90", "G21"},
		LaserOn:       "M3 S%d",
		LaserOff:      "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"M5", "G0 X0 Y0", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
}

// GetProfile returns a laser profile by name, or the Generic profile if
// not found.
func GetProfile(name string) LaserProfile {
	for _, p := range LaserProfiles {
		if p.Name == name {
			return p
		}
	}
	return LaserProfiles[len(LaserProfiles)-1]
}

// GetProfileNames returns all available profile names.
func GetProfileNames() []string {
	var names []string
	for _, p := range LaserProfiles {
		names = append(names, p.Name)
	}
	return names
}

// Options holds the machine parameters for a cut job.
type Options struct {
	Profile  string  `json:"profile"`
	FeedRate float64 `json:"feed_rate"` // Cutting feed rate, units/min
	Power    int     `json:"power"`     // Laser power (controller-specific scale)
}

// DefaultOptions returns sensible laser cutting defaults.
func DefaultOptions() Options {
	return Options{Profile: "Generic", FeedRate: 1200, Power: 800}
}

// Generator produces GCode from a nesting result.
type Generator struct {
	Options Options
	profile LaserProfile
}

func New(options Options) *Generator {
	return &Generator{
		Options: options,
		profile: GetProfile(options.Profile),
	}
}

// Generate produces the full GCode program for a layout.
func (g *Generator) Generate(result model.NestResult) string {
	var b strings.Builder

	g.writeHeader(&b, result)
	for i, placement := range result.Placements {
		g.writeShape(&b, placement, i+1)
	}
	g.writeFooter(&b)
	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, result model.NestResult) {
	p := g.profile
	min, max := result.Container.BoundingBox()

	b.WriteString(p.CommentPrefix)
	b.WriteString(" kurutepe laser layout\n")
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Container: %.1f x %.1f\n", max.X-min.X, max.Y-min.Y))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Shapes: %d, Efficiency: %.2f%%\n", len(result.Placements), result.Utilization()))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Feed: %.0f, Power: %d, Profile: %s\n", g.Options.FeedRate, g.Options.Power, p.Name))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile
	b.WriteString("\n")
	b.WriteString(p.CommentPrefix + " === Job complete ===\n")
	for _, code := range p.EndCode {
		b.WriteString(code + "\n")
	}
}

// writeShape cuts one placed shape: rapid to its first vertex with the
// laser off, then one feed pass around the closed outline.
func (g *Generator) writeShape(b *strings.Builder, placement model.Placement, num int) {
	p := g.profile
	outline := placement.Shape
	if len(outline) == 0 {
		return
	}

	b.WriteString(fmt.Sprintf("%s --- Shape %d (angle %g) ---\n", p.CommentPrefix, num, placement.Angle))

	first := outline[0]
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(first.X), g.format(first.Y)))
	b.WriteString(fmt.Sprintf(p.LaserOn+"\n", g.Options.Power))

	for _, v := range outline[1:] {
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove, g.format(v.X), g.format(v.Y), g.format(g.Options.FeedRate)))
	}
	// Close the loop back to the first vertex
	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove, g.format(first.X), g.format(first.Y), g.format(g.Options.FeedRate)))

	b.WriteString(p.LaserOff + "\n")
}

func (g *Generator) format(v float64) string {
	return fmt.Sprintf("%.*f", g.profile.DecimalPlaces, v)
}
