package model

import "fmt"

// NestSettings holds the configuration for a single nesting run.
type NestSettings struct {
	XLimit   float64   `json:"x_limit"`   // Container width in length units
	YLimit   float64   `json:"y_limit"`   // Container height in length units
	Angles   []float64 `json:"angles"`    // Allowed rotation angles in degrees, tried in this order
	GridStep float64   `json:"grid_step"` // Anchor spacing; smaller probes more positions
}

// DefaultSettings returns the standard cutting-area configuration:
// a 1000x200 container, quarter-turn rotations, 10-unit grid.
func DefaultSettings() NestSettings {
	return NestSettings{
		XLimit:   1000,
		YLimit:   200,
		Angles:   []float64{0, 90, 180, 270},
		GridStep: 10,
	}
}

// Validate checks that the settings describe a usable run.
func (s NestSettings) Validate() error {
	if s.XLimit <= 0 || s.YLimit <= 0 {
		return fmt.Errorf("container dimensions must be positive, got %gx%g", s.XLimit, s.YLimit)
	}
	if s.GridStep <= 0 {
		return fmt.Errorf("grid step must be positive, got %g", s.GridStep)
	}
	if len(s.Angles) == 0 {
		return fmt.Errorf("at least one rotation angle is required")
	}
	return nil
}

// Container returns the rectangular container polygon for these settings.
func (s NestSettings) Container() Polygon {
	return Rect(s.XLimit, s.YLimit)
}
