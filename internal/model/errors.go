package model

import "fmt"

// InsufficientPointsError reports that fewer than 3 input points were
// supplied to build a shape. The run aborts before any packing happens.
type InsufficientPointsError struct {
	Count int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("at least 3 points are required to build a shape, got %d", e.Count)
}

// DegenerateShapeError reports a hull whose area is zero or near-zero
// (collinear input points). Such a shape would be accepted at every
// anchor while contributing nothing to utilization, so the engine
// rejects it up front.
type DegenerateShapeError struct {
	Area float64
}

func (e *DegenerateShapeError) Error() string {
	return fmt.Sprintf("shape is degenerate: area %g is below tolerance", e.Area)
}
