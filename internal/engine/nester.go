// Package engine implements the greedy grid-sweep nesting algorithm: it
// fills a rectangular container with as many non-overlapping copies of a
// convex shape as a single deterministic pass finds room for, trying each
// allowed rotation at every grid anchor.
package engine

import (
	"math"

	"github.com/halefoglu/kurutepe/internal/model"
)

// degenerateAreaEps is the area below which a hull is rejected as
// degenerate (collinear input points).
const degenerateAreaEps = 1e-9

// Nester runs the placement algorithm for one shape and container.
type Nester struct {
	Settings model.NestSettings
}

func New(settings model.NestSettings) *Nester {
	return &Nester{Settings: settings}
}

// rotation pairs an angle with the shape pre-rotated about its centroid.
// The slice order is the angle declaration order and decides which
// orientation wins a contested anchor.
type rotation struct {
	angle float64
	shape model.Polygon
}

// buildRotations produces one rotated copy of the base shape per allowed
// angle, rotated about the shape's own centroid, in declaration order.
func buildRotations(shape model.Polygon, angles []float64) []rotation {
	rotations := make([]rotation, len(angles))
	for i, angle := range angles {
		rotations[i] = rotation{angle: angle, shape: shape.Rotate(angle)}
	}
	return rotations
}

// anchors returns the grid coordinates min, min+step, ... strictly below
// max. Coordinates are computed as min + i*step rather than by repeated
// addition so the anchor set does not drift with float accumulation.
func anchors(min, max, step float64) []float64 {
	if step <= 0 || max <= min {
		return nil
	}
	n := int(math.Ceil((max - min) / step))
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x := min + float64(i)*step
		if x >= max {
			break
		}
		out = append(out, x)
	}
	return out
}

// canPlace is the placement predicate: the candidate must lie fully
// inside the container (boundary contact allowed) and its interior must
// not intersect any already placed shape. It has no side effects.
func canPlace(candidate model.Polygon, placed []model.Placement, container model.Polygon) bool {
	if !container.Contains(candidate) {
		return false
	}
	for _, existing := range placed {
		if candidate.Overlaps(existing.Shape) {
			return false
		}
	}
	return true
}

// Nest sweeps the container grid and greedily places rotated copies of
// the shape. Anchors are visited x-outer, y-inner; at each anchor the
// rotations are tried in angle order and the first accepted candidate is
// frozen into the layout. There is no backtracking: once placed, a shape
// is never moved or removed.
func (n *Nester) Nest(shape model.Polygon) (model.NestResult, error) {
	if err := n.Settings.Validate(); err != nil {
		return model.NestResult{}, err
	}
	if area := shape.Area(); area < degenerateAreaEps {
		return model.NestResult{}, &model.DegenerateShapeError{Area: area}
	}

	container := n.Settings.Container()
	rotations := buildRotations(shape, n.Settings.Angles)

	min, max := container.BoundingBox()
	result := model.NestResult{Container: container}

	for _, x := range anchors(min.X, max.X, n.Settings.GridStep) {
		for _, y := range anchors(min.Y, max.Y, n.Settings.GridStep) {
			for _, rot := range rotations {
				// The offset applies to the rotated shape's absolute
				// position; the candidate is not re-centered on the anchor.
				candidate := rot.shape.Translate(x, y)
				if canPlace(candidate, result.Placements, container) {
					result.Placements = append(result.Placements,
						model.NewPlacement(candidate, rot.angle, x, y))
					break // at most one shape per anchor
				}
			}
		}
	}

	return result, nil
}

// NestPoints is the full pipeline from raw input points: convex hull,
// shape construction, then the grid sweep. It fails before any placement
// work when fewer than 3 points are supplied or the hull is degenerate.
func (n *Nester) NestPoints(points []model.Point2D) (model.NestResult, error) {
	shape, err := model.BuildShape(points)
	if err != nil {
		return model.NestResult{}, err
	}
	return n.Nest(shape)
}
