package model

import "sort"

// ConvexHull computes the convex hull of a point set using the monotone
// chain algorithm. The hull is returned in counter-clockwise order without
// repeating the first point. Inputs with fewer than 3 distinct points are
// returned as-is (deduplicated); the Shape Builder rejects them later.
func ConvexHull(points []Point2D) []Point2D {
	pts := make([]Point2D, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X == pts[j].X {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	pts = dedupePoints(pts)
	if len(pts) < 3 {
		return pts
	}

	var lower []Point2D
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Point2D
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

// BuildShape constructs the nesting shape from raw input points: the
// convex hull of the points as a Polygon. Fewer than 3 points fail with
// InsufficientPointsError; points whose hull collapses to a segment or
// a single point fail with DegenerateShapeError.
func BuildShape(points []Point2D) (Polygon, error) {
	if len(points) < 3 {
		return nil, &InsufficientPointsError{Count: len(points)}
	}
	hull := ConvexHull(points)
	if len(hull) < 3 {
		return nil, &DegenerateShapeError{Area: Polygon(hull).Area()}
	}
	return NewPolygon(hull)
}

// cross is the 2D cross product of OA and OB. Positive means OAB turns
// counter-clockwise, negative clockwise, zero collinear.
func cross(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// dedupePoints removes consecutive duplicates from a sorted point slice.
func dedupePoints(pts []Point2D) []Point2D {
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	return out
}
