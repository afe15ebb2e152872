package model

import "math"

// geomEps is the tolerance used by the geometric predicates. Boundary
// contact within this tolerance counts as touching, not overlapping.
const geomEps = 1e-9

// Point2D represents a 2D coordinate in length units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is a closed simple polygon as an ordered vertex sequence.
// The last vertex connects back to the first implicitly. Vertex order is
// fixed at construction; every geometric operation returns a new Polygon
// and leaves the receiver untouched.
type Polygon []Point2D

// NewPolygon builds a Polygon from an ordered vertex sequence. The points
// are copied so later mutation of the input slice cannot reach the polygon.
// Fewer than 3 points fail with InsufficientPointsError before any
// geometry is attempted.
func NewPolygon(points []Point2D) (Polygon, error) {
	if len(points) < 3 {
		return nil, &InsufficientPointsError{Count: len(points)}
	}
	p := make(Polygon, len(points))
	copy(p, points)
	return p, nil
}

// Rect returns the axis-aligned rectangle with corners (0,0), (w,0),
// (w,h), (0,h), the container shape used for every nesting run.
func Rect(w, h float64) Polygon {
	return Polygon{{0, 0}, {w, 0}, {w, h}, {0, h}}
}

// signedArea is positive for counter-clockwise vertex order.
func (p Polygon) signedArea() float64 {
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the enclosed area regardless of vertex orientation.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// Centroid returns the area centroid. Degenerate polygons (near-zero
// area) fall back to the vertex average so rotation still has a pivot.
func (p Polygon) Centroid() Point2D {
	a := p.signedArea()
	if math.Abs(a) < geomEps {
		var c Point2D
		for _, v := range p {
			c.X += v.X
			c.Y += v.Y
		}
		c.X /= float64(len(p))
		c.Y /= float64(len(p))
		return c
	}
	var cx, cy float64
	for i, v := range p {
		w := p[(i+1)%len(p)]
		cross := v.X*w.Y - w.X*v.Y
		cx += (v.X + w.X) * cross
		cy += (v.Y + w.Y) * cross
	}
	return Point2D{X: cx / (6 * a), Y: cy / (6 * a)}
}

// BoundingBox returns the min and max corners of the polygon.
func (p Polygon) BoundingBox() (min, max Point2D) {
	if len(p) == 0 {
		return Point2D{}, Point2D{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// Translate shifts all vertices by dx, dy.
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point2D{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// Rotate rotates the polygon about its own centroid. Positive angles turn
// counter-clockwise; the angle is in degrees. The centroid does not move.
func (p Polygon) Rotate(degrees float64) Polygon {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	c := p.Centroid()
	out := make(Polygon, len(p))
	for i, v := range p {
		dx, dy := v.X-c.X, v.Y-c.Y
		out[i] = Point2D{
			X: c.X + dx*cos - dy*sin,
			Y: c.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// ContainsPoint reports whether pt lies inside the convex polygon,
// boundary included. Works for either vertex orientation.
func (p Polygon) ContainsPoint(pt Point2D) bool {
	orient := 1.0
	if p.signedArea() < 0 {
		orient = -1.0
	}
	for i, a := range p {
		b := p[(i+1)%len(p)]
		cross := (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
		if cross*orient < -geomEps {
			return false
		}
	}
	return true
}

// Contains reports whether the convex polygon other lies entirely inside
// p, boundary-inclusive: other may touch the edges of p but not cross
// them. Both polygons must be convex, so vertex containment suffices.
func (p Polygon) Contains(other Polygon) bool {
	for _, v := range other {
		if !p.ContainsPoint(v) {
			return false
		}
	}
	return true
}

// Overlaps reports whether the interiors of two convex polygons
// intersect. Shared edges or vertices alone do not count as overlap.
// Uses the separating-axis test over the edge normals of both polygons.
func (p Polygon) Overlaps(other Polygon) bool {
	return !hasSeparatingAxis(p, other) && !hasSeparatingAxis(other, p)
}

// hasSeparatingAxis checks the edge normals of a for an axis on which the
// projections of a and b do not overlap by more than the tolerance.
func hasSeparatingAxis(a, b Polygon) bool {
	for i, v := range a {
		w := a[(i+1)%len(a)]
		// Normal of edge v->w
		nx, ny := w.Y-v.Y, v.X-w.X
		minA, maxA := project(a, nx, ny)
		minB, maxB := project(b, nx, ny)
		if maxA <= minB+geomEps || maxB <= minA+geomEps {
			return true
		}
	}
	return false
}

func project(p Polygon, nx, ny float64) (min, max float64) {
	min = p[0].X*nx + p[0].Y*ny
	max = min
	for _, v := range p[1:] {
		d := v.X*nx + v.Y*ny
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
