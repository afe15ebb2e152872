package model

import (
	"errors"
	"math"
	"testing"
)

func unitSquare() Polygon {
	return Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestNewPolygonRejectsTooFewPoints(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		pts := make([]Point2D, n)
		for i := range pts {
			pts[i] = Point2D{X: float64(i), Y: float64(i * 2)}
		}
		_, err := NewPolygon(pts)
		if err == nil {
			t.Fatalf("expected error for %d points", n)
		}
		var ipe *InsufficientPointsError
		if !errors.As(err, &ipe) {
			t.Fatalf("expected InsufficientPointsError, got %T", err)
		}
		if ipe.Count != n {
			t.Errorf("expected count %d in error, got %d", n, ipe.Count)
		}
	}
}

func TestNewPolygonCopiesInput(t *testing.T) {
	pts := []Point2D{{0, 0}, {1, 0}, {0, 1}}
	p, err := NewPolygon(pts)
	if err != nil {
		t.Fatal(err)
	}
	pts[0].X = 99
	if p[0].X != 0 {
		t.Error("polygon shares backing array with input slice")
	}
}

func TestPolygonArea(t *testing.T) {
	if a := unitSquare().Area(); math.Abs(a-1) > 1e-12 {
		t.Errorf("unit square area = %g, want 1", a)
	}
	tri := Polygon{{0, 0}, {2, 0}, {0, 2}}
	if a := tri.Area(); math.Abs(a-2) > 1e-12 {
		t.Errorf("triangle area = %g, want 2", a)
	}
	// Orientation must not matter
	cw := Polygon{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	if a := cw.Area(); math.Abs(a-1) > 1e-12 {
		t.Errorf("clockwise square area = %g, want 1", a)
	}
}

func TestPolygonCentroid(t *testing.T) {
	c := unitSquare().Centroid()
	if math.Abs(c.X-0.5) > 1e-12 || math.Abs(c.Y-0.5) > 1e-12 {
		t.Errorf("unit square centroid = %v, want (0.5, 0.5)", c)
	}
	// Degenerate collinear polygon still gets a pivot (vertex average)
	line := Polygon{{0, 0}, {1, 0}, {2, 0}}
	c = line.Centroid()
	if math.Abs(c.X-1) > 1e-12 || math.Abs(c.Y) > 1e-12 {
		t.Errorf("collinear centroid = %v, want (1, 0)", c)
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	p := Polygon{{3, 1}, {7, 2}, {5, 6}}
	r := p.Rotate(0)
	for i := range p {
		if math.Abs(r[i].X-p[i].X) > 1e-9 || math.Abs(r[i].Y-p[i].Y) > 1e-9 {
			t.Errorf("vertex %d moved under 0-degree rotation: %v -> %v", i, p[i], r[i])
		}
	}
	if math.Abs(r.Area()-p.Area()) > 1e-9 {
		t.Error("area changed under 0-degree rotation")
	}
}

func TestRotatePreservesCentroidAndArea(t *testing.T) {
	p := Polygon{{0, 0}, {4, 0}, {4, 2}, {0, 2}}
	for _, deg := range []float64{90, 180, 270, 45} {
		r := p.Rotate(deg)
		c0, c1 := p.Centroid(), r.Centroid()
		if math.Abs(c0.X-c1.X) > 1e-9 || math.Abs(c0.Y-c1.Y) > 1e-9 {
			t.Errorf("rotation by %g moved centroid %v -> %v", deg, c0, c1)
		}
		if math.Abs(r.Area()-p.Area()) > 1e-9 {
			t.Errorf("rotation by %g changed area", deg)
		}
	}
}

func TestRotateCounterClockwise(t *testing.T) {
	// Rectangle wider than tall; after 90 degrees CCW the vertex right of
	// the centroid must end up above it.
	p := Polygon{{0, 0}, {4, 0}, {4, 2}, {0, 2}}
	r := p.Rotate(90)
	c := p.Centroid()
	// Original vertex (4, 0) sits right of and below the centroid (2, 1).
	// CCW by 90: (dx, dy) -> (-dy, dx) = (1, 2) relative, i.e. (3, 3).
	got := r[1]
	if math.Abs(got.X-3) > 1e-9 || math.Abs(got.Y-3) > 1e-9 {
		t.Errorf("CCW rotation of (4,0) about %v = %v, want (3,3)", c, got)
	}
}

func TestTranslateDoesNotMutate(t *testing.T) {
	p := unitSquare()
	q := p.Translate(5, 7)
	if p[0].X != 0 || p[0].Y != 0 {
		t.Error("translate mutated the receiver")
	}
	if q[0].X != 5 || q[0].Y != 7 {
		t.Errorf("translate produced %v, want (5, 7)", q[0])
	}
}

func TestBoundingBox(t *testing.T) {
	p := Polygon{{1, 5}, {4, 2}, {6, 8}}
	min, max := p.BoundingBox()
	if min.X != 1 || min.Y != 2 || max.X != 6 || max.Y != 8 {
		t.Errorf("bbox = %v..%v, want (1,2)..(6,8)", min, max)
	}
}

func TestContainsBoundaryInclusive(t *testing.T) {
	container := Rect(10, 10)
	inner := unitSquare().Translate(9, 9) // touches the far corner
	if !container.Contains(inner) {
		t.Error("shape touching the container boundary should be contained")
	}
	outside := unitSquare().Translate(9.5, 0)
	if container.Contains(outside) {
		t.Error("shape crossing the boundary should not be contained")
	}
}

func TestOverlapsInteriorsOnly(t *testing.T) {
	a := unitSquare()
	b := unitSquare().Translate(1, 0) // shares an edge with a
	if a.Overlaps(b) {
		t.Error("edge-sharing squares must not count as overlapping")
	}
	c := unitSquare().Translate(0.5, 0.5)
	if !a.Overlaps(c) {
		t.Error("half-offset squares must overlap")
	}
	d := unitSquare().Translate(1, 1) // shares only a corner
	if a.Overlaps(d) {
		t.Error("corner-touching squares must not count as overlapping")
	}
	far := unitSquare().Translate(5, 5)
	if a.Overlaps(far) {
		t.Error("disjoint squares must not overlap")
	}
}

func TestConvexHull(t *testing.T) {
	pts := []Point2D{
		{0, 0}, {4, 0}, {4, 4}, {0, 4},
		{2, 2}, {1, 1}, {3, 2}, // interior points
	}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("hull has %d vertices, want 4: %v", len(hull), hull)
	}
	poly, err := NewPolygon(hull)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(poly.Area()-16) > 1e-12 {
		t.Errorf("hull area = %g, want 16", poly.Area())
	}
	if poly.signedArea() <= 0 {
		t.Error("hull should be counter-clockwise")
	}
}

func TestBuildShape(t *testing.T) {
	shape, err := BuildShape([]Point2D{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if len(shape) != 4 {
		t.Errorf("shape has %d vertices, want 4 (interior point dropped)", len(shape))
	}

	_, err = BuildShape([]Point2D{{0, 0}, {1, 1}})
	var ipe *InsufficientPointsError
	if !errors.As(err, &ipe) {
		t.Errorf("expected InsufficientPointsError for 2 points, got %v", err)
	}

	_, err = BuildShape([]Point2D{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	var dse *DegenerateShapeError
	if !errors.As(err, &dse) {
		t.Errorf("expected DegenerateShapeError for collinear points, got %v", err)
	}
}

func TestConvexHullFewPoints(t *testing.T) {
	pts := []Point2D{{1, 1}, {2, 2}}
	hull := ConvexHull(pts)
	if len(hull) != 2 {
		t.Errorf("expected 2 points back, got %d", len(hull))
	}
	dup := []Point2D{{1, 1}, {1, 1}, {1, 1}}
	if got := ConvexHull(dup); len(got) != 1 {
		t.Errorf("expected duplicates collapsed to 1 point, got %d", len(got))
	}
}
