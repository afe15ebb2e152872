package model

import "github.com/google/uuid"

// Placement is one accepted copy of the shape in the final layout.
type Placement struct {
	ID    string  `json:"id"`
	Angle float64 `json:"angle"` // Rotation angle that won this anchor, degrees CCW
	X     float64 `json:"x"`     // Anchor offset applied to the rotated shape
	Y     float64 `json:"y"`
	Shape Polygon `json:"shape"` // Final vertex positions inside the container
}

// NewPlacement stamps a placement with a short unique ID.
func NewPlacement(shape Polygon, angle, x, y float64) Placement {
	return Placement{
		ID:    uuid.New().String()[:8],
		Angle: angle,
		X:     x,
		Y:     y,
		Shape: shape,
	}
}

// NestResult is the full outcome of one nesting run. Placements appear in
// acceptance order and are never removed or reordered.
type NestResult struct {
	Container  Polygon     `json:"container"`
	Placements []Placement `json:"placements"`
}

// UsedArea returns the total area covered by placed shapes.
func (r NestResult) UsedArea() float64 {
	var total float64
	for _, p := range r.Placements {
		total += p.Shape.Area()
	}
	return total
}

// ContainerArea returns the area of the container.
func (r NestResult) ContainerArea() float64 {
	return r.Container.Area()
}

// Utilization returns the covered fraction of the container as a
// percentage. An empty layout reports 0.
func (r NestResult) Utilization() float64 {
	ca := r.ContainerArea()
	if ca == 0 || len(r.Placements) == 0 {
		return 0
	}
	return (r.UsedArea() / ca) * 100.0
}
