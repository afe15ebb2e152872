package engine

import "github.com/halefoglu/kurutepe/internal/model"

// StepResult summarizes one run of a grid-step sweep.
type StepResult struct {
	GridStep    float64 `json:"grid_step"`
	Anchors     int     `json:"anchors"`    // Anchor positions visited
	Candidates  int     `json:"candidates"` // Anchors x rotation variants
	Placed      int     `json:"placed"`
	Utilization float64 `json:"utilization"`
}

// Sweep runs the same shape and container over each grid step and
// reports how step size trades attempt density against coverage.
// Smaller steps never visit fewer anchors; utilization usually does not
// decrease either, though greedy ordering can produce rare exceptions.
func Sweep(shape model.Polygon, settings model.NestSettings, steps []float64) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		s := settings
		s.GridStep = step
		nester := New(s)

		result, err := nester.Nest(shape)
		if err != nil {
			return nil, err
		}

		container := s.Container()
		min, max := container.BoundingBox()
		nx := len(anchors(min.X, max.X, step))
		ny := len(anchors(min.Y, max.Y, step))

		results = append(results, StepResult{
			GridStep:    step,
			Anchors:     nx * ny,
			Candidates:  nx * ny * len(s.Angles),
			Placed:      len(result.Placements),
			Utilization: result.Utilization(),
		})
	}
	return results, nil
}
