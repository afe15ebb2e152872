package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/halefoglu/kurutepe/internal/model"
)

// DXF writes the layout as a DXF drawing for the laser controller: the
// container boundary on a CONTAINER layer and every placed shape as a
// closed polyline on a SHAPES layer.
func DXF(path string, result model.NestResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("CONTAINER", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add container layer: %w", err)
	}
	if err := writePolyline(d, result.Container); err != nil {
		return fmt.Errorf("failed to write container outline: %w", err)
	}

	if _, err := d.AddLayer("SHAPES", dxfcolor.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add shapes layer: %w", err)
	}
	for i, p := range result.Placements {
		if err := writePolyline(d, p.Shape); err != nil {
			return fmt.Errorf("failed to write shape %d: %w", i, err)
		}
	}

	return d.SaveAs(path)
}

// writePolyline adds a closed LWPOLYLINE for the polygon's vertices.
func writePolyline(d *drawing.Drawing, p model.Polygon) error {
	vertices := make([][]float64, len(p))
	for i, v := range p {
		vertices[i] = []float64{v.X, v.Y}
	}
	_, err := d.LwPolyline(true, vertices...)
	return err
}
