package importer

import (
	"fmt"

	"github.com/halefoglu/kurutepe/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// PointsDXF imports shape points from a DXF file. LWPOLYLINE vertices
// and LINE endpoints are collected as a single point cloud; the nesting
// pipeline reduces them to a convex hull afterwards, so open or
// disconnected geometry is acceptable input.
func PointsDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			for i, v := range e.Vertices {
				result.Points = append(result.Points, model.Point2D{X: v[0], Y: v[1]})
				if i < len(e.Bulges) && e.Bulges[i] != 0 {
					result.Warnings = append(result.Warnings,
						"Arc bulge on polyline vertex ignored; using straight segment")
				}
			}
		case *entity.Line:
			result.Points = append(result.Points,
				model.Point2D{X: e.Start[0], Y: e.Start[1]},
				model.Point2D{X: e.End[0], Y: e.End[1]})
		default:
			// Other entity types are silently skipped
		}
	}

	if len(result.Points) == 0 {
		result.Errors = append(result.Errors, "No usable points found in DXF file")
	}
	return result
}
