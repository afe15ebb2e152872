// Package export writes nesting results to the formats the laser
// workflow consumes: a PDF layout report, a cut-ready DXF, and an HTML
// utilization chart for grid-step sweeps.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/halefoglu/kurutepe/internal/model"
)

// shapeColor represents an RGB fill color for a placed shape.
type shapeColor struct {
	R, G, B int
}

var shapeColors = []shapeColor{
	{R: 33, G: 150, B: 243}, // blue
	{R: 76, G: 175, B: 80},  // green
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	qrSize       = 40.0
)

// RunInfo is the run summary encoded into the QR code on the PDF
// summary page.
type RunInfo struct {
	ContainerWidth  float64 `json:"container_w"`
	ContainerHeight float64 `json:"container_h"`
	GridStep        float64 `json:"grid_step"`
	Placed          int     `json:"placed"`
	Utilization     float64 `json:"utilization_pct"`
}

// PDF writes the cutting-area layout to a PDF: one page drawing the
// container with every placed shape to scale, then a summary page with
// the run statistics and a QR code carrying them as JSON.
func PDF(path string, result model.NestResult, settings model.NestSettings) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, result, settings)

	pdf.AddPage()
	if err := renderSummaryPage(pdf, result, settings); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the container and placed shapes on the current page.
func renderLayoutPage(pdf *fpdf.Fpdf, result model.NestResult, settings model.NestSettings) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cutting Area Layout (%.0f x %.0f)", settings.XLimit, settings.YLimit)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Shapes: %d | Used area: %.1f | Container area: %.1f | Efficiency: %.2f%%",
		len(result.Placements), result.UsedArea(), result.ContainerArea(), result.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	// Scale the container to fit the drawing area
	scale := math.Min(drawWidth/settings.XLimit, drawHeight/settings.YLimit)
	canvasW := settings.XLimit * scale
	canvasH := settings.YLimit * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Container outline
	pdf.SetFillColor(250, 250, 250)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed shapes. PDF y grows downward, layout y grows upward, so the
	// y axis is flipped against the canvas height.
	for i, p := range result.Placements {
		col := shapeColors[i%len(shapeColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pts := make([]fpdf.PointType, len(p.Shape))
		for j, v := range p.Shape {
			pts[j] = fpdf.PointType{
				X: offsetX + v.X*scale,
				Y: offsetY + canvasH - v.Y*scale,
			}
		}
		pdf.Polygon(pts, "FD")
	}
}

// renderSummaryPage writes the overall statistics and the QR summary.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.NestResult, settings model.NestSettings) error {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Run Summary", "", 1, "L", false, 0, "")

	info := RunInfo{
		ContainerWidth:  settings.XLimit,
		ContainerHeight: settings.YLimit,
		GridStep:        settings.GridStep,
		Placed:          len(result.Placements),
		Utilization:     result.Utilization(),
	}

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Container: %.0f x %.0f", info.ContainerWidth, info.ContainerHeight),
		fmt.Sprintf("Grid step: %g", info.GridStep),
		fmt.Sprintf("Rotation angles: %v", settings.Angles),
		fmt.Sprintf("Shapes placed: %d", info.Placed),
		fmt.Sprintf("Shape area (each): %.2f", shapeAreaOf(result)),
		fmt.Sprintf("Cutting area efficiency: %.2f%%", info.Utilization),
	}
	y := marginTop + headerHeight + 6
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(120, 6, line, "", 1, "L", false, 0, "")
		y += 7
	}

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal run info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	pdf.RegisterImageOptionsReader("run_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("run_qr", pageWidth-marginRight-qrSize, marginTop+headerHeight,
		qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetXY(pageWidth-marginRight-qrSize, marginTop+headerHeight+qrSize+2)
	pdf.CellFormat(qrSize, 4, "Scan for run stats", "", 0, "C", false, 0, "")
	return nil
}

// shapeAreaOf returns the area of a single placed shape; every placement
// is a congruent copy, so the first one is representative.
func shapeAreaOf(result model.NestResult) float64 {
	if len(result.Placements) == 0 {
		return 0
	}
	return result.Placements[0].Shape.Area()
}
