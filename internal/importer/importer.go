// Package importer reads shape input points from CSV, Excel and DXF
// files. It supports automatic CSV delimiter detection, flexible header
// recognition, and collects per-row problems as warnings instead of
// aborting the whole import.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/halefoglu/kurutepe/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the outcome of an import operation.
type ImportResult struct {
	Points   []model.Point2D
	Errors   []string
	Warnings []string
}

// headerAliases maps the coordinate columns to their accepted header
// names (all lowercase).
var headerAliases = map[string][]string{
	"x": {"x", "x (mm)", "x_mm", "px", "x coordinate", "xcoord"},
	"y": {"y", "y (mm)", "y_mm", "py", "y coordinate", "ycoord"},
}

// Points imports a point list from the given file, dispatching on the
// file extension (.csv/.txt, .xlsx, .dxf).
func Points(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return PointsCSV(path)
	case ".xlsx":
		return PointsXLSX(path)
	case ".dxf":
		return PointsDXF(path)
	default:
		return ImportResult{Errors: []string{
			fmt.Sprintf("Unsupported file type: %s", filepath.Ext(path)),
		}}
	}
}

// PointsInline parses points given directly on the command line as
// comma-separated x,y pairs split by semicolons or whitespace:
// "0,0;2,0;0,2" or "0,0 2,0 0,2".
func PointsInline(s string) ImportResult {
	result := ImportResult{}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	for i, field := range fields {
		parts := strings.Split(field, ",")
		if len(parts) != 2 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Bad point %d: %q is not an x,y pair", i+1, field))
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Bad point %d: cannot parse %q", i+1, field))
			continue
		}
		result.Points = append(result.Points, model.Point2D{X: x, Y: y})
	}
	if len(result.Points) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No points given")
	}
	return result
}

// DetectCSVDelimiter determines the most likely delimiter by trying
// comma, semicolon, tab and pipe; the one producing the most consistent
// multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// PointsCSV imports points from a CSV file. The header row is optional:
// if the first row parses as two numbers it is treated as data and the
// first two columns are taken as X and Y.
func PointsCSV(path string) ImportResult {
	result := ImportResult{}
	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read file: %v", err))
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse CSV: %v", err))
		return result
	}
	parseRows(rows, &result)
	return result
}

// PointsXLSX imports points from the first sheet of an Excel workbook.
func PointsXLSX(path string) ImportResult {
	result := ImportResult{}
	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read sheet %q: %v", sheet, err))
		return result
	}
	parseRows(rows, &result)
	return result
}

// parseRows turns tabular rows into points, resolving the X/Y columns
// from the header when one is present.
func parseRows(rows [][]string, result *ImportResult) {
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File contains no rows")
		return
	}

	xCol, yCol := 0, 1
	start := 0
	if cols, ok := mapHeader(rows[0]); ok {
		xCol, yCol = cols[0], cols[1]
		start = 1
	} else if _, _, ok := parsePointRow(rows[0], 0, 1); !ok {
		// First row is neither a recognized header nor data
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped unrecognized first row: %v", rows[0]))
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		x, y, ok := parsePointRow(row, xCol, yCol)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped row %d: cannot parse coordinates", i+1))
			continue
		}
		result.Points = append(result.Points, model.Point2D{X: x, Y: y})
	}

	if len(result.Points) == 0 {
		result.Errors = append(result.Errors, "No points found in file")
	}
}

// mapHeader resolves the X and Y column indices from a header row.
func mapHeader(row []string) ([2]int, bool) {
	found := map[string]int{}
	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		for canonical, aliases := range headerAliases {
			for _, alias := range aliases {
				if name == alias {
					if _, dup := found[canonical]; !dup {
						found[canonical] = i
					}
				}
			}
		}
	}
	x, okX := found["x"]
	y, okY := found["y"]
	if !okX || !okY {
		return [2]int{}, false
	}
	return [2]int{x, y}, true
}

func parsePointRow(row []string, xCol, yCol int) (x, y float64, ok bool) {
	if len(row) <= xCol || len(row) <= yCol {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(row[xCol]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(row[yCol]), 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
