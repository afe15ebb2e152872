package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectCSVDelimiter(t *testing.T) {
	cases := []struct {
		data string
		want rune
	}{
		{"x,y\n1,2\n3,4\n", ','},
		{"x;y\n1;2\n3;4\n", ';'},
		{"x\ty\n1\t2\n", '\t'},
		{"x|y\n1|2\n", '|'},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectCSVDelimiter([]byte(tc.data)), "data: %q", tc.data)
	}
}

func TestPointsCSVWithHeader(t *testing.T) {
	path := writeTemp(t, "points.csv", "X,Y\n0,0\n10,0\n10,5\n0,5\n")
	result := Points(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Points, 4)
	assert.Equal(t, 10.0, result.Points[2].X)
	assert.Equal(t, 5.0, result.Points[2].Y)
}

func TestPointsCSVHeaderless(t *testing.T) {
	path := writeTemp(t, "raw.csv", "1.5,2.5\n3,4\n5,6\n")
	result := Points(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Points, 3)
	assert.Equal(t, 1.5, result.Points[0].X)
}

func TestPointsCSVColumnMappingAndWarnings(t *testing.T) {
	content := "label;Y;X\nA;2;1\nB;4;3\nC;bad;5\n\n"
	path := writeTemp(t, "mapped.csv", content)
	result := Points(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Points, 2)
	// Columns were resolved by header name, not position
	assert.Equal(t, 1.0, result.Points[0].X)
	assert.Equal(t, 2.0, result.Points[0].Y)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "row 4")
}

func TestPointsInline(t *testing.T) {
	result := PointsInline("0,0;2,0;0,2")
	require.Empty(t, result.Errors)
	require.Len(t, result.Points, 3)
	assert.Equal(t, 2.0, result.Points[1].X)

	// Whitespace-separated pairs are equivalent
	spaced := PointsInline("0,0 2,0 0,2")
	require.Empty(t, spaced.Errors)
	assert.Equal(t, result.Points, spaced.Points)
}

func TestPointsInlineBadInput(t *testing.T) {
	assert.NotEmpty(t, PointsInline("").Errors)
	assert.NotEmpty(t, PointsInline("1,2;nope").Errors)
	assert.NotEmpty(t, PointsInline("1,2,3").Errors)
}

func TestPointsCSVEmpty(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	result := Points(path)
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Points)
}

func TestPointsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"x", "y"},
		{0, 0},
		{20, 0},
		{20, 10},
		{0, 10},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := Points(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Points, 4)
	assert.Equal(t, 20.0, result.Points[2].X)
	assert.Equal(t, 10.0, result.Points[2].Y)
}

func TestPointsUnsupportedExtension(t *testing.T) {
	result := Points("shape.svg")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Unsupported file type")
}

func TestPointsDXFMissingFile(t *testing.T) {
	result := Points(filepath.Join(t.TempDir(), "missing.dxf"))
	assert.NotEmpty(t, result.Errors)
}
