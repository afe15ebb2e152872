package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/halefoglu/kurutepe/internal/engine"
)

// SweepChart renders a grid-step sweep as a self-contained HTML page
// with a bar chart of utilization per step and a companion series with
// the number of shapes placed.
func SweepChart(path string, results []engine.StepResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no sweep results to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Cutting Area Efficiency by Grid Step",
			Subtitle: "Smaller steps probe more anchor positions",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "grid step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "utilization %"}),
	)

	steps := make([]string, len(results))
	utilization := make([]opts.BarData, len(results))
	placed := make([]opts.BarData, len(results))
	for i, r := range results {
		steps[i] = fmt.Sprintf("%g", r.GridStep)
		utilization[i] = opts.BarData{Value: r.Utilization}
		placed[i] = opts.BarData{Value: r.Placed}
	}

	bar.SetXAxis(steps).
		AddSeries("Utilization %", utilization).
		AddSeries("Shapes placed", placed)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return bar.Render(f)
}
