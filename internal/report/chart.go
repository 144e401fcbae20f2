package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughData is returned when a chart would have fewer than two points.
var ErrNotEnoughData = errors.New("report: need at least two generations to chart")

// ChartOptions configures a population chart.
type ChartOptions struct {
	Title  string
	Width  int
	Height int
}

// DefaultChartOptions returns a 1024x400 chart.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Title:  "Population",
		Width:  1024,
		Height: 400,
	}
}

// RenderPopulation writes a PNG line chart of population per generation.
func RenderPopulation(w io.Writer, history []int, opts ChartOptions) error {
	if len(history) < 2 {
		return ErrNotEnoughData
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultChartOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	lo, hi := history[0], history[0]
	for i, p := range history {
		xs[i] = float64(i + 1)
		ys[i] = float64(p)
		lo = min(lo, p)
		hi = max(hi, p)
	}

	// go-chart rejects a zero-height range, which a stable population produces.
	var yRange chart.Range
	if lo == hi {
		yRange = &chart.ContinuousRange{Min: float64(lo - 1), Max: float64(hi + 1)}
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:  "Generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Live cells",
			Style: chart.Style{FontSize: 10.0},
			Range: yRange,
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Population",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 255, G: 135, B: 0, A: 255},
					StrokeWidth: 2.0,
				},
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	return nil
}

// SavePopulationChart renders the chart into a file at path.
func SavePopulationChart(path string, history []int, opts ChartOptions) error {
	if len(history) < 2 {
		return ErrNotEnoughData
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	if err := RenderPopulation(f, history, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
