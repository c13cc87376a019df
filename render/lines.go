package render

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoSeries is returned when there is nothing to draw.
var ErrNoSeries = errors.New("render: no series data to plot")

// Lines builds a runtime-vs-threads chart: one line per algorithm, aligned
// on the shared thread axis. NaN cells split the line into segments;
// absent measurements leave gaps, they are never drawn as zero.
func Lines(axis []int, series map[string][]float64, matrix string) (*plot.Plot, error) {
	if len(axis) == 0 || len(series) == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Connected Components on %s", matrix)
	p.X.Label.Text = "Threads"
	p.Y.Label.Text = "Average runtime (s)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	// Deterministic draw order and colors.
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		vals := series[name]
		if len(vals) != len(axis) {
			return nil, fmt.Errorf("render: series %q has %d values for %d thread counts",
				name, len(vals), len(axis))
		}
		first := true
		for _, seg := range segments(axis, vals) {
			line, pts, err := plotter.NewLinePoints(seg)
			if err != nil {
				return nil, fmt.Errorf("render: series %q: %w", name, err)
			}
			line.Color = plotutil.Color(i)
			pts.Color = plotutil.Color(i)
			p.Add(line, pts)
			if first {
				p.Legend.Add(name, line, pts)
				first = false
			}
		}
	}
	return p, nil
}

// SaveLines renders the chart to a PNG at path.
func SaveLines(axis []int, series map[string][]float64, matrix, path string) error {
	p, err := Lines(axis, series, matrix)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// segments splits an aligned series into contiguous runs of present
// values, dropping NaN cells.
func segments(axis []int, vals []float64) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for i, v := range vals {
		if math.IsNaN(v) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(axis[i]), Y: v})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
