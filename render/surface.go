package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/ccbench/results"
)

// ErrNoSurface is returned for a nil or empty surface.
var ErrNoSurface = errors.New("render: no surface data to plot")

// surfaceGrid adapts a results.Surface to plotter's grid interface.
// Columns are chunk sizes on a log2 scale, rows are thread counts.
type surfaceGrid struct {
	s *results.Surface
}

func (g surfaceGrid) Dims() (c, r int)   { return len(g.s.Chunks), len(g.s.Threads) }
func (g surfaceGrid) Z(c, r int) float64 { return g.s.Cells[r][c] }
func (g surfaceGrid) X(c int) float64    { return math.Log2(float64(g.s.Chunks[c])) }
func (g surfaceGrid) Y(r int) float64    { return float64(g.s.Threads[r]) }

// Heat builds a thread×chunk heat map of mean runtimes. The chunk axis is
// log2-scaled, matching how sweep chunk sizes are chosen.
func Heat(s *results.Surface, matrix string) (*plot.Plot, error) {
	if s == nil || len(s.Threads) == 0 || len(s.Chunks) == 0 {
		return nil, ErrNoSurface
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sweep Surface on %s", matrix)
	p.X.Label.Text = "Chunk size (log2)"
	p.Y.Label.Text = "Threads"

	hm := plotter.NewHeatMap(surfaceGrid{s: s}, palette.Heat(12, 1))
	p.Add(hm)
	return p, nil
}

// SaveHeat renders the heat map to a PNG at path.
func SaveHeat(s *results.Surface, matrix, path string) error {
	p, err := Heat(s, matrix)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 7*vg.Inch, path)
}

// Projection builds the 2-D projection of the sweep surface: one chunk
// size → runtime line per thread count. The single-thread series is
// skipped; chunking is a parallel work-distribution knob and its
// one-thread row only flattens the view.
func Projection(s *results.Surface, matrix string) (*plot.Plot, error) {
	if s == nil || len(s.Threads) == 0 || len(s.Chunks) == 0 {
		return nil, ErrNoSurface
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Runtime vs Chunk Size Projection (%s)", matrix)
	p.X.Label.Text = "Chunk size (log2)"
	p.Y.Label.Text = "Average seconds"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	drawn := 0
	for ti, threads := range s.Threads {
		if threads == 1 {
			continue
		}
		xys := make(plotter.XYs, len(s.Chunks))
		for ci, chunk := range s.Chunks {
			xys[ci] = plotter.XY{X: math.Log2(float64(chunk)), Y: s.Cells[ti][ci]}
		}
		line, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("render: projection threads=%d: %w", threads, err)
		}
		line.Color = plotutil.Color(ti)
		pts.Color = plotutil.Color(ti)
		p.Add(line, pts)
		p.Legend.Add(fmt.Sprintf("%d threads", threads), line, pts)
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("%w: only single-thread rows present", ErrNoSurface)
	}
	return p, nil
}

// SaveProjection renders the projection chart to a PNG at path.
func SaveProjection(s *results.Surface, matrix, path string) error {
	p, err := Projection(s, matrix)
	if err != nil {
		return err
	}
	return p.Save(9*vg.Inch, 6*vg.Inch, path)
}
