package render_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccbench/render"
	"github.com/katalvlaran/ccbench/results"
)

func TestLines_BuildsPlot(t *testing.T) {
	axis := []int{2, 4, 8}
	series := map[string][]float64{
		"labelprop": {1.0, 0.6, math.NaN()}, // gap at 8 threads
		"unionfind": {2.0, 2.0, 2.0},
	}

	p, err := render.Lines(axis, series, "karate")
	require.NoError(t, err)
	require.Contains(t, p.Title.Text, "karate")
}

func TestLines_RejectsEmptyAndRagged(t *testing.T) {
	_, err := render.Lines(nil, nil, "x")
	require.ErrorIs(t, err, render.ErrNoSeries)

	_, err = render.Lines([]int{2, 4}, map[string][]float64{"a": {1.0}}, "x")
	require.Error(t, err)
}

func TestSaveLines_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results_plot_karate.png")
	axis := []int{2, 4}
	series := map[string][]float64{"labelprop": {1.0, 0.5}}

	require.NoError(t, render.SaveLines(axis, series, "karate", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func testSurface() *results.Surface {
	return &results.Surface{
		Threads: []int{1, 2, 4},
		Chunks:  []int{4, 8},
		Cells:   [][]float64{{3.0, 3.1}, {1.0, 2.0}, {0.5, 0.7}},
	}
}

func TestHeatAndProjection_BuildPlots(t *testing.T) {
	s := testSurface()

	h, err := render.Heat(s, "karate")
	require.NoError(t, err)
	require.Contains(t, h.Title.Text, "karate")

	proj, err := render.Projection(s, "karate")
	require.NoError(t, err)
	require.Contains(t, proj.Title.Text, "karate")
}

func TestProjection_SkipsSingleThreadRow(t *testing.T) {
	// Only a threads==1 row: nothing remains to draw.
	s := &results.Surface{
		Threads: []int{1},
		Chunks:  []int{4, 8},
		Cells:   [][]float64{{3.0, 3.1}},
	}
	_, err := render.Projection(s, "karate")
	require.ErrorIs(t, err, render.ErrNoSurface)
}

func TestSaveHeat_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surface_plot_karate.png")
	require.NoError(t, render.SaveHeat(testSurface(), "karate", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestNilSurfaceRejected(t *testing.T) {
	_, err := render.Heat(nil, "x")
	require.ErrorIs(t, err, render.ErrNoSurface)
	_, err = render.Projection(nil, "x")
	require.ErrorIs(t, err, render.ErrNoSurface)
}
