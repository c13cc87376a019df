package results_test

import (
	"fmt"

	"github.com/katalvlaran/ccbench/results"
)

// ExampleBuildSeries aligns two algorithms on a shared thread axis: one
// measured per thread count, one measured only sequentially. The
// sequential-only algorithm becomes a flat reference line.
func ExampleBuildSeries() {
	c := &results.Collection{
		Matrix: "road_usa",
		ThreadData: map[string]map[int]float64{
			"labelprop": {2: 1.5, 4: 0.9},
		},
		Sequential: map[string]float64{"gonum": 3.2},
	}

	axis, series, err := results.BuildSeries(c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("axis:", axis)
	fmt.Println("labelprop:", series["labelprop"])
	fmt.Println("gonum:", series["gonum"])
	// Output:
	// axis: [2 4]
	// labelprop: [1.5 0.9]
	// gonum: [3.2 3.2]
}

// ExampleBuildSurface turns sweep rows into a dense thread×chunk grid.
// Rows with chunk size 1 are the unchunked baseline and are excluded.
func ExampleBuildSurface() {
	rows := []results.SweepRow{
		{Threads: 2, Chunk: 1, AvgSeconds: 9.0},
		{Threads: 2, Chunk: 4, AvgSeconds: 1.0},
		{Threads: 2, Chunk: 8, AvgSeconds: 2.0},
		{Threads: 4, Chunk: 4, AvgSeconds: 0.5},
		{Threads: 4, Chunk: 8, AvgSeconds: 0.7},
	}

	s, err := results.BuildSurface(rows)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("threads:", s.Threads)
	fmt.Println("chunks:", s.Chunks)
	fmt.Println("cells:", s.Cells)
	// Output:
	// threads: [2 4]
	// chunks: [4 8]
	// cells: [[1 2] [0.5 0.7]]
}
