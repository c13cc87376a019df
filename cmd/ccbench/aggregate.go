package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ccbench/render"
	"github.com/katalvlaran/ccbench/results"
)

var aggregateOutput string

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <results-dir>",
	Short: "Aggregate per-algorithm timing CSVs into a comparison chart",
	Long: `Read every results_<algorithm>_<matrix>.csv in the directory, reduce each
thread-count column group to its mean, align all algorithms on the shared
thread axis, and render a runtime-vs-threads line chart. All files must
reference the same graph.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		c, err := results.Gather(dir)
		if err != nil {
			return err
		}
		axis, series, err := results.BuildSeries(c)
		if err != nil {
			return err
		}

		out := aggregateOutput
		if out == "" {
			out = filepath.Join(dir, fmt.Sprintf("results_plot_%s.png", c.Matrix))
		}
		if err := render.SaveLines(axis, series, c.Matrix, out); err != nil {
			return err
		}
		fmt.Printf("Plot saved to %s\n", out)
		return nil
	},
}

var surfaceOutput string

var surfaceCmd = &cobra.Command{
	Use:   "surface <sweep-csv>",
	Short: "Render a sweep CSV as heat-map and projection charts",
	Long: `Validate that the sweep CSV forms a dense thread-count × chunk-size grid
(chunk size 1 rows excluded) and render it as a heat map plus a
runtime-vs-chunk-size projection with one line per thread count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath := args[0]

		rows, err := results.ParseSurface(csvPath)
		if err != nil {
			return err
		}
		s, err := results.BuildSurface(rows)
		if err != nil {
			return err
		}

		matrix := results.SurfaceMatrixName(csvPath)
		heatOut := surfaceOutput
		if heatOut == "" {
			heatOut = sibling(csvPath, fmt.Sprintf("surface_plot_%s.png", matrix))
		}
		projOut := sibling(csvPath, fmt.Sprintf("projection_plot_%s.png", matrix))

		if err := render.SaveHeat(s, matrix, heatOut); err != nil {
			return err
		}
		if err := render.SaveProjection(s, matrix, projOut); err != nil {
			return err
		}
		fmt.Printf("Surface plot saved to: %s\n", heatOut)
		fmt.Printf("Projection plot saved to: %s\n", projOut)
		return nil
	},
}

// sibling places name next to path.
func sibling(path, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

func init() {
	aggregateCmd.Flags().StringVar(&aggregateOutput, "output", "", "output PNG path (default results_plot_<matrix>.png in the directory)")
	surfaceCmd.Flags().StringVar(&surfaceOutput, "output", "", "heat-map PNG path (default surface_plot_<matrix>.png beside the CSV)")
	rootCmd.AddCommand(aggregateCmd, surfaceCmd)
}
