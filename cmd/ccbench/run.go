package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ccbench/ccgraph"
	"github.com/katalvlaran/ccbench/engine"
	"github.com/katalvlaran/ccbench/results"
)

var runOpts struct {
	threads  int
	runs     int
	output   string
	backends string
	labels   string
	chunk    int
}

var runCmd = &cobra.Command{
	Use:   "run <matrix-file>",
	Short: "Benchmark connected components on one graph",
	Long: `Load a graph, run the connected-components computation repeatedly against
the first available engine in the preference order, and record per-run
timings. Writes a labels file (one component label per vertex line) and
appends a timing column to results_<backend>_<matrix>.csv.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matrixPath := args[0]

		order, err := backendOrder(runOpts.backends)
		if err != nil {
			return err
		}

		fmt.Printf("Loading graph from %s ...\n", matrixPath)
		g, err := ccgraph.Load(matrixPath)
		if err != nil {
			return err
		}
		fmt.Printf("Graph: %d nodes, %d undirected edges\n", g.NumVertices(), g.NumEdges())

		out, err := engine.Dispatch(g, runOpts.threads, runOpts.runs, order)
		if err != nil {
			return err
		}

		components := engine.CountComponents(out.Labels)
		for i, d := range out.Durations {
			fmt.Printf("Run %d/%d: %.6f s, components=%d\n",
				i+1, len(out.Durations), d.Seconds(), components)
		}
		fmt.Printf("Backend: %s (tried: %s)\n", out.Backend, attemptSummary(out.Attempts))
		fmt.Printf("Average time: %.6f s with threads=%d\n", out.Mean.Seconds(), runOpts.threads)

		if err := results.EnsureDir(runOpts.output); err != nil {
			return err
		}

		labelsPath := runOpts.labels
		if labelsPath == "" {
			labelsPath = results.ResultsPath(runOpts.output, out.Backend, matrixPath)
			labelsPath = strings.TrimSuffix(labelsPath, ".csv") + "_labels.txt"
		}
		if err := writeLabels(labelsPath, out.Labels); err != nil {
			return err
		}
		fmt.Printf("Labels saved to %s\n", labelsPath)

		csvPath := results.ResultsPath(runOpts.output, out.Backend, matrixPath)
		header := fmt.Sprintf("%d Threads", runOpts.threads)
		secs := make([]float64, len(out.Durations))
		for i, d := range out.Durations {
			secs[i] = d.Seconds()
		}
		if err := results.AppendColumn(csvPath, header, secs); err != nil {
			return err
		}
		slog.Debug("timings recorded", "file", csvPath, "column", header)
		return nil
	},
}

// backendOrder resolves a comma-separated preference list to adapters.
func backendOrder(spec string) ([]engine.Adapter, error) {
	var order []engine.Adapter
	for _, name := range strings.Split(spec, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "labelprop":
			order = append(order, engine.NewLabelProp(engine.WithChunkSize(runOpts.chunk)))
		case "gonum":
			order = append(order, engine.NewGonum())
		case "unionfind":
			order = append(order, engine.NewUnionFind())
		default:
			return nil, fmt.Errorf("unknown backend %q (want labelprop, gonum, unionfind)", name)
		}
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("backend preference list must not be empty")
	}
	return order, nil
}

func attemptSummary(attempts []engine.Attempt) string {
	names := make([]string, len(attempts))
	for i, a := range attempts {
		names[i] = a.Name
		if a.Err != nil {
			names[i] += " (failed)"
			slog.Debug("backend attempt failed", "backend", a.Name, "error", a.Err)
		}
	}
	return strings.Join(names, ", ")
}

// writeLabels emits one component label per line; line i is vertex i.
func writeLabels(path string, labels []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write labels %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, l := range labels {
		fmt.Fprintln(w, l)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write labels %s: %w", path, err)
	}
	return f.Close()
}

func init() {
	runCmd.Flags().IntVarP(&runOpts.threads, "threads", "t", 1, "parallelism degree for the engine")
	runCmd.Flags().IntVarP(&runOpts.runs, "runs", "r", 100, "timed runs per engine call")
	runCmd.Flags().StringVarP(&runOpts.output, "output", "o", "results", "directory for result files")
	runCmd.Flags().StringVarP(&runOpts.backends, "backends", "b", "labelprop,gonum,unionfind",
		"engine preference order")
	runCmd.Flags().StringVar(&runOpts.labels, "labels", "", "labels output path (default next to results CSV)")
	runCmd.Flags().IntVar(&runOpts.chunk, "chunk-size", engine.DefaultChunkSize,
		"labelprop work-distribution chunk size")
	rootCmd.AddCommand(runCmd)
}
