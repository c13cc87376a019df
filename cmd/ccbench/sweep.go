package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ccbench/ccgraph"
	"github.com/katalvlaran/ccbench/engine"
	"github.com/katalvlaran/ccbench/results"
)

var sweepOpts struct {
	threadSpec string
	chunkSpec  string
	runs       int
	output     string
	config     string
}

// sweepConfig is the optional YAML counterpart of the sweep flags.
// Explicitly set flags still win over file values.
type sweepConfig struct {
	Threads string `yaml:"threads"`
	Chunks  string `yaml:"chunks"`
	Runs    int    `yaml:"runs"`
	Output  string `yaml:"output"`
}

var sweepCmd = &cobra.Command{
	Use:   "sweep <matrix-file>",
	Short: "Sweep thread counts and chunk sizes",
	Long: `Run the label-propagation engine across every combination of the given
thread counts and chunk sizes, averaging the timed runs per combination,
and emit a threads,chunk_size,average_seconds CSV suitable for the
surface command. Specifications are comma lists or start:end[:step]
ranges.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applySweepConfig(cmd); err != nil {
			return err
		}

		threads, err := parseRangeList(sweepOpts.threadSpec, "thread")
		if err != nil {
			return err
		}
		chunks, err := parseRangeList(sweepOpts.chunkSpec, "chunk-size")
		if err != nil {
			return err
		}
		if sweepOpts.runs < 1 {
			return fmt.Errorf("number of runs must be positive")
		}

		matrixPath := args[0]
		fmt.Printf("Loading graph from %s ...\n", matrixPath)
		g, err := ccgraph.Load(matrixPath)
		if err != nil {
			return err
		}
		fmt.Printf("Graph: %d nodes, %d undirected edges\n", g.NumVertices(), g.NumEdges())

		rows := make([]results.SweepRow, 0, len(threads)*len(chunks))
		for _, chunk := range chunks {
			eng := engine.NewLabelProp(engine.WithChunkSize(chunk))
			for _, t := range threads {
				res, err := eng.Run(g, t, sweepOpts.runs)
				if err != nil {
					return err
				}
				var total float64
				for _, d := range res.Durations {
					total += d.Seconds()
				}
				avg := total / float64(len(res.Durations))
				rows = append(rows, results.SweepRow{Threads: t, Chunk: chunk, AvgSeconds: avg})
				fmt.Printf("threads=%d chunk=%d: %.6f s average over %d runs\n",
					t, chunk, avg, sweepOpts.runs)
			}
		}

		if err := results.EnsureDir(sweepOpts.output); err != nil {
			return err
		}
		stem := results.MatrixStem(matrixPath)
		path := filepath.Join(sweepOpts.output,
			fmt.Sprintf("results_labelprop_surface_%s.csv", stem))
		if err := results.WriteSurface(path, rows); err != nil {
			return err
		}
		fmt.Printf("Sweep results saved to %s\n", path)
		return nil
	},
}

// applySweepConfig layers the optional YAML file under the flags.
func applySweepConfig(cmd *cobra.Command) error {
	if sweepOpts.config == "" {
		return nil
	}
	data, err := os.ReadFile(sweepOpts.config)
	if err != nil {
		return fmt.Errorf("read sweep config: %w", err)
	}
	var cfg sweepConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse sweep config %s: %w", sweepOpts.config, err)
	}

	if cfg.Threads != "" && !cmd.Flags().Changed("threads") {
		sweepOpts.threadSpec = cfg.Threads
	}
	if cfg.Chunks != "" && !cmd.Flags().Changed("chunk-size") {
		sweepOpts.chunkSpec = cfg.Chunks
	}
	if cfg.Runs > 0 && !cmd.Flags().Changed("runs") {
		sweepOpts.runs = cfg.Runs
	}
	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		sweepOpts.output = cfg.Output
	}
	slog.Debug("sweep config applied", "file", sweepOpts.config)
	return nil
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepOpts.threadSpec, "threads", "t", "1", "thread counts (list or start:end[:step])")
	sweepCmd.Flags().StringVarP(&sweepOpts.chunkSpec, "chunk-size", "c", "4096", "chunk sizes (list or start:end[:step])")
	sweepCmd.Flags().IntVarP(&sweepOpts.runs, "runs", "r", 100, "runs per configuration")
	sweepCmd.Flags().StringVarP(&sweepOpts.output, "output", "o", "results", "directory for the sweep CSV")
	sweepCmd.Flags().StringVar(&sweepOpts.config, "config", "", "optional YAML sweep configuration")
	rootCmd.AddCommand(sweepCmd)
}
