package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ccbench/ccgraph"
	"github.com/katalvlaran/ccbench/engine"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <matrix-file> <labels-file>",
	Short: "Check a label assignment against a graph's connectivity",
	Long: `Load the graph, read one component label per line from the labels file,
and verify the labelling is exactly the connectivity partition: every
connected component label-uniform, no label shared across components.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := ccgraph.Load(args[0])
		if err != nil {
			return err
		}
		labels, err := readLabels(args[1])
		if err != nil {
			return err
		}

		if err := engine.Verify(g, labels); err != nil {
			return err
		}
		fmt.Printf("Number of connected components: %d\n", engine.CountComponents(labels))
		fmt.Println("Labels match graph connectivity")
		return nil
	},
}

// readLabels parses one integer label per line; line i is vertex i.
func readLabels(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read labels %s: %w", path, err)
	}
	defer f.Close()

	var labels []int32
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("labels %s line %d: %q is not an integer",
				path, len(labels)+1, line)
		}
		labels = append(labels, int32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read labels %s: %w", path, err)
	}
	return labels, nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
