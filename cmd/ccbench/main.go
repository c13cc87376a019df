// Command ccbench benchmarks connected-components engines on sparse graphs
// and aggregates the resulting timing data into charts.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
