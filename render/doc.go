// Package render draws charts from aggregated benchmark results: runtime
// versus thread count as lines, and thread×chunk sweep surfaces as heat
// maps with a per-thread projection view.
//
// The package is a thin boundary over gonum/plot: it accepts only the
// validated outputs of package results (an aligned series map or a dense
// Surface) and is a pure function from those to an image file. Absent
// series points (NaN) break the line rather than plotting as zero.
package render
