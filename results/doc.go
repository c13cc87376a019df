// Package results turns raw benchmark measurement files into validated,
// well-formed tables ready for comparison and rendering.
//
// What:
//
//   - 1-D path: ParseTable reads one results_<algorithm>_<matrix>.csv per
//     (algorithm, graph) pair, buckets columns by "<N> Thread(s)" headers
//     (everything else pools into a sequential bucket), and reduces each
//     bucket to its arithmetic mean. Gather collects a directory and
//     BuildSeries aligns every algorithm on the shared thread-count axis,
//     absent points kept as NaN, never zero.
//   - 2-D path: ParseSurface reads (threads, chunk_size, average_seconds)
//     rows and BuildSurface assembles the dense thread×chunk matrix,
//     excluding the chunk_size == 1 "no chunking" sentinel and rejecting
//     any missing grid cell.
//   - Writer: AppendColumn grows a timing CSV one column at a time, the
//     way repeated benchmark invocations accumulate their runs.
//
// Why:
//
//   - Downstream renderers require rectangular data; validation happens
//     here, once, with file/column/row context in every error.
//   - Duplicate (threads, chunk) rows overwrite, last wins. That mirrors
//     the accumulating-map behavior of the original tooling and is kept
//     for parity; see DESIGN.md before "fixing" it.
//
// Errors:
//
//   - ErrBadFileName, ErrNonNumericValue, ErrEmptyDataset,
//     ErrGraphIdentityMismatch (1-D).
//   - ErrMissingColumns, ErrInvalidRow, ErrMissingGridCell (2-D).
package results
