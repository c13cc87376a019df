// Package ccgraph loads sparse adjacency matrices from exchange formats and
// normalizes them into undirected, simple graphs in compressed sparse row
// (CSR) form, ready for connected-components engines.
//
// What:
//
//   - CSRGraph: an immutable, symmetric CSR adjacency over dense int32
//     vertex indices, with no self-loops and no duplicate edges.
//   - Load: parses Matrix Market coordinate text (.mtx, 1-indexed) or an
//     HDF5 v7.3 container exposing /Problem/A/{ir,jc,data} (.mat, CSC,
//     0-indexed), then symmetrizes by boolean OR with the transpose.
//   - ExtractEdges: derives the strict-upper-triangle edge list, exactly
//     one entry per undirected edge.
//
// Why:
//
//   - Benchmark engines must agree on the graph: one normalization pass up
//     front removes every format- and orientation-specific wrinkle.
//   - Edge weights and multiplicities carry no meaning for connectivity;
//     any stored nonzero is "edge present".
//
// Complexity:
//
//   - Load: O(nnz·log nnz) time (sort + dedup), O(nnz) memory.
//   - ExtractEdges: O(nnz) time, O(E) memory.
//
// Errors:
//
//   - ErrUnsupportedFormat: file extension is not .mtx or .mat.
//   - ErrMalformedInput: declared structure inconsistent with content
//     (bad banner, index out of declared range, CSC shape mismatch).
//
// See cmd/ccbench for the end-to-end benchmark pipeline.
package ccgraph
