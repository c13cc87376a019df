// Package ccgraph: domain types and sentinel errors for graph loading.
// This file declares the CSRGraph and Edge types plus the package error set.
// Loaders live in load.go / mtx.go / mat73.go; extraction in edges.go.
package ccgraph

import "errors"

// Sentinel errors for graph loading and normalization.
var (
	// ErrUnsupportedFormat indicates the file extension is not a recognized
	// exchange format (.mtx or .mat).
	ErrUnsupportedFormat = errors.New("ccgraph: unsupported graph file format")

	// ErrMalformedInput indicates the file's declared structure is
	// inconsistent with its content (bad banner, truncated body, index
	// outside the declared dimensions, CSC pointer/row-index mismatch).
	ErrMalformedInput = errors.New("ccgraph: malformed graph input")
)

// CSRGraph is an undirected, simple graph over n vertices identified by
// dense indices [0, n), stored as a symmetric compressed-sparse-row
// adjacency: both (u,v) and (v,u) are present after normalization, the
// diagonal is empty, and neighbor lists are sorted and duplicate-free.
//
// A CSRGraph is built once by Load and never mutated afterwards; it is safe
// for concurrent readers.
type CSRGraph struct {
	// N is the vertex count.
	N int32

	// RowPtr has length N+1; the neighbors of u occupy
	// ColIdx[RowPtr[u]:RowPtr[u+1]].
	RowPtr []int64

	// ColIdx holds neighbor indices, sorted ascending within each row.
	ColIdx []int32
}

// NumVertices returns the vertex count as an int.
func (g *CSRGraph) NumVertices() int { return int(g.N) }

// NumEdges returns the number of undirected edges (stored entries / 2).
func (g *CSRGraph) NumEdges() int64 { return int64(len(g.ColIdx)) / 2 }

// Neighbors returns the sorted neighbor slice of u. The slice aliases the
// graph's storage and must not be modified.
func (g *CSRGraph) Neighbors(u int32) []int32 {
	return g.ColIdx[g.RowPtr[u]:g.RowPtr[u+1]]
}

// Degree returns the number of neighbors of u.
func (g *CSRGraph) Degree(u int32) int {
	return int(g.RowPtr[u+1] - g.RowPtr[u])
}

// Edge is one undirected edge with U < V strictly.
type Edge struct {
	U, V int32
}

// EdgeList is the deterministic strict-upper-triangle edge sequence of a
// CSRGraph: sorted by (U, V), one entry per undirected edge.
type EdgeList []Edge
