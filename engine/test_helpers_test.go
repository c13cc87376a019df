package engine_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// buildGraph assembles a normalized CSRGraph from undirected edge pairs,
// the way Load would produce it, without touching the filesystem.
func buildGraph(t *testing.T, n int32, edges [][2]int32) *ccgraph.CSRGraph {
	t.Helper()

	adj := make([]map[int32]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int32]struct{})
	}
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		adj[e[0]][e[1]] = struct{}{}
		adj[e[1]][e[0]] = struct{}{}
	}

	g := &ccgraph.CSRGraph{N: n, RowPtr: make([]int64, n+1)}
	for u := int32(0); u < n; u++ {
		row := make([]int32, 0, len(adj[u]))
		for v := range adj[u] {
			row = append(row, v)
		}
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
		g.ColIdx = append(g.ColIdx, row...)
		g.RowPtr[u+1] = g.RowPtr[u] + int64(len(row))
	}
	return g
}

// labelUniform reports whether every vertex in verts carries one label.
func labelUniform(labels []int32, verts []int32) bool {
	for _, v := range verts[1:] {
		if labels[v] != labels[verts[0]] {
			return false
		}
	}
	return true
}
