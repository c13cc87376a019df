package engine

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// UnionFind computes connected components with a serial weighted union-find
// over the graph's edge list. It is the always-available fallback engine:
// no parallelism, no library dependency, no preconditions. The threads
// parameter is accepted for interface parity and ignored.
type UnionFind struct{}

// NewUnionFind builds the engine.
func NewUnionFind() *UnionFind { return &UnionFind{} }

// Name implements Adapter.
func (*UnionFind) Name() string { return "unionfind" }

// Probe implements Adapter.
func (*UnionFind) Probe() error { return nil }

// Run implements Adapter. The edge list is extracted once per call,
// untimed; each timed run re-executes the unions from scratch.
func (e *UnionFind) Run(g *ccgraph.CSRGraph, threads, runs int) (*Result, error) {
	if err := validateRunArgs(g, threads, runs); err != nil {
		return nil, err
	}

	edges := ccgraph.ExtractEdges(g)

	res := &Result{Durations: make([]time.Duration, 0, runs)}
	for i := 0; i < runs; i++ {
		var labels []int32
		start := time.Now()
		runErr := capture(func() {
			labels = unionFindLabels(int(g.N), edges)
		})
		elapsed := time.Since(start)
		if runErr != nil {
			return nil, fmt.Errorf("%w: unionfind run %d: %v", ErrEngineExecution, i+1, runErr)
		}
		res.Durations = append(res.Durations, elapsed)
		res.Labels = labels
	}
	return res, nil
}

// unionFindLabels unions every edge, then flattens to root labels.
// Path halving plus union by size: near-linear in practice.
func unionFindLabels(n int, edges ccgraph.EdgeList) []int32 {
	parent := make([]int32, n)
	size := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
		size[i] = 1
	}

	find := func(x int32) int32 {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // halve the path
			x = parent[x]
		}
		return x
	}

	for _, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		if size[ru] < size[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		size[ru] += size[rv]
	}

	labels := make([]int32, n)
	for i := range labels {
		labels[i] = find(int32(i))
	}
	return labels
}
