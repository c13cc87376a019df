package engine

import (
	"fmt"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// CountComponents returns the number of distinct label values. For a valid
// assignment this equals the graph's component count regardless of which
// values the engine chose.
func CountComponents(labels []int32) int {
	seen := make(map[int32]struct{}, 64)
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// Verify checks that labels is exactly the connectivity partition of g:
// every BFS-reachable set shares one label, and no two distinct sets share
// a label. Returns ErrLabelLength or ErrLabelPartition with the offending
// vertex or label named.
//
// Time: O(V + E). Memory: O(V).
func Verify(g *ccgraph.CSRGraph, labels []int32) error {
	if g == nil {
		return ErrGraphNil
	}
	n := int(g.N)
	if len(labels) != n {
		return fmt.Errorf("%w: %d labels for %d vertices", ErrLabelLength, len(labels), n)
	}

	visited := make([]bool, n)
	claimed := make(map[int32]int32, 64) // label -> first component's source
	queue := make([]int32, 0, n)

	for src := int32(0); src < int32(n); src++ {
		if visited[src] {
			continue
		}
		label := labels[src]
		if prev, dup := claimed[label]; dup {
			return fmt.Errorf("%w: label %d spans the components of vertices %d and %d",
				ErrLabelPartition, label, prev, src)
		}
		claimed[label] = src

		// BFS over the component rooted at src.
		queue = append(queue[:0], src)
		visited[src] = true
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			if labels[u] != label {
				return fmt.Errorf("%w: vertex %d has label %d, component of %d has label %d",
					ErrLabelPartition, u, labels[u], src, label)
			}
			for _, v := range g.Neighbors(u) {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
	}
	return nil
}
