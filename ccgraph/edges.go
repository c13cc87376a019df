package ccgraph

// ExtractEdges derives the duplicate-free undirected edge list from the
// strict upper triangle of g's adjacency: one Edge{U, V} with U < V per
// undirected pair, sorted ascending by (U, V). Deterministic; self-loops
// cannot appear because Load already removed them, and the u < v guard
// re-asserts it anyway.
//
// Time: O(nnz). Memory: O(E).
func ExtractEdges(g *CSRGraph) EdgeList {
	edges := make(EdgeList, 0, g.NumEdges())
	for u := int32(0); u < g.N; u++ {
		for _, v := range g.Neighbors(u) {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}
