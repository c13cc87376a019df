package engine

import (
	"fmt"
	"runtime"
	"time"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// Gonum computes connected components with gonum's topo package over a
// simple.UndirectedGraph built once per call (construction untimed).
//
// gonum accepts no per-call parallelism degree, so the threads parameter is
// applied as a scoped runtime.GOMAXPROCS adjustment immediately before the
// timed runs and restored afterwards. That is a process-wide side effect:
// concurrent benchmark calls would observe each other's setting, so callers
// must serialize Gonum runs.
type Gonum struct{}

// NewGonum builds the engine.
func NewGonum() *Gonum { return &Gonum{} }

// Name implements Adapter.
func (*Gonum) Name() string { return "gonum" }

// Probe implements Adapter. The library is compiled in.
func (*Gonum) Probe() error { return nil }

// Run implements Adapter.
func (e *Gonum) Run(g *ccgraph.CSRGraph, threads, runs int) (*Result, error) {
	if err := validateRunArgs(g, threads, runs); err != nil {
		return nil, err
	}

	ug, err := e.build(g)
	if err != nil {
		return nil, err
	}

	prev := runtime.GOMAXPROCS(threads)
	defer runtime.GOMAXPROCS(prev)

	res := &Result{Durations: make([]time.Duration, 0, runs)}
	for i := 0; i < runs; i++ {
		var comps [][]int64
		start := time.Now()
		runErr := capture(func() {
			comps = componentNodeIDs(topo.ConnectedComponents(ug))
		})
		elapsed := time.Since(start)
		if runErr != nil {
			return nil, fmt.Errorf("%w: gonum run %d: %v", ErrEngineExecution, i+1, runErr)
		}
		res.Durations = append(res.Durations, elapsed)
		res.Labels = labelsFromComponents(int(g.N), comps)
	}
	return res, nil
}

// build assembles the gonum graph: every vertex as a node (isolated
// vertices must exist for the component count to be right), every
// upper-triangle edge once.
func (e *Gonum) build(g *ccgraph.CSRGraph) (*simple.UndirectedGraph, error) {
	ug := simple.NewUndirectedGraph()
	var err error
	buildErr := capture(func() {
		for u := int64(0); u < int64(g.N); u++ {
			ug.AddNode(simple.Node(u))
		}
		for _, e := range ccgraph.ExtractEdges(g) {
			ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
		}
	})
	if buildErr != nil {
		err = fmt.Errorf("%w: gonum graph construction: %v", ErrEngineExecution, buildErr)
	}
	return ug, err
}

// componentNodeIDs flattens topo's node groups to plain IDs so the timed
// section holds no references into the library's types.
func componentNodeIDs(comps [][]graph.Node) [][]int64 {
	out := make([][]int64, len(comps))
	for i, comp := range comps {
		ids := make([]int64, len(comp))
		for j, node := range comp {
			ids[j] = node.ID()
		}
		out[i] = ids
	}
	return out
}

// labelsFromComponents assigns each component's index as the label of its
// members. Label values are engine-specific; only the partition matters.
func labelsFromComponents(n int, comps [][]int64) []int32 {
	labels := make([]int32, n)
	for ci, comp := range comps {
		for _, id := range comp {
			labels[id] = int32(ci)
		}
	}
	return labels
}

// capture converts a panic inside an engine library into an ordinary
// error, keeping the recoverable-error channel intact for the dispatcher.
func capture(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
