package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// DefaultChunkSize is the dynamic work-distribution granularity used when
// no option overrides it.
const DefaultChunkSize = 4096

// LabelProp computes connected components by parallel min-label
// propagation: every vertex starts labelled with its own index, and rounds
// of relaxation pull each vertex (and its neighbors) down to the smallest
// label in sight until a round changes nothing.
//
// Work inside a round is handed to worker goroutines either in dynamically
// claimed chunks (chunk size > 1) or as fixed per-worker blocks (chunk
// size == 1, the "no chunking" sentinel). The threads parameter is the
// worker count for that call only; no process-wide state is touched.
type LabelProp struct {
	chunk int
}

// LabelPropOption configures a LabelProp engine.
type LabelPropOption func(*LabelProp)

// WithChunkSize sets the dynamic chunk size. Values below 1 panic: chunk
// size is a programmer-supplied tuning knob, not runtime input. A value of
// exactly 1 disables chunking in favor of static block partitioning.
func WithChunkSize(n int) LabelPropOption {
	if n < 1 {
		panic(fmt.Sprintf("engine: chunk size must be >= 1, got %d", n))
	}
	return func(lp *LabelProp) { lp.chunk = n }
}

// NewLabelProp builds the engine with DefaultChunkSize unless overridden.
func NewLabelProp(opts ...LabelPropOption) *LabelProp {
	lp := &LabelProp{chunk: DefaultChunkSize}
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

// Name implements Adapter.
func (lp *LabelProp) Name() string { return "labelprop" }

// Probe implements Adapter. Label propagation is compiled in and has no
// runtime preconditions.
func (lp *LabelProp) Probe() error { return nil }

// Run implements Adapter. The CSR graph is the engine-native
// representation, so nothing is built (or timed) up front.
func (lp *LabelProp) Run(g *ccgraph.CSRGraph, threads, runs int) (*Result, error) {
	if err := validateRunArgs(g, threads, runs); err != nil {
		return nil, err
	}

	res := &Result{Durations: make([]time.Duration, 0, runs)}
	for i := 0; i < runs; i++ {
		start := time.Now()
		labels, err := lp.components(g, threads)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("%w: labelprop run %d: %v", ErrEngineExecution, i+1, err)
		}
		res.Durations = append(res.Durations, elapsed)
		res.Labels = labels
	}
	return res, nil
}

// components executes rounds of relaxation until a fixed point.
func (lp *LabelProp) components(g *ccgraph.CSRGraph, workers int) ([]int32, error) {
	n := int(g.N)
	labels := make([]atomic.Int32, n)
	for i := range labels {
		labels[i].Store(int32(i))
	}

	chunking := lp.chunk > 1
	for {
		var changed atomic.Bool
		var next atomic.Int64

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				if chunking {
					lp.relaxChunks(g, labels, &next, &changed)
				} else {
					lo, hi := blockBounds(n, workers, id)
					lp.relaxRange(g, labels, lo, hi, &changed)
				}
			}(w)
		}
		wg.Wait()

		if !changed.Load() {
			break
		}
	}

	out := make([]int32, n)
	for i := range labels {
		out[i] = labels[i].Load()
	}
	return out, nil
}

// relaxChunks claims chunk-sized vertex ranges from the shared counter
// until the round's work is exhausted.
func (lp *LabelProp) relaxChunks(g *ccgraph.CSRGraph, labels []atomic.Int32, next *atomic.Int64, changed *atomic.Bool) {
	n := int64(g.N)
	size := int64(lp.chunk)
	for {
		start := next.Add(size) - size
		if start >= n {
			return
		}
		end := start + size
		if end > n {
			end = n
		}
		lp.relaxRange(g, labels, int(start), int(end), changed)
	}
}

// relaxRange applies min-label relaxation to vertices [lo, hi).
func (lp *LabelProp) relaxRange(g *ccgraph.CSRGraph, labels []atomic.Int32, lo, hi int, changed *atomic.Bool) {
	local := false
	for u := lo; u < hi; u++ {
		if relaxVertex(g, labels, int32(u)) {
			local = true
		}
	}
	if local {
		changed.Store(true)
	}
}

// relaxVertex pulls u and its neighbors down to the minimum label among
// them. Compare-and-swap keeps labels monotonically decreasing, so stale
// reads cost extra rounds but never correctness.
func relaxVertex(g *ccgraph.CSRGraph, labels []atomic.Int32, u int32) bool {
	old := labels[u].Load()
	min := old
	for _, v := range g.Neighbors(u) {
		if l := labels[v].Load(); l < min {
			min = l
		}
	}
	if min >= old {
		return false
	}

	for cur := old; cur > min; {
		if labels[u].CompareAndSwap(cur, min) {
			break
		}
		cur = labels[u].Load()
	}
	for _, v := range g.Neighbors(u) {
		for cur := labels[v].Load(); cur > min; {
			if labels[v].CompareAndSwap(cur, min) {
				break
			}
			cur = labels[v].Load()
		}
	}
	return true
}

// blockBounds splits n vertices into near-equal static blocks.
func blockBounds(n, workers, id int) (lo, hi int) {
	per := (n + workers - 1) / workers
	lo = id * per
	hi = lo + per
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
