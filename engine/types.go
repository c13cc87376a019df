// Package engine: adapter capability, result carriers, and sentinel errors.
package engine

import (
	"errors"
	"time"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// Sentinel errors for engine execution and dispatch.
var (
	// ErrEngineUnavailable indicates the engine's runtime preconditions are
	// not met. Recoverable: the dispatcher moves to the next candidate.
	ErrEngineUnavailable = errors.New("engine: engine unavailable")

	// ErrEngineExecution indicates the computation itself failed during a
	// run. Recoverable: the dispatcher moves to the next candidate.
	ErrEngineExecution = errors.New("engine: engine execution failed")

	// ErrNoBackendAvailable indicates every candidate in the preference
	// order failed. Fatal for the benchmark run.
	ErrNoBackendAvailable = errors.New("engine: no backend available")

	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("engine: graph is nil")

	// ErrRunCount is returned when the run count is below one.
	ErrRunCount = errors.New("engine: run count must be at least 1")

	// ErrThreadCount is returned when the thread count is below one.
	ErrThreadCount = errors.New("engine: thread count must be at least 1")

	// ErrLabelLength indicates a label slice whose length is not the
	// graph's vertex count.
	ErrLabelLength = errors.New("engine: label count does not match vertex count")

	// ErrLabelPartition indicates labels that disagree with the graph's
	// connectivity partition.
	ErrLabelPartition = errors.New("engine: labels disagree with graph connectivity")
)

// Adapter is the capability every execution engine implements.
//
// Run executes the connected-components computation runs times against the
// same in-memory representation, holding threads constant, and returns all
// run durations plus the labels from the last run. Implementations return
// errors wrapping ErrEngineUnavailable or ErrEngineExecution for conditions
// the dispatcher may recover from; anything else aborts dispatch.
type Adapter interface {
	// Name identifies the engine in attempt lists and result file names.
	Name() string

	// Probe reports whether the engine can run at all, without running it.
	Probe() error

	// Run computes labels runs times with the given parallelism.
	Run(g *ccgraph.CSRGraph, threads, runs int) (*Result, error)
}

// Result is one adapter call's output: the label assignment from the last
// run and every run's wall-clock duration, in execution order.
type Result struct {
	Labels    []int32
	Durations []time.Duration
}

// Attempt records one dispatch candidate: its name and, for failures, the
// error that disqualified it (nil for the engine that succeeded).
type Attempt struct {
	Name string
	Err  error
}

// Outcome is a successful dispatch: the winning engine's result, the mean
// duration over its runs, and the full ordered attempt list including
// failures, for observability.
type Outcome struct {
	Labels    []int32
	Durations []time.Duration
	Mean      time.Duration
	Backend   string
	Attempts  []Attempt
}

// validateRunArgs enforces the shared Run contract.
func validateRunArgs(g *ccgraph.CSRGraph, threads, runs int) error {
	if g == nil {
		return ErrGraphNil
	}
	if threads < 1 {
		return ErrThreadCount
	}
	if runs < 1 {
		return ErrRunCount
	}
	return nil
}
