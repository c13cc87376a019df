// Package engine runs connected-components computations against a ranked
// sequence of interchangeable execution engines, with automatic fallback
// when an engine is unavailable or fails.
//
// What:
//
//   - Adapter: the capability every engine implements:
//     Run(graph, threads, runs) → per-vertex labels + per-run durations.
//   - LabelProp: parallel chunked label propagation (worker goroutines,
//     dynamic chunk distribution, atomic min-label relaxation).
//   - Gonum: gonum/graph topo.ConnectedComponents behind a scoped
//     GOMAXPROCS adjustment.
//   - UnionFind: serial weighted union-find, the always-available fallback.
//   - Dispatch: tries adapters in caller-supplied preference order, records
//     every attempt, and commits to the first success.
//   - Verify / CountComponents: BFS recount asserting a labelling is
//     exactly the connectivity partition.
//
// Why:
//
//   - Benchmarks must survive a missing or broken engine: unavailability
//     and mid-run failure are one recoverable error channel, consumed only
//     by the dispatcher and surfaced as a diagnostic attempt list.
//   - Label values are engine-specific; only the partition (and so the
//     component count) is comparable across engines.
//
// Timing:
//
//   - Each of the runs is timed independently with the monotonic clock;
//     construction of an engine's native representation is never timed.
//   - The labels returned are from the last run.
//
// Errors:
//
//   - ErrEngineUnavailable, ErrEngineExecution: per-engine, recoverable by
//     Dispatch and by nothing else.
//   - ErrNoBackendAvailable: every candidate failed; fatal.
//   - ErrGraphNil, ErrRunCount, ErrThreadCount: contract violations,
//     never swallowed.
//   - ErrLabelPartition, ErrLabelLength: verification failures.
package engine
