package engine

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// DefaultPreference is the engine ranking used when the caller supplies
// none: the parallel engine first, the library engine second, the serial
// fallback last.
func DefaultPreference() []Adapter {
	return []Adapter{NewLabelProp(), NewGonum(), NewUnionFind()}
}

// Dispatch tries each adapter in order until one succeeds, recording every
// candidate in the attempt list (failures with their error, the winner with
// nil). Unavailability and execution failure are the only recoverable
// conditions; contract violations (nil graph, bad counts) abort immediately.
// When every candidate fails, the error wraps ErrNoBackendAvailable and the
// per-engine failures remain available via the returned attempts.
func Dispatch(g *ccgraph.CSRGraph, threads, runs int, order []Adapter) (*Outcome, error) {
	if err := validateRunArgs(g, threads, runs); err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: empty preference order", ErrNoBackendAvailable)
	}

	attempts := make([]Attempt, 0, len(order))
	for _, candidate := range order {
		if err := candidate.Probe(); err != nil {
			attempts = append(attempts, Attempt{
				Name: candidate.Name(),
				Err:  fmt.Errorf("%w: %s: %v", ErrEngineUnavailable, candidate.Name(), err),
			})
			continue
		}

		res, err := candidate.Run(g, threads, runs)
		if err != nil {
			if errors.Is(err, ErrEngineUnavailable) || errors.Is(err, ErrEngineExecution) {
				attempts = append(attempts, Attempt{Name: candidate.Name(), Err: err})
				continue
			}
			return nil, err
		}

		attempts = append(attempts, Attempt{Name: candidate.Name()})
		return &Outcome{
			Labels:    res.Labels,
			Durations: res.Durations,
			Mean:      meanDuration(res.Durations),
			Backend:   candidate.Name(),
			Attempts:  attempts,
		}, nil
	}

	return nil, fmt.Errorf("%w: tried %s", ErrNoBackendAvailable, attemptNames(attempts))
}

// meanDuration is the arithmetic mean of the run durations.
func meanDuration(ds []time.Duration) time.Duration {
	secs := make([]float64, len(ds))
	for i, d := range ds {
		secs[i] = d.Seconds()
	}
	return time.Duration(stat.Mean(secs, nil) * float64(time.Second))
}

func attemptNames(attempts []Attempt) string {
	names := ""
	for i, a := range attempts {
		if i > 0 {
			names += ", "
		}
		names += a.Name
	}
	return names
}
