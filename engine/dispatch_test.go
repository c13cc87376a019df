package engine_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccbench/ccgraph"
	"github.com/katalvlaran/ccbench/engine"
)

// stubAdapter scripts one dispatch candidate's behavior.
type stubAdapter struct {
	name     string
	probeErr error
	runErr   error
	result   *engine.Result
	calls    int
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Probe() error { return s.probeErr }

func (s *stubAdapter) Run(_ *ccgraph.CSRGraph, _, _ int) (*engine.Result, error) {
	s.calls++
	if s.runErr != nil {
		return nil, s.runErr
	}
	return s.result, nil
}

func okStub(name string) *stubAdapter {
	return &stubAdapter{
		name: name,
		result: &engine.Result{
			Labels:    []int32{0, 0},
			Durations: []time.Duration{time.Second, 3 * time.Second},
		},
	}
}

func failingStub(name string) *stubAdapter {
	return &stubAdapter{
		name:   name,
		runErr: fmt.Errorf("%w: %s exploded", engine.ErrEngineExecution, name),
	}
}

func unavailableStub(name string) *stubAdapter {
	return &stubAdapter{name: name, probeErr: errors.New("library missing")}
}

func TestDispatch_FirstSuccessWins(t *testing.T) {
	g := buildGraph(t, 2, [][2]int32{{0, 1}})
	first := okStub("first")
	second := okStub("second")

	out, err := engine.Dispatch(g, 1, 2, []engine.Adapter{first, second})
	require.NoError(t, err)
	require.Equal(t, "first", out.Backend)
	require.Equal(t, 0, second.calls, "later candidates must not run")
	require.Len(t, out.Attempts, 1)
	require.NoError(t, out.Attempts[0].Err)
	require.Equal(t, 2*time.Second, out.Mean)
}

func TestDispatch_FallsThroughFailures(t *testing.T) {
	// First k candidates fail, (k+1)-th succeeds: its result is returned
	// and the attempt list has length k+1.
	g := buildGraph(t, 2, [][2]int32{{0, 1}})

	a := failingStub("broken")
	b := unavailableStub("missing")
	c := okStub("fallback")

	out, err := engine.Dispatch(g, 1, 1, []engine.Adapter{a, b, c})
	require.NoError(t, err)
	require.Equal(t, "fallback", out.Backend)
	require.Len(t, out.Attempts, 3)

	require.ErrorIs(t, out.Attempts[0].Err, engine.ErrEngineExecution)
	require.ErrorIs(t, out.Attempts[1].Err, engine.ErrEngineUnavailable)
	require.NoError(t, out.Attempts[2].Err)
	require.Equal(t, 0, b.calls, "probe failure must skip Run")
}

func TestDispatch_AllFail(t *testing.T) {
	g := buildGraph(t, 2, [][2]int32{{0, 1}})

	out, err := engine.Dispatch(g, 1, 1, []engine.Adapter{
		failingStub("one"), unavailableStub("two"),
	})
	require.ErrorIs(t, err, engine.ErrNoBackendAvailable)
	require.Nil(t, out, "no labels may escape a failed dispatch")
}

func TestDispatch_EmptyOrder(t *testing.T) {
	g := buildGraph(t, 2, [][2]int32{{0, 1}})
	_, err := engine.Dispatch(g, 1, 1, nil)
	require.ErrorIs(t, err, engine.ErrNoBackendAvailable)
}

func TestDispatch_ContractViolationAborts(t *testing.T) {
	// A nil graph is not an engine failure: it must not be swallowed into
	// the fallback chain.
	_, err := engine.Dispatch(nil, 1, 1, []engine.Adapter{okStub("a")})
	require.ErrorIs(t, err, engine.ErrGraphNil)
}

func TestDispatch_RealEnginePreference(t *testing.T) {
	g := buildGraph(t, 5, [][2]int32{{0, 1}, {1, 2}, {3, 4}})

	out, err := engine.Dispatch(g, 2, 2, engine.DefaultPreference())
	require.NoError(t, err)
	require.Equal(t, "labelprop", out.Backend)
	require.Equal(t, 2, engine.CountComponents(out.Labels))
	require.NoError(t, engine.Verify(g, out.Labels))
}
