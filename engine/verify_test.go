package engine_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ccbench/engine"
)

func TestVerify_AcceptsAnyLabelScheme(t *testing.T) {
	g := buildGraph(t, 5, [][2]int32{{0, 1}, {1, 2}, {3, 4}})

	// Label values need not be contiguous, ordered, or zero-based.
	schemes := [][]int32{
		{0, 0, 0, 1, 1},
		{7, 7, 7, 3, 3},
		{42, 42, 42, 41, 41},
	}
	for _, labels := range schemes {
		if err := engine.Verify(g, labels); err != nil {
			t.Errorf("labels %v: unexpected error %v", labels, err)
		}
	}
}

func TestVerify_SplitComponent(t *testing.T) {
	g := buildGraph(t, 3, [][2]int32{{0, 1}, {1, 2}})
	if err := engine.Verify(g, []int32{0, 0, 1}); !errors.Is(err, engine.ErrLabelPartition) {
		t.Errorf("want ErrLabelPartition, got %v", err)
	}
}

func TestVerify_MergedComponents(t *testing.T) {
	g := buildGraph(t, 4, [][2]int32{{0, 1}, {2, 3}})
	if err := engine.Verify(g, []int32{5, 5, 5, 5}); !errors.Is(err, engine.ErrLabelPartition) {
		t.Errorf("want ErrLabelPartition, got %v", err)
	}
}

func TestVerify_LengthMismatch(t *testing.T) {
	g := buildGraph(t, 3, [][2]int32{{0, 1}})
	if err := engine.Verify(g, []int32{0, 0}); !errors.Is(err, engine.ErrLabelLength) {
		t.Errorf("want ErrLabelLength, got %v", err)
	}
}

func TestVerify_NilGraph(t *testing.T) {
	if err := engine.Verify(nil, nil); !errors.Is(err, engine.ErrGraphNil) {
		t.Errorf("want ErrGraphNil, got %v", err)
	}
}

func TestCountComponents(t *testing.T) {
	cases := []struct {
		labels []int32
		want   int
	}{
		{nil, 0},
		{[]int32{0, 0, 0}, 1},
		{[]int32{9, 2, 9, 4}, 3},
	}
	for _, tc := range cases {
		if got := engine.CountComponents(tc.labels); got != tc.want {
			t.Errorf("CountComponents(%v) = %d; want %d", tc.labels, got, tc.want)
		}
	}
}
