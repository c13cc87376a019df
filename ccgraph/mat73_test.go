package ccgraph

import (
	"errors"
	"testing"
)

// stubCSC substitutes the HDF5 seam for the duration of one test.
func stubCSC(t *testing.T, triple cscTriple, err error) {
	t.Helper()
	prev := readCSCFile
	readCSCFile = func(string) (cscTriple, error) { return triple, err }
	t.Cleanup(func() { readCSCFile = prev })
}

func TestReadMAT73_BuildsSymmetricGraph(t *testing.T) {
	// CSC for a 3x3 matrix with stored entries (1,0) and (2,1), lower
	// triangle only; symmetrization mirrors them.
	stubCSC(t, cscTriple{
		ir:   []int64{1, 2},
		jc:   []int64{0, 1, 2, 2},
		data: []float64{1, 1},
	}, nil)

	g, err := Load("fixture.mat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumVertices() != 3 {
		t.Errorf("NumVertices = %d; want 3", g.NumVertices())
	}
	if g.NumEdges() != 2 {
		t.Errorf("NumEdges = %d; want 2", g.NumEdges())
	}
}

func TestReadMAT73_DimensionMismatch(t *testing.T) {
	// max(ir)+1 = 4 but len(jc)-1 = 3: inconsistent declaration.
	stubCSC(t, cscTriple{
		ir:   []int64{1, 3},
		jc:   []int64{0, 1, 2, 2},
		data: []float64{1, 1},
	}, nil)

	if _, err := Load("fixture.mat"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("want ErrMalformedInput, got %v", err)
	}
}

func TestReadMAT73_PointerEntryCountMismatch(t *testing.T) {
	// jc claims 3 entries, ir holds 2.
	stubCSC(t, cscTriple{
		ir:   []int64{0, 1},
		jc:   []int64{0, 1, 3},
		data: []float64{1, 1},
	}, nil)

	if _, err := Load("fixture.mat"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("want ErrMalformedInput, got %v", err)
	}
}

func TestReadMAT73_StoredZeroDropped(t *testing.T) {
	// One of the two stored entries is an explicit zero.
	stubCSC(t, cscTriple{
		ir:   []int64{1, 0},
		jc:   []int64{0, 1, 2},
		data: []float64{1, 0},
	}, nil)

	g, err := Load("fixture.mat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumEdges() != 1 {
		t.Errorf("NumEdges = %d; want 1", g.NumEdges())
	}
}

func TestReadMAT73_NegativeRowIndex(t *testing.T) {
	stubCSC(t, cscTriple{
		ir:   []int64{-1, 0},
		jc:   []int64{0, 1, 2},
		data: []float64{1, 1},
	}, nil)

	if _, err := Load("fixture.mat"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("want ErrMalformedInput, got %v", err)
	}
}
