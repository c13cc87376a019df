package ccgraph

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Load parses the graph file at path and returns its normalized CSR form.
// The format is selected by extension: ".mtx" for Matrix Market coordinate
// text, ".mat" for an HDF5 v7.3 container holding a CSC triple under
// /Problem/A. Any other extension returns ErrUnsupportedFormat.
//
// Normalization is identical for both formats: every stored nonzero (u,v)
// contributes both directions, self-loops are dropped, and duplicates are
// eliminated, so the result is symmetric and simple regardless of how the
// source oriented or duplicated its entries.
func Load(path string) (*CSRGraph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mtx":
		n, pairs, err := readMTX(path)
		if err != nil {
			return nil, err
		}
		return buildCSR(n, pairs), nil
	case ".mat":
		n, pairs, err := readMAT73(path)
		if err != nil {
			return nil, err
		}
		return buildCSR(n, pairs), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// rawPair is a directed entry as read from a source file, 0-indexed. It may
// be a loop or a duplicate; buildCSR removes both.
type rawPair struct {
	u, v int32
}

// buildCSR symmetrizes raw entries and assembles the CSR arrays.
//
// Steps: mirror every entry, drop loops, sort lexicographically, dedup,
// then compact into RowPtr/ColIdx. O(nnz·log nnz) time.
func buildCSR(n int32, pairs []rawPair) *CSRGraph {
	sym := make([]rawPair, 0, 2*len(pairs))
	for _, p := range pairs {
		if p.u == p.v {
			continue
		}
		sym = append(sym, p, rawPair{u: p.v, v: p.u})
	}

	sort.Slice(sym, func(i, j int) bool {
		if sym[i].u != sym[j].u {
			return sym[i].u < sym[j].u
		}
		return sym[i].v < sym[j].v
	})

	// Dedup in place: identical (u,v) runs collapse to one entry.
	write := 0
	for r := range sym {
		if write == 0 || sym[r] != sym[write-1] {
			sym[write] = sym[r]
			write++
		}
	}
	sym = sym[:write]

	g := &CSRGraph{
		N:      n,
		RowPtr: make([]int64, n+1),
		ColIdx: make([]int32, len(sym)),
	}
	for _, p := range sym {
		g.RowPtr[p.u+1]++
	}
	for u := int32(0); u < n; u++ {
		g.RowPtr[u+1] += g.RowPtr[u]
	}
	for i, p := range sym {
		g.ColIdx[i] = p.v
	}
	return g
}
