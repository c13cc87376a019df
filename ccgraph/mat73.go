package ccgraph

import (
	"fmt"

	"gonum.org/v1/hdf5"
)

// matGroupPath is the conventional location of the CSC triple inside a
// UF/SuiteSparse v7.3 .mat container.
const matGroupPath = "Problem/A"

// cscTriple is the raw compressed-sparse-column content of a .mat file:
// row indices, column pointers, and stored values, all 0-indexed.
type cscTriple struct {
	ir   []int64
	jc   []int64
	data []float64
}

// readCSCFile is the single seam to the HDF5 dependency; tests substitute
// it to exercise validation without a binary fixture.
var readCSCFile = readCSCHDF5

// readMAT73 loads the CSC triple and converts it to raw directed pairs.
// The vertex count is inferred as max(row index)+1 and must agree with
// len(column pointers)-1; disagreement is ErrMalformedInput. Stored zeros
// are dropped (not edges), matching the boolean view of the matrix.
func readMAT73(path string) (int32, []rawPair, error) {
	t, err := readCSCFile(path)
	if err != nil {
		return 0, nil, err
	}
	if len(t.jc) < 1 {
		return 0, nil, fmt.Errorf("%w: %s: empty column-pointer dataset", ErrMalformedInput, path)
	}
	if int64(len(t.ir)) != t.jc[len(t.jc)-1] {
		return 0, nil, fmt.Errorf("%w: %s: column pointers address %d entries, found %d row indices",
			ErrMalformedInput, path, t.jc[len(t.jc)-1], len(t.ir))
	}
	if len(t.data) != len(t.ir) {
		return 0, nil, fmt.Errorf("%w: %s: %d values for %d row indices",
			ErrMalformedInput, path, len(t.data), len(t.ir))
	}

	var maxRow int64 = -1
	for _, r := range t.ir {
		if r < 0 {
			return 0, nil, fmt.Errorf("%w: %s: negative row index %d", ErrMalformedInput, path, r)
		}
		if r > maxRow {
			maxRow = r
		}
	}
	n := maxRow + 1
	cols := int64(len(t.jc) - 1)
	if n != cols {
		return 0, nil, fmt.Errorf("%w: %s: inferred %d rows but %d columns", ErrMalformedInput, path, n, cols)
	}

	pairs := make([]rawPair, 0, len(t.ir))
	for col := int64(0); col < cols; col++ {
		lo, hi := t.jc[col], t.jc[col+1]
		if lo > hi || hi > int64(len(t.ir)) {
			return 0, nil, fmt.Errorf("%w: %s: column pointer %d out of order", ErrMalformedInput, path, col)
		}
		for k := lo; k < hi; k++ {
			if t.data[k] == 0 {
				continue
			}
			pairs = append(pairs, rawPair{u: int32(t.ir[k]), v: int32(col)})
		}
	}
	return int32(n), pairs, nil
}

// readCSCHDF5 opens the container read-only and pulls the three flat
// datasets. All HDF5 handles are released before returning.
func readCSCHDF5(path string) (cscTriple, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return cscTriple{}, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}
	defer f.Close()

	var t cscTriple
	if err := readInt64Dataset(f, matGroupPath+"/ir", &t.ir); err != nil {
		return cscTriple{}, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}
	if err := readInt64Dataset(f, matGroupPath+"/jc", &t.jc); err != nil {
		return cscTriple{}, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}
	if err := readFloat64Dataset(f, matGroupPath+"/data", &t.data); err != nil {
		return cscTriple{}, fmt.Errorf("%w: %s: %v", ErrMalformedInput, path, err)
	}
	return t, nil
}

func readInt64Dataset(f *hdf5.File, name string, out *[]int64) error {
	dset, err := f.OpenDataset(name)
	if err != nil {
		return fmt.Errorf("dataset %s: %v", name, err)
	}
	defer dset.Close()

	n, err := datasetLen(dset)
	if err != nil {
		return fmt.Errorf("dataset %s: %v", name, err)
	}
	*out = make([]int64, n)
	if n == 0 {
		return nil
	}
	if err := dset.Read(out); err != nil {
		return fmt.Errorf("dataset %s: %v", name, err)
	}
	return nil
}

func readFloat64Dataset(f *hdf5.File, name string, out *[]float64) error {
	dset, err := f.OpenDataset(name)
	if err != nil {
		return fmt.Errorf("dataset %s: %v", name, err)
	}
	defer dset.Close()

	n, err := datasetLen(dset)
	if err != nil {
		return fmt.Errorf("dataset %s: %v", name, err)
	}
	*out = make([]float64, n)
	if n == 0 {
		return nil
	}
	if err := dset.Read(out); err != nil {
		return fmt.Errorf("dataset %s: %v", name, err)
	}
	return nil
}

// datasetLen multiplies out the dataspace extent; the triple's datasets are
// flat, but v7.3 writers sometimes store them as 1×nnz.
func datasetLen(dset *hdf5.Dataset) (int, error) {
	space := dset.Space()
	defer space.Close()

	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return 0, err
	}
	n := 1
	for _, d := range dims {
		n *= int(d)
	}
	return n, nil
}
