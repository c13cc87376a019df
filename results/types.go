// Package results: domain types and sentinel errors for aggregation.
package results

import "errors"

// Sentinel errors for the 1-D and 2-D aggregation paths.
var (
	// ErrBadFileName indicates a measurement file whose name does not
	// follow results_<algorithm>_<matrix>.csv.
	ErrBadFileName = errors.New("results: unexpected measurement file name")

	// ErrNonNumericValue indicates a non-blank cell that fails to parse as
	// a number. The wrapping message names the file, column, and raw text.
	ErrNonNumericValue = errors.New("results: non-numeric value")

	// ErrEmptyDataset indicates a bucket, file set, or surface with zero
	// usable values; nothing can be averaged or assembled from it.
	ErrEmptyDataset = errors.New("results: empty dataset")

	// ErrGraphIdentityMismatch indicates measurement files from one batch
	// referencing different graphs.
	ErrGraphIdentityMismatch = errors.New("results: mixed graph identities in one batch")

	// ErrMissingColumns indicates a surface CSV lacking one of the
	// required threads/chunk_size/average_seconds columns.
	ErrMissingColumns = errors.New("results: missing required columns")

	// ErrInvalidRow indicates a surface row whose fields fail to parse as
	// the expected numeric types.
	ErrInvalidRow = errors.New("results: invalid row")

	// ErrMissingGridCell indicates a (threads, chunk_size) combination
	// absent from the cross product of observed axis values; the surface
	// must be dense before a renderer may consume it.
	ErrMissingGridCell = errors.New("results: missing grid cell")
)

// Table is one parsed measurement file: per-thread-count means plus an
// optional pooled sequential mean, tagged with the algorithm and graph
// identity encoded in the file name.
type Table struct {
	Algorithm string
	Matrix    string

	// ThreadMeans maps thread count to the mean of that column group.
	ThreadMeans map[int]float64

	// Sequential is the mean of all unlabeled columns pooled together;
	// HasSequential reports whether any such value existed.
	Sequential    float64
	HasSequential bool
}

// Collection is a batch of Tables sharing one graph identity.
type Collection struct {
	Matrix string

	// ThreadData maps algorithm -> thread count -> mean duration.
	ThreadData map[string]map[int]float64

	// Sequential maps algorithm -> pooled sequential mean, only for
	// algorithms that reported one.
	Sequential map[string]float64
}

// SweepRow is one (threads, chunk_size, average_seconds) observation from
// a 2-D sweep file.
type SweepRow struct {
	Threads    int
	Chunk      int
	AvgSeconds float64
}

// Surface is the dense thread-count × chunk-size mean-duration matrix.
// Cells[ti][ci] is the mean for Threads[ti] and Chunks[ci]; every cell is
// populated by construction.
type Surface struct {
	Threads []int
	Chunks  []int
	Cells   [][]float64
}
