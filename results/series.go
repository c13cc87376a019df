package results

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// threadHeaderRe recognizes per-thread column labels: "2 Threads",
// "1 thread", "16THREADS" all qualify.
var threadHeaderRe = regexp.MustCompile(`(?i)^(\d+)\s*thread(s)?$`)

// ParseTable reads one measurement CSV. Columns whose header matches the
// thread pattern become per-thread buckets (same-count columns pool
// together); every other column pools into the sequential bucket. Blank
// cells are skipped (absent, not zero). Any non-blank cell that fails to
// parse is ErrNonNumericValue; a labeled bucket with no values at all is
// ErrEmptyDataset.
//
// The file stem must be results_<algorithm>_<matrix>; the algorithm may
// itself contain underscores, the matrix identity is the last segment.
func ParseTable(path string) (*Table, error) {
	algorithm, matrix, err := splitStem(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column-append tools leave ragged tails
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", ErrEmptyDataset, path)
	}

	header := records[0]
	perThread := make(map[int][]float64)
	var sequential []float64
	labeled := make(map[int]bool) // thread counts seen in the header

	for ci, col := range header {
		name := strings.TrimSpace(col)
		if name == "" {
			continue
		}
		m := threadHeaderRe.FindStringSubmatch(name)
		var count int
		if m != nil {
			count, _ = strconv.Atoi(m[1])
			labeled[count] = true
		}
		for _, row := range records[1:] {
			if ci >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[ci])
			if cell == "" {
				continue
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: %s column %q cell %q",
					ErrNonNumericValue, filepath.Base(path), name, cell)
			}
			if m != nil {
				perThread[count] = append(perThread[count], v)
			} else {
				sequential = append(sequential, v)
			}
		}
	}

	t := &Table{
		Algorithm:   algorithm,
		Matrix:      matrix,
		ThreadMeans: make(map[int]float64, len(perThread)),
	}
	for count := range labeled {
		vals := perThread[count]
		if len(vals) == 0 {
			return nil, fmt.Errorf("%w: %s column %q has no values",
				ErrEmptyDataset, filepath.Base(path), fmt.Sprintf("%d Threads", count))
		}
		t.ThreadMeans[count] = stat.Mean(vals, nil)
	}
	if len(sequential) > 0 {
		t.Sequential = stat.Mean(sequential, nil)
		t.HasSequential = true
	}
	return t, nil
}

// splitStem validates and decomposes results_<algorithm>_<matrix>.
func splitStem(path string) (algorithm, matrix string, err error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(stem, "_")
	if len(parts) < 3 || parts[0] != "results" {
		return "", "", fmt.Errorf("%w: %q (want results_<algorithm>_<matrix>)",
			ErrBadFileName, filepath.Base(path))
	}
	return strings.Join(parts[1:len(parts)-1], "_"), parts[len(parts)-1], nil
}

// Gather parses every results_*_*.csv in dir into one Collection. All
// files must reference the same graph identity; a mismatch is
// ErrGraphIdentityMismatch, no matching files is ErrEmptyDataset.
func Gather(dir string) (*Collection, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "results_*_*.csv"))
	if err != nil {
		return nil, fmt.Errorf("results: glob %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no results_<algorithm>_<matrix>.csv files in %s", ErrEmptyDataset, dir)
	}
	sort.Strings(paths)

	c := &Collection{
		ThreadData: make(map[string]map[int]float64),
		Sequential: make(map[string]float64),
	}
	for _, path := range paths {
		t, err := ParseTable(path)
		if err != nil {
			return nil, err
		}
		if c.Matrix == "" {
			c.Matrix = t.Matrix
		} else if c.Matrix != t.Matrix {
			return nil, fmt.Errorf("%w: %s and %s (from %s)",
				ErrGraphIdentityMismatch, c.Matrix, t.Matrix, filepath.Base(path))
		}
		if len(t.ThreadMeans) > 0 {
			c.ThreadData[t.Algorithm] = t.ThreadMeans
		}
		if t.HasSequential {
			c.Sequential[t.Algorithm] = t.Sequential
		}
	}
	return c, nil
}

// BuildSeries aligns every algorithm on the sorted union of observed
// thread counts. Absent points are NaN, never zero. An algorithm with only
// a sequential mean becomes a flat series repeating that mean; an
// algorithm that has per-thread data ignores its sequential mean. With no
// per-thread data anywhere the axis degenerates to [1].
func BuildSeries(c *Collection) (axis []int, series map[string][]float64, err error) {
	if c == nil || (len(c.ThreadData) == 0 && len(c.Sequential) == 0) {
		return nil, nil, fmt.Errorf("%w: no series data", ErrEmptyDataset)
	}

	union := make(map[int]struct{})
	for _, data := range c.ThreadData {
		for count := range data {
			union[count] = struct{}{}
		}
	}
	for count := range union {
		axis = append(axis, count)
	}
	sort.Ints(axis)
	if len(axis) == 0 {
		axis = []int{1}
	}

	series = make(map[string][]float64, len(c.ThreadData)+len(c.Sequential))
	for algorithm, data := range c.ThreadData {
		vals := make([]float64, len(axis))
		for i, count := range axis {
			if v, ok := data[count]; ok {
				vals[i] = v
			} else {
				vals[i] = math.NaN()
			}
		}
		series[algorithm] = vals
	}
	for algorithm, seq := range c.Sequential {
		if _, ok := series[algorithm]; ok {
			continue // per-thread data wins over the sequential mean
		}
		vals := make([]float64, len(axis))
		for i := range vals {
			vals[i] = seq
		}
		series[algorithm] = vals
	}
	return axis, series, nil
}
