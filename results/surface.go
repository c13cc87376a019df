package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Required surface CSV columns, by header name.
const (
	colThreads    = "threads"
	colChunkSize  = "chunk_size"
	colAvgSeconds = "average_seconds"
)

// ParseSurface reads a sweep CSV into rows. The header must contain the
// threads, chunk_size and average_seconds columns (extra columns are
// ignored); anything missing is ErrMissingColumns naming the absentees.
// A field that fails to parse as its numeric type is ErrInvalidRow.
func ParseSurface(path string) ([]SweepRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is missing a header row", ErrEmptyDataset, path)
	}

	idx := make(map[string]int, 3)
	for i, col := range records[0] {
		idx[strings.TrimSpace(col)] = i
	}
	var missing []string
	for _, want := range []string{colAvgSeconds, colChunkSize, colThreads} {
		if _, ok := idx[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s lacks %s",
			ErrMissingColumns, filepath.Base(path), strings.Join(missing, ", "))
	}

	rows := make([]SweepRow, 0, len(records)-1)
	for ri, rec := range records[1:] {
		threads, terr := intField(rec, idx[colThreads])
		chunk, cerr := intField(rec, idx[colChunkSize])
		avg, aerr := floatField(rec, idx[colAvgSeconds])
		if terr != nil || cerr != nil || aerr != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v",
				ErrInvalidRow, filepath.Base(path), ri+2, rec)
		}
		rows = append(rows, SweepRow{Threads: threads, Chunk: chunk, AvgSeconds: avg})
	}
	return rows, nil
}

func intField(rec []string, i int) (int, error) {
	if i >= len(rec) {
		return 0, fmt.Errorf("short row")
	}
	return strconv.Atoi(strings.TrimSpace(rec[i]))
}

func floatField(rec []string, i int) (float64, error) {
	if i >= len(rec) {
		return 0, fmt.Errorf("short row")
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
}

// BuildSurface assembles the dense thread×chunk matrix from sweep rows.
//
// Rows with chunk_size == 1 are excluded entirely: chunk 1 is the
// "no chunking" sentinel and does not belong on the surface. Duplicate
// (threads, chunk) pairs overwrite, last occurrence wins (parity with the
// original accumulating map; see DESIGN.md). After exclusion the cross
// product of observed thread counts and chunk sizes must be fully
// populated; any hole is ErrMissingGridCell naming the pair.
func BuildSurface(rows []SweepRow) (*Surface, error) {
	type key struct{ t, c int }
	values := make(map[key]float64, len(rows))
	threadSet := make(map[int]struct{})
	chunkSet := make(map[int]struct{})

	for _, row := range rows {
		if row.Chunk == 1 {
			continue
		}
		values[key{row.Threads, row.Chunk}] = row.AvgSeconds
		threadSet[row.Threads] = struct{}{}
		chunkSet[row.Chunk] = struct{}{}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no usable sweep rows", ErrEmptyDataset)
	}

	s := &Surface{
		Threads: sortedKeys(threadSet),
		Chunks:  sortedKeys(chunkSet),
	}
	s.Cells = make([][]float64, len(s.Threads))
	for ti, t := range s.Threads {
		s.Cells[ti] = make([]float64, len(s.Chunks))
		for ci, c := range s.Chunks {
			v, ok := values[key{t, c}]
			if !ok {
				return nil, fmt.Errorf("%w: threads=%d chunk=%d", ErrMissingGridCell, t, c)
			}
			s.Cells[ti][ci] = v
		}
	}
	return s, nil
}

// SurfaceMatrixName infers the graph identity from a sweep file name:
// results_<algorithm>_surface_<matrix>.csv yields <matrix>, anything else
// falls back to the whole stem.
func SurfaceMatrixName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(stem, "_")
	if len(parts) >= 4 && parts[0] == "results" && parts[2] == "surface" {
		return strings.Join(parts[3:], "_")
	}
	return stem
}

// MinMax returns the smallest and largest cell values.
func (s *Surface) MinMax() (min, max float64) {
	min, max = s.Cells[0][0], s.Cells[0][0]
	for _, row := range s.Cells {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
