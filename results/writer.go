package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppendColumn adds one timing column to the CSV at path, creating the
// file when absent. Existing rows keep their cells; when the new column is
// longer or shorter than what is already there, the gap is filled with
// blank cells, which the 1-D aggregator treats as absent. Repeated
// benchmark invocations accumulate columns this way, one per invocation.
func AppendColumn(path, header string, values []float64) error {
	var records [][]string
	if data, err := os.ReadFile(path); err == nil {
		r := csv.NewReader(strings.NewReader(string(data)))
		r.FieldsPerRecord = -1
		records, err = r.ReadAll()
		if err != nil {
			return fmt.Errorf("results: read %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("results: read %s: %w", path, err)
	}

	if len(records) == 0 {
		records = [][]string{{}}
	}
	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	// Square off existing rows, then add the column.
	rows := len(records) - 1
	if len(values) > rows {
		rows = len(values)
	}
	out := make([][]string, rows+1)
	for i := range out {
		var rec []string
		if i < len(records) {
			rec = records[i]
		}
		padded := make([]string, width, width+1)
		copy(padded, rec)
		out[i] = padded
	}

	out[0] = append(out[0], header)
	for i := 1; i <= rows; i++ {
		cell := ""
		if i-1 < len(values) {
			cell = strconv.FormatFloat(values[i-1], 'f', 6, 64)
		}
		out[i] = append(out[i], cell)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("results: create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(out); err != nil {
		f.Close()
		return fmt.Errorf("results: write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("results: write %s: %w", path, err)
	}
	return f.Close()
}

// WriteSurface writes sweep rows as a threads,chunk_size,average_seconds
// CSV, the input format of the 2-D aggregation path.
func WriteSurface(path string, rows []SweepRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("results: create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	records := [][]string{{colThreads, colChunkSize, colAvgSeconds}}
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Threads),
			strconv.Itoa(row.Chunk),
			strconv.FormatFloat(row.AvgSeconds, 'f', 6, 64),
		})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("results: write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("results: write %s: %w", path, err)
	}
	return f.Close()
}

// EnsureDir creates dir (and parents) when absent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("results: ensure directory %s: %w", dir, err)
	}
	return nil
}

// MatrixStem extracts the graph identity from a matrix file path: the base
// name without directory or extension.
func MatrixStem(matrixPath string) string {
	base := filepath.Base(matrixPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResultsPath composes dir/results_<algorithm>_<stem>.csv for the matrix
// at matrixPath, the naming contract the 1-D aggregator relies on.
func ResultsPath(dir, algorithm, matrixPath string) string {
	return filepath.Join(dir, "results_"+algorithm+"_"+MatrixStem(matrixPath)+".csv")
}
