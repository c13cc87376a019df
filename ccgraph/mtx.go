package ccgraph

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// mtxBanner is the mandatory first-line prefix of a Matrix Market file.
const mtxBanner = "%%matrixmarket"

// readMTX parses a Matrix Market coordinate file: banner, optional comment
// lines, a "M N nnz" size line, then one "row col [value]" entry per line,
// 1-indexed. Only "matrix coordinate" objects are accepted; dense array
// storage is rejected. A "symmetric" or "skew-symmetric" qualifier is fine
// as-is: the implied mirror entries are produced by symmetrization anyway.
//
// The vertex count is max(M, N), matching how rectangular inputs are
// squared off before connectivity analysis.
func readMTX(path string) (int32, []rawPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("ccgraph: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return 0, nil, fmt.Errorf("%w: %s is empty", ErrMalformedInput, path)
	}
	banner := strings.Fields(strings.ToLower(sc.Text()))
	if len(banner) < 3 || banner[0] != mtxBanner || banner[1] != "matrix" {
		return 0, nil, fmt.Errorf("%w: %s: bad MatrixMarket banner", ErrMalformedInput, path)
	}
	if banner[2] != "coordinate" {
		return 0, nil, fmt.Errorf("%w: %s: only sparse coordinate matrices are supported", ErrMalformedInput, path)
	}
	// Pattern matrices carry no value column; entry lines then have 2 fields.
	pattern := false
	for _, q := range banner[3:] {
		if q == "pattern" {
			pattern = true
		}
	}

	// Skip comments, read the size line.
	var m, n int64
	var nnz int64
	sized := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, nil, fmt.Errorf("%w: %s: bad size line %q", ErrMalformedInput, path, line)
		}
		var perr error
		if m, perr = strconv.ParseInt(fields[0], 10, 32); perr == nil {
			if n, perr = strconv.ParseInt(fields[1], 10, 32); perr == nil {
				nnz, perr = strconv.ParseInt(fields[2], 10, 64)
			}
		}
		if perr != nil || m <= 0 || n <= 0 || nnz < 0 {
			return 0, nil, fmt.Errorf("%w: %s: bad size line %q", ErrMalformedInput, path, line)
		}
		sized = true
		break
	}
	if !sized {
		return 0, nil, fmt.Errorf("%w: %s: missing size line", ErrMalformedInput, path)
	}

	dim := m
	if n > dim {
		dim = n
	}

	pairs := make([]rawPair, 0, nnz)
	var read int64
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, nil, fmt.Errorf("%w: %s: bad entry line %q", ErrMalformedInput, path, line)
		}
		row, rerr := strconv.ParseInt(fields[0], 10, 32)
		col, cerr := strconv.ParseInt(fields[1], 10, 32)
		if rerr != nil || cerr != nil {
			return 0, nil, fmt.Errorf("%w: %s: bad entry line %q", ErrMalformedInput, path, line)
		}
		// Source format is 1-indexed.
		if row < 1 || row > m || col < 1 || col > n {
			return 0, nil, fmt.Errorf("%w: %s: entry (%d,%d) outside declared %dx%d", ErrMalformedInput, path, row, col, m, n)
		}
		if !pattern && len(fields) >= 3 {
			val, verr := strconv.ParseFloat(fields[2], 64)
			if verr != nil {
				return 0, nil, fmt.Errorf("%w: %s: bad entry value %q", ErrMalformedInput, path, fields[2])
			}
			// Explicit stored zeros are not edges.
			if val == 0 {
				read++
				continue
			}
		}
		pairs = append(pairs, rawPair{u: int32(row - 1), v: int32(col - 1)})
		read++
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("ccgraph: read %s: %w", path, err)
	}
	if read != nnz {
		return 0, nil, fmt.Errorf("%w: %s: declared %d entries, found %d", ErrMalformedInput, path, nnz, read)
	}
	return int32(dim), pairs, nil
}
