package ccgraph_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccbench/ccgraph"
)

// writeMTX drops a fixture file into a temp dir and returns its path.
func writeMTX(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeMTX(t, "graph.csv", "whatever")
	if _, err := ccgraph.Load(path); !errors.Is(err, ccgraph.ErrUnsupportedFormat) {
		t.Errorf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoad_MTXGeneral(t *testing.T) {
	// 5 vertices, edges {0,1},{1,2},{3,4} (1-indexed in the file), one
	// duplicate and one self-loop thrown in.
	const src = `%%MatrixMarket matrix coordinate real general
% comment line
5 5 5
1 2 1.0
2 3 1.0
4 5 1.0
2 1 1.0
3 3 1.0
`
	g, err := ccgraph.Load(writeMTX(t, "toy.mtx", src))
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, int64(3), g.NumEdges())

	// Symmetric, loop-free, sorted rows.
	for u := int32(0); u < g.N; u++ {
		prev := int32(-1)
		for _, v := range g.Neighbors(u) {
			require.NotEqual(t, u, v, "self-loop at %d", u)
			require.Greater(t, v, prev, "row %d not sorted", u)
			prev = v

			back := g.Neighbors(v)
			found := false
			for _, w := range back {
				if w == u {
					found = true
				}
			}
			require.True(t, found, "edge (%d,%d) has no mirror", u, v)
		}
	}
}

func TestLoad_MTXSymmetricBanner(t *testing.T) {
	// Symmetric banner stores only one triangle; the loader mirrors it.
	const src = `%%MatrixMarket matrix coordinate real symmetric
3 3 2
2 1 4.5
3 2 1.5
`
	g, err := ccgraph.Load(writeMTX(t, "sym.mtx", src))
	require.NoError(t, err)
	require.Equal(t, int64(2), g.NumEdges())
	require.Equal(t, []int32{2}, g.Neighbors(1)[1:])
	require.Equal(t, []int32{0}, g.Neighbors(1)[:1])
}

func TestLoad_MTXPattern(t *testing.T) {
	const src = `%%MatrixMarket matrix coordinate pattern general
2 2 1
1 2
`
	g, err := ccgraph.Load(writeMTX(t, "pat.mtx", src))
	require.NoError(t, err)
	require.Equal(t, int64(1), g.NumEdges())
}

func TestLoad_MTXExplicitZeroIsNotAnEdge(t *testing.T) {
	const src = `%%MatrixMarket matrix coordinate real general
2 2 2
1 2 0.0
2 1 3.0
`
	g, err := ccgraph.Load(writeMTX(t, "zero.mtx", src))
	require.NoError(t, err)
	// The single nonzero still yields one undirected edge after OR.
	require.Equal(t, int64(1), g.NumEdges())
}

func TestLoad_MTXRectangularSquaredOff(t *testing.T) {
	const src = `%%MatrixMarket matrix coordinate real general
2 4 1
1 4 1.0
`
	g, err := ccgraph.Load(writeMTX(t, "rect.mtx", src))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
}

func TestLoad_MTXMalformed(t *testing.T) {
	cases := map[string]string{
		"empty file":      "",
		"bad banner":      "%%NotMatrixMarket matrix coordinate real general\n2 2 0\n",
		"dense storage":   "%%MatrixMarket matrix array real general\n2 2\n1.0\n",
		"bad size line":   "%%MatrixMarket matrix coordinate real general\n2 two 1\n1 2 1.0\n",
		"index too large": "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 3 1.0\n",
		"index zero":      "%%MatrixMarket matrix coordinate real general\n2 2 1\n0 1 1.0\n",
		"truncated body":  "%%MatrixMarket matrix coordinate real general\n2 2 3\n1 2 1.0\n",
		"bad value":       "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 2 abc\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ccgraph.Load(writeMTX(t, "bad.mtx", src))
			if !errors.Is(err, ccgraph.ErrMalformedInput) {
				t.Errorf("want ErrMalformedInput, got %v", err)
			}
		})
	}
}
