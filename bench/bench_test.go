package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathquery/automaton"
	"github.com/katalvlaran/pathquery/labelgraph"
)

func TestMeasureProducesNonNegativeTimings(t *testing.T) {
	g := labelgraph.FromEdges(3, []labelgraph.Edge{
		{From: 0, To: 1, Label: "a"},
		{From: 1, To: 2, Label: "a"},
	})
	q, err := automaton.FromRegex("a*")
	require.NoError(t, err)

	result := Measure("g1", "q1", g, q)
	assert.Equal(t, "g1", result.Graph)
	assert.Equal(t, "q1", result.Query)
	assert.NotEmpty(t, result.RunID)
	assert.GreaterOrEqual(t, result.IntersectNanos, int64(0))
	assert.GreaterOrEqual(t, result.NSquare, 0)
	assert.Equal(t, result.NSquare, result.NAdj, "both closure strategies must agree on pair count")
}

func TestWriteCSVWalksGraphAndQueryTree(t *testing.T) {
	root := t.TempDir()
	graphDir := filepath.Join(root, "g1")
	require.NoError(t, os.MkdirAll(filepath.Join(graphDir, "queries", "star"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(graphDir, "g1.txt"), []byte("0 a 1\n1 a 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(graphDir, "queries", "star", "q1"), []byte("a*\n"), 0o644))

	csvPath := filepath.Join(root, "out.csv")
	require.NoError(t, WriteCSV(root, csvPath, 2))

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3, "header plus two iterations")
	assert.Equal(t, strings.Join(Header, ","), lines[0])
}
