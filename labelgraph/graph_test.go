package labelgraph

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathquery/boolmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTextBuildsMatrices(t *testing.T) {
	g, err := FromText("0 a 0\n0 a 2\n2 a 3\n3 a 1\n")
	require.NoError(t, err)
	assert.EqualValues(t, 4, g.Size)
	require.Contains(t, g.Matrices, "a")
	assert.EqualValues(t, 4, g.Matrices["a"].NVals())
}

func TestFromTextRejectsMalformedLine(t *testing.T) {
	_, err := FromText("0 a 0\n0 a\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseGraph))
}

func TestFromTextIgnoresBlankLines(t *testing.T) {
	g, err := FromText("0 a 1\n\n\n1 a 0\n")
	require.NoError(t, err)
	assert.EqualValues(t, 2, g.Size)
}

func TestKroneckerIntersectsLabels(t *testing.T) {
	a, err := FromText("0 a 1\n0 b 1\n")
	require.NoError(t, err)
	b, err := FromText("0 a 1\n0 c 1\n")
	require.NoError(t, err)

	k := a.Kronecker(b)
	assert.EqualValues(t, 4, k.Size)
	assert.Contains(t, k.Matrices, "a")
	assert.NotContains(t, k.Matrices, "b")
	assert.NotContains(t, k.Matrices, "c")
}

func TestStats(t *testing.T) {
	g, err := FromText("0 a 1\n1 a 2\n2 b 0\n")
	require.NoError(t, err)
	stats := g.Stats()
	assert.EqualValues(t, 2, stats["a"])
	assert.EqualValues(t, 1, stats["b"])
}

// TestClosureSquaringEqualsClosureAdjacency checks that both
// transitive-closure procedures must agree on the result.
func TestClosureSquaringEqualsClosureAdjacency(t *testing.T) {
	g, err := FromText("0 a 0\n0 a 2\n2 a 3\n3 a 1\n")
	require.NoError(t, err)

	square := g.AdjacencyMatrix()
	TransitiveClosureSquaring(square)

	adj := g.AdjacencyMatrix()
	TransitiveClosureAdjacency(adj)

	assert.ElementsMatch(t, ExtractPairs(square), ExtractPairs(adj))
}

func TestAdjacencyMatrixIsUnionOfLabels(t *testing.T) {
	g, err := FromText("0 a 1\n1 b 2\n")
	require.NoError(t, err)
	adj := g.AdjacencyMatrix()

	_, ok := adj.Get(0, 1)
	assert.True(t, ok)
	_, ok = adj.Get(1, 2)
	assert.True(t, ok)
	assert.EqualValues(t, 2, adj.NVals())
}

func TestReachablePairsNoDanglingVertices(t *testing.T) {
	g, err := FromText("0 a 1\n1 a 2\n")
	require.NoError(t, err)
	for _, p := range g.ReachablePairs() {
		assert.Less(t, p.From, g.Size)
		assert.Less(t, p.To, g.Size)
	}
}

func TestMatricesAreSquareOfSideSize(t *testing.T) {
	g, err := FromText("0 a 3\n")
	require.NoError(t, err)
	for _, m := range g.Matrices {
		var _ *boolmatrix.Matrix[bool] = m
		assert.Equal(t, g.Size, m.NRows())
		assert.Equal(t, g.Size, m.NCols())
	}
}
