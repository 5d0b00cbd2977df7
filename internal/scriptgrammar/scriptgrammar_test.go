package scriptgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAcceptsEmptyScript(t *testing.T) {
	ok, err := Check("")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckAcceptsLoneAtom(t *testing.T) {
	ok, err := Check("x")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckAcceptsBracketedAtom(t *testing.T) {
	ok, err := Check("(x)")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckRejectsEmptyGroup(t *testing.T) {
	ok, err := Check("()")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckAcceptsGroupFollowedByAtom(t *testing.T) {
	ok, err := Check("(x)x")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuildASTParsesNestedBrackets(t *testing.T) {
	root, err := BuildAST("(x)")
	require.NoError(t, err)
	require.Len(t, root.Children, 4, "( S ) S: open, content, close, trailing epsilon tail")

	content := root.Children[1].Node
	require.Len(t, content.Children, 2, "x S: atom then epsilon tail")

	tail := root.Children[3].Node
	assert.Empty(t, tail.Children, "trailing S must be the epsilon derivation")
}
