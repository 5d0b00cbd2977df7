package boolmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertGetClear(t *testing.T) {
	m := New[bool](2, 2)
	m.Build([]uint64{0, 0, 1, 1}, []uint64{0, 1, 0, 1}, []bool{true, true, true, true}, BoolFirst)

	assert.EqualValues(t, 4, m.NVals())
	v, ok := m.Get(0, 0)
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = m.Get(1, 1)
	assert.True(t, ok)

	m.Clear()
	assert.EqualValues(t, 0, m.NVals())
	_, ok = m.Get(0, 0)
	assert.False(t, ok)
}

func TestGetAbsent(t *testing.T) {
	m := New[bool](3, 3)
	m.Insert(1, 1, true)
	_, ok := m.Get(0, 0)
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	a := New[bool](2, 2)
	a.Insert(0, 0, true)
	b := a.Clone()
	b.Insert(1, 1, true)

	assert.EqualValues(t, 1, a.NVals())
	assert.EqualValues(t, 2, b.NVals())
}

func TestExtractTuples(t *testing.T) {
	m := New[bool](2, 2)
	m.Insert(0, 1, true)
	m.Insert(1, 0, true)

	rows, cols, vals := m.ExtractTuples()
	require.Len(t, rows, 2)
	require.Len(t, cols, 2)
	require.Len(t, vals, 2)

	seen := map[[2]uint64]bool{}
	for k := range rows {
		seen[[2]uint64{rows[k], cols[k]}] = vals[k]
	}
	assert.True(t, seen[[2]uint64{0, 1}])
	assert.True(t, seen[[2]uint64{1, 0}])
}

// TestBooleanMxmSeed is scenario 1's Boolean half: a fully-connected 2x2
// matrix squared under (lor,land) must remain fully connected.
func TestBooleanMxmSeed(t *testing.T) {
	a := New[bool](2, 2)
	a.Build([]uint64{0, 0, 1, 1}, []uint64{0, 1, 0, 1}, []bool{true, true, true, true}, BoolFirst)

	out := MxmNew(LorLand, a, a)
	for i := uint64(0); i < 2; i++ {
		for j := uint64(0); j < 2; j++ {
			v, ok := out.Get(i, j)
			assert.True(t, ok)
			assert.True(t, v)
		}
	}
}

// TestUint32MxmSeed is scenario 1's generic half: verifies the generic
// multiplication contract against the ordinary (+,x) semiring.
func TestUint32MxmSeed(t *testing.T) {
	a := New[uint32](2, 2)
	a.Insert(0, 0, 1)
	a.Insert(0, 1, 2)
	a.Insert(1, 0, 3)
	a.Insert(1, 1, 5)

	b := New[uint32](2, 2)
	b.Insert(0, 0, 5)
	b.Insert(0, 1, 3)
	b.Insert(1, 0, 2)
	b.Insert(1, 1, 1)

	out := MxmNew(Uint32PlusTimes, a, b)

	expect := [2][2]uint32{{9, 5}, {25, 14}}
	for i := uint64(0); i < 2; i++ {
		for j := uint64(0); j < 2; j++ {
			v, ok := out.Get(i, j)
			require.True(t, ok)
			assert.Equal(t, expect[i][j], v)
		}
	}
}

func TestApplyAccumulate(t *testing.T) {
	dst := New[bool](2, 2)
	dst.Insert(0, 0, true)

	src := New[bool](2, 2)
	src.Insert(1, 1, true)

	Apply(dst, &Lor, BoolIdentity, src, nil)

	v, ok := dst.Get(0, 0)
	assert.True(t, ok && v)
	v, ok = dst.Get(1, 1)
	assert.True(t, ok && v)
}

func TestKronecker(t *testing.T) {
	a := New[bool](2, 2)
	a.Insert(0, 1, true)
	b := New[bool](2, 2)
	b.Insert(1, 0, true)

	out := KroneckerNew(LorLand, a, b)
	assert.EqualValues(t, 4, out.NRows())
	assert.EqualValues(t, 4, out.NCols())

	v, ok := out.Get(0*2+1, 1*2+0)
	assert.True(t, ok && v)
	assert.EqualValues(t, 1, out.NVals())
}

func TestShapeMismatchPanics(t *testing.T) {
	a := New[bool](2, 2)
	b := New[bool](3, 3)
	assert.Panics(t, func() { Mxm(New[bool](2, 3), nil, LorLand, a, b) })
}
