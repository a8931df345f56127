package chainedhash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictbench/dictbench/pkg/dictionary"
)

func stringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

func intHash(i int) uint64 {
	return uint64(i)
}

func TestAddAndAt(t *testing.T) {
	h := New[string, int](stringHash)
	ok := h.Add("cat", 1)
	assert.True(t, ok)

	v, err := h.At("cat")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = h.At("dog")
	assert.ErrorIs(t, err, dictionary.ErrKeyNotFound)
}

func TestAddDuplicateKeyIsNoOp(t *testing.T) {
	h := New[string, int](stringHash)
	h.Add("cat", 1)
	ok := h.Add("cat", 99)
	assert.False(t, ok)

	v, _ := h.At("cat")
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, h.Size())
}

func TestGrowthWithinElevenInsertions(t *testing.T) {
	h := NewSized[int, int](intHash, 5, 1.0)
	initialSize := h.tableSize()
	for i := 0; i < 11; i++ {
		h.Add(i, i)
	}
	assert.Equal(t, 11, h.Size())
	assert.Greater(t, h.tableSize(), initialSize)
	for i := 0; i < 11; i++ {
		v, err := h.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestRemove(t *testing.T) {
	h := New[string, int](stringHash)
	h.Add("cat", 1)
	ok := h.Remove("cat")
	assert.True(t, ok)
	assert.False(t, h.Contains("cat"))

	ok = h.Remove("cat")
	assert.False(t, ok)
}

func TestIndexInsertsZeroValue(t *testing.T) {
	h := New[string, int](stringHash)
	p, err := h.Index("dog")
	require.NoError(t, err)
	*p++
	p, err = h.Index("dog")
	require.NoError(t, err)
	*p++

	v, err := h.At("dog")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSetMaxLoadFactorReserves(t *testing.T) {
	h := NewSized[int, int](intHash, 5, 1.0)
	for i := 0; i < 4; i++ {
		h.Add(i, i)
	}
	sizeBefore := h.tableSize()
	h.SetMaxLoadFactor(0.25)
	assert.Equal(t, 0.25, h.maxLoadFactor)
	assert.GreaterOrEqual(t, h.tableSize(), sizeBefore)
}

func TestClearResetsCounters(t *testing.T) {
	h := New[string, int](stringHash)
	h.Add("a", 1)
	h.Clear()
	assert.Equal(t, 0, h.Size())
	assert.True(t, h.Empty())
	assert.Equal(t, uint64(0), h.Comparisons())
	assert.Equal(t, uint64(0), h.Collisions())
}

func TestCloneIsIndependent(t *testing.T) {
	h := New[string, int](stringHash)
	h.Add("a", 1)

	var engine dictionary.HashEngine[string, int] = h
	clone := engine.Clone()
	clone.Add("b", 2)

	assert.Equal(t, 1, h.Size())
	assert.Equal(t, 2, clone.Size())
}

func TestSatisfiesHashEngine(t *testing.T) {
	var _ dictionary.HashEngine[string, int] = New[string, int](stringHash)
}
