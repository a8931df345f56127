package adapter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictbench/dictbench/pkg/dictionary/avltree"
	"github.com/dictbench/dictbench/pkg/dictionary/chainedhash"
)

func TestTreeDictionaryShowIncludesSummary(t *testing.T) {
	d := NewTree[string, int](avltree.New[string, int]())
	*d.Index("cat") = 1
	*d.Index("dog") = 2

	var sb strings.Builder
	d.Show(&sb)
	out := sb.String()

	assert.Contains(t, out, "Quantidade de elementos: 2")
	assert.Contains(t, out, "Comparacoes entre chaves realizadas:")
	assert.Contains(t, out, "Rotacoes ocorridas:")
	assert.Contains(t, out, "(cat, 1)")
	assert.Contains(t, out, "(dog, 2)")
}

func TestTreeDictionaryClearResetsClock(t *testing.T) {
	d := NewTree[string, int](avltree.New[string, int]())
	d.Insert("a", 1)
	d.startTime = time.Now().Add(-time.Hour)
	d.Clear()
	assert.Equal(t, 0, d.Size())
	assert.Less(t, d.Duration(), time.Hour)
}

func TestHashDictionaryShowIncludesSummary(t *testing.T) {
	hash := func(s string) uint64 {
		var h uint64 = 1469598103934665603
		for i := 0; i < len(s); i++ {
			h ^= uint64(s[i])
			h *= 1099511628211
		}
		return h
	}
	d := NewHash[string, int](chainedhash.New[string, int](hash))
	p, err := d.Index("cat")
	require.NoError(t, err)
	*p = 1

	var sb strings.Builder
	d.Show(&sb)
	out := sb.String()

	assert.Contains(t, out, "Quantidade de elementos: 1")
	assert.Contains(t, out, "Colisoes ocorridas:")
	assert.Contains(t, out, "(cat, 1)")
}
