// Package chainedhash implements a separate-chaining hash table behind the
// dictionary.HashEngine contract.
package chainedhash

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/dictbench/dictbench/pkg/dictionary"
)

const defaultTableSize = 19
const defaultMaxLoadFactor = 1.0

type entry[K comparable, V any] struct {
	key   K
	value V
}

// ChainedHashTable is a generic separate-chaining hash table.
type ChainedHashTable[K comparable, V any] struct {
	buckets       [][]entry[K, V]
	hash          func(K) uint64
	count         int
	maxLoadFactor float64
	comparisons   uint64
	collisions    uint64
}

// New returns a chained hash table with the given hash function, an initial
// table size of 19 (the next prime at or above the source's default) and a
// max load factor of 1.0.
func New[K comparable, V any](hash func(K) uint64) *ChainedHashTable[K, V] {
	return NewSized[K, V](hash, defaultTableSize, defaultMaxLoadFactor)
}

// NewSized returns a chained hash table sized to the next prime at or above
// sizeTable, clamping a non-positive maxLoadFactor to 1.0.
func NewSized[K comparable, V any](hash func(K) uint64, sizeTable int, maxLoadFactor float64) *ChainedHashTable[K, V] {
	if maxLoadFactor <= 0 {
		maxLoadFactor = 1.0
	}
	size := nextPrime(sizeTable)
	return &ChainedHashTable[K, V]{
		buckets:       make([][]entry[K, V], size),
		hash:          hash,
		maxLoadFactor: maxLoadFactor,
	}
}

func nextPrime(x int) int {
	if x <= 2 {
		return 3
	}
	if x%2 == 0 {
		x++
	}
	for !isPrime(x) {
		x += 2
	}
	return x
}

func isPrime(x int) bool {
	if x < 2 {
		return false
	}
	if x%2 == 0 {
		return x == 2
	}
	limit := int(math.Sqrt(float64(x)))
	for d := 3; d <= limit; d += 2 {
		if x%d == 0 {
			return false
		}
	}
	return true
}

func (h *ChainedHashTable[K, V]) tableSize() int {
	return len(h.buckets)
}

func (h *ChainedHashTable[K, V]) slot(key K) int {
	return int(h.hash(key) % uint64(h.tableSize()))
}

func (h *ChainedHashTable[K, V]) loadFactor() float64 {
	return float64(h.count) / float64(h.tableSize())
}

// Add inserts (key, value) if key is absent; it returns false and leaves the
// table unchanged if key is already present, matching the chained engine's
// documented no-overwrite semantics.
func (h *ChainedHashTable[K, V]) Add(key K, value V) bool {
	if h.loadFactor() >= h.maxLoadFactor {
		h.growForInsert()
	}

	idx := h.slot(key)
	bucket := h.buckets[idx]
	if len(bucket) > 0 {
		h.collisions++
	}
	for i := range bucket {
		h.comparisons++
		if bucket[i].key == key {
			return false
		}
	}
	h.buckets[idx] = append(bucket, entry[K, V]{key: key, value: value})
	h.count++
	return true
}

// growForInsert rehashes to a table guaranteed larger than the current one,
// so load factor strictly decreases on every growth (fixes the source's
// non-monotone tableSize/maxLoadFactor formula when maxLoadFactor >= 1).
func (h *ChainedHashTable[K, V]) growForInsert() {
	target := int(math.Ceil(float64(h.count+1) / h.maxLoadFactor))
	if target < 2*h.tableSize() {
		target = 2 * h.tableSize()
	}
	h.rehash(target)
}

func (h *ChainedHashTable[K, V]) rehash(m int) {
	newSize := nextPrime(m)
	if newSize <= h.tableSize() {
		return
	}
	old := h.buckets
	h.buckets = make([][]entry[K, V], newSize)
	h.count = 0
	for _, bucket := range old {
		for _, e := range bucket {
			idx := h.slot(e.key)
			h.buckets[idx] = append(h.buckets[idx], e)
			h.count++
		}
	}
}

// Reserve ensures the table can hold n elements without exceeding the
// current max load factor.
func (h *ChainedHashTable[K, V]) Reserve(n int) {
	if float64(n) > float64(h.tableSize())*h.maxLoadFactor {
		h.rehash(int(math.Ceil(float64(n) / h.maxLoadFactor)))
	}
}

// SetMaxLoadFactor assigns the receiver's own field, then reserves capacity
// for the current element count (fixes the source's bug of assigning to an
// unrelated symbol before reserving).
func (h *ChainedHashTable[K, V]) SetMaxLoadFactor(lf float64) {
	h.maxLoadFactor = lf
	h.Reserve(h.count)
}

func (h *ChainedHashTable[K, V]) find(key K) (int, int) {
	idx := h.slot(key)
	bucket := h.buckets[idx]
	for i := range bucket {
		h.comparisons++
		if bucket[i].key == key {
			return idx, i
		}
	}
	return idx, -1
}

// Update replaces the value for an existing key; it returns
// dictionary.ErrKeyNotFound if key is absent.
func (h *ChainedHashTable[K, V]) Update(key K, value V) error {
	idx, i := h.find(key)
	if i < 0 {
		return dictionary.ErrKeyNotFound
	}
	h.buckets[idx][i].value = value
	return nil
}

// At returns the value for key, or dictionary.ErrKeyNotFound.
func (h *ChainedHashTable[K, V]) At(key K) (V, error) {
	idx, i := h.find(key)
	if i < 0 {
		var zero V
		return zero, dictionary.ErrKeyNotFound
	}
	return h.buckets[idx][i].value, nil
}

// Contains reports whether key is present.
func (h *ChainedHashTable[K, V]) Contains(key K) bool {
	_, i := h.find(key)
	return i >= 0
}

// Remove deletes key if present and reports whether anything was deleted.
func (h *ChainedHashTable[K, V]) Remove(key K) bool {
	idx, i := h.find(key)
	if i < 0 {
		return false
	}
	bucket := h.buckets[idx]
	h.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
	h.count--
	return true
}

// Index returns a pointer to the value for key, inserting a zero value
// first if key is absent. Unlike Add, this always succeeds for a chained
// table (no fixed capacity to exhaust).
func (h *ChainedHashTable[K, V]) Index(key K) (*V, error) {
	idx, i := h.find(key)
	if i < 0 {
		var zero V
		h.Add(key, zero)
		idx, i = h.find(key)
	}
	return &h.buckets[idx][i].value, nil
}

// Clear empties the table and resets both counters.
func (h *ChainedHashTable[K, V]) Clear() {
	for i := range h.buckets {
		h.buckets[i] = nil
	}
	h.count = 0
	h.comparisons = 0
	h.collisions = 0
}

// Size returns the number of entries.
func (h *ChainedHashTable[K, V]) Size() int {
	return h.count
}

// Empty reports whether the table has no entries.
func (h *ChainedHashTable[K, V]) Empty() bool {
	return h.count == 0
}

// Comparisons returns the running key-comparison count.
func (h *ChainedHashTable[K, V]) Comparisons() uint64 {
	return h.comparisons
}

// Collisions returns the running bucket-collision count.
func (h *ChainedHashTable[K, V]) Collisions() uint64 {
	return h.collisions
}

// Show writes every entry, ordered by key, as "(key, value), ..." to w. The
// source sorts by key before printing; ordering keys requires constraining
// K to cmp.Ordered, which HashEngine deliberately doesn't do, so this
// formats via fmt.Sprint and sorts the resulting strings for a stable,
// reproducible rendering.
func (h *ChainedHashTable[K, V]) Show(w io.Writer) {
	type rendered struct {
		key, line string
	}
	var rows []rendered
	for _, bucket := range h.buckets {
		for _, e := range bucket {
			key := fmt.Sprint(e.key)
			rows = append(rows, rendered{key: key, line: fmt.Sprintf("(%v, %v)", e.key, e.value)})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].key < rows[j].key })
	for i, r := range rows {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprint(w, r.line)
	}
}

// Clone deep-clones the table, including the running counters.
func (h *ChainedHashTable[K, V]) Clone() dictionary.HashEngine[K, V] {
	buckets := make([][]entry[K, V], len(h.buckets))
	for i, bucket := range h.buckets {
		buckets[i] = append([]entry[K, V](nil), bucket...)
	}
	return &ChainedHashTable[K, V]{
		buckets:       buckets,
		hash:          h.hash,
		count:         h.count,
		maxLoadFactor: h.maxLoadFactor,
		comparisons:   h.comparisons,
		collisions:    h.collisions,
	}
}
