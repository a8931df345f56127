// Package openhash implements a double-hashed open-addressing hash table
// behind the dictionary.HashEngine contract.
package openhash

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/dictbench/dictbench/pkg/dictionary"
)

type status int

const (
	empty status = iota
	deleted
	active
)

const defaultTableSize = 19
const defaultMaxLoadFactor = 1.0

type slot[K comparable, V any] struct {
	key    K
	value  V
	status status
}

// OpenAddressingHashTable is a generic double-hashed open-addressing hash
// table with tombstone deletion.
type OpenAddressingHashTable[K comparable, V any] struct {
	table         []slot[K, V]
	hash          func(K) uint64
	count         int
	maxLoadFactor float64
	comparisons   uint64
	collisions    uint64
}

// New returns an open-addressing table with the given hash function, an
// initial table size of 19 and a max load factor of 1.0.
func New[K comparable, V any](hash func(K) uint64) *OpenAddressingHashTable[K, V] {
	return NewSized[K, V](hash, defaultTableSize, defaultMaxLoadFactor)
}

// NewSized returns an open-addressing table sized to the next prime at or
// above sizeTable, clamping a non-positive maxLoadFactor to 1.0.
func NewSized[K comparable, V any](hash func(K) uint64, sizeTable int, maxLoadFactor float64) *OpenAddressingHashTable[K, V] {
	if maxLoadFactor <= 0 {
		maxLoadFactor = 1.0
	}
	size := nextPrime(sizeTable)
	return &OpenAddressingHashTable[K, V]{
		table:         make([]slot[K, V], size),
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

func (h *OpenAddressingHashTable[K, V]) tableSize() int {
	return len(h.table)
}

func (h *OpenAddressingHashTable[K, V]) loadFactor() float64 {
	return float64(h.count) / float64(h.tableSize())
}

// hashCode computes the i-th probe index via double hashing, fully
// parenthesized as (h1 + i*h2) mod m (the source applies the outer mod only
// to the h2 term, a C-style operator-precedence bug).
func (h *OpenAddressingHashTable[K, V]) hashCode(key K, i int) int {
	m := uint64(h.tableSize())
	h1 := h.hash(key) % m
	h2 := 1 + h.hash(key)%(m-1)
	return int((h1 + uint64(i)*h2) % m)
}

// search returns the slot index holding key if active, or -1 with ok=false
// if key isn't present (probing stops at the first EMPTY slot or after a
// full table scan).
func (h *OpenAddressingHashTable[K, V]) search(key K) (int, bool) {
	size := h.tableSize()
	for i := 0; i < size; i++ {
		j := h.hashCode(key, i)
		s := &h.table[j]
		if s.status == active {
			h.comparisons++
			if s.key == key {
				return j, true
			}
		}
		if s.status == empty {
			return -1, false
		}
	}
	return -1, false
}

// Add inserts (key, value), overwriting the value if key is already
// present (the open-addressing engine's documented overwrite semantics,
// diverging intentionally from the chained engine).
func (h *OpenAddressingHashTable[K, V]) Add(key K, value V) bool {
	if j, ok := h.search(key); ok {
		h.table[j].value = value
		return true
	}

	size := h.tableSize()
	for i := 0; i < size; i++ {
		j := h.hashCode(key, i)
		if h.table[j].status != active {
			h.table[j] = slot[K, V]{key: key, value: value, status: active}
			h.count++
			return true
		}
		h.collisions++
	}
	return false
}

// rehash grows the table to the next prime at or above m, discarding
// tombstones, if that is actually larger than the current table.
func (h *OpenAddressingHashTable[K, V]) rehash(m int) {
	newSize := nextPrime(m)
	if newSize <= h.tableSize() {
		return
	}
	old := h.table
	h.table = make([]slot[K, V], newSize)
	h.count = 0
	for _, s := range old {
		if s.status == active {
			h.Add(s.key, s.value)
		}
	}
}

// Reserve ensures the table can hold n elements without exceeding the
// current max load factor.
func (h *OpenAddressingHashTable[K, V]) Reserve(n int) {
	if float64(n) > float64(h.tableSize())*h.maxLoadFactor {
		h.rehash(int(math.Ceil(float64(n) / h.maxLoadFactor)))
	}
}

// SetMaxLoadFactor assigns the receiver's own field, then reserves capacity
// for the current element count (fixes the source's bug of assigning to an
// unrelated symbol before reserving).
func (h *OpenAddressingHashTable[K, V]) SetMaxLoadFactor(lf float64) {
	h.maxLoadFactor = lf
	h.Reserve(h.count)
}

// Update replaces the value for an existing key; it returns
// dictionary.ErrKeyNotFound if key is absent.
func (h *OpenAddressingHashTable[K, V]) Update(key K, value V) error {
	j, ok := h.search(key)
	if !ok {
		return dictionary.ErrKeyNotFound
	}
	h.table[j].value = value
	return nil
}

// At returns the value for key, or dictionary.ErrKeyNotFound.
func (h *OpenAddressingHashTable[K, V]) At(key K) (V, error) {
	j, ok := h.search(key)
	if !ok {
		var zero V
		return zero, dictionary.ErrKeyNotFound
	}
	return h.table[j].value, nil
}

// Contains reports whether key is present.
func (h *OpenAddressingHashTable[K, V]) Contains(key K) bool {
	_, ok := h.search(key)
	return ok
}

// Remove marks key's slot as a tombstone and reports whether anything was
// deleted.
func (h *OpenAddressingHashTable[K, V]) Remove(key K) bool {
	j, ok := h.search(key)
	if !ok {
		return false
	}
	h.table[j].status = deleted
	h.count--
	return true
}

// Index returns a pointer to the value for key, inserting a zero value
// first if key is absent. If the table is exhausted after an insert
// attempt, it doubles the table size and retries once before giving up
// with dictionary.ErrInternal.
func (h *OpenAddressingHashTable[K, V]) Index(key K) (*V, error) {
	if j, ok := h.search(key); ok {
		return &h.table[j].value, nil
	}

	var zero V
	if !h.Add(key, zero) {
		h.rehash(2 * h.tableSize())
		if !h.Add(key, zero) {
			return nil, dictionary.ErrInternal
		}
	}
	j, ok := h.search(key)
	if !ok {
		return nil, dictionary.ErrInternal
	}
	return &h.table[j].value, nil
}

// Clear empties the table and resets both counters.
func (h *OpenAddressingHashTable[K, V]) Clear() {
	for i := range h.table {
		h.table[i] = slot[K, V]{}
	}
	h.count = 0
	h.comparisons = 0
	h.collisions = 0
}

// Size returns the number of active entries.
func (h *OpenAddressingHashTable[K, V]) Size() int {
	return h.count
}

// Empty reports whether the table has no active entries.
func (h *OpenAddressingHashTable[K, V]) Empty() bool {
	return h.count == 0
}

// Comparisons returns the running key-comparison count.
func (h *OpenAddressingHashTable[K, V]) Comparisons() uint64 {
	return h.comparisons
}

// Collisions returns the running probe-collision count.
func (h *OpenAddressingHashTable[K, V]) Collisions() uint64 {
	return h.collisions
}

// Show writes every active entry as "(key, value), ..." to w, sorted by the
// fmt.Sprint text of each key. For string keys this is key-ascending order;
// for other key types (e.g. ints, where "10" sorts before "9") it is not.
func (h *OpenAddressingHashTable[K, V]) Show(w io.Writer) {
	type rendered struct {
		key, line string
	}
	var rows []rendered
	for _, s := range h.table {
		if s.status == active {
			rows = append(rows, rendered{key: fmt.Sprint(s.key), line: fmt.Sprintf("(%v, %v)", s.key, s.value)})
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
func (h *OpenAddressingHashTable[K, V]) Clone() dictionary.HashEngine[K, V] {
	table := append([]slot[K, V](nil), h.table...)
	return &OpenAddressingHashTable[K, V]{
		table:         table,
		hash:          h.hash,
		count:         h.count,
		maxLoadFactor: h.maxLoadFactor,
		comparisons:   h.comparisons,
		collisions:    h.collisions,
	}
}
