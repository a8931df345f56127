// Package adapter wraps a dictionary engine with construction-time
// accounting (element count, comparisons, rotations/collisions, elapsed
// build duration), mirroring the summary block the original's
// dictionary_tree/dictionary_hash templates print before the entries
// themselves.
package adapter

import (
	"fmt"
	"io"
	"time"

	"github.com/dictbench/dictbench/pkg/dictionary"
)

// TreeDictionary wraps a dictionary.TreeEngine, tracking the time since
// construction (or the last Clear) as its build duration.
type TreeDictionary[K any, V any] struct {
	engine    dictionary.TreeEngine[K, V]
	startTime time.Time
}

// NewTree wraps engine in a TreeDictionary, starting its build clock now.
func NewTree[K any, V any](engine dictionary.TreeEngine[K, V]) *TreeDictionary[K, V] {
	return &TreeDictionary[K, V]{engine: engine, startTime: time.Now()}
}

func (d *TreeDictionary[K, V]) Insert(key K, value V)       { d.engine.Add(key, value) }
func (d *TreeDictionary[K, V]) Update(key K, value V) error { return d.engine.Update(key, value) }
func (d *TreeDictionary[K, V]) At(key K) (V, error)         { return d.engine.At(key) }
func (d *TreeDictionary[K, V]) Contains(key K) bool         { return d.engine.Contains(key) }
func (d *TreeDictionary[K, V]) Remove(key K)                { d.engine.Remove(key) }
func (d *TreeDictionary[K, V]) Index(key K) *V              { return d.engine.Index(key) }
func (d *TreeDictionary[K, V]) Size() int                   { return d.engine.Size() }

// Clear empties the underlying engine and resets the build clock.
func (d *TreeDictionary[K, V]) Clear() {
	d.engine.Clear()
	d.startTime = time.Now()
}

// Duration reports elapsed time since construction or the last Clear.
func (d *TreeDictionary[K, V]) Duration() time.Duration {
	return time.Since(d.startTime)
}

// Show writes the summary header (count, comparisons, rotations, build
// duration) followed by the engine's in-order listing.
func (d *TreeDictionary[K, V]) Show(w io.Writer) {
	fmt.Fprintf(w, "Quantidade de elementos: %d\n", d.engine.Size())
	fmt.Fprintf(w, "Comparacoes entre chaves realizadas: %d\n", d.engine.Comparisons())
	fmt.Fprintf(w, "Rotacoes ocorridas: %d\n", d.engine.Rotations())
	fmt.Fprintf(w, "Tempo de construcao do dicionario: %dms\n", d.Duration().Milliseconds())
	fmt.Fprintln(w)
	d.engine.Show(w)
}

// HashDictionary wraps a dictionary.HashEngine, tracking the time since
// construction (or the last Clear) as its build duration.
type HashDictionary[K any, V any] struct {
	engine    dictionary.HashEngine[K, V]
	startTime time.Time
}

// NewHash wraps engine in a HashDictionary, starting its build clock now.
func NewHash[K any, V any](engine dictionary.HashEngine[K, V]) *HashDictionary[K, V] {
	return &HashDictionary[K, V]{engine: engine, startTime: time.Now()}
}

func (d *HashDictionary[K, V]) Insert(key K, value V) bool  { return d.engine.Add(key, value) }
func (d *HashDictionary[K, V]) Update(key K, value V) error { return d.engine.Update(key, value) }
func (d *HashDictionary[K, V]) At(key K) (V, error)         { return d.engine.At(key) }
func (d *HashDictionary[K, V]) Contains(key K) bool         { return d.engine.Contains(key) }
func (d *HashDictionary[K, V]) Remove(key K) bool           { return d.engine.Remove(key) }
func (d *HashDictionary[K, V]) Index(key K) (*V, error)     { return d.engine.Index(key) }
func (d *HashDictionary[K, V]) Size() int                   { return d.engine.Size() }

// Clear empties the underlying engine and resets the build clock.
func (d *HashDictionary[K, V]) Clear() {
	d.engine.Clear()
	d.startTime = time.Now()
}

// Duration reports elapsed time since construction or the last Clear.
func (d *HashDictionary[K, V]) Duration() time.Duration {
	return time.Since(d.startTime)
}

// Show writes the summary header (count, comparisons, collisions, build
// duration) followed by the engine's key-ascending listing.
func (d *HashDictionary[K, V]) Show(w io.Writer) {
	fmt.Fprintf(w, "Quantidade de elementos: %d\n", d.engine.Size())
	fmt.Fprintf(w, "Comparacoes entre chaves realizadas: %d\n", d.engine.Comparisons())
	fmt.Fprintf(w, "Colisoes ocorridas: %d\n", d.engine.Collisions())
	fmt.Fprintf(w, "Tempo de construcao do dicionario: %dms\n", d.Duration().Milliseconds())
	fmt.Fprintln(w)
	d.engine.Show(w)
}
