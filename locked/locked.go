// Package locked provides a reader-writer exclusion layer around
// succtree.Tree.
//
// The core tree deliberately performs no locking so that its hot paths
// stay allocation-free and branch-predictable. Integrations that need
// concurrent access wrap the tree here instead: writes take an exclusive
// lock, reads a shared one.
package locked

import (
	"iter"
	"sync"

	"github.com/hupe1980/succtree"
)

// Tree wraps a succtree.Tree behind a sync.RWMutex.
//
// Insert, Delete and Clear acquire the write lock; all queries acquire
// the read lock. The zero value is not usable; construct with New or
// Wrap.
type Tree struct {
	mu   sync.RWMutex
	tree *succtree.Tree
}

// New creates an empty locked tree over the universe [0, capacity).
func New(capacity uint64, optFns ...succtree.Option) (*Tree, error) {
	tree, err := succtree.New(capacity, optFns...)
	if err != nil {
		return nil, err
	}
	return &Tree{tree: tree}, nil
}

// Wrap places an existing tree behind the lock. The caller must not use
// the wrapped tree directly afterwards.
func Wrap(tree *succtree.Tree) *Tree {
	return &Tree{tree: tree}
}

// Insert adds element x to the set.
func (t *Tree) Insert(x uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Insert(x)
}

// Delete removes element x from the set.
func (t *Tree) Delete(x uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Delete(x)
}

// Clear removes all elements.
func (t *Tree) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Clear()
}

// Contains returns true if element x is present.
func (t *Tree) Contains(x uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Contains(x)
}

// Successor returns the smallest present element strictly greater than x.
func (t *Tree) Successor(x uint64) (uint64, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Successor(x)
}

// Min returns the smallest present element, or false if the set is empty.
func (t *Tree) Min() (uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Min()
}

// IsEmpty returns true if no element is present.
func (t *Tree) IsEmpty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.IsEmpty()
}

// Count returns the number of present elements.
func (t *Tree) Count() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Count()
}

// Capacity returns the size of the universe [0, capacity).
func (t *Tree) Capacity() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Capacity()
}

// Range returns the present elements in [lower, upper), ascending.
func (t *Tree) Range(lower, upper uint64) ([]uint64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Range(lower, upper)
}

// All returns an ascending iterator over every present element. The read
// lock is held for the duration of the iteration.
func (t *Tree) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()
		for x := range t.tree.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Snapshot returns a deep copy of the underlying tree that the caller
// may use without further locking.
func (t *Tree) Snapshot() *succtree.Tree {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Clone()
}
