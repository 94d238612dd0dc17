package succtree

import (
	"log/slog"

	"github.com/hupe1980/succtree/internal/layout"
)

// Tree is a layered bitmap over the dense integer universe [0, capacity).
//
// Layer 0 holds one bit per element. Each higher layer is a summary of
// the one below it: bit b of layer l+1 is set iff at least one bit in
// word b of layer l is set. The summary chain turns the flat bitmap into
// a shallow 64-ary tree, so Insert, Delete and Successor touch at most
// one word per layer.
//
// Tree is not safe for concurrent use. Writers must be serialized
// against both other writers and readers externally; the locked
// subpackage provides a ready-made RWMutex wrapper.
type Tree struct {
	layers   [][]uint64
	capacity uint64
	count    uint64
	metrics  MetricsCollector
}

// New creates an empty Tree over the universe [0, capacity).
//
// All layers are allocated up front and never resized; their word counts
// follow exact integer ceiling division (see internal/layout). Returns
// ErrInvalidCapacity if capacity is zero.
func New(capacity uint64, optFns ...Option) (*Tree, error) {
	if capacity == 0 {
		return nil, ErrInvalidCapacity
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	words := layout.Words(capacity)
	layers := make([][]uint64, len(words))
	total := 0
	for i, n := range words {
		layers[i] = make([]uint64, n)
		total += n
	}

	opts.logger.Debug("tree constructed",
		slog.Uint64("capacity", capacity),
		slog.Int("layers", len(layers)),
		slog.Int("words", total),
	)

	return &Tree{
		layers:   layers,
		capacity: capacity,
		metrics:  opts.metrics,
	}, nil
}

// Capacity returns the size of the universe [0, capacity).
func (t *Tree) Capacity() uint64 {
	return t.capacity
}

// Layers returns the number of bitmap layers, including the leaf layer.
func (t *Tree) Layers() int {
	return len(t.layers)
}

// Count returns the number of present elements.
func (t *Tree) Count() uint64 {
	return t.count
}

// IsEmpty returns true if no element is present.
//
// The topmost layer is a single word summarizing the whole universe, so
// this is one load regardless of capacity.
func (t *Tree) IsEmpty() bool {
	return t.layers[len(t.layers)-1][0] == 0
}

// Contains returns true if element x is present. Out-of-range x is never
// present.
func (t *Tree) Contains(x uint64) bool {
	if x >= t.capacity {
		return false
	}
	return t.bit(0, x)
}

// Insert adds element x to the set. Inserting a present element is a
// no-op. Returns ErrOutOfRange if x >= Capacity().
func (t *Tree) Insert(x uint64) error {
	if x >= t.capacity {
		err := &ErrOutOfRange{Element: x, Bound: t.capacity}
		t.metrics.RecordInsert(false, err)
		return err
	}
	if t.bit(0, x) {
		t.metrics.RecordInsert(false, nil)
		return nil
	}

	t.setBit(0, x)
	t.count++

	// Climb while the parent summary bit is still clear. A block already
	// known non-empty never needs its ancestors re-touched.
	for layer := 1; layer < len(t.layers); layer++ {
		x >>= layout.WordShift
		if t.bit(layer, x) {
			break
		}
		t.setBit(layer, x)
	}

	t.metrics.RecordInsert(true, nil)
	return nil
}

// Delete removes element x from the set. Deleting an absent element is a
// no-op. Returns ErrOutOfRange if x >= Capacity().
func (t *Tree) Delete(x uint64) error {
	if x >= t.capacity {
		err := &ErrOutOfRange{Element: x, Bound: t.capacity}
		t.metrics.RecordDelete(false, err)
		return err
	}
	if !t.bit(0, x) {
		t.metrics.RecordDelete(false, nil)
		return nil
	}

	t.clearBit(0, x)
	t.count--

	// Climb while the containing word went all-zero. Any surviving
	// sibling keeps the ancestor chain justified.
	for layer := 0; layer < len(t.layers)-1; layer++ {
		if t.word(layer, x) != 0 {
			break
		}
		x >>= layout.WordShift
		t.clearBit(layer+1, x)
	}

	t.metrics.RecordDelete(true, nil)
	return nil
}

// Min returns the smallest present element, or false if the set is empty.
func (t *Tree) Min() (uint64, bool) {
	if t.bit(0, 0) {
		return 0, true
	}
	return t.successor(0)
}

// Clear removes all elements. The layer storage is retained, so the tree
// can be refilled without reallocation.
func (t *Tree) Clear() {
	for _, layer := range t.layers {
		for i := range layer {
			layer[i] = 0
		}
	}
	t.count = 0
}

// Clone returns a deep copy of the tree. The clone shares the metrics
// collector but none of the layer storage.
func (t *Tree) Clone() *Tree {
	layers := make([][]uint64, len(t.layers))
	for i, layer := range t.layers {
		layers[i] = make([]uint64, len(layer))
		copy(layers[i], layer)
	}
	return &Tree{
		layers:   layers,
		capacity: t.capacity,
		count:    t.count,
		metrics:  t.metrics,
	}
}

// bit reports whether the bit at pos in the given layer is set.
func (t *Tree) bit(layer int, pos uint64) bool {
	return t.layers[layer][pos>>layout.WordShift]&(1<<(pos&layout.WordMask)) != 0
}

func (t *Tree) setBit(layer int, pos uint64) {
	t.layers[layer][pos>>layout.WordShift] |= 1 << (pos & layout.WordMask)
}

func (t *Tree) clearBit(layer int, pos uint64) {
	t.layers[layer][pos>>layout.WordShift] &^= 1 << (pos & layout.WordMask)
}

// word returns the whole word holding the bit at pos in the given layer.
func (t *Tree) word(layer int, pos uint64) uint64 {
	return t.layers[layer][pos>>layout.WordShift]
}
