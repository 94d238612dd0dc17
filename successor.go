package succtree

import (
	"math/bits"

	"github.com/hupe1980/succtree/internal/layout"
)

// Successor returns the smallest present element strictly greater than x,
// or false if no such element exists. Returns ErrOutOfRange if
// x >= Capacity().
func (t *Tree) Successor(x uint64) (uint64, bool, error) {
	if x >= t.capacity {
		err := &ErrOutOfRange{Element: x, Bound: t.capacity}
		t.metrics.RecordSuccessor(false, err)
		return 0, false, err
	}
	succ, ok := t.successor(x)
	t.metrics.RecordSuccessor(ok, nil)
	return succ, ok, nil
}

func (t *Tree) successor(x uint64) (uint64, bool) {
	// Search x's own word for a strictly greater bit, climbing one layer
	// per miss. At layer l, position x/64^l summarizes x's subtree, so
	// masking it off keeps the search strictly greater at every level.
	layer := 0
	pos, ok := t.nextInWord(layer, x)
	for !ok && layer < len(t.layers)-1 {
		x >>= layout.WordShift
		layer++
		pos, ok = t.nextInWord(layer, x)
	}
	if !ok {
		return 0, false
	}

	// Descend to the leaf. Each summary bit guarantees its child word is
	// non-zero, and the least-significant set bit is the minimum.
	for layer > 0 {
		layer--
		pos = t.firstInWord(layer, pos)
	}
	return pos, true
}

// nextInWord looks for a set bit strictly after pos within the word
// holding pos in the given layer.
func (t *Tree) nextInWord(layer int, pos uint64) (uint64, bool) {
	offset := pos & layout.WordMask
	// Shifting by 64 yields 0, so an offset of 63 masks the entire word.
	masked := t.word(layer, pos) & (^uint64(0) << (offset + 1))
	if masked == 0 {
		return 0, false
	}
	return pos&^layout.WordMask + uint64(bits.TrailingZeros64(masked)), true
}

// firstInWord returns the position of the least-significant set bit in
// the child word summarized by bit parent of the layer above. The word
// must be non-zero.
func (t *Tree) firstInWord(layer int, parent uint64) uint64 {
	return parent<<layout.WordShift + uint64(bits.TrailingZeros64(t.layers[layer][parent]))
}
