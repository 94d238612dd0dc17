package succtree

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/succtree/internal/layout"
)

// ToRoaring exports the element set as a 64-bit Roaring Bitmap.
func (t *Tree) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	for w, word := range t.layers[0] {
		base := uint64(w) << layout.WordShift
		for word != 0 {
			rb.Add(base + uint64(bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}
	return rb
}

// NewFromRoaring creates a Tree over [0, capacity) pre-populated with the
// elements of rb. Returns ErrOutOfRange if rb holds an element >= capacity.
//
// The leaf layer is written directly and the summary layers rebuilt in one
// bottom-up pass, which is considerably faster than element-wise Insert
// for dense inputs.
func NewFromRoaring(capacity uint64, rb *roaring64.Bitmap, optFns ...Option) (*Tree, error) {
	t, err := New(capacity, optFns...)
	if err != nil {
		return nil, err
	}
	it := rb.Iterator()
	for it.HasNext() {
		x := it.Next()
		if x >= capacity {
			return nil, &ErrOutOfRange{Element: x, Bound: capacity}
		}
		t.setBit(0, x)
	}
	t.rebuild()
	return t, nil
}

// ToBitSet exports the element set as a flat bits-and-blooms bitset.
func (t *Tree) ToBitSet() *bitset.BitSet {
	words := make([]uint64, len(t.layers[0]))
	copy(words, t.layers[0])
	return bitset.FromWithLength(uint(t.capacity), words)
}

// NewFromBitSet creates a Tree over [0, capacity) pre-populated with the
// set bits of bs. Returns ErrOutOfRange if bs holds a bit >= capacity.
func NewFromBitSet(capacity uint64, bs *bitset.BitSet, optFns ...Option) (*Tree, error) {
	t, err := New(capacity, optFns...)
	if err != nil {
		return nil, err
	}
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		x := uint64(i)
		if x >= capacity {
			return nil, &ErrOutOfRange{Element: x, Bound: capacity}
		}
		t.setBit(0, x)
	}
	t.rebuild()
	return t, nil
}

// rebuild recomputes every summary layer and the element count from the
// leaf layer. Used after bulk leaf writes.
func (t *Tree) rebuild() {
	count := uint64(0)
	for _, word := range t.layers[0] {
		count += uint64(bits.OnesCount64(word))
	}
	t.count = count

	for layer := 1; layer < len(t.layers); layer++ {
		for w := range t.layers[layer] {
			t.layers[layer][w] = 0
		}
		for w, word := range t.layers[layer-1] {
			if word != 0 {
				t.setBit(layer, uint64(w))
			}
		}
	}
}
