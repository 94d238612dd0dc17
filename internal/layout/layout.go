// Package layout computes the geometry of the layered bitmap: how many
// summary layers a given capacity needs and how many 64-bit words each
// layer occupies.
//
// All sizing uses exact integer ceiling division. Floating-point log/pow
// arithmetic is deliberately avoided because it rounds the wrong way at
// power-of-64 boundaries (e.g. capacity 64 vs 65).
package layout

// WordBits is the number of bits per storage word.
const WordBits = 64

// WordShift and WordMask convert between element positions and
// word/offset pairs: pos>>WordShift is the word index, pos&WordMask the
// bit offset within it.
const (
	WordShift = 6
	WordMask  = WordBits - 1
)

// CeilDiv returns ceil(n / d) for d > 0.
func CeilDiv(n, d uint64) uint64 {
	return (n + d - 1) / d
}

// NumLayers returns the number of layers for a tree over [0, capacity).
//
// The count is ceil(log64(capacity)) + 1, clamped so even capacity 1 gets
// a leaf layer plus one summary layer. It is computed by iterated ceiling
// division rather than floating-point logarithms: the number of times
// capacity must be divided (rounding up) by WordBits to reach 1.
func NumLayers(capacity uint64) int {
	if capacity == 0 {
		return 0
	}
	divisions := 0
	for n := capacity; n > 1; n = CeilDiv(n, WordBits) {
		divisions++
	}
	if divisions < 1 {
		divisions = 1
	}
	return divisions + 1
}

// LayerBits returns the number of meaningful bit positions in the given
// layer: ceil(capacity / 64^layer), computed by iterated ceiling division
// so it cannot overflow for any uint64 capacity.
func LayerBits(capacity uint64, layer int) uint64 {
	n := capacity
	for i := 0; i < layer; i++ {
		n = CeilDiv(n, WordBits)
	}
	return n
}

// LayerWords returns the number of 64-bit words allocated for the given
// layer: ceil(LayerBits / 64).
func LayerWords(capacity uint64, layer int) int {
	return int(CeilDiv(LayerBits(capacity, layer), WordBits))
}

// Words returns the per-layer word counts for a tree over [0, capacity),
// leaf layer first. The topmost layer always fits in a single word.
func Words(capacity uint64) []int {
	layers := NumLayers(capacity)
	words := make([]int, layers)
	bits := capacity
	for i := 0; i < layers; i++ {
		words[i] = int(CeilDiv(bits, WordBits))
		bits = CeilDiv(bits, WordBits)
	}
	return words
}
