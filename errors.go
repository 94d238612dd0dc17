package succtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by New when the requested capacity
	// is zero. A tree over an empty universe has no meaningful leaf layer.
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// ErrOutOfRange indicates an element (or range bound) outside the tree's
// universe [0, Bound).
//
// Operations fail fast on out-of-range input instead of wrapping or
// truncating it; a wrapped index would corrupt the summary layers.
type ErrOutOfRange struct {
	Element uint64
	Bound   uint64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("element %d out of range [0, %d)", e.Element, e.Bound)
}
