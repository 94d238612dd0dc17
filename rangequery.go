package succtree

import "iter"

// Range returns the present elements in the half-open interval
// [lower, upper), in ascending order. Bounds must satisfy
// 0 <= lower <= upper <= Capacity(); otherwise ErrOutOfRange is returned.
//
// The result is recomputed from scratch on every call; it is a snapshot,
// not a live view. Mutating the tree while a query runs is not supported.
func (t *Tree) Range(lower, upper uint64) ([]uint64, error) {
	if upper > t.capacity {
		err := &ErrOutOfRange{Element: upper, Bound: t.capacity}
		t.metrics.RecordRange(0, err)
		return nil, err
	}
	if lower > upper {
		err := &ErrOutOfRange{Element: lower, Bound: upper}
		t.metrics.RecordRange(0, err)
		return nil, err
	}

	var result []uint64
	if lower == upper {
		t.metrics.RecordRange(0, nil)
		return result, nil
	}

	if t.bit(0, lower) {
		result = append(result, lower)
	}
	for x := lower; ; {
		succ, ok := t.successor(x)
		if !ok || succ >= upper {
			break
		}
		result = append(result, succ)
		x = succ
	}

	t.metrics.RecordRange(len(result), nil)
	return result, nil
}

// All returns an ascending iterator over every present element.
//
// Like Range, the sequence is driven by successor searches against the
// live tree; do not mutate the tree while iterating.
func (t *Tree) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		x, ok := t.Min()
		for ok {
			if !yield(x) {
				return
			}
			x, ok = t.successor(x)
		}
	}
}
