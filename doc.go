// Package succtree provides a compact hierarchical bitmap index over a
// dense integer universe [0, N) with fast successor queries.
//
// A Tree is a flat bitmap turned into a shallow 64-ary tree of bitmaps:
// layer 0 holds one bit per element, and every higher layer summarizes
// 64-bit blocks of the layer below with a single bit. Insert, Delete and
// Successor therefore cost O(log64 N) word operations instead of a linear
// scan, and IsEmpty is a single word load. This is the kind of building
// block used inside storage engines for free-slot bitmaps, sparse key
// universes, or ordered-set summaries without per-element pointers.
//
// # Quick Start
//
//	tree, err := succtree.New(1_000_000)
//	if err != nil {
//	    panic(err)
//	}
//	_ = tree.Insert(5)
//	_ = tree.Insert(9)
//
//	next, ok, _ := tree.Successor(5) // next == 9, ok == true
//
//	elements, _ := tree.Range(0, 100) // [5 9]
//
// # Capacity
//
// The universe size is fixed at construction; there is no resize. All
// operations on an element x require 0 <= x < N and fail fast with
// ErrOutOfRange otherwise.
//
// # Concurrency
//
// Tree performs no locking. Callers needing concurrent access must
// serialize writers against both other writers and readers; the locked
// subpackage wraps a Tree behind a sync.RWMutex for that purpose.
//
// # Interop
//
// Bulk conversion to and from Roaring bitmaps and flat bitsets is
// provided via ToRoaring/NewFromRoaring and ToBitSet/NewFromBitSet.
package succtree
