package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64n returns a pseudo-random uint64 in [0,n).
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64() % n
}

// Elements returns num distinct pseudo-random elements in [0,universe),
// in no particular order.
func (r *RNG) Elements(num int, universe uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint64]struct{}, num)
	out := make([]uint64, 0, num)
	for len(out) < num {
		x := r.rand.Uint64() % universe
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Reference is a brute-force model of an ordered integer set. It answers
// the same queries as a tree by linear search over a map, providing
// ground truth for property tests.
type Reference struct {
	present map[uint64]struct{}
}

// NewReference creates an empty reference set.
func NewReference() *Reference {
	return &Reference{present: make(map[uint64]struct{})}
}

// Insert adds x to the set.
func (r *Reference) Insert(x uint64) {
	r.present[x] = struct{}{}
}

// Delete removes x from the set.
func (r *Reference) Delete(x uint64) {
	delete(r.present, x)
}

// Contains returns true if x is in the set.
func (r *Reference) Contains(x uint64) bool {
	_, ok := r.present[x]
	return ok
}

// Len returns the number of elements in the set.
func (r *Reference) Len() int {
	return len(r.present)
}

// Successor returns the smallest element strictly greater than x, or
// false if none exists.
func (r *Reference) Successor(x uint64) (uint64, bool) {
	best := uint64(0)
	found := false
	for e := range r.present {
		if e > x && (!found || e < best) {
			best = e
			found = true
		}
	}
	return best, found
}

// Min returns the smallest element, or false if the set is empty.
func (r *Reference) Min() (uint64, bool) {
	best := uint64(0)
	found := false
	for e := range r.present {
		if !found || e < best {
			best = e
			found = true
		}
	}
	return best, found
}

// Range returns the elements in [lower, upper), ascending.
func (r *Reference) Range(lower, upper uint64) []uint64 {
	var out []uint64
	for e := range r.present {
		if e >= lower && e < upper {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return out
}
