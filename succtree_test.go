package succtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSummaries verifies that every summary bit equals the OR-reduction
// of its child word, by brute-force recomputation.
func checkSummaries(t *testing.T, tree *Tree) {
	t.Helper()
	for layer := 0; layer < len(tree.layers)-1; layer++ {
		for w, word := range tree.layers[layer] {
			require.Equal(t, word != 0, tree.bit(layer+1, uint64(w)),
				"summary mismatch at layer %d word %d", layer, w)
		}
	}
}

// allZero reports whether every word of every layer is zero.
func allZero(tree *Tree) bool {
	for _, layer := range tree.layers {
		for _, word := range layer {
			if word != 0 {
				return false
			}
		}
	}
	return true
}

func TestNew_Sizing(t *testing.T) {
	tests := []struct {
		name     string
		capacity uint64
		words    []int
	}{
		{"million", 1000000, []int{15625, 245, 4, 1, 1}},
		{"one word", 64, []int{1, 1}},
		{"one past word", 65, []int{2, 1, 1}},
		{"power of 64", 4096, []int{64, 1, 1}},
		{"single element", 1, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := New(tt.capacity)
			require.NoError(t, err)

			require.Len(t, tree.layers, len(tt.words))
			for i, n := range tt.words {
				assert.Len(t, tree.layers[i], n, "layer %d", i)
			}
			assert.Equal(t, tt.capacity, tree.Capacity())
			assert.Equal(t, len(tt.words), tree.Layers())
		})
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	tree, err := New(0)
	require.ErrorIs(t, err, ErrInvalidCapacity)
	assert.Nil(t, tree)
}

func TestInsert(t *testing.T) {
	tree, err := New(100)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(0))
	assert.Equal(t, uint64(1), tree.layers[0][0])
	assert.Equal(t, uint64(1), tree.layers[1][0])

	require.NoError(t, tree.Insert(1))
	assert.Equal(t, uint64(3), tree.layers[0][0])

	// Idempotent re-insert.
	require.NoError(t, tree.Insert(1))
	assert.Equal(t, uint64(3), tree.layers[0][0])
	assert.Equal(t, uint64(2), tree.Count())

	require.NoError(t, tree.Insert(64))
	assert.Equal(t, uint64(1), tree.layers[0][1])

	checkSummaries(t, tree)
}

func TestInsert_OutOfRange(t *testing.T) {
	tree, err := New(100)
	require.NoError(t, err)

	insErr := tree.Insert(100)
	var oor *ErrOutOfRange
	require.ErrorAs(t, insErr, &oor)
	assert.Equal(t, uint64(100), oor.Element)
	assert.Equal(t, uint64(100), oor.Bound)

	assert.True(t, tree.IsEmpty(), "failed insert must not mutate the tree")
}

func TestDelete(t *testing.T) {
	tree, err := New(1000000)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(0))
	for layer := 0; layer < 4; layer++ {
		assert.Equal(t, uint64(1), tree.layers[layer][0], "layer %d", layer)
	}

	// Deleting the sole element clears the chain all the way up.
	require.NoError(t, tree.Delete(0))
	assert.True(t, allZero(tree))

	// Deleting a non-last occupant only touches the leaf layer.
	require.NoError(t, tree.Insert(0))
	require.NoError(t, tree.Insert(1))
	require.NoError(t, tree.Delete(0))
	assert.Equal(t, uint64(2), tree.layers[0][0])
	assert.Equal(t, uint64(1), tree.layers[1][0])
	checkSummaries(t, tree)

	require.NoError(t, tree.Delete(1))
	assert.True(t, allZero(tree))
}

func TestDelete_Idempotent(t *testing.T) {
	tree, err := New(1000)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(42))
	require.NoError(t, tree.Delete(42))
	require.NoError(t, tree.Delete(42))

	assert.True(t, allZero(tree))
	assert.Equal(t, uint64(0), tree.Count())
}

func TestDelete_OutOfRange(t *testing.T) {
	tree, err := New(100)
	require.NoError(t, err)

	var oor *ErrOutOfRange
	require.ErrorAs(t, tree.Delete(200), &oor)
}

func TestRoundTrip(t *testing.T) {
	tree, err := New(1000000)
	require.NoError(t, err)

	for _, x := range []uint64{0, 5, 63, 64, 4095, 4096, 999999} {
		require.NoError(t, tree.Insert(x))
		require.NoError(t, tree.Delete(x))
		assert.True(t, allZero(tree), "element %d", x)
	}
}

func TestIsEmpty(t *testing.T) {
	tree, err := New(1000000)
	require.NoError(t, err)

	assert.True(t, tree.IsEmpty())

	require.NoError(t, tree.Insert(0))
	assert.False(t, tree.IsEmpty())

	require.NoError(t, tree.Delete(0))
	assert.True(t, tree.IsEmpty())

	require.NoError(t, tree.Insert(999999))
	assert.False(t, tree.IsEmpty())
}

func TestMin(t *testing.T) {
	tree, err := New(1000000)
	require.NoError(t, err)

	_, ok := tree.Min()
	assert.False(t, ok)

	require.NoError(t, tree.Insert(5))
	got, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(5), got)

	require.NoError(t, tree.Insert(0))
	got, ok = tree.Min()
	require.True(t, ok)
	assert.Equal(t, uint64(0), got)
}

func TestContains(t *testing.T) {
	tree, err := New(100)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(7))
	assert.True(t, tree.Contains(7))
	assert.False(t, tree.Contains(8))
	assert.False(t, tree.Contains(1000), "out of range is never present")
}

func TestCount(t *testing.T) {
	tree, err := New(1000)
	require.NoError(t, err)

	for _, x := range []uint64{1, 2, 3, 500, 999} {
		require.NoError(t, tree.Insert(x))
	}
	assert.Equal(t, uint64(5), tree.Count())

	require.NoError(t, tree.Delete(2))
	require.NoError(t, tree.Delete(2))
	assert.Equal(t, uint64(4), tree.Count())
}

func TestClear(t *testing.T) {
	tree, err := New(1000)
	require.NoError(t, err)

	for _, x := range []uint64{1, 64, 999} {
		require.NoError(t, tree.Insert(x))
	}

	tree.Clear()
	assert.True(t, allZero(tree))
	assert.Equal(t, uint64(0), tree.Count())

	// Reusable after clear.
	require.NoError(t, tree.Insert(5))
	assert.True(t, tree.Contains(5))
}

func TestClone(t *testing.T) {
	tree, err := New(1000)
	require.NoError(t, err)
	require.NoError(t, tree.Insert(10))
	require.NoError(t, tree.Insert(900))

	clone := tree.Clone()
	require.NoError(t, clone.Delete(10))

	assert.True(t, tree.Contains(10), "clone must not alias the original")
	assert.False(t, clone.Contains(10))
	assert.Equal(t, uint64(2), tree.Count())
	assert.Equal(t, uint64(1), clone.Count())
}

func TestMetricsCollector(t *testing.T) {
	collector := &BasicMetricsCollector{}
	tree, err := New(100, WithMetrics(collector))
	require.NoError(t, err)

	require.NoError(t, tree.Insert(1))
	require.NoError(t, tree.Insert(1))
	require.Error(t, tree.Insert(500))
	require.NoError(t, tree.Delete(1))

	_, _, err = tree.Successor(0)
	require.NoError(t, err)
	_, err = tree.Range(0, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(3), collector.InsertCount.Load())
	assert.Equal(t, int64(1), collector.InsertUpdates.Load())
	assert.Equal(t, int64(1), collector.InsertErrors.Load())
	assert.Equal(t, int64(1), collector.DeleteCount.Load())
	assert.Equal(t, int64(1), collector.DeleteUpdates.Load())
	assert.Equal(t, int64(1), collector.SuccessorCount.Load())
	assert.Equal(t, int64(1), collector.RangeCount.Load())
}
