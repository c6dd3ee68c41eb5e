package core_test

import (
	"testing"

	"github.com/katalvlaran/simplicial/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind_LocateAfterNormalize verifies that every cell of a normalized
// complex is found under any permutation of its vertices.
func TestFind_LocateAfterNormalize(t *testing.T) {
	cells := core.Normalize(core.Complex{
		{2, 1, 0},
		{1, 3, 2},
		{4, 2, 3},
		{5, 0},
	})

	for i, c := range cells {
		// The cell itself.
		idx := core.Find(cells, c)
		require.NotEqual(t, -1, idx, "cell %v must be present", c)
		assert.Zero(t, core.CompareCells(cells[idx], c))

		// A reversed permutation of the same cell.
		rev := make(core.Cell, len(c))
		for j, v := range c {
			rev[len(c)-1-j] = v
		}
		assert.Equal(t, idx, core.Find(cells, rev), "permutation of cell %d must hit the same index", i)
	}
}

// TestFind_Absent verifies the −1 contract for cells not in the complex.
func TestFind_Absent(t *testing.T) {
	cells := core.Normalize(core.Complex{{0, 1, 2}, {1, 2, 3}})

	assert.Equal(t, -1, core.Find(cells, core.Cell{0, 1, 3}), "missing triangle")
	assert.Equal(t, -1, core.Find(cells, core.Cell{1, 2}), "edge of a present triangle is still absent")
	assert.Equal(t, -1, core.Find(core.Complex{}, core.Cell{0}), "empty complex holds nothing")
}

// TestFind_DoesNotMutateQuery verifies that the query cell keeps its
// original vertex order.
func TestFind_DoesNotMutateQuery(t *testing.T) {
	cells := core.Normalize(core.Complex{{0, 1, 2}})
	q := core.Cell{2, 0, 1}
	_ = core.Find(cells, q)

	assert.Equal(t, core.Cell{2, 0, 1}, q)
}

// TestFind_Duplicates verifies that with duplicate cells some valid index
// is returned (which one is unspecified).
func TestFind_Duplicates(t *testing.T) {
	cells := core.Normalize(core.Complex{{1, 2}, {2, 1}, {0, 3}})

	idx := core.Find(cells, core.Cell{2, 1})
	require.NotEqual(t, -1, idx)
	assert.Zero(t, core.CompareCells(cells[idx], core.Cell{1, 2}))
}

// TestFind_MixedDimension verifies lookup across cells of differing length.
func TestFind_MixedDimension(t *testing.T) {
	cells := core.Normalize(core.Complex{{0, 1, 2}, {4}, {1, 3}})

	assert.NotEqual(t, -1, core.Find(cells, core.Cell{4}))
	assert.NotEqual(t, -1, core.Find(cells, core.Cell{3, 1}))
	assert.NotEqual(t, -1, core.Find(cells, core.Cell{2, 0, 1}))
	assert.Equal(t, -1, core.Find(cells, core.Cell{1}))
}
