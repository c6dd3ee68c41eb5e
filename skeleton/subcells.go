// Package skeleton: raw sub-cell (face) enumeration.
package skeleton

import (
	"errors"

	"github.com/katalvlaran/simplicial/core"
)

// ErrNegativeDimension is returned when a face dimension below zero is
// requested.
var ErrNegativeDimension = errors.New("skeleton: negative dimension")

// Subcells enumerates every n-dimensional face of every cell: for each cell
// of dimension ≥ n, each size-(n+1) combination of its vertices (relative
// order preserved) becomes one output cell. Faces shared by several parent
// cells appear once per parent — the result is an unreduced multiset of
// length Σ C(len(cell), n+1).
//
// Cells of dimension < n contribute nothing; a dimension above the
// complex's maximum yields an empty complex. The input is not mutated.
//
// Complexity: O(k·Σ C(len(cell), k)), k = n+1. Memory: O(output).
func Subcells(cells core.Complex, n int) (core.Complex, error) {
	if n < 0 {
		return nil, ErrNegativeDimension
	}

	k := n + 1
	out := core.Complex{}
	idx := make([]int, k)

	for _, c := range cells {
		if len(c) < k {
			// Too low-dimensional to have n-faces.
			continue
		}

		// Standard combination walk: idx holds k positions into c,
		// strictly increasing, starting at 0..k-1.
		for i := range idx {
			idx[i] = i
		}
		for {
			face := make(core.Cell, k)
			for i, p := range idx {
				face[i] = c[p]
			}
			out = append(out, face)

			// Advance to the next combination: bump the rightmost position
			// that can still move, reset everything after it.
			i := k - 1
			for i >= 0 && idx[i] == len(c)-k+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return out, nil
}
