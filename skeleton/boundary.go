// Package skeleton: the mod-2 boundary operator.
package skeleton

import (
	"slices"

	"github.com/katalvlaran/simplicial/core"
)

// Boundary computes the mod-2 boundary of cells at dimension n: the
// n-faces occurring an odd number of times across all cells' sub-faces.
// Faces shared by two parent cells cancel; faces with exactly one parent
// survive. For a single simplex that is every n-face; for a closed
// manifold, an empty complex.
//
// Steps:
//  1. Subcells(cells, n) — the raw face multiset.
//  2. core.Normalize — equal faces form adjacent runs.
//  3. Scan runs; emit one representative per odd-length run.
//
// Returns ErrNegativeDimension for n < 0; an empty complex when n exceeds
// the complex's dimension. The result is canonical and deduplicated; the
// input is not mutated.
//
// Complexity: O(d·m·log m), m = raw face count.
func Boundary(cells core.Complex, n int) (core.Complex, error) {
	// 1-2. Raw faces in canonical order.
	sub, err := Subcells(cells, n)
	if err != nil {
		return nil, err
	}
	core.Normalize(sub)

	// 3. Odd-run filter.
	out := core.Complex{}
	for i := 0; i < len(sub); {
		j := i + 1
		for j < len(sub) && slices.Equal(sub[i], sub[j]) {
			j++
		}
		if (j-i)%2 == 1 {
			out = append(out, sub[i])
		}
		i = j
	}

	return out, nil
}
