// Package skeleton: unique n-faces of a complex.
package skeleton

import (
	"slices"

	"github.com/katalvlaran/simplicial/core"
)

// Skeleton returns the unique n-dimensional faces of cells as a canonical,
// deduplicated complex: Skeleton(triangles, 1) yields every edge exactly
// once, Skeleton(cells, 0) every vertex.
//
// Steps:
//  1. Subcells(cells, n) — the raw face multiset.
//  2. core.Normalize — canonical order puts duplicates adjacent.
//  3. Collapse adjacent equal runs to one representative.
//
// Returns ErrNegativeDimension for n < 0; an empty complex (not an error)
// when n exceeds the complex's dimension. The input is not mutated.
//
// Complexity: O(d·m·log m), m = raw face count.
func Skeleton(cells core.Complex, n int) (core.Complex, error) {
	// 1-2. Enumerate and canonicalize; Normalize mutates only the fresh
	//      multiset, never the caller's cells.
	sub, err := Subcells(cells, n)
	if err != nil {
		return nil, err
	}
	core.Normalize(sub)

	// 3. Adjacent dedup: canonical cells are plain ascending slices, so
	//    slices.Equal is exact equality here.
	out := sub[:0]
	for i, c := range sub {
		if i > 0 && slices.Equal(c, out[len(out)-1]) {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}
