// Package skeleton enumerates the sub-cells of a simplicial complex and
// derives two canonical complexes from them: the n-skeleton (unique
// n-dimensional faces) and the mod-2 boundary (faces occurring an odd
// number of times).
//
// What:
//
//   - Subcells lists every size-(n+1) vertex combination of every cell,
//     duplicates included — the raw face multiset.
//   - Skeleton canonicalizes that multiset and collapses duplicates,
//     yielding the unique n-faces: Skeleton(triangles, 1) is every edge,
//     Skeleton(cells, 0) every vertex.
//   - Boundary keeps only faces occurring an odd number of times: faces
//     shared by two cells cancel, faces with one parent survive. For a
//     single simplex that is all of its n-faces; for a closed manifold,
//     nothing.
//
// Why:
//
//   - Mesh edges/faces extraction, boundary loops, hole detection.
//   - Unoriented (mod-2) homology building blocks.
//
// Complexity:
//
//   - Subcells: O(Σ C(len(cell), n+1)) output cells.
//   - Skeleton / Boundary: Subcells + O(d·m·log m) normalization + one
//     linear dedup/run scan, m = raw face count.
//
// Errors:
//
//   - ErrNegativeDimension: n below zero.
//
// A dimension above the complex's maximum is not an error: all three
// functions return an empty complex. Inputs are never mutated; results are
// freshly allocated, and Skeleton/Boundary results are canonical.
package skeleton
