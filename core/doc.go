// Package core defines the central Cell and Complex types and the
// primitives every other simplicial package builds on: a
// permutation-invariant total order over cells, in-place canonicalization,
// and logarithmic membership lookup.
//
// What:
//
//   - Cell: an ordered tuple of non-negative vertex indices; dimension = len−1.
//   - Complex: a sequence of cells, possibly of mixed dimension.
//   - CompareCells: total order consistent with permutation-invariant equality.
//   - Normalize / NormalizeAttr: canonicalize a complex in place, optionally
//     permuting a parallel attribute slice identically.
//   - Normalized: copy-then-normalize convenience for callers that must keep
//     the original order.
//   - Find: binary search over a canonical complex.
//
// Why:
//
//   - Mesh processing: locate edges, triangles, tetrahedra by vertex set.
//   - Computational topology: one deterministic order drives sorting, search
//     and deduplication across the whole library.
//
// Complexity:
//
//   - CompareCells: O(k·log k), k = max cell length.
//   - Normalize:    O(d·n·log n), n = cell count, d = max cell length.
//   - Find:         O(d·log d + d·log n).
//
// Contracts:
//
//   - Normalize and NormalizeAttr mutate their arguments and return the same
//     backing storage; copy first (Clone / Normalized) if the original order
//     must survive.
//   - Find and every downstream consumer of canonical form (incidence
//     indexes) require a complex previously passed through Normalize.
//   - core performs no input validation: malformed cells (negative ids,
//     repeated vertices) produce deterministic but unspecified results
//     rather than errors.
package core
