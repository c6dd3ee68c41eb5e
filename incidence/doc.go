// Package incidence builds combinatorial incidence indexes over simplicial
// complexes: the general face-subset index (which target cells contain a
// given query cell as a face) and the specialized vertex star (dual).
//
// What:
//
//   - BuildIndex answers "which cells of `to` contain cell i of `from` as a
//     vertex subset" for every query cell at once, by enumerating face
//     subsets of each target cell and binary-searching the query complex.
//   - Dual / DualDense compute per-vertex incident-cell lists (the star of
//     each vertex) directly, skipping subset enumeration — the fast path
//     whenever the query dimension is 0.
//
// Why:
//
//   - Mesh adjacency: "which triangles touch this edge", "which tetrahedra
//     share this face".
//   - Dual complexes: vertex stars are the 0-dimensional incidence index.
//
// Complexity:
//
//   - BuildIndex: O(p + q·2^d·d·log p), p = |from|, q = |to|, d = max cell
//     length over both inputs. Subset sizes absent from the query complex
//     are skipped, so the 2^d term only pays for dimensions actually queried.
//   - Dual / DualDense: O(d·n).
//
// Errors:
//
//   - ErrNegativeVertexCount: DualDense given a vertexCount below zero.
//
// BuildIndex requires its query complex in canonical form (core.Normalize);
// the target complex may be arbitrary. Neither function mutates its inputs.
package incidence
