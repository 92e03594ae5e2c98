// Package tables turns a frozen enumeration index into the integer lookup
// tables a randomized-benchmarking runtime consumes: inverse arrays, a dense
// composition matrix for the small group, and a sparse generator-restricted
// composition matrix for the large one.
//
// What:
//
//   - Inverse: length-N array, entry i = index of element_i⁻¹.
//   - DenseCompose: N×N row-major matrix, entry (i,j) = index of
//     (element_i then element_j). Built for the 24-element group only.
//   - SparseCompose: CSR matrix of logical shape N×N populated only at the
//     generator-indexed columns; the 11520² dense table would run to
//     hundreds of megabytes, and callers decompose an arbitrary right-hand
//     operand into generators anyway.
//   - GeneratorMap: the label→index map of the elementary generators,
//     rebuilt from minimal circuits and validated byte-for-byte against the
//     published constant before any sparse build may proceed.
//
// Why dense vs. sparse is a rule, not a choice: a full table is kept only
// while N² integers fit comfortably in memory (the 24-group); above that
// the table is restricted to generator columns. Preserve the rule when
// adding groups.
//
// Complexity:
//
//   - Inverse:       O(N) adjoints + lookups.
//   - DenseCompose:  O(N²) compositions.
//   - SparseCompose: O(N·G) compositions, G = distinct generator indices.
//   - Generator map: O(G) circuit builds.
//
// Errors:
//
//   - ErrBijectionViolated: a dense row or the inverse array is not a
//     permutation of [0,N) — closure or totality is broken; fatal.
//   - ErrGeneratorMapDrift: the rebuilt generator map disagrees with the
//     published constant — the group numbering has silently shifted and
//     every previously persisted table is suspect; fatal, and checked
//     before sparse generation.
//   - ErrNilIndex, ErrEmptyGenerators: construction misuse.
//   - ErrOutOfRange: bounds miss on table accessors.
package tables
