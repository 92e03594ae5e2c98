// Package enum builds the total bijection between group elements and dense
// integer indices that every table builder consumes as read-only shared
// state.
//
// What:
//
//   - Index: for a group of size N, an index→Element cache plus a canonical
//     key→index map, built once from an enumerator function that is
//     guaranteed (by the algebra package) to cover the group exactly once.
//   - Clifford1Q / Clifford2Q: the two fixed-group constructors.
//
// Why:
//
//   - Downstream runtimes represent Cliffords as integers in [0, N); all
//     table generation reduces to "compose, canonicalize, look the key up
//     here".
//
// Complexity:
//
//   - Build: O(N) enumerator calls and map inserts.
//   - Lookup/Resolve/Element: O(1).
//
// Errors:
//
//   - ErrKeyCollision: two distinct indices canonicalize identically. This
//     breaks the coverage guarantee of the enumerator and is fatal for the
//     whole generation run — there is no recovery path.
//   - ErrBadSize, ErrNilEnumerator: construction misuse.
//   - ErrIndexRange, ErrUnknownKey: lookup misses.
package enum
