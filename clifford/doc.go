// Package clifford implements an exact symplectic-tableau representation of
// the 1- and 2-qubit Clifford groups: composition, inversion, a canonical
// byte key, and the layered-circuit enumerators that cover each group
// exactly once.
//
// What:
//
//   - Element: an n-qubit Clifford operator stored as 2n tableau rows, one
//     per generator (X_0..X_{n-1}, Z_0..Z_{n-1}); each row records the
//     conjugation image as x/z qubit bitmasks plus a sign bit.
//   - Compose(a, b): circuit-order product ("a then b") with exact sign
//     tracking; no floating point anywhere.
//   - Adjoint: group inverse via the symplectic inverse J·Mᵀ·J plus a Pauli
//     phase correction.
//   - Key: deterministic byte packing of the tableau, usable as a map key.
//     Two Elements are the same group element iff their Keys are equal.
//   - Element1Q(num) / Element2Q(num): mixed-radix enumerators for
//     num ∈ [0,24) and [0,11520).
//
// Why:
//
//   - Randomized-benchmarking runtimes represent Cliffords as plain integers
//     and multiply them by table lookup; this package supplies the exact
//     algebra those tables are generated from.
//
// Complexity:
//
//   - Compose:  O(n²) bit operations per call (n ≤ 2 here).
//   - Adjoint:  O(n²), one Compose to fix phases.
//   - Key:      O(n²) bits packed into O(1) bytes.
//   - Element1Q/Element2Q: O(circuit depth) Compose calls.
//
// Errors:
//
//   - ErrQubitMismatch: operands act on different qubit counts.
//   - ErrElementNumber: enumerator index outside the group's range.
//   - ErrUnknownGate:   gate name not in the supported set.
//   - ErrGateQubits:    wrong arity, out-of-range or repeated qubit argument.
//
// Key byte-order contract (fixed, do not change without regenerating every
// persisted table): rows in order X_0..X_{n-1}, Z_0..Z_{n-1}; within a row
// the bits x_0..x_{n-1}, z_0..z_{n-1}, sign; bits packed MSB-first, final
// byte zero-padded.
package clifford
