// Package clifford: core Element type and tableau row representation.
package clifford

import "math/bits"

// Group sizes of the two supported Clifford groups.
const (
	// NumClifford1Q is the order of the 1-qubit Clifford group.
	NumClifford1Q = 24
	// NumClifford2Q is the order of the 2-qubit Clifford group.
	NumClifford2Q = 11520
)

// row is the conjugation image of one tableau generator: a Hermitian Pauli
// recorded as x/z qubit bitmasks plus a sign bit (neg ⇒ −P).
type row struct {
	x, z uint16
	neg  bool
}

// phaseExp returns the i-exponent (mod 4) of the row's operator written in
// the X^x·Z^z normal form: i^(2·neg + |x∧z|)·X^x·Z^z.
func (r row) phaseExp() int {
	e := bits.OnesCount16(r.x & r.z)
	if r.neg {
		e += 2
	}

	return e % 4
}

// Element is an n-qubit Clifford operator in symplectic tableau form.
// rows[k] is the image of X_k and rows[n+k] the image of Z_k under
// conjugation. Elements are immutable: Compose, Adjoint and Apply return
// fresh values and never mutate their receivers or arguments.
type Element struct {
	qubits int
	rows   []row
}

// Identity returns the identity Element on n qubits.
// Complexity: O(n).
func Identity(n int) *Element {
	e := &Element{qubits: n, rows: make([]row, 2*n)}
	for k := 0; k < n; k++ {
		e.rows[k] = row{x: 1 << k}     // X_k → X_k
		e.rows[n+k] = row{z: 1 << k}   // Z_k → Z_k
	}

	return e
}

// Qubits reports the number of qubits the Element acts on.
// Complexity: O(1).
func (e *Element) Qubits() int { return e.qubits }

// Clone returns an independent deep copy of the Element.
// Complexity: O(n).
func (e *Element) Clone() *Element {
	cp := &Element{qubits: e.qubits, rows: make([]row, len(e.rows))}
	copy(cp.rows, e.rows)

	return cp
}

// Equal reports whether two Elements denote the same group element.
// Complexity: O(n).
func (e *Element) Equal(other *Element) bool {
	if e.qubits != other.qubits {
		return false
	}
	for i := range e.rows {
		if e.rows[i] != other.rows[i] {
			return false
		}
	}

	return true
}

// IsIdentity reports whether the Element is the group identity.
// Complexity: O(n).
func (e *Element) IsIdentity() bool {
	return e.Equal(Identity(e.qubits))
}
