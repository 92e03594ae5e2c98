package clifford

import "errors"

// Sentinel errors for clifford operations.
var (
	// ErrQubitMismatch indicates two Elements act on different qubit counts.
	ErrQubitMismatch = errors.New("clifford: qubit count mismatch")
	// ErrElementNumber indicates an enumerator index outside [0, group size).
	ErrElementNumber = errors.New("clifford: element number out of range")
	// ErrUnknownGate indicates a gate name outside the supported set.
	ErrUnknownGate = errors.New("clifford: unknown gate")
	// ErrGateQubits indicates wrong qubit arity, an out-of-range qubit, or a
	// repeated qubit in a two-qubit gate.
	ErrGateQubits = errors.New("clifford: invalid gate qubits")
)
