package clifford

import "fmt"

// Gate names an elementary Clifford operation. The single-qubit set matches
// the circuit layers used by the enumerators; CX and CZ are the two-qubit
// entanglers. V and W are the axis-cycling gates v = (sdg·h) and w = (h·s)
// used in the post-entangler layer of the 2-qubit decomposition.
type Gate string

// Supported gates.
const (
	GateI    Gate = "id"
	GateH    Gate = "h"
	GateS    Gate = "s"
	GateSdg  Gate = "sdg"
	GateX    Gate = "x"
	GateY    Gate = "y"
	GateZ    Gate = "z"
	GateSX   Gate = "sx"
	GateSXdg Gate = "sxdg"
	GateV    Gate = "v"
	GateW    Gate = "w"
	GateCX   Gate = "cx"
	GateCZ   Gate = "cz"
)

// OneQubitGates lists the single-qubit generator gates in the fixed order
// used when rebuilding generator maps. The order is part of the determinism
// contract and must not be reshuffled.
var OneQubitGates = []Gate{
	GateI, GateH, GateSXdg, GateS, GateX, GateSX, GateY, GateZ, GateSdg,
}

// TwoQubitGates lists the two-qubit generator gates in fixed order.
var TwoQubitGates = []Gate{GateCX, GateCZ}

// NewGate returns the n-qubit Element implementing gate g on the given
// qubit(s): one qubit argument for single-qubit gates, (control, target)
// resp. (a, b) for CX and CZ.
//
// Returns ErrUnknownGate for names outside the supported set and
// ErrGateQubits for wrong arity, out-of-range or repeated qubits.
// Complexity: O(n).
func NewGate(n int, g Gate, qubits ...int) (*Element, error) {
	for _, q := range qubits {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("clifford: gate %q qubit %d on %d qubits: %w", g, q, n, ErrGateQubits)
		}
	}
	e := Identity(n)
	switch g {
	case GateCX, GateCZ:
		if len(qubits) != 2 || qubits[0] == qubits[1] {
			return nil, fmt.Errorf("clifford: gate %q wants two distinct qubits: %w", g, ErrGateQubits)
		}
		a, b := qubits[0], qubits[1]
		ma, mb := uint16(1)<<a, uint16(1)<<b
		if g == GateCX {
			e.rows[a] = row{x: ma | mb}     // X_c → X_c·X_t
			e.rows[n+b] = row{z: ma | mb}   // Z_t → Z_c·Z_t
		} else {
			e.rows[a] = row{x: ma, z: mb}   // X_a → X_a·Z_b
			e.rows[b] = row{x: mb, z: ma}   // X_b → Z_a·X_b
		}
	default:
		if len(qubits) != 1 {
			return nil, fmt.Errorf("clifford: gate %q wants one qubit: %w", g, ErrGateQubits)
		}
		q := qubits[0]
		m := uint16(1) << q
		xr, zr := &e.rows[q], &e.rows[n+q]
		switch g {
		case GateI:
			// identity rows already in place
		case GateH:
			*xr = row{z: m}
			*zr = row{x: m}
		case GateS:
			*xr = row{x: m, z: m}
		case GateSdg:
			*xr = row{x: m, z: m, neg: true}
		case GateX:
			zr.neg = true
		case GateY:
			xr.neg = true
			zr.neg = true
		case GateZ:
			xr.neg = true
		case GateSX:
			*zr = row{x: m, z: m, neg: true}
		case GateSXdg:
			*zr = row{x: m, z: m}
		case GateV:
			*xr = row{x: m, z: m}
			*zr = row{x: m}
		case GateW:
			*xr = row{z: m}
			*zr = row{x: m, z: m}
		default:
			return nil, fmt.Errorf("clifford: gate %q: %w", g, ErrUnknownGate)
		}
	}

	return e, nil
}

// Apply returns the Element extended by gate g in circuit order: the result
// acts as "e, then g". The receiver is not mutated.
// Complexity: one NewGate plus one Compose.
func (e *Element) Apply(g Gate, qubits ...int) (*Element, error) {
	ge, err := NewGate(e.qubits, g, qubits...)
	if err != nil {
		return nil, err
	}

	return Compose(e, ge)
}

// mustApply is the internal variant for enumerators, whose gate sequences
// are static and known valid.
func (e *Element) mustApply(g Gate, qubits ...int) *Element {
	out, err := e.Apply(g, qubits...)
	if err != nil {
		panic(fmt.Sprintf("clifford: static circuit rejected: %v", err))
	}

	return out
}
