package clifford

import "fmt"

// Mixed-radix signatures of the layered-circuit decompositions. A number is
// unpacked little-endian: the first radix is the fastest-varying digit.
//
// 1-qubit: (i, j, p) over (2, 3, 4) — H layer, SXdg/S layer, Pauli layer.
//
// 2-qubit: four blocks keyed by entangler pattern (none, CX, CX·CXr, SWAP);
// the two middle blocks carry an extra V/W layer after the entangler:
//
//	block 0: (i0,i1,j0,j1,p0,p1)        over (2,2,3,3,4,4)  →  576 elements
//	block 1: (i0,i1,j0,j1,k0,k1,p0,p1)  over (2,2,3,3,3,3,4,4) → 5184
//	block 2: (i0,i1,j0,j1,k0,k1,p0,p1)  over (2,2,3,3,3,3,4,4) → 5184
//	block 3: (i0,i1,j0,j1,p0,p1)        over (2,2,3,3,4,4)  →  576
//
// 576 + 5184 + 5184 + 576 = 11520.
var (
	sig1Q  = []int{2, 3, 4}
	sigs2Q = [][]int{
		{2, 2, 3, 3, 4, 4},
		{2, 2, 3, 3, 3, 3, 4, 4},
		{2, 2, 3, 3, 3, 3, 4, 4},
		{2, 2, 3, 3, 4, 4},
	}
)

// unpack decomposes num into little-endian mixed-radix digits over sig.
func unpack(num int, sig []int) []int {
	digits := make([]int, len(sig))
	for i, radix := range sig {
		digits[i] = num % radix
		num /= radix
	}

	return digits
}

// sigSize returns the product of the radices of sig.
func sigSize(sig []int) int {
	size := 1
	for _, radix := range sig {
		size *= radix
	}

	return size
}

// pauliGate maps a Pauli-layer digit to its gate; digit 0 means no gate.
var pauliGate = [4]Gate{GateI, GateX, GateY, GateZ}

// Element1Q returns the num-th element of the 1-qubit Clifford group,
// num ∈ [0, 24). The enumeration covers the group exactly once; callers
// building indices treat a key collision as a fatal construction error.
//
// Circuit: [H]^i, then {–, SXdg, S}[j], then {–, X, Y, Z}[p].
// Complexity: O(1) gate applications.
func Element1Q(num int) (*Element, error) {
	if num < 0 || num >= NumClifford1Q {
		return nil, fmt.Errorf("clifford: 1Q element %d: %w", num, ErrElementNumber)
	}
	d := unpack(num, sig1Q)
	e := Identity(1)
	if d[0] == 1 {
		e = e.mustApply(GateH, 0)
	}
	switch d[1] {
	case 1:
		e = e.mustApply(GateSXdg, 0)
	case 2:
		e = e.mustApply(GateS, 0)
	}
	if d[2] != 0 {
		e = e.mustApply(pauliGate[d[2]], 0)
	}

	return e, nil
}

// Element2Q returns the num-th element of the 2-qubit Clifford group,
// num ∈ [0, 11520).
//
// Circuit per block: H layer on each qubit, SXdg/S layer on each qubit,
// entangler pattern (block 1: cx(0,1); block 2: cx(0,1) cx(1,0);
// block 3: cx(0,1) cx(1,0) cx(0,1) = swap), V/W layer on each qubit for
// blocks 1 and 2 only, Pauli layer on each qubit.
// Complexity: O(1) gate applications.
func Element2Q(num int) (*Element, error) {
	if num < 0 || num >= NumClifford2Q {
		return nil, fmt.Errorf("clifford: 2Q element %d: %w", num, ErrElementNumber)
	}
	block, rest := 0, num
	for sigSize(sigs2Q[block]) <= rest {
		rest -= sigSize(sigs2Q[block])
		block++
	}
	d := unpack(rest, sigs2Q[block])

	i0, i1, j0, j1 := d[0], d[1], d[2], d[3]
	k0, k1, p0, p1 := 0, 0, 0, 0
	if block == 1 || block == 2 {
		k0, k1, p0, p1 = d[4], d[5], d[6], d[7]
	} else {
		p0, p1 = d[4], d[5]
	}

	e := Identity(2)
	if i0 == 1 {
		e = e.mustApply(GateH, 0)
	}
	if i1 == 1 {
		e = e.mustApply(GateH, 1)
	}
	for q, j := range [2]int{j0, j1} {
		switch j {
		case 1:
			e = e.mustApply(GateSXdg, q)
		case 2:
			e = e.mustApply(GateS, q)
		}
	}
	if block >= 1 {
		e = e.mustApply(GateCX, 0, 1)
	}
	if block >= 2 {
		e = e.mustApply(GateCX, 1, 0)
	}
	if block == 3 {
		e = e.mustApply(GateCX, 0, 1)
	}
	for q, k := range [2]int{k0, k1} {
		switch k {
		case 1:
			e = e.mustApply(GateV, q)
		case 2:
			e = e.mustApply(GateW, q)
		}
	}
	for q, p := range [2]int{p0, p1} {
		if p != 0 {
			e = e.mustApply(pauliGate[p], q)
		}
	}

	return e, nil
}
