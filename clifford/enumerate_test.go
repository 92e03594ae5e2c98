package clifford_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubitkit/clifftab/clifford"
)

//----------------------------------------------------------------------------//
// Enumerator Tests
//----------------------------------------------------------------------------//

// TestElement1Q_Bijection verifies the 1-qubit enumerator yields 24 pairwise
// distinct elements.
func TestElement1Q_Bijection(t *testing.T) {
	seen := make(map[clifford.Key]int, clifford.NumClifford1Q)
	for num := 0; num < clifford.NumClifford1Q; num++ {
		e, err := clifford.Element1Q(num)
		require.NoError(t, err, "Element1Q(%d)", num)
		k := e.Key()
		if prev, dup := seen[k]; dup {
			t.Fatalf("elements %d and %d share a canonical key", prev, num)
		}
		seen[k] = num
	}
	assert.Len(t, seen, clifford.NumClifford1Q)
}

// TestElement2Q_Bijection verifies the 2-qubit enumerator yields 11520
// pairwise distinct elements — the heavyweight coverage guarantee every
// table build depends on.
func TestElement2Q_Bijection(t *testing.T) {
	seen := make(map[clifford.Key]int, clifford.NumClifford2Q)
	for num := 0; num < clifford.NumClifford2Q; num++ {
		e, err := clifford.Element2Q(num)
		require.NoError(t, err, "Element2Q(%d)", num)
		k := e.Key()
		if prev, dup := seen[k]; dup {
			t.Fatalf("elements %d and %d share a canonical key", prev, num)
		}
		seen[k] = num
	}
	assert.Len(t, seen, clifford.NumClifford2Q)
}

// TestElement_RangeErrors verifies out-of-range numbers are rejected with
// ErrElementNumber.
func TestElement_RangeErrors(t *testing.T) {
	for _, num := range []int{-1, clifford.NumClifford1Q} {
		if _, err := clifford.Element1Q(num); !errors.Is(err, clifford.ErrElementNumber) {
			t.Errorf("Element1Q(%d) error = %v; want ErrElementNumber", num, err)
		}
	}
	for _, num := range []int{-1, clifford.NumClifford2Q} {
		if _, err := clifford.Element2Q(num); !errors.Is(err, clifford.ErrElementNumber) {
			t.Errorf("Element2Q(%d) error = %v; want ErrElementNumber", num, err)
		}
	}
}

// TestElement1Q_KnownCircuits pins the enumeration convention: low numbers
// decode to known single-gate circuits.
func TestElement1Q_KnownCircuits(t *testing.T) {
	cases := []struct {
		num    int
		gate   clifford.Gate
	}{
		{0, clifford.GateI},
		{1, clifford.GateH},
		{2, clifford.GateSXdg},
		{4, clifford.GateS},
		{6, clifford.GateX},
		{8, clifford.GateSX},
		{12, clifford.GateY},
		{18, clifford.GateZ},
		{22, clifford.GateSdg},
	}
	for _, tc := range cases {
		e, err := clifford.Element1Q(tc.num)
		require.NoError(t, err, "Element1Q(%d)", tc.num)
		want := mustGate(t, 1, tc.gate, 0)
		assert.Equal(t, want.Key(), e.Key(), "element %d must decode to gate %q", tc.num, tc.gate)
	}
}

// TestElement1Q_LayeredCircuit checks a two-layer decode: number 5 is the
// circuit h,s.
func TestElement1Q_LayeredCircuit(t *testing.T) {
	e, err := clifford.Element1Q(5)
	require.NoError(t, err)
	h := mustGate(t, 1, clifford.GateH, 0)
	s := mustGate(t, 1, clifford.GateS, 0)
	assert.Equal(t, mustCompose(t, h, s).Key(), e.Key(), "element 5 must decode to circuit h,s")
}

// TestElement2Q_BlockBoundaries pins the entangler-block layout of the
// 2-qubit enumeration: block starts decode to bare entangler circuits.
func TestElement2Q_BlockBoundaries(t *testing.T) {
	// Block 0 starts at the identity.
	e0, err := clifford.Element2Q(0)
	require.NoError(t, err)
	assert.True(t, e0.IsIdentity(), "element 0 must be the identity")

	// Block 1 starts at the bare cx(0,1).
	e576, err := clifford.Element2Q(576)
	require.NoError(t, err)
	cx := mustGate(t, 2, clifford.GateCX, 0, 1)
	assert.Equal(t, cx.Key(), e576.Key(), "element 576 must be cx(0,1)")

	// Block 2 starts at cx(0,1)·cx(1,0).
	e5760, err := clifford.Element2Q(5760)
	require.NoError(t, err)
	cxr := mustGate(t, 2, clifford.GateCX, 1, 0)
	assert.Equal(t, mustCompose(t, cx, cxr).Key(), e5760.Key(), "element 5760 must be cx,cxr")

	// Block 3 starts at the swap.
	e10944, err := clifford.Element2Q(10944)
	require.NoError(t, err)
	swap := mustCompose(t, mustCompose(t, cx, cxr), cx)
	assert.Equal(t, swap.Key(), e10944.Key(), "element 10944 must be the swap")
}

// TestElement2Q_SingleGateNumbers pins the form-0 digit placement: each
// single-qubit generator on either qubit decodes at its published number.
func TestElement2Q_SingleGateNumbers(t *testing.T) {
	cases := []struct {
		num   int
		gate  clifford.Gate
		qubit int
	}{
		{1, clifford.GateH, 0},
		{2, clifford.GateH, 1},
		{4, clifford.GateSXdg, 0},
		{12, clifford.GateSXdg, 1},
		{8, clifford.GateS, 0},
		{24, clifford.GateS, 1},
		{36, clifford.GateX, 0},
		{144, clifford.GateX, 1},
		{72, clifford.GateY, 0},
		{288, clifford.GateY, 1},
		{108, clifford.GateZ, 0},
		{432, clifford.GateZ, 1},
		{40, clifford.GateSX, 0},
		{156, clifford.GateSX, 1},
		{116, clifford.GateSdg, 0},
		{456, clifford.GateSdg, 1},
	}
	for _, tc := range cases {
		e, err := clifford.Element2Q(tc.num)
		require.NoError(t, err, "Element2Q(%d)", tc.num)
		want := mustGate(t, 2, tc.gate, tc.qubit)
		assert.Equal(t, want.Key(), e.Key(), "element %d must decode to %q on qubit %d", tc.num, tc.gate, tc.qubit)
	}
}

// TestElement2Q_Entanglers pins the numbers of the entangling generators
// inside block 1: the reversed cx and the symmetric cz.
func TestElement2Q_Entanglers(t *testing.T) {
	e851, err := clifford.Element2Q(851)
	require.NoError(t, err)
	cxr := mustGate(t, 2, clifford.GateCX, 1, 0)
	assert.Equal(t, cxr.Key(), e851.Key(), "element 851 must be cx(1,0)")

	e806, err := clifford.Element2Q(806)
	require.NoError(t, err)
	cz := mustGate(t, 2, clifford.GateCZ, 0, 1)
	assert.Equal(t, cz.Key(), e806.Key(), "element 806 must be cz")
}
