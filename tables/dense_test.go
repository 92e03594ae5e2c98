package tables_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubitkit/clifftab/clifford"
	"github.com/qubitkit/clifftab/tables"
)

//----------------------------------------------------------------------------//
// Dense Composition Table Tests
//----------------------------------------------------------------------------//

// TestDenseCompose_NilIndex verifies the nil-index sentinel.
func TestDenseCompose_NilIndex(t *testing.T) {
	if _, err := tables.DenseCompose(nil); !errors.Is(err, tables.ErrNilIndex) {
		t.Errorf("DenseCompose(nil) error = %v; want ErrNilIndex", err)
	}
}

// TestDenseCompose_Shape verifies the 1-qubit table spans exactly 24×24.
func TestDenseCompose_Shape(t *testing.T) {
	table, err := tables.DenseCompose(index1Q(t))
	require.NoError(t, err)
	assert.Equal(t, clifford.NumClifford1Q, table.Size())
	assert.Len(t, table.Data(), clifford.NumClifford1Q*clifford.NumClifford1Q)
}

// TestDenseCompose_IdentityLaws verifies the left and right identity laws:
// row 0 and column 0 are both the identity permutation.
func TestDenseCompose_IdentityLaws(t *testing.T) {
	table, err := tables.DenseCompose(index1Q(t))
	require.NoError(t, err)

	for j := 0; j < table.Size(); j++ {
		got, err := table.At(0, j)
		require.NoError(t, err)
		assert.Equal(t, int32(j), got, "identity∘%d must be %d", j, j)
	}
	for i := 0; i < table.Size(); i++ {
		got, err := table.At(i, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(i), got, "%d∘identity must be %d", i, i)
	}
}

// TestDenseCompose_RowsPermute verifies every row is a permutation of
// [0, 24) — the closure-and-totality invariant the builder also enforces.
func TestDenseCompose_RowsPermute(t *testing.T) {
	table, err := tables.DenseCompose(index1Q(t))
	require.NoError(t, err)

	for i := 0; i < table.Size(); i++ {
		row, err := table.Row(i)
		require.NoError(t, err)
		seen := make(map[int32]bool, len(row))
		for _, v := range row {
			assert.False(t, seen[v], "row %d repeats value %d", i, v)
			seen[v] = true
		}
		assert.Len(t, seen, table.Size(), "row %d must cover the index range", i)
	}
}

// TestDenseCompose_KnownProducts pins hand-checked products under the
// fixed numbering: h·h = id, h·s = element 5, x·z = y.
func TestDenseCompose_KnownProducts(t *testing.T) {
	table, err := tables.DenseCompose(index1Q(t))
	require.NoError(t, err)

	cases := []struct {
		name    string
		i, j    int
		product int32
	}{
		{"HH", 1, 1, 0},
		{"HS", 1, 4, 5},
		{"XZ", 6, 18, 12},
		{"SSdg", 4, 22, 0},
		{"SxdgSx", 2, 8, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := table.At(tc.i, tc.j)
			require.NoError(t, err)
			assert.Equal(t, tc.product, got, "table[%d][%d]", tc.i, tc.j)
		})
	}
}

// TestDenseCompose_Associativity spot-checks the group law through pure
// table lookups on random triples with a fixed seed.
func TestDenseCompose_Associativity(t *testing.T) {
	table, err := tables.DenseCompose(index1Q(t))
	require.NoError(t, err)

	at := func(i, j int32) int32 {
		v, err := table.At(int(i), int(j))
		require.NoError(t, err)
		return v
	}
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		i := int32(rng.Intn(table.Size()))
		j := int32(rng.Intn(table.Size()))
		k := int32(rng.Intn(table.Size()))
		assert.Equal(t, at(at(i, j), k), at(i, at(j, k)), "(%d∘%d)∘%d vs %d∘(%d∘%d)", i, j, k, i, j, k)
	}
}

// TestDenseCompose_Progress verifies the per-row progress callback fires
// once per row with the final call at (N, N).
func TestDenseCompose_Progress(t *testing.T) {
	var calls, lastDone, lastTotal int
	_, err := tables.DenseCompose(index1Q(t), tables.WithProgress(func(done, total int) {
		calls++
		lastDone, lastTotal = done, total
	}))
	require.NoError(t, err)
	assert.Equal(t, clifford.NumClifford1Q, calls)
	assert.Equal(t, clifford.NumClifford1Q, lastDone)
	assert.Equal(t, clifford.NumClifford1Q, lastTotal)
}

// TestDense_AtBounds verifies accessor bounds checks.
func TestDense_AtBounds(t *testing.T) {
	table := tables.NewDense(2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := table.At(ij[0], ij[1]); !errors.Is(err, tables.ErrOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrOutOfRange", ij[0], ij[1], err)
		}
	}
	if _, err := table.Row(2); !errors.Is(err, tables.ErrOutOfRange) {
		t.Errorf("Row(2) error = %v; want ErrOutOfRange", err)
	}
}
