package tables

import (
	"fmt"

	"github.com/qubitkit/clifftab/enum"
)

// Inverse builds the inversion table of a group: entry i holds the index of
// element_i⁻¹. The result is validated as a permutation of [0, N) — the
// array being a bijection is exactly the group's inversion law, and any
// violation aborts with ErrBijectionViolated.
//
// Complexity: O(N) adjoints and lookups.
func Inverse(ix *enum.Index, opts ...Option) ([]int32, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	o := gatherOptions(opts)
	n := ix.Size()
	inv := make([]int32, n)
	for i := 0; i < n; i++ {
		e, err := ix.Element(i)
		if err != nil {
			return nil, fmt.Errorf("tables: inverse row %d: %w", i, err)
		}
		j, err := ix.Resolve(e.Adjoint())
		if err != nil {
			return nil, fmt.Errorf("tables: inverse of element %d: %w", i, err)
		}
		inv[i] = int32(j)
		o.step(i+1, n)
	}
	if err := checkPermutation(inv); err != nil {
		return nil, fmt.Errorf("tables: inverse table: %w", err)
	}

	return inv, nil
}

// checkPermutation verifies that vals, viewed as a set, equals [0, N).
func checkPermutation(vals []int32) error {
	seen := make([]bool, len(vals))
	for _, v := range vals {
		if v < 0 || int(v) >= len(vals) {
			return fmt.Errorf("value %d outside [0,%d): %w", v, len(vals), ErrBijectionViolated)
		}
		if seen[v] {
			return fmt.Errorf("value %d repeated: %w", v, ErrBijectionViolated)
		}
		seen[v] = true
	}

	return nil
}
