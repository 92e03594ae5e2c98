package tables

import (
	"fmt"

	"github.com/qubitkit/clifftab/clifford"
	"github.com/qubitkit/clifftab/enum"
)

// DenseCompose builds the full N×N composition table of a group small
// enough to store densely: entry (i, j) is the index of
// (element_i then element_j).
//
// After each row is filled it is validated as a permutation of [0, N):
// composition by a fixed left operand permutes the group, so a repeat or a
// gap means the enumeration or the algebra is broken, and the build aborts
// with ErrBijectionViolated.
//
// Intended for the 24-element group only; the 11520-element group must go
// through SparseCompose instead.
// Complexity: O(N²) compositions.
func DenseCompose(ix *enum.Index, opts ...Option) (*Dense, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	o := gatherOptions(opts)
	n := ix.Size()
	table := NewDense(n)
	for i := 0; i < n; i++ {
		lhs, err := ix.Element(i)
		if err != nil {
			return nil, fmt.Errorf("tables: compose row %d: %w", i, err)
		}
		row := table.data[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			rhs, err := ix.Element(j)
			if err != nil {
				return nil, fmt.Errorf("tables: compose col %d: %w", j, err)
			}
			prod, err := clifford.Compose(lhs, rhs)
			if err != nil {
				return nil, fmt.Errorf("tables: compose (%d,%d): %w", i, j, err)
			}
			idx, err := ix.Resolve(prod)
			if err != nil {
				return nil, fmt.Errorf("tables: compose (%d,%d): %w", i, j, err)
			}
			row[j] = int32(idx)
		}
		if err := checkPermutation(row); err != nil {
			return nil, fmt.Errorf("tables: compose row %d: %w", i, err)
		}
		o.step(i+1, n)
	}

	return table, nil
}
