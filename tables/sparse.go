package tables

import (
	"fmt"

	"github.com/qubitkit/clifftab/clifford"
	"github.com/qubitkit/clifftab/enum"
)

// SparseCompose builds the generator-restricted composition table of a
// large group as a CSR matrix: for every row index i and every distinct
// generator index g in gens, entry (i, g) holds the index of
// (element_i then element_g). Columns outside gens are left unpopulated;
// composing two arbitrary indices is the caller's job, done by decomposing
// the right-hand operand into generators and chaining lookups.
//
// No full-row bijection check is possible on a partial row; the builder
// instead relies on the index resolution itself — every stored entry comes
// from a successful Resolve and therefore lies in [0, N).
//
// Callers must Validate the generator map against the published constant
// before invoking this builder.
// Complexity: O(N·G) compositions; memory O(N·G) entries.
func SparseCompose(ix *enum.Index, gens GeneratorMap, opts ...Option) (*CSR, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	if len(gens) == 0 {
		return nil, ErrEmptyGenerators
	}
	o := gatherOptions(opts)
	n := ix.Size()
	cols := gens.Indices()

	// Every row carries the same column set, so the row extents are
	// arithmetic and the backing slices can be allocated up front.
	m := &CSR{
		Rows:    n,
		Cols:    n,
		Indptr:  make([]int64, n+1),
		Indices: make([]int32, 0, n*len(cols)),
		Data:    make([]int32, 0, n*len(cols)),
	}

	// Resolve the generator elements once; the inner loop reuses them.
	gelems := make([]*clifford.Element, len(cols))
	for c, g := range cols {
		e, err := ix.Element(int(g))
		if err != nil {
			return nil, fmt.Errorf("tables: sparse generator column %d: %w", g, err)
		}
		gelems[c] = e
	}

	for i := 0; i < n; i++ {
		lhs, err := ix.Element(i)
		if err != nil {
			return nil, fmt.Errorf("tables: sparse row %d: %w", i, err)
		}
		for c, g := range cols {
			prod, err := clifford.Compose(lhs, gelems[c])
			if err != nil {
				return nil, fmt.Errorf("tables: sparse (%d,%d): %w", i, g, err)
			}
			idx, err := ix.Resolve(prod)
			if err != nil {
				return nil, fmt.Errorf("tables: sparse (%d,%d): %w", i, g, err)
			}
			m.Indices = append(m.Indices, g)
			m.Data = append(m.Data, int32(idx))
		}
		m.Indptr[i+1] = int64(len(m.Data))
		o.step(i+1, n)
	}

	return m, nil
}
