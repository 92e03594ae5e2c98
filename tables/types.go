// Package tables: table value types shared by builders, persistence and the
// consuming runtime.
package tables

import (
	"fmt"
	"sort"
)

// Dense is a square row-major matrix of group indices, the storage form of
// the small-group composition table. data holds n*n int32 entries.
type Dense struct {
	n    int
	data []int32
}

// NewDense allocates an n×n zeroed Dense table.
// Complexity: O(n²).
func NewDense(n int) *Dense {
	return &Dense{n: n, data: make([]int32, n*n)}
}

// DenseFrom wraps a row-major backing slice of n*n entries, taking
// ownership of it. Returns ErrOutOfRange when the length does not match.
// Complexity: O(1).
func DenseFrom(n int, data []int32) (*Dense, error) {
	if n < 0 || len(data) != n*n {
		return nil, fmt.Errorf("tables: DenseFrom(%d) with %d entries: %w", n, len(data), ErrOutOfRange)
	}

	return &Dense{n: n, data: data}, nil
}

// Size returns the axis length N.
// Complexity: O(1).
func (d *Dense) Size() int { return d.n }

// Data exposes the row-major backing slice for persistence. Callers must
// treat it as read-only.
// Complexity: O(1).
func (d *Dense) Data() []int32 { return d.data }

// At returns entry (i, j). Returns ErrOutOfRange on a bounds miss.
// Complexity: O(1).
func (d *Dense) At(i, j int) (int32, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("tables: Dense.At(%d,%d) of %d: %w", i, j, d.n, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Row returns row i of the table as a read-only slice.
// Complexity: O(1).
func (d *Dense) Row(i int) ([]int32, error) {
	if i < 0 || i >= d.n {
		return nil, fmt.Errorf("tables: Dense.Row(%d) of %d: %w", i, d.n, ErrOutOfRange)
	}

	return d.data[i*d.n : (i+1)*d.n], nil
}

// CSR is a compressed-sparse-row matrix of group indices: the storage form
// of the large-group composition table, populated only at generator
// columns. Indptr has Rows+1 entries; Indices and Data run in parallel and
// are column-sorted within each row. Explicit zero products are stored —
// entry presence is positional, not value-driven.
type CSR struct {
	Rows, Cols int
	Indptr     []int64
	Indices    []int32
	Data       []int32
}

// At returns the entry at (row, col) and whether that position is
// populated. Returns ErrOutOfRange for a bounds miss on the logical shape.
// Complexity: O(log G) in the row's population.
func (m *CSR) At(row, col int) (int32, bool, error) {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return 0, false, fmt.Errorf("tables: CSR.At(%d,%d) of %dx%d: %w", row, col, m.Rows, m.Cols, ErrOutOfRange)
	}
	lo, hi := int(m.Indptr[row]), int(m.Indptr[row+1])
	seg := m.Indices[lo:hi]
	at := sort.Search(len(seg), func(i int) bool { return seg[i] >= int32(col) })
	if at == len(seg) || seg[at] != int32(col) {
		return 0, false, nil
	}

	return m.Data[lo+at], true, nil
}

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.Data) }
