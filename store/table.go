package store

import (
	"math"

	"github.com/pkg/errors"

	"github.com/qubitkit/clifftab/tables"
)

// CSR sibling file suffixes, appended to the caller's base path.
const (
	csrIndptr  = ".indptr.npy"
	csrIndices = ".indices.npy"
	csrData    = ".data.npy"
	csrShape   = ".shape.npy"
)

//----------------------------------------------------------------------------//
// Dense Table I/O
//----------------------------------------------------------------------------//

// WriteDense persists a dense table as its row-major backing array and
// returns the file name written. The square shape is implicit in the
// length; readers recover it.
// Complexity: O(N²).
func WriteDense(path string, d *tables.Dense, opts ...Option) (string, error) {
	return WriteInt32(path, d.Data(), opts...)
}

// ReadDense loads a dense table written by WriteDense. Returns ErrBadShape
// when the array length is not a perfect square.
// Complexity: O(N²).
func ReadDense(path string) (*tables.Dense, error) {
	data, err := ReadInt32(path)
	if err != nil {
		return nil, err
	}
	n := int(math.Sqrt(float64(len(data))))
	if n*n != len(data) {
		return nil, errors.Wrapf(ErrBadShape, "store: %d entries are not square", len(data))
	}
	d, err := tables.DenseFrom(n, data)
	if err != nil {
		return nil, errors.Wrap(err, "store: dense")
	}

	return d, nil
}

//----------------------------------------------------------------------------//
// CSR Table I/O
//----------------------------------------------------------------------------//

// WriteCSR persists a sparse table as four sibling ".npy" files sharing
// base: row pointer, column indices, values and the logical shape. Returns
// the file names written, in that order.
// Complexity: O(NNZ).
func WriteCSR(base string, m *tables.CSR, opts ...Option) ([]string, error) {
	if base == "" {
		return nil, ErrEmptyPath
	}

	written := make([]string, 0, 4)
	p, err := WriteInt64(base+csrIndptr, m.Indptr, opts...)
	if err != nil {
		return nil, err
	}
	written = append(written, p)

	p, err = WriteInt32(base+csrIndices, m.Indices, opts...)
	if err != nil {
		return nil, err
	}
	written = append(written, p)

	p, err = WriteInt32(base+csrData, m.Data, opts...)
	if err != nil {
		return nil, err
	}
	written = append(written, p)

	p, err = WriteInt64(base+csrShape, []int64{int64(m.Rows), int64(m.Cols)}, opts...)
	if err != nil {
		return nil, err
	}
	written = append(written, p)

	return written, nil
}

// ReadCSR loads a sparse table written by WriteCSR. Each sibling may be
// plain or ".sz"-compressed independently; both spellings are probed.
// Returns ErrBadShape when the siblings disagree.
// Complexity: O(NNZ).
func ReadCSR(base string) (*tables.CSR, error) {
	if base == "" {
		return nil, ErrEmptyPath
	}

	indptr, err := readInt64Probe(base + csrIndptr)
	if err != nil {
		return nil, err
	}
	indices, err := readInt32Probe(base + csrIndices)
	if err != nil {
		return nil, err
	}
	data, err := readInt32Probe(base + csrData)
	if err != nil {
		return nil, err
	}
	shape, err := readInt64Probe(base + csrShape)
	if err != nil {
		return nil, err
	}

	if len(shape) != 2 {
		return nil, errors.Wrapf(ErrBadShape, "store: shape rank %d", len(shape))
	}
	rows, cols := int(shape[0]), int(shape[1])
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "store: negative shape %dx%d", rows, cols)
	}
	if len(indptr) != rows+1 {
		return nil, errors.Wrapf(ErrBadShape, "store: indptr length %d for %d rows", len(indptr), rows)
	}
	if len(indices) != len(data) {
		return nil, errors.Wrapf(ErrBadShape, "store: %d indices vs %d values", len(indices), len(data))
	}
	if nnz := indptr[rows]; nnz != int64(len(data)) {
		return nil, errors.Wrapf(ErrBadShape, "store: indptr claims %d entries, found %d", nnz, len(data))
	}

	return &tables.CSR{
		Rows:    rows,
		Cols:    cols,
		Indptr:  indptr,
		Indices: indices,
		Data:    data,
	}, nil
}

// readInt32Probe reads path, falling back to the ".sz" spelling.
func readInt32Probe(path string) ([]int32, error) {
	data, err := ReadInt32(path)
	if err == nil {
		return data, nil
	}
	if sz, szErr := ReadInt32(path + snappySuffix); szErr == nil {
		return sz, nil
	}

	return nil, err
}

// readInt64Probe reads path, falling back to the ".sz" spelling.
func readInt64Probe(path string) ([]int64, error) {
	data, err := ReadInt64(path)
	if err == nil {
		return data, nil
	}
	if sz, szErr := ReadInt64(path + snappySuffix); szErr == nil {
		return sz, nil
	}

	return nil, err
}
