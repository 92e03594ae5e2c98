package tables

import "errors"

// Sentinel errors for table construction and access. All builders return
// these via errors.Is-matchable wrapping; none panic on caller input.
var (
	// ErrNilIndex indicates a nil enumeration index was supplied.
	ErrNilIndex = errors.New("tables: nil enumeration index")
	// ErrBijectionViolated indicates a composition row or inverse array is
	// not a permutation of [0, N); the group-closure invariant is broken.
	ErrBijectionViolated = errors.New("tables: bijection invariant violated")
	// ErrGeneratorMapDrift indicates the regenerated generator map differs
	// from the published constant; persisted tables no longer match the
	// in-memory numbering.
	ErrGeneratorMapDrift = errors.New("tables: generator map drift")
	// ErrEmptyGenerators indicates an empty generator map was supplied to
	// the sparse builder.
	ErrEmptyGenerators = errors.New("tables: empty generator set")
	// ErrOutOfRange indicates a row or column outside the table bounds.
	ErrOutOfRange = errors.New("tables: index out of range")
)
