package store

import "errors"

var (
	// ErrEmptyPath is returned when a writer or reader receives an empty
	// file path.
	ErrEmptyPath = errors.New("store: empty path")

	// ErrBadShape is returned when persisted data is internally
	// inconsistent: a dense array whose length is not a perfect square, or
	// CSR siblings whose lengths disagree with the stored shape.
	ErrBadShape = errors.New("store: inconsistent shape")
)
