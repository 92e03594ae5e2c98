package enum

import (
	"errors"
	"fmt"

	"github.com/qubitkit/clifftab/clifford"
)

// Sentinel errors for enumeration-index construction and lookups.
var (
	// ErrKeyCollision indicates two distinct enumeration indices share one
	// canonical key; the enumerator's exactly-once coverage is broken and
	// generation must abort.
	ErrKeyCollision = errors.New("enum: canonical key collision")
	// ErrBadSize indicates a non-positive group size.
	ErrBadSize = errors.New("enum: group size must be > 0")
	// ErrNilEnumerator indicates a nil element enumerator.
	ErrNilEnumerator = errors.New("enum: nil enumerator")
	// ErrIndexRange indicates an element index outside [0, Size).
	ErrIndexRange = errors.New("enum: index out of range")
	// ErrUnknownKey indicates a canonical key absent from the index.
	ErrUnknownKey = errors.New("enum: unknown canonical key")
)

// ElementAt yields the i-th group element of an enumeration that covers the
// group exactly once for i in [0, size).
type ElementAt func(i int) (*clifford.Element, error)

// Index is the frozen element↔integer bijection for one group. It is built
// once and treated as read-only by every consumer.
type Index struct {
	elems []*clifford.Element
	byKey map[clifford.Key]int
}

// Build constructs the bijection for a group of the given size.
// Stage 1 (Validate): size and enumerator sanity.
// Stage 2 (Enumerate): cache each element and insert its canonical key.
// Stage 3 (Verify): any duplicate key aborts with ErrKeyCollision.
// Complexity: O(size) enumerator calls, O(size) memory.
func Build(size int, at ElementAt) (*Index, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if at == nil {
		return nil, ErrNilEnumerator
	}
	ix := &Index{
		elems: make([]*clifford.Element, size),
		byKey: make(map[clifford.Key]int, size),
	}
	for i := 0; i < size; i++ {
		e, err := at(i)
		if err != nil {
			return nil, fmt.Errorf("enum: element %d: %w", i, err)
		}
		k := e.Key()
		if prev, dup := ix.byKey[k]; dup {
			return nil, fmt.Errorf("enum: indices %d and %d: %w", prev, i, ErrKeyCollision)
		}
		ix.elems[i] = e
		ix.byKey[k] = i
	}

	return ix, nil
}

// Clifford1Q builds the enumeration index of the 1-qubit Clifford group.
func Clifford1Q() (*Index, error) {
	return Build(clifford.NumClifford1Q, clifford.Element1Q)
}

// Clifford2Q builds the enumeration index of the 2-qubit Clifford group.
func Clifford2Q() (*Index, error) {
	return Build(clifford.NumClifford2Q, clifford.Element2Q)
}

// Size returns the group order N.
// Complexity: O(1).
func (ix *Index) Size() int { return len(ix.elems) }

// Element returns the cached element for index i.
// Returns ErrIndexRange for i outside [0, Size).
// Complexity: O(1).
func (ix *Index) Element(i int) (*clifford.Element, error) {
	if i < 0 || i >= len(ix.elems) {
		return nil, fmt.Errorf("enum: element %d of %d: %w", i, len(ix.elems), ErrIndexRange)
	}

	return ix.elems[i], nil
}

// Lookup maps a canonical key back to its index.
// Returns ErrUnknownKey when the key does not belong to the group.
// Complexity: O(1).
func (ix *Index) Lookup(k clifford.Key) (int, error) {
	i, ok := ix.byKey[k]
	if !ok {
		return 0, ErrUnknownKey
	}

	return i, nil
}

// Resolve canonicalizes an element and looks its index up.
// Complexity: O(1) beyond the key packing.
func (ix *Index) Resolve(e *clifford.Element) (int, error) {
	return ix.Lookup(e.Key())
}
