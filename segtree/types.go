// Package segtree defines the sentinel errors of the segment tree. All
// operations return these sentinels; callers match with errors.Is. No
// operation panics on caller-triggered conditions.
package segtree

import "errors"

// Sentinel errors for segtree operations.
var (
	// ErrNegativeSize indicates a constructor was asked for n < 0 elements.
	ErrNegativeSize = errors.New("segtree: size must be non-negative")

	// ErrIndexOutOfRange indicates an element index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrInvalidRange indicates fold bounds violating 0 <= l <= r <= Len().
	ErrInvalidRange = errors.New("segtree: invalid range bounds")
)
