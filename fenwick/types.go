// Package fenwick defines the sentinel errors shared by the Fenwick tree
// variants. All operations return these sentinels; tests and callers match
// them with errors.Is. No operation panics on caller-triggered conditions.
package fenwick

import "errors"

// Sentinel errors for fenwick operations.
var (
	// ErrNegativeSize indicates a constructor was asked for n < 0 slots.
	ErrNegativeSize = errors.New("fenwick: size must be non-negative")

	// ErrIndexOutOfRange indicates an element index outside the tree.
	// Add accepts [0, n); Prefix accepts [-1, n), where -1 denotes the
	// empty prefix.
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")

	// ErrInvalidRange indicates a range fold whose bounds fall outside the
	// sequence or arrive inverted.
	ErrInvalidRange = errors.New("fenwick: invalid range bounds")
)
