// Package sparsetable defines the sentinel errors of the sparse table. All
// operations return these sentinels; callers match with errors.Is. No
// operation panics on caller-triggered conditions.
package sparsetable

import "errors"

// Sentinel errors for sparsetable operations.
var (
	// ErrNegativeSize indicates a constructor was asked for n < 0 elements.
	ErrNegativeSize = errors.New("sparsetable: size must be non-negative")

	// ErrIndexOutOfRange indicates an element index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("sparsetable: index out of range")

	// ErrInvalidRange indicates fold bounds outside the sequence or with
	// l > r.
	ErrInvalidRange = errors.New("sparsetable: invalid range bounds")

	// ErrEmptyRange indicates Accumulate(l, l): the two-window covering
	// argument needs at least one element and no identity fallback exists.
	ErrEmptyRange = errors.New("sparsetable: empty range fold is undefined")

	// ErrStale indicates Accumulate on a table mutated by Set since the
	// last Rebuild; the doubling rows no longer reflect row 0.
	ErrStale = errors.New("sparsetable: table is stale, call Rebuild after Set")
)
