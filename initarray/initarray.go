// Package initarray: the constant-time-fill array.
package initarray

import "errors"

// Sentinel errors for initarray operations.
var (
	// ErrNegativeSize indicates construction or Resize with n < 0.
	ErrNegativeSize = errors.New("initarray: size must be non-negative")

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("initarray: index out of range")
)

// Array is an initializable array: Set and At behave like a slice, Fill
// resets everything to one value in O(1).
//
// Invariant: slot i holds an explicit value iff from[i] < b and
// to[from[i]] == i; otherwise its logical content is initv. b is the
// watermark of valid chain entries; Fill resets it to zero.
type Array[T any] struct {
	initv    T
	b        int
	value    []T
	from, to []int
}

// New returns an Array of n slots, all logically holding initial.
// Returns ErrNegativeSize for n < 0. Complexity: O(n) allocation.
func New[T any](n int, initial T) (*Array[T], error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Array[T]{
		initv: initial,
		value: make([]T, n),
		from:  make([]int, n),
		to:    make([]int, n),
	}, nil
}

// chain reports whether slot i holds an explicitly written value.
func (a *Array[T]) chain(i int) bool {
	return a.from[i] < a.b && a.to[a.from[i]] == i
}

// Len returns the number of slots.
// Complexity: O(1).
func (a *Array[T]) Len() int { return len(a.value) }

// At returns the logical content of slot i: the explicitly written value
// if one survives the last Fill, the fill value otherwise.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.value) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	if a.chain(i) {
		return a.value[i], nil
	}

	return a.initv, nil
}

// Set writes v into slot i, registering the slot in the chain if this is
// its first write since the last Fill.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.value) {
		return ErrIndexOutOfRange
	}
	if !a.chain(i) {
		a.from[i] = a.b
		a.to[a.b] = i
		a.b++
	}
	a.value[i] = v

	return nil
}

// Fill logically overwrites every slot with v by dropping the chain
// watermark — no slot is touched.
// Complexity: O(1).
func (a *Array[T]) Fill(v T) {
	a.initv = v
	a.b = 0
}

// Resize reallocates to n slots; all contents reset to the current fill
// value. Returns ErrNegativeSize for n < 0.
// Complexity: O(n).
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	a.value = make([]T, n)
	a.from = make([]int, n)
	a.to = make([]int, n)
	a.b = 0

	return nil
}
