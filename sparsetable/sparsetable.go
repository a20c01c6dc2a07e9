// Package sparsetable: the doubling table with explicit rebuild.
package sparsetable

import "github.com/katalvlaran/rangefold/algebra"

// Table is a sparse table over an idempotent monoid.
//
// Invariant while not stale: d[p][i] == fold of elements [i, i+2^p) for
// every row p and every i with i+2^p <= n. Set breaks the invariant for
// rows p >= 1 and flips stale; Rebuild restores it.
type Table[T any] struct {
	m     algebra.Monoid[T]
	n     int
	log2  []int // log2[i] = floor(log_2(i)) for i in [1, n]
	d     [][]T // d[0] raw elements, d[p] folds of 2^p windows
	stale bool
}

// New returns a Table of n identity elements, fully built.
// Returns ErrNegativeSize for n < 0. Complexity: O(n log n).
func New[T any](m algebra.Monoid[T], n int) (*Table[T], error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	t := &Table[T]{m: m}
	t.alloc(n)
	e := m.Identity()
	for i := range t.d {
		for j := range t.d[i] {
			t.d[i][j] = e
		}
	}

	return t, nil
}

// From returns a Table built from a copy of values.
// Complexity: O(n log n).
func From[T any](m algebra.Monoid[T], values []T) *Table[T] {
	t := &Table[T]{m: m}
	t.alloc(len(values))
	if t.n > 0 {
		copy(t.d[0], values)
	}
	t.Rebuild()

	return t
}

// alloc sizes the log table and the fold rows: rows 0..floor(log2(n)) of
// width n each, so n of 0 or 1 yields zero doubling rows.
func (t *Table[T]) alloc(n int) {
	t.n = n
	t.log2 = make([]int, n+1)
	for i := 2; i <= n; i++ {
		t.log2[i] = t.log2[i>>1] + 1
	}
	rows := 0
	if n > 0 {
		rows = t.log2[n] + 1
	}
	t.d = make([][]T, rows)
	for p := range t.d {
		t.d[p] = make([]T, n)
	}
}

// Len returns the number of logical elements.
// Complexity: O(1).
func (t *Table[T]) Len() int { return t.n }

// At returns element i from row 0. Row 0 is always current, so At never
// reports staleness. Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(1).
func (t *Table[T]) At(i int) (T, error) {
	if i < 0 || i >= t.n {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	return t.d[0][i], nil
}

// Set writes element i into row 0 and marks the table stale: the doubling
// rows no longer cover the new value, and Accumulate will refuse to answer
// until Rebuild. Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(1).
func (t *Table[T]) Set(i int, value T) error {
	if i < 0 || i >= t.n {
		return ErrIndexOutOfRange
	}
	t.d[0][i] = value
	t.stale = true

	return nil
}

// Rebuild recomputes every doubling row from row 0 and clears staleness.
// Batch several Set calls before one Rebuild; each Rebuild costs the full
// preprocessing.
// Complexity: O(n log n).
func (t *Table[T]) Rebuild() {
	for p := 1; p < len(t.d); p++ {
		half := 1 << (p - 1)
		for i := 0; i+2*half <= t.n; i++ {
			t.d[p][i] = t.m.Combine(t.d[p-1][i], t.d[p-1][i+half])
		}
	}
	t.stale = false
}

// Accumulate returns the fold of the half-open range [l, r) as the combine
// of the two length-2^p covering windows, p = floor(log2(r-l)). The windows
// may overlap; the monoid's idempotence (a documented contract) makes the
// overlap harmless.
//
// Returns ErrInvalidRange for bounds outside the sequence or l > r,
// ErrEmptyRange for l == r, and ErrStale after Set without Rebuild.
// Complexity: O(1) — one Combine call.
func (t *Table[T]) Accumulate(l, r int) (T, error) {
	var zero T
	switch {
	case l < 0 || r > t.n || l > r:
		return zero, ErrInvalidRange
	case l == r:
		return zero, ErrEmptyRange
	case t.stale:
		return zero, ErrStale
	}
	p := t.log2[r-l]

	return t.m.Combine(t.d[p][l], t.d[p][r-(1<<p)]), nil
}
