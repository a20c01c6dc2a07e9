// Package fenwick: the commutative-monoid tree (point add, prefix fold).
package fenwick

import "github.com/katalvlaran/rangefold/algebra"

// Tree is a Fenwick tree over a commutative monoid: point Add and prefix
// fold in O(log n) on a single flat slice.
//
// Invariant: d[i] == fold of logical elements (i - lowbit(i+1) + 1 .. i],
// maintained by every Add. The monoid's commutativity is a documented
// contract (see package doc); algebra.Commutative offers a sampled guard.
type Tree[T any] struct {
	m algebra.Monoid[T]
	d []T
}

// New returns a Tree of n elements, every element at the monoid identity.
// n = 0 yields a valid empty tree. Returns ErrNegativeSize for n < 0.
// Complexity: O(n).
func New[T any](m algebra.Monoid[T], n int) (*Tree[T], error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	d := make([]T, n)
	e := m.Identity()
	for i := range d {
		d[i] = e
	}

	return &Tree[T]{m: m, d: d}, nil
}

// From returns a Tree holding a copy of values, folded into tree form by a
// single bottom-up pass: each node pushes its fold into the ancestor that
// owns its right sibling range (d[i|(i+1)] ∘= d[i], ascending i).
// Complexity: O(n), not O(n log n).
func From[T any](m algebra.Monoid[T], values []T) *Tree[T] {
	d := make([]T, len(values))
	copy(d, values)
	t := &Tree[T]{m: m, d: d}
	t.setup()

	return t
}

// setup converts raw element values in d into the binary-indexed layout.
func (t *Tree[T]) setup() {
	n := len(t.d)
	for i := 0; i < n; i++ {
		if j := i | (i + 1); j < n {
			t.d[j] = t.m.Combine(t.d[j], t.d[i])
		}
	}
}

// Len returns the number of logical elements.
// Complexity: O(1).
func (t *Tree[T]) Len() int { return len(t.d) }

// Add folds v into logical element i: element_i becomes op(element_i, v).
// Every internal node whose range covers i absorbs v as well, so later
// Prefix calls see the change immediately.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(log n).
func (t *Tree[T]) Add(i int, v T) error {
	if i < 0 || i >= len(t.d) {
		return ErrIndexOutOfRange
	}
	for idx := i; idx < len(t.d); idx |= idx + 1 {
		t.d[idx] = t.m.Combine(t.d[idx], v)
	}

	return nil
}

// Prefix returns the fold of logical elements [0..i], inclusive.
// Prefix(-1) is the empty prefix and returns the identity — the base case
// for empty-range arithmetic. Returns ErrIndexOutOfRange for i < -1 or
// i >= Len().
// Complexity: O(log n).
func (t *Tree[T]) Prefix(i int) (T, error) {
	res := t.m.Identity()
	if i < -1 || i >= len(t.d) {
		return res, ErrIndexOutOfRange
	}
	for idx := i; idx >= 0; idx = (idx & (idx + 1)) - 1 {
		res = t.m.Combine(res, t.d[idx])
	}

	return res, nil
}
