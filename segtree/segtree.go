// Package segtree: the iterative bottom-up segment tree.
package segtree

import "github.com/katalvlaran/rangefold/algebra"

// Tree is an iterative segment tree over an arbitrary monoid.
//
// Invariant: after every exported mutation, each internal node i in [1, sz)
// holds Combine(d[2i], d[2i+1]), and every padding leaf past the logical
// length holds the identity.
type Tree[T any] struct {
	m  algebra.Monoid[T]
	n  int // logical element count
	sz int // smallest power of two >= n, 1 when n == 0
	d  []T // 2*sz slots; leaves at [sz, 2*sz)
}

// New returns a Tree of n elements, every element at the monoid identity.
// n = 0 yields a valid empty tree. Returns ErrNegativeSize for n < 0.
// Complexity: O(n).
func New[T any](m algebra.Monoid[T], n int) (*Tree[T], error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	t := &Tree[T]{m: m}
	t.alloc(n)
	e := m.Identity()
	for i := range t.d {
		t.d[i] = e
	}

	return t, nil
}

// From returns a Tree built from a copy of values in O(n): leaves first,
// then one bottom-up pass over the internal nodes.
func From[T any](m algebra.Monoid[T], values []T) *Tree[T] {
	t := &Tree[T]{m: m}
	t.Resize(values)

	return t
}

// alloc sets n, sz and the backing slice; contents are left to the caller.
func (t *Tree[T]) alloc(n int) {
	t.n = n
	t.sz = 1
	for t.sz < n {
		t.sz <<= 1
	}
	t.d = make([]T, 2*t.sz)
}

// Len returns the number of logical elements.
// Complexity: O(1).
func (t *Tree[T]) Len() int { return t.n }

// Resize rebuilds the tree from a copy of values, discarding the previous
// contents. Padding leaves beyond len(values) are set to the identity.
// Complexity: O(n).
func (t *Tree[T]) Resize(values []T) {
	t.alloc(len(values))
	copy(t.d[t.sz:], values)
	e := t.m.Identity()
	for i := t.sz + t.n; i < len(t.d); i++ {
		t.d[i] = e
	}
	t.initialize()
}

// Fill overwrites every logical element with value and rebuilds the
// internal nodes. Padding leaves stay at the identity.
// Complexity: O(n).
func (t *Tree[T]) Fill(value T) {
	for i := t.sz; i < t.sz+t.n; i++ {
		t.d[i] = value
	}
	t.initialize()
}

// initialize recomputes every internal node from the leaves, bottom-up.
func (t *Tree[T]) initialize() {
	for i := t.sz - 1; i > 0; i-- {
		t.d[i] = t.m.Combine(t.d[2*i], t.d[2*i+1])
	}
}

// Update replaces element i with value and recomputes the ancestors on the
// leaf-to-root path. Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(log n).
func (t *Tree[T]) Update(i int, value T) error {
	if i < 0 || i >= t.n {
		return ErrIndexOutOfRange
	}
	idx := t.sz + i
	t.d[idx] = value
	for idx >>= 1; idx > 0; idx >>= 1 {
		t.d[idx] = t.m.Combine(t.d[2*idx], t.d[2*idx+1])
	}

	return nil
}

// At returns element i without any folding.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(1).
func (t *Tree[T]) At(i int) (T, error) {
	if i < 0 || i >= t.n {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	return t.d[t.sz+i], nil
}

// Accumulate returns the fold of the half-open range [l, r) in original
// left-to-right element order, which makes it correct for non-commutative
// monoids. Accumulate(l, l) returns the identity. Returns ErrInvalidRange
// unless 0 <= l <= r <= Len().
// Complexity: O(log n).
func (t *Tree[T]) Accumulate(l, r int) (T, error) {
	if l < 0 || r < l || r > t.n {
		return t.m.Identity(), ErrInvalidRange
	}
	// resL collects covered nodes in increasing index order; resR collects
	// them in decreasing order, so each new node is prepended. Appending to
	// resL and prepending to resR is what keeps the final Combine(resL,
	// resR) a faithful left-to-right fold.
	resL, resR := t.m.Identity(), t.m.Identity()
	for l, r = l+t.sz, r+t.sz; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			resL = t.m.Combine(resL, t.d[l])
			l++
		}
		if r&1 == 1 {
			r--
			resR = t.m.Combine(t.d[r], resR)
		}
	}

	return t.m.Combine(resL, resR), nil
}
