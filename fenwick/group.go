// Package fenwick: the group-gated two-argument range fold.
package fenwick

import "github.com/katalvlaran/rangefold/algebra"

// GroupTree is a Tree whose descriptor is a commutative group, which makes
// the inclusive range fold Accumulate(l, r) = prefix(r) ∘ invert(prefix(l-1))
// well defined. The gate is the constructor signature: only an
// algebra.Group builds a GroupTree, so a min/max monoid can never reach a
// subtraction that would silently return garbage for it.
type GroupTree[T any] struct {
	Tree[T]
	g algebra.Group[T]
}

// NewGroup returns a GroupTree of n identity elements.
// Returns ErrNegativeSize for n < 0. Complexity: O(n).
func NewGroup[T any](g algebra.Group[T], n int) (*GroupTree[T], error) {
	t, err := New[T](g, n)
	if err != nil {
		return nil, err
	}

	return &GroupTree[T]{Tree: *t, g: g}, nil
}

// FromGroup returns a GroupTree built from a copy of values in O(n).
func FromGroup[T any](g algebra.Group[T], values []T) *GroupTree[T] {
	return &GroupTree[T]{Tree: *From[T](g, values), g: g}
}

// Accumulate returns the inclusive fold of logical elements [l..r] as
// prefix(r) combined with the group inverse of prefix(l-1).
// Returns ErrInvalidRange unless 0 <= l <= r < Len(); use Prefix directly
// for empty prefixes.
// Complexity: O(log n).
func (t *GroupTree[T]) Accumulate(l, r int) (T, error) {
	if l < 0 || r < l || r >= t.Len() {
		return t.g.Identity(), ErrInvalidRange
	}
	// Bounds validated above; both Prefix calls cannot fail.
	hi, _ := t.Prefix(r)
	lo, _ := t.Prefix(l - 1)

	return t.g.Combine(hi, t.g.Invert(lo)), nil
}
