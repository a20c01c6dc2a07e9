// Package algebra: ready-made descriptors for the common fold operations.
package algebra

import (
	"golang.org/x/exp/constraints"
)

// Number constrains T to the built-in integer and floating-point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// sumGroup is the commutative group (T, +, 0, -).
type sumGroup[T Number] struct{}

func (sumGroup[T]) Identity() T      { var zero T; return zero }
func (sumGroup[T]) Combine(a, b T) T { return a + b }
func (sumGroup[T]) Invert(x T) T     { return -x }

// Sum returns the commutative group (T, +, 0) with negation as inverse.
// Suitable for every container, including two-argument Fenwick folds.
func Sum[T Number]() Group[T] { return sumGroup[T]{} }

// minMonoid is the idempotent commutative monoid (T, min, top).
type minMonoid[T constraints.Ordered] struct{ top T }

func (m minMonoid[T]) Identity() T { return m.top }
func (m minMonoid[T]) Combine(a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Min returns the idempotent commutative monoid (T, min, top).
// top must be an upper bound of every value that will be folded
// (math.MaxInt for int, math.Inf(1) for float64); it plays the role the
// identity element plays for sums. Suitable for all three containers'
// single-fold operations, but NOT a group: no inverse exists, so it cannot
// drive fenwick.GroupTree.
func Min[T constraints.Ordered](top T) Monoid[T] { return minMonoid[T]{top: top} }

// maxMonoid is the idempotent commutative monoid (T, max, bottom).
type maxMonoid[T constraints.Ordered] struct{ bottom T }

func (m maxMonoid[T]) Identity() T { return m.bottom }
func (m maxMonoid[T]) Combine(a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Max returns the idempotent commutative monoid (T, max, bottom).
// bottom must be a lower bound of every value that will be folded
// (math.MinInt for int, math.Inf(-1) for float64).
func Max[T constraints.Ordered](bottom T) Monoid[T] { return maxMonoid[T]{bottom: bottom} }

// concatMonoid is the non-commutative monoid (string, +, "").
type concatMonoid struct{}

func (concatMonoid) Identity() string           { return "" }
func (concatMonoid) Combine(a, b string) string { return a + b }

// Concat returns the string concatenation monoid ("" as identity).
// Deliberately non-commutative: it exercises (and lets tests verify) the
// left-to-right merge order of segtree.Tree. Not commutative, so it is
// outside the fenwick.Tree contract; not idempotent, so outside
// sparsetable.Table as well.
func Concat() Monoid[string] { return concatMonoid{} }

// gcdMonoid is the idempotent commutative monoid (T, gcd, 0).
type gcdMonoid[T constraints.Integer] struct{}

func (gcdMonoid[T]) Identity() T { var zero T; return zero }
func (gcdMonoid[T]) Combine(a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCD returns the idempotent commutative monoid (T, gcd, 0); gcd(0, x) = x
// makes zero a true identity. Suitable for all three containers' single
// folds, including sparse tables (gcd(x, x) == x).
func GCD[T constraints.Integer]() Monoid[T] { return gcdMonoid[T]{} }

// orMonoid is the idempotent commutative monoid (T, |, 0).
type orMonoid[T constraints.Unsigned] struct{}

func (orMonoid[T]) Identity() T      { var zero T; return zero }
func (orMonoid[T]) Combine(a, b T) T { return a | b }

// BitOr returns the idempotent commutative monoid (T, |, 0) over unsigned
// bit sets. Sparse-table friendly: x | x == x.
func BitOr[T constraints.Unsigned]() Monoid[T] { return orMonoid[T]{} }

// xorGroup is the commutative group (T, ^, 0); every element is its own
// inverse.
type xorGroup[T constraints.Unsigned] struct{}

func (xorGroup[T]) Identity() T      { var zero T; return zero }
func (xorGroup[T]) Combine(a, b T) T { return a ^ b }
func (xorGroup[T]) Invert(x T) T     { return x }

// BitXor returns the commutative group (T, ^, 0). Self-inverse, so it can
// drive fenwick.GroupTree; NOT idempotent (x ^ x == 0), so it must not be
// used with sparse tables.
func BitXor[T constraints.Unsigned]() Group[T] { return xorGroup[T]{} }
