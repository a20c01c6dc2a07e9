// Package algebra: core descriptor interfaces.
package algebra

// Monoid describes an associative binary operation with an identity element
// over values of type T.
//
// Contract (caller responsibility, not runtime-checked):
//   - Combine is associative, pure (no side effects) and total over T.
//   - Identity returns e such that Combine(e, x) == Combine(x, e) == x.
//
// Individual containers layer further laws on top of this contract; see the
// package doc and each container's doc.go for which laws it requires.
type Monoid[T any] interface {
	// Identity returns the identity element of the operation.
	Identity() T
	// Combine applies the associative binary operation to a and b,
	// in that order. Order matters for non-commutative monoids.
	Combine(a, b T) T
}

// Group is a Monoid whose every element has an inverse.
//
// Contract: Combine(x, Invert(x)) == Combine(Invert(x), x) == Identity().
//
// A Group value is the capability token for subtraction-style range folds:
// fenwick.NewGroup accepts only a Group, so a min/max monoid can never reach
// the prefix-difference fold that would silently mis-answer for it.
type Group[T any] interface {
	Monoid[T]
	// Invert returns the group inverse of x.
	Invert(x T) T
}
