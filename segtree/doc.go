// Package segtree implements an iterative (non-recursive) segment tree:
// point update plus half-open range fold over any monoid, commutative or
// not, on a flat array twice the rounded-up size.
//
// What:
//
//   - Tree[T]: Update(i, v) replaces one element, Accumulate(l, r) folds
//     the half-open range [l, r), both O(log n); At(i) is a free leaf read.
//   - Resize and Fill rebuild the whole tree from fresh values in O(n).
//   - The only algebraic requirement is a monoid — this is the container to
//     reach for when the operation is non-commutative (string
//     concatenation, matrix products, function composition over a range).
//
// Why:
//
//   - Mutable sequences with arbitrary associative folds: running minima
//     with updates, interval stabbing counts, composed transforms.
//   - The Fenwick tree is cheaper but demands commutativity; the sparse
//     table is faster to query but frozen. This is the general workhorse.
//
// Layout invariant:
//
//	sz is the smallest power of two >= n (1 when n is 0); leaves live in
//	d[sz .. 2*sz), element i at d[sz+i], padding leaves past n hold the
//	identity. Every internal node i holds Combine(d[2i], d[2i+1]) after
//	any mutation returns.
//
// Merge order:
//
//	Accumulate keeps two accumulators. Odd left cursors append on the
//	right of the left accumulator (increasing index order); odd right
//	cursors prepend on the left of the right accumulator, because those
//	elements precede everything already in it. The result is
//	Combine(left, right) — a left-to-right fold even when Combine is
//	non-commutative, still in O(log n).
//
// Complexity:
//
//   - New / From / Resize / Fill: O(n). Update, Accumulate: O(log n).
//   - At: O(1). Memory: 2·sz elements, at most 4n.
//
// Errors:
//
//   - ErrNegativeSize: constructor called with n < 0.
//   - ErrIndexOutOfRange: Update/At index outside [0, n).
//   - ErrInvalidRange: Accumulate bounds violate 0 <= l <= r <= n.
//
// Not safe for concurrent mutation; callers must serialize writers.
package segtree
