// Package fenwick implements the Fenwick tree (binary indexed tree):
// point update plus prefix fold over a commutative monoid, in a single
// flat array indexed by lowest-set-bit arithmetic.
//
// What:
//
//   - Tree[T]: Add (fold a value into one element) and Prefix (fold of the
//     first i+1 elements), both O(log n), over any commutative monoid.
//   - GroupTree[T]: additionally Accumulate(l, r), the inclusive range fold
//     obtained as prefix(r) combined with the inverse of prefix(l-1). Only
//     constructible from an algebra.Group — min/max monoids cannot reach it.
//   - RangeSum[T]: a two-tree numeric variant answering range-add and
//     range-sum queries, both O(log n).
//
// Why:
//
//   - Running totals: cumulative counters, frequency tables, inversions.
//   - Order statistics over a mutable multiset of small integers.
//   - Constant factors: one slice, no recursion, two bit ops per level —
//     faster in practice than a segment tree when commutativity holds.
//
// Layout invariant:
//
//	d[i] holds the fold of logical indices (i - lowbit(i+1) + 1 .. i],
//	where lowbit is the lowest set bit. Add touches O(log n) owners by
//	ascending idx |= idx+1; Prefix descends idx = (idx & (idx+1)) - 1.
//
// Complexity:
//
//   - New: O(n). From: O(n) (bottom-up setup, not n·log n).
//   - Add, Prefix, Accumulate: O(log n). Memory: O(n).
//
// Algebraic requirements (documented contracts, see package algebra):
//
//   - Tree requires a commutative monoid: Add folds the carried value into
//     several internal nodes out of sequence order.
//   - GroupTree requires a commutative group; the constructor's Group
//     parameter is the gate.
//
// Errors:
//
//   - ErrNegativeSize: constructor called with n < 0.
//   - ErrIndexOutOfRange: Add/Prefix index outside the valid window
//     (note Prefix(-1) is valid and yields the identity).
//   - ErrInvalidRange: Accumulate/AddRange/Sum bounds violation.
//
// Not safe for concurrent mutation; callers must serialize writers.
package fenwick
