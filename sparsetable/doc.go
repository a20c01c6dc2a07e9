// Package sparsetable implements the sparse table: build-once range folds
// over an idempotent monoid in O(1) per query after O(n log n)
// preprocessing.
//
// What:
//
//   - Table[T]: Accumulate(l, r) answers any half-open range fold with
//     exactly one Combine call, by covering [l, r) with two overlapping
//     power-of-two windows.
//   - Row 0 holds the raw elements; row p holds folds of windows of length
//     2^p, built by doubling: d[p][i] = Combine(d[p-1][i], d[p-1][i+2^(p-1)]).
//   - Mutation is explicit two-phase: Set writes row 0 and marks the table
//     stale; Accumulate refuses stale tables with ErrStale until Rebuild
//     recomputes the doubling rows. The staleness hazard of the classic
//     formulation is an error return here, not caller folklore.
//
// Why:
//
//   - Offline RMQ: millions of min/max/gcd queries over a frozen sequence.
//   - Anywhere the O(log n) of a segment tree per query is too slow and the
//     data does not change between query batches.
//
// Idempotence:
//
//	The two covering windows of a query may overlap, so elements in the
//	overlap are folded twice. Combine(x, x) == x is what makes that
//	harmless — min, max, gcd, bitwise-or qualify; sum does not and will
//	silently double-count. algebra.Idempotent offers a sampled guard.
//
// Complexity:
//
//   - New / From / Rebuild: O(n log n) time and space.
//   - Accumulate: O(1). At / Set: O(1).
//
// Errors:
//
//   - ErrNegativeSize: constructor called with n < 0.
//   - ErrIndexOutOfRange: At/Set index outside [0, n).
//   - ErrInvalidRange: Accumulate bounds outside the sequence or inverted.
//   - ErrEmptyRange: Accumulate(l, l) — unlike the other containers, the
//     covering-window identity needs r - l >= 1, and there is no identity
//     fallback.
//   - ErrStale: Accumulate after Set without an intervening Rebuild.
//
// Not safe for concurrent mutation; callers must serialize writers.
package sparsetable
