// Package unionfind implements the disjoint set union (union–find)
// structure: merge sets and answer same-set queries in amortized
// inverse-Ackermann time.
//
// What:
//
//   - DSU over elements labeled [0, n): Unite merges the sets holding two
//     labels, Same asks whether two labels share a set, Size reports a
//     set's cardinality, Root canonicalizes a label, Count tracks how many
//     sets remain.
//   - Single []int encoding: a root stores the negated size of its set,
//     every other slot stores its parent label. Iterative path compression
//     (grandparent splicing) plus union by size keep trees flat.
//
// Why:
//
//   - Kruskal-style cycle detection while growing spanning structures.
//   - Connectivity under edge insertions, equivalence-class maintenance,
//     grid/island merging.
//
// Complexity:
//
//   - New: O(n). Unite / Same / Size / Root: amortized O(α(n)), where α is
//     the inverse Ackermann function (≤ 4 for any feasible n).
//   - Count, Len: O(1). Memory: O(n).
//
// Errors:
//
//   - ErrNegativeSize: constructor called with n < 0.
//   - ErrIndexOutOfRange: any label outside [0, n).
//
// Not safe for concurrent use: even read paths compress, so callers must
// serialize all calls, not just writers.
package unionfind
