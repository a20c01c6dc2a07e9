// Package initarray implements Bentley's initializable array: an indexed
// container whose every slot can be reset to a common value in O(1),
// regardless of size.
//
// What:
//
//   - Array[T]: At and Set like a plain slice, plus Fill(v) that
//     "reinitializes" all n slots in constant time by invalidating rather
//     than rewriting them.
//   - The trick is a pair of cross-referencing index stacks: a slot's
//     stored value counts only if from[i] points below the watermark b and
//     to[from[i]] points back at i. Fill drops the watermark to zero, which
//     orphans every chain at once.
//
// Why:
//
//   - Sparse scratch tables reused across many queries (visited marks,
//     bucket counters) where clearing dominates the actual work.
//   - The same role memset-and-forget plays, without paying O(n) per reuse.
//
// Complexity:
//
//   - New: O(n) allocation (no initialization of the value slots needed).
//   - At, Set, Fill: O(1). Resize: O(n) reallocation, contents reset.
//   - Memory: 3n slots (value, from, to).
//
// Errors:
//
//   - ErrNegativeSize: construction or Resize with n < 0.
//   - ErrIndexOutOfRange: At/Set index outside [0, n).
//
// Not safe for concurrent mutation; callers must serialize writers.
package initarray
