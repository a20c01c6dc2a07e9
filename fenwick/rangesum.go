// Package fenwick: range-add / range-sum on a pair of trees.
package fenwick

import "github.com/katalvlaran/rangefold/algebra"

// RangeSum answers both range additions and range sums in O(log n) by
// decomposing each prefix sum into an index-weighted part and a constant
// part, one Fenwick array each: prefix(i) = Σd1 + i·Σd2.
//
// Numeric only — the decomposition multiplies the added value by boundary
// indices, so the element type must support ring arithmetic (and the
// products v·l, v·r must not overflow it).
type RangeSum[T algebra.Number] struct {
	n      int
	d1, d2 []T
}

// NewRangeSum returns a RangeSum over n zero elements.
// Returns ErrNegativeSize for n < 0. Complexity: O(n).
func NewRangeSum[T algebra.Number](n int) (*RangeSum[T], error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &RangeSum[T]{n: n, d1: make([]T, n+1), d2: make([]T, n+1)}, nil
}

// Len returns the number of logical elements.
// Complexity: O(1).
func (q *RangeSum[T]) Len() int { return q.n }

// AddRange adds v to every element of the half-open range [l, r).
// Returns ErrInvalidRange unless 0 <= l <= r <= Len(); an empty range is a
// no-op. Complexity: O(log n).
func (q *RangeSum[T]) AddRange(l, r int, v T) error {
	if l < 0 || r < l || r > q.n {
		return ErrInvalidRange
	}
	sz := q.n + 1
	for i := l; i < sz; i |= i + 1 {
		q.d1[i] -= v * T(l)
	}
	for i := r; i < sz; i |= i + 1 {
		q.d1[i] += v * T(r)
	}
	for i := l; i < sz; i |= i + 1 {
		q.d2[i] += v
	}
	for i := r; i < sz; i |= i + 1 {
		q.d2[i] -= v
	}

	return nil
}

// Prefix returns the sum of the first i elements (exclusive upper bound, so
// Prefix(0) == 0 and Prefix(Len()) is the whole-sequence sum).
// Returns ErrIndexOutOfRange unless 0 <= i <= Len().
// Complexity: O(log n).
func (q *RangeSum[T]) Prefix(i int) (T, error) {
	var res1, res2 T
	if i < 0 || i > q.n {
		return res1, ErrIndexOutOfRange
	}
	for j := i - 1; j >= 0; j = (j & (j + 1)) - 1 {
		res1 += q.d1[j]
	}
	for j := i - 1; j >= 0; j = (j & (j + 1)) - 1 {
		res2 += q.d2[j]
	}

	return res1 + res2*T(i), nil
}

// Sum returns the sum over the half-open range [l, r) as the difference of
// two prefix sums. Returns ErrInvalidRange unless 0 <= l <= r <= Len().
// Complexity: O(log n).
func (q *RangeSum[T]) Sum(l, r int) (T, error) {
	if l < 0 || r < l || r > q.n {
		var zero T
		return zero, ErrInvalidRange
	}
	hi, _ := q.Prefix(r)
	lo, _ := q.Prefix(l)

	return hi - lo, nil
}
