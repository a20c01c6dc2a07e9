// Package unionfind: disjoint set union with path compression and union by
// size.
package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrNegativeSize indicates a constructor was asked for n < 0 labels.
	ErrNegativeSize = errors.New("unionfind: size must be non-negative")

	// ErrIndexOutOfRange indicates an element label outside [0, Len()).
	ErrIndexOutOfRange = errors.New("unionfind: label out of range")
)

// DSU is a disjoint set union over integer labels [0, n).
//
// Encoding invariant: data[x] < 0 means x is a root and -data[x] is the
// size of its set; data[x] >= 0 means data[x] is x's parent.
type DSU struct {
	data  []int
	count int
}

// New returns a DSU of n singleton sets.
// Returns ErrNegativeSize for n < 0. Complexity: O(n).
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	data := make([]int, n)
	for i := range data {
		data[i] = -1
	}

	return &DSU{data: data, count: n}, nil
}

// Len returns the number of element labels.
// Complexity: O(1).
func (u *DSU) Len() int { return len(u.data) }

// Count returns the number of disjoint sets currently held.
// Complexity: O(1).
func (u *DSU) Count() int { return u.count }

// Root returns the canonical label of the set containing x, compressing the
// path as it walks: every visited label is spliced to its grandparent, so
// repeated queries flatten the tree.
// Returns ErrIndexOutOfRange unless 0 <= x < Len().
// Complexity: amortized O(α(n)).
func (u *DSU) Root(x int) (int, error) {
	if x < 0 || x >= len(u.data) {
		return 0, ErrIndexOutOfRange
	}

	return u.root(x), nil
}

// root is Root without bounds checking, for internal callers that already
// validated their labels.
func (u *DSU) root(x int) int {
	for u.data[x] >= 0 {
		if p := u.data[x]; u.data[p] >= 0 {
			u.data[x] = u.data[p]
		}
		x = u.data[x]
	}

	return x
}

// Unite merges the sets containing x and y and reports whether a merge
// happened (false when they were already one set). The smaller tree is
// hung under the larger one's root.
// Returns ErrIndexOutOfRange if either label is outside [0, Len()).
// Complexity: amortized O(α(n)).
func (u *DSU) Unite(x, y int) (bool, error) {
	if x < 0 || x >= len(u.data) || y < 0 || y >= len(u.data) {
		return false, ErrIndexOutOfRange
	}
	rx, ry := u.root(x), u.root(y)
	if rx == ry {
		return false, nil
	}
	// data holds negated sizes at roots, so the more negative one is the
	// bigger set.
	if u.data[ry] < u.data[rx] {
		rx, ry = ry, rx
	}
	u.data[rx] += u.data[ry]
	u.data[ry] = rx
	u.count--

	return true, nil
}

// Same reports whether x and y belong to the same set.
// Returns ErrIndexOutOfRange if either label is outside [0, Len()).
// Complexity: amortized O(α(n)).
func (u *DSU) Same(x, y int) (bool, error) {
	if x < 0 || x >= len(u.data) || y < 0 || y >= len(u.data) {
		return false, ErrIndexOutOfRange
	}

	return u.root(x) == u.root(y), nil
}

// Size returns the cardinality of the set containing x.
// Returns ErrIndexOutOfRange unless 0 <= x < Len().
// Complexity: amortized O(α(n)).
func (u *DSU) Size(x int) (int, error) {
	if x < 0 || x >= len(u.data) {
		return 0, ErrIndexOutOfRange
	}

	return -u.data[u.root(x)], nil
}
