// File: differential_test.go
//
// Cross-structure differential tests: the three containers answer the same
// queries over the same randomized sequences and must agree with each
// other and with brute force. Random traffic comes from go_rng; float
// oracles come from gonum, so the expected values are computed by code
// that shares nothing with the containers under test.
package rangefold_test

import (
	"math"
	"testing"

	rng "github.com/leesper/go_rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rangefold/algebra"
	"github.com/katalvlaran/rangefold/fenwick"
	"github.com/katalvlaran/rangefold/segtree"
	"github.com/katalvlaran/rangefold/sparsetable"
)

// TestDifferential_SumAgreement checks the two mutable containers against
// brute force on random int64 sums: for every sampled (l, r), the Fenwick
// inclusive fold over [l, r] must equal the segment-tree half-open fold
// over [l, r+1) and the direct loop.
func TestDifferential_SumAgreement(t *testing.T) {
	const (
		n       = 257 // deliberately just past a power of two
		queries = 2000
	)
	gen := rng.NewUniformGenerator(42)

	values := make([]int64, n)
	for i := range values {
		values[i] = gen.Int64Range(-1000, 1000)
	}

	bit := fenwick.FromGroup(algebra.Sum[int64](), values)
	seg := segtree.From[int64](algebra.Sum[int64](), values)

	for q := 0; q < queries; q++ {
		l := int(gen.Int64n(n))
		r := l + int(gen.Int64n(int64(n-l)))

		var want int64
		for i := l; i <= r; i++ {
			want += values[i]
		}

		fromBit, err := bit.Accumulate(l, r)
		require.NoError(t, err)
		fromSeg, err := seg.Accumulate(l, r+1)
		require.NoError(t, err)

		assert.Equalf(t, want, fromBit, "fenwick accumulate(%d,%d)", l, r)
		assert.Equalf(t, want, fromSeg, "segtree accumulate(%d,%d)", l, r+1)
	}
}

// TestDifferential_MinAgreement checks the segment tree against the sparse
// table on random min queries; both must also match the brute-force scan.
func TestDifferential_MinAgreement(t *testing.T) {
	const (
		n       = 300
		queries = 2000
	)
	gen := rng.NewUniformGenerator(1337)

	values := make([]int64, n)
	for i := range values {
		values[i] = gen.Int64Range(-5000, 5000)
	}

	seg := segtree.From(algebra.Min[int64](math.MaxInt64), values)
	st := sparsetable.From(algebra.Min[int64](math.MaxInt64), values)

	for q := 0; q < queries; q++ {
		l := int(gen.Int64n(n))
		r := l + 1 + int(gen.Int64n(int64(n-l))) // non-empty for the table

		want := values[l]
		for i := l + 1; i < r; i++ {
			if values[i] < want {
				want = values[i]
			}
		}

		fromSeg, err := seg.Accumulate(l, r)
		require.NoError(t, err)
		fromTable, err := st.Accumulate(l, r)
		require.NoError(t, err)

		assert.Equalf(t, want, fromSeg, "segtree accumulate(%d,%d)", l, r)
		assert.Equalf(t, want, fromTable, "sparsetable accumulate(%d,%d)", l, r)
	}
}

// TestDifferential_MutationInterleaving interleaves point mutations with
// queries: the Fenwick tree absorbs deltas, the segment tree replaces
// values, and both must keep agreeing with a mirror slice throughout.
func TestDifferential_MutationInterleaving(t *testing.T) {
	const (
		n     = 128
		steps = 500
	)
	gen := rng.NewUniformGenerator(7)

	mirror := make([]int64, n)
	bit, err := fenwick.NewGroup(algebra.Sum[int64](), n)
	require.NoError(t, err)
	seg, err := segtree.New[int64](algebra.Sum[int64](), n)
	require.NoError(t, err)

	for s := 0; s < steps; s++ {
		i := int(gen.Int64n(n))
		delta := gen.Int64Range(-50, 50)
		mirror[i] += delta
		require.NoError(t, bit.Add(i, delta))
		require.NoError(t, seg.Update(i, mirror[i]))

		l := int(gen.Int64n(n))
		r := l + int(gen.Int64n(int64(n-l)))
		var want int64
		for j := l; j <= r; j++ {
			want += mirror[j]
		}

		fromBit, err := bit.Accumulate(l, r)
		require.NoError(t, err)
		fromSeg, err := seg.Accumulate(l, r+1)
		require.NoError(t, err)
		assert.Equal(t, want, fromBit)
		assert.Equal(t, want, fromSeg)
	}
}

// TestDifferential_FloatOracles folds random float64 sequences and checks
// min/max/sum against gonum's floats package. Sums compare within a
// tolerance: the containers fold in tree order, the oracle left to right,
// and float addition is not associative.
func TestDifferential_FloatOracles(t *testing.T) {
	const (
		n       = 200
		queries = 500
	)
	gen := rng.NewUniformGenerator(99)

	values := make([]float64, n)
	for i := range values {
		values[i] = gen.Float64Range(-100, 100)
	}

	sumSeg := segtree.From[float64](algebra.Sum[float64](), values)
	minTable := sparsetable.From(algebra.Min[float64](math.Inf(1)), values)
	maxTable := sparsetable.From(algebra.Max[float64](math.Inf(-1)), values)

	for q := 0; q < queries; q++ {
		l := int(gen.Int64n(n))
		r := l + 1 + int(gen.Int64n(int64(n-l)))
		window := values[l:r]

		gotSum, err := sumSeg.Accumulate(l, r)
		require.NoError(t, err)
		assert.InDeltaf(t, floats.Sum(window), gotSum, 1e-9, "sum(%d,%d)", l, r)

		gotMin, err := minTable.Accumulate(l, r)
		require.NoError(t, err)
		assert.Equalf(t, floats.Min(window), gotMin, "min(%d,%d)", l, r)

		gotMax, err := maxTable.Accumulate(l, r)
		require.NoError(t, err)
		assert.Equalf(t, floats.Max(window), gotMax, "max(%d,%d)", l, r)
	}
}
