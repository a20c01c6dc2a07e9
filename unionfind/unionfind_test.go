package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangefold/unionfind"
)

// TestDSU_Scenario walks the canonical five-element scenario:
// unite {1,2} and {0,4}, pull 3 into the second set, then read back
// membership and sizes.
func TestDSU_Scenario(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())

	merged, err := uf.Unite(1, 2)
	require.NoError(t, err)
	assert.True(t, merged)
	merged, err = uf.Unite(0, 4)
	require.NoError(t, err)
	assert.True(t, merged)
	merged, err = uf.Unite(3, 4)
	require.NoError(t, err)
	assert.True(t, merged)

	same, err := uf.Same(1, 2)
	require.NoError(t, err)
	assert.True(t, same)
	same, err = uf.Same(1, 3)
	require.NoError(t, err)
	assert.False(t, same)

	size, err := uf.Size(1)
	require.NoError(t, err)
	assert.Equal(t, 2, size) // {1, 2}
	size, err = uf.Size(4)
	require.NoError(t, err)
	assert.Equal(t, 3, size) // {0, 3, 4}

	assert.Equal(t, 2, uf.Count())
}

// TestDSU_UniteIdempotent verifies that re-uniting an existing set reports
// false and changes nothing.
func TestDSU_UniteIdempotent(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	merged, err := uf.Unite(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = uf.Unite(1, 0)
	require.NoError(t, err)
	assert.False(t, merged)

	size, err := uf.Size(0)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
	assert.Equal(t, 2, uf.Count())
}

// TestDSU_RootCanonical verifies that all members of a merged set agree on
// one canonical root, and that roots are members of their own set.
func TestDSU_RootCanonical(t *testing.T) {
	uf, err := unionfind.New(6)
	require.NoError(t, err)

	for _, pair := range [][2]int{{0, 1}, {1, 2}, {3, 4}} {
		_, err = uf.Unite(pair[0], pair[1])
		require.NoError(t, err)
	}

	r0, err := uf.Root(0)
	require.NoError(t, err)
	for _, x := range []int{1, 2} {
		r, err := uf.Root(x)
		require.NoError(t, err)
		assert.Equal(t, r0, r)
	}

	r5, err := uf.Root(5)
	require.NoError(t, err)
	assert.Equal(t, 5, r5) // untouched singleton is its own root
}

// TestDSU_Bounds exercises the sentinels on construction and every
// operation.
func TestDSU_Bounds(t *testing.T) {
	_, err := unionfind.New(-1)
	assert.ErrorIs(t, err, unionfind.ErrNegativeSize)

	uf, err := unionfind.New(3)
	require.NoError(t, err)

	_, err = uf.Unite(0, 3)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
	_, err = uf.Same(-1, 0)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
	_, err = uf.Size(3)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
	_, err = uf.Root(-1)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
}

// TestDSU_RandomAgainstNaive merges random pairs and cross-checks Same,
// Size and Count against a brute-force component labeling after each step.
func TestDSU_RandomAgainstNaive(t *testing.T) {
	const n = 64
	uf, err := unionfind.New(n)
	require.NoError(t, err)

	// naive[i] is i's component label, updated by full relabeling.
	naive := make([]int, n)
	for i := range naive {
		naive[i] = i
	}

	r := rand.New(rand.NewSource(42))
	for step := 0; step < 200; step++ {
		x, y := r.Intn(n), r.Intn(n)
		_, err = uf.Unite(x, y)
		require.NoError(t, err)
		lx, ly := naive[x], naive[y]
		if lx != ly {
			for i := range naive {
				if naive[i] == ly {
					naive[i] = lx
				}
			}
		}

		// Spot-check a handful of pairs and one size each step.
		for probe := 0; probe < 8; probe++ {
			a, b := r.Intn(n), r.Intn(n)
			same, err := uf.Same(a, b)
			require.NoError(t, err)
			assert.Equal(t, naive[a] == naive[b], same)
		}
		q := r.Intn(n)
		wantSize := 0
		for i := range naive {
			if naive[i] == naive[q] {
				wantSize++
			}
		}
		size, err := uf.Size(q)
		require.NoError(t, err)
		assert.Equal(t, wantSize, size)

		labels := map[int]struct{}{}
		for _, l := range naive {
			labels[l] = struct{}{}
		}
		assert.Equal(t, len(labels), uf.Count())
	}
}
