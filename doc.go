// Package rangefold is a family of in-memory containers for associative
// range queries — fold any abstract algebraic operation over a slice-like
// sequence in logarithmic (or constant) time.
//
// What is rangefold?
//
//	A small, generic library built around one idea: parameterize classic
//	flat-array tree layouts over a user-supplied algebraic structure.
//		• fenwick/     — point update + prefix fold over a commutative monoid
//		                 (range fold via the group inverse when you have one)
//		• segtree/     — point update + range fold over any monoid,
//		                 iterative bottom-up layout, non-commutative safe
//		• sparsetable/ — build-once O(1) range fold over an idempotent monoid
//		• algebra/     — the Monoid/Group descriptors the containers fold with
//		• unionfind/   — disjoint set union with path compression
//		• initarray/   — array with O(1) whole-array reinitialization
//
// Why choose rangefold?
//
//   - Generic over the operation – ship your own Combine/Identity pair, or
//     use the bundled sum, min, max, gcd, bit and concat descriptors
//   - Explicit contracts – every precondition that can be checked returns a
//     sentinel error; every algebraic law that cannot is documented
//   - Pointer-free layouts – flat arrays indexed by bit tricks, no node
//     objects, no hidden allocation on the query path
//   - Pure Go – no cgo, tested against brute force on randomized inputs
//
// Picking a container:
//
//	mutable sequence, sums / any group            → fenwick
//	mutable sequence, non-commutative or no group → segtree
//	frozen sequence, idempotent op, O(1) queries  → sparsetable
//
// Quick example, range-minimum over a frozen slice:
//
//	st := sparsetable.From(algebra.Min[int](math.MaxInt), []int{5, 2, 8, 1, 9, 3})
//	m, _ := st.Accumulate(1, 5) // min of elements 1..4 → 1
//
// Dive into each package's doc.go for contracts, complexity tables and
// worked examples.
package rangefold
