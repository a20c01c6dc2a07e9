// Package algebra: sampled algebraic law checks.
//
// None of these can prove a law — they evaluate it over the caller-supplied
// sample set only. They exist to catch gross descriptor mismatches early
// (a sum handed to a sparse table, a min handed to a group fold) at a cost
// the caller opts into; the containers never run them on the hot path.
package algebra

// Associative reports whether Combine is associative over every ordered
// triple drawn from samples.
// Complexity: O(len(samples)^3) Combine calls.
func Associative[T comparable](m Monoid[T], samples []T) bool {
	for _, x := range samples {
		for _, y := range samples {
			for _, z := range samples {
				if m.Combine(m.Combine(x, y), z) != m.Combine(x, m.Combine(y, z)) {
					return false
				}
			}
		}
	}

	return true
}

// HasIdentity reports whether Identity() is neutral on both sides for every
// sample.
// Complexity: O(len(samples)) Combine calls.
func HasIdentity[T comparable](m Monoid[T], samples []T) bool {
	e := m.Identity()
	for _, x := range samples {
		if m.Combine(e, x) != x || m.Combine(x, e) != x {
			return false
		}
	}

	return true
}

// Commutative reports whether Combine(x, y) == Combine(y, x) for every
// ordered pair drawn from samples. fenwick.Tree requires this law.
// Complexity: O(len(samples)^2) Combine calls.
func Commutative[T comparable](m Monoid[T], samples []T) bool {
	for _, x := range samples {
		for _, y := range samples {
			if m.Combine(x, y) != m.Combine(y, x) {
				return false
			}
		}
	}

	return true
}

// Idempotent reports whether Combine(x, x) == x for every sample.
// sparsetable.Table requires this law; it is what makes the two covering
// windows of a query safe to overlap.
// Complexity: O(len(samples)) Combine calls.
func Idempotent[T comparable](m Monoid[T], samples []T) bool {
	for _, x := range samples {
		if m.Combine(x, x) != x {
			return false
		}
	}

	return true
}

// Inverts reports whether Invert yields a two-sided inverse for every
// sample. fenwick.GroupTree's range fold relies on this law.
// Complexity: O(len(samples)) Combine calls.
func Inverts[T comparable](g Group[T], samples []T) bool {
	e := g.Identity()
	for _, x := range samples {
		inv := g.Invert(x)
		if g.Combine(x, inv) != e || g.Combine(inv, x) != e {
			return false
		}
	}

	return true
}
