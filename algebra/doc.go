// Package algebra defines the algebraic structure descriptors that every
// rangefold container is generic over.
//
// What:
//
//   - Monoid[T]: an associative Combine with an Identity element — the
//     minimum contract any container needs to fold a range.
//   - Group[T]: a Monoid with an Invert, unlocking subtraction-style range
//     folds (fenwick.GroupTree).
//   - Ready-made descriptors: Sum, Min, Max, Concat, GCD, BitOr, BitXor.
//   - Sampled law checks (Associative, Commutative, Idempotent, ...) as
//     best-effort construction-time guards and test helpers.
//
// Why:
//
//   - One descriptor drives three different tree layouts; swapping min for
//     sum or gcd never touches container code.
//   - Which laws a container needs is part of its contract:
//     fenwick.Tree needs a commutative monoid, segtree.Tree only a monoid,
//     sparsetable.Table an idempotent monoid, fenwick.GroupTree a
//     commutative group.
//
// Laws (documented contracts — not mechanically verifiable in general):
//
//   - Associativity: Combine(Combine(x,y),z) == Combine(x,Combine(y,z)).
//   - Identity:      Combine(Identity(),x) == Combine(x,Identity()) == x.
//   - Commutativity: Combine(x,y) == Combine(y,x)         (where required).
//   - Idempotence:   Combine(x,x) == x                    (where required).
//   - Inverse:       Combine(x,Invert(x)) == Identity()   (groups).
//
// The law-check helpers sample caller-supplied values and catch gross
// violations (handing Sum to a sparse table, Min to a group fold); they can
// never prove a law holds. Containers do not run them — pay for checking
// only where you choose to.
package algebra
