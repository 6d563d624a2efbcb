// Package set provides the state-based set CRDTs named in the
// specification: G-Set, PN-Set, and MC-Set. Each is a pure value type;
// Add/Remove/Merge return a new value rather than mutating receivers,
// matching the specification's "merge as least upper bound" framing
// rather than the teacher's own in-place AWORSet.Merge.
package set

import mapset "github.com/deckarep/golang-set/v2"

// GSet is a grow-only set: Add returns a new set with one more element,
// and Merge is set union. It is a join-semilattice under the subset
// order: commutative, associative, and idempotent. Backed by
// mapset.Set rather than a bare map, since union/difference/equality
// are exactly the operations that library exists to provide.
type GSet[T comparable] struct {
	set mapset.Set[T]
}

// NewGSet returns the empty G-Set.
func NewGSet[T comparable]() GSet[T] {
	return GSet[T]{set: mapset.NewThreadUnsafeSet[T]()}
}

// GSetOf returns a G-Set seeded with xs.
func GSetOf[T comparable](xs ...T) GSet[T] {
	return GSet[T]{set: mapset.NewThreadUnsafeSet(xs...)}
}

// Add returns a new set containing x in addition to s's members.
func (s GSet[T]) Add(x T) GSet[T] {
	out := s.set.Clone()
	out.Add(x)
	return GSet[T]{set: out}
}

// Contains reports set membership.
func (s GSet[T]) Contains(x T) bool {
	return s.set.Contains(x)
}

// Len returns the number of elements.
func (s GSet[T]) Len() int {
	return s.set.Cardinality()
}

// Elements returns the set's members in unspecified order.
func (s GSet[T]) Elements() []T {
	return s.set.ToSlice()
}

// Merge returns the union of s and other — the join-semilattice
// operation, commutative, associative, and idempotent.
func (s GSet[T]) Merge(other GSet[T]) GSet[T] {
	return GSet[T]{set: s.set.Union(other.set)}
}

// Difference returns the members of s not in other.
func (s GSet[T]) Difference(other GSet[T]) GSet[T] {
	return GSet[T]{set: s.set.Difference(other.set)}
}

// Equal reports whether s and other hold the same members.
func (s GSet[T]) Equal(other GSet[T]) bool {
	return s.set.Equal(other.set)
}
