package set

// PNSet is a positive-negative set: a pair of G-Sets tracking additions
// and removals separately. Its membership test is straightforward
// (positive minus negative), but its size, emptiness, and iteration are
// deliberately carried over from the source implementation's own
// arithmetic rather than "fixed" to match membership — see Present for
// the corrected view.
type PNSet[T comparable] struct {
	positive GSet[T]
	negative GSet[T]
}

// NewPNSet returns the empty PN-Set.
func NewPNSet[T comparable]() PNSet[T] {
	return PNSet[T]{positive: NewGSet[T](), negative: NewGSet[T]()}
}

// PNSetOf returns a PN-Set with xs added.
func PNSetOf[T comparable](xs ...T) PNSet[T] {
	s := NewPNSet[T]()
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Add records x as added. Once added, an element can only be hidden by
// Remove, never fully forgotten.
func (s PNSet[T]) Add(x T) PNSet[T] {
	return PNSet[T]{positive: s.positive.Add(x), negative: s.negative}
}

// Remove records x as removed. Removing an element never seen by Add
// still records the tombstone; Contains still reports it absent.
func (s PNSet[T]) Remove(x T) PNSet[T] {
	return PNSet[T]{positive: s.positive, negative: s.negative.Add(x)}
}

// Contains reports whether x is currently a member: added, and not
// removed since.
func (s PNSet[T]) Contains(x T) bool {
	return s.positive.Contains(x) && !s.negative.Contains(x)
}

// Merge takes the union of both replicas' positive and negative sets.
// Commutative, associative, idempotent: the join-semilattice operation.
func (s PNSet[T]) Merge(other PNSet[T]) PNSet[T] {
	return PNSet[T]{
		positive: s.positive.Merge(other.positive),
		negative: s.negative.Merge(other.negative),
	}
}

// Size follows the source definition literally: |positive| minus
// |positive ∪ negative|. While every removed element has also been
// added, positive∪negative == positive, so Size is 0 — even when
// Contains reports members. Removing an element that was never added
// (locally or on a merged-in replica) puts it in negative only, and
// Size then drops below 0 by one per such element. Use Present for a
// count that matches Contains.
func (s PNSet[T]) Size() int {
	union := s.positive.Merge(s.negative)
	return s.positive.Len() - union.Len()
}

// IsEmpty mirrors Size's definition: true when positive ∪ negative
// equals positive, i.e. negative contributes nothing new. It is not
// equivalent to "no element satisfies Contains" — see Size.
func (s PNSet[T]) IsEmpty() bool {
	union := s.positive.Merge(s.negative)
	return union.Equal(s.positive)
}

// Iterate yields positive minus (positive ∪ negative) — always empty
// under this package's own Add/Remove, by the same reasoning as Size.
// Kept for source fidelity; use Present to iterate actual members.
func (s PNSet[T]) Iterate() []T {
	union := s.positive.Merge(s.negative)
	return s.positive.Difference(union).Elements()
}

// Present returns the elements for which Contains is true: positive
// minus negative. This is the corrected view recommended alongside the
// source-faithful Size/IsEmpty/Iterate.
func (s PNSet[T]) Present() []T {
	return s.positive.Difference(s.negative).Elements()
}
