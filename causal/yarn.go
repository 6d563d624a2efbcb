package causal

import "sort"

// Yarn is an append-only sequence of atoms, all created by the same
// site, whose index values run 0..len-1 without gaps. Atoms are
// immutable once inserted; the only supported mutation that removes an
// atom is the explicit, append-only-breaking Remove, meant for local
// garbage collection only.
type Yarn[O any, S comparable] struct {
	site  S
	atoms []Atom[O, S]
}

// NewYarn returns an empty yarn owned by site.
func NewYarn[O any, S comparable](site S) *Yarn[O, S] {
	return &Yarn[O, S]{site: site}
}

// Site returns the yarn's owning site.
func (y *Yarn[O, S]) Site() S {
	return y.site
}

// Len returns the number of atoms currently in the yarn.
func (y *Yarn[O, S]) Len() int {
	return len(y.atoms)
}

// At returns the atom at the given index. ok is false if index is out
// of range.
func (y *Yarn[O, S]) At(index uint32) (Atom[O, S], bool) {
	if int(index) >= len(y.atoms) {
		return Atom[O, S]{}, false
	}
	return y.atoms[index], true
}

// Insert appends op with the given dependency set, assigning it the
// next index in this yarn (0 if the yarn is currently empty), and
// returns the new atom's identifier.
func (y *Yarn[O, S]) Insert(op O, deps map[AtomID[S]]struct{}) AtomID[S] {
	next := uint32(len(y.atoms))
	id := AtomID[S]{Site: y.site, Index: next}
	y.atoms = append(y.atoms, Atom[O, S]{
		Op:   op,
		ID:   id,
		Deps: cloneDeps(deps),
	})
	return id
}

// Merge combines y with other, which must be a yarn of the same site.
// The result is the union of both atom lists, deduplicated by
// identifier and sorted by index; y is not mutated.
func (y *Yarn[O, S]) Merge(other *Yarn[O, S]) (*Yarn[O, S], error) {
	if y.site != other.site {
		return nil, ErrSiteMismatch
	}

	byID := make(map[AtomID[S]]Atom[O, S], len(y.atoms)+len(other.atoms))
	for _, a := range y.atoms {
		byID[a.ID] = a
	}
	for _, a := range other.atoms {
		byID[a.ID] = a
	}

	merged := make([]Atom[O, S], 0, len(byID))
	for _, a := range byID {
		merged = append(merged, a)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ID.Index < merged[j].ID.Index
	})

	return &Yarn[O, S]{site: y.site, atoms: merged}, nil
}

// Clone returns a yarn with the same site and atoms as y, backed by an
// independent slice: mutating the clone with Insert or Remove never
// affects y, and vice versa.
func (y *Yarn[O, S]) Clone() *Yarn[O, S] {
	atoms := make([]Atom[O, S], len(y.atoms))
	copy(atoms, y.atoms)
	return &Yarn[O, S]{site: y.site, atoms: atoms}
}

// Remove deletes the atom with the given id, if present, and scrubs id
// from every remaining atom's deps set. This is the single sanctioned
// mutation that breaks append-only semantics, intended for local
// tombstone/GC use, not for propagation.
func (y *Yarn[O, S]) Remove(id AtomID[S]) {
	out := y.atoms[:0:0]
	for _, a := range y.atoms {
		if a.ID == id {
			continue
		}
		if _, ok := a.Deps[id]; ok {
			a.Deps = cloneDeps(a.Deps)
			delete(a.Deps, id)
		}
		out = append(out, a)
	}
	y.atoms = out
}

// Iterator returns a forward iterator over the yarn's atoms in index
// order.
func (y *Yarn[O, S]) Iterator() *YarnIterator[O, S] {
	return &YarnIterator[O, S]{yarn: y}
}

// YarnIterator walks a Yarn's atoms from index 0 upward. Iterating an
// empty yarn is an error from the first call, matching the source
// implementation rather than returning a silently-exhausted iterator.
type YarnIterator[O any, S comparable] struct {
	yarn *Yarn[O, S]
	pos  int
}

// Next returns the next atom and true, or a zero Atom and false when
// the iterator is exhausted. It returns ErrEmptyIterator if the
// underlying yarn has no atoms at all.
func (it *YarnIterator[O, S]) Next() (Atom[O, S], bool, error) {
	if len(it.yarn.atoms) == 0 {
		return Atom[O, S]{}, false, ErrEmptyIterator
	}
	if it.pos >= len(it.yarn.atoms) {
		return Atom[O, S]{}, false, nil
	}
	a := it.yarn.atoms[it.pos]
	it.pos++
	return a, true, nil
}

// Clear is intentionally unsupported: a Yarn is append-only, and the
// only sanctioned way to shrink it is the explicit, destructive
// Remove.
func (y *Yarn[O, S]) Clear() error {
	return ErrUnsupportedMutation
}

// RetainAll is intentionally unsupported for the same reason as Clear.
func (y *Yarn[O, S]) RetainAll(func(Atom[O, S]) bool) error {
	return ErrUnsupportedMutation
}
