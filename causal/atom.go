// Package causal implements the Causal Graph: a mapping from site
// identifiers to per-site append-only "yarns" of immutable atoms, each
// atom carrying an opaque operation payload and a set of identifiers
// it depends on.
package causal

// AtomID identifies an atom by the site that created it and its
// position within that site's yarn.
type AtomID[S comparable] struct {
	Site  S
	Index uint32
}

// Atom is an immutable triple of operation payload, identifier, and
// the set of identifiers it causally depends on. O is left opaque to
// this package — callers plug in whatever operation type their
// collaborator exchanges.
type Atom[O any, S comparable] struct {
	Op   O
	ID   AtomID[S]
	Deps map[AtomID[S]]struct{}
}

// DepsOf returns a fresh deps set built from ids, for passing to
// Yarn.Insert.
func DepsOf[S comparable](ids ...AtomID[S]) map[AtomID[S]]struct{} {
	out := make(map[AtomID[S]]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func cloneDeps[S comparable](deps map[AtomID[S]]struct{}) map[AtomID[S]]struct{} {
	out := make(map[AtomID[S]]struct{}, len(deps))
	for k := range deps {
		out[k] = struct{}{}
	}
	return out
}
