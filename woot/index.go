package woot

import (
	"github.com/google/btree"

	"github.com/riftlabs/crdt/id"
)

// idIndex is a sub-linear membership cache over every identifier
// currently present in a WSeq's elements list, ordered by the
// specification's identifier comparator. It answers "is this
// identifier present" for the enqueue pre-filter (§4.2.3) and the
// executability check (§4.2.6) in O(log n) instead of the O(n) scan
// that would otherwise be needed on every Enqueue/ApplyPending call.
//
// idIndex is a derived cache, never part of the replicated state: it
// can be rebuilt from elements at any time without changing observable
// behavior, and it never participates in ordering decisions — those
// remain the job of elements itself (see woot's integrate, which still
// scans elements as the specification describes).
type idIndex[S comparable] struct {
	tree *btree.BTreeG[id.ID[S]]
}

func newIDIndex[S comparable](siteLess id.SiteOrder[S]) *idIndex[S] {
	less := func(a, b id.ID[S]) bool { return id.Less(a, b, siteLess) }
	return &idIndex[S]{tree: btree.NewG(32, less)}
}

func (x *idIndex[S]) add(i id.ID[S]) {
	x.tree.ReplaceOrInsert(i)
}

func (x *idIndex[S]) contains(i id.ID[S]) bool {
	_, ok := x.tree.Get(i)
	return ok
}

func (x *idIndex[S]) len() int {
	return x.tree.Len()
}
