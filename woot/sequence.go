package woot

import (
	"fmt"
	"sort"

	"github.com/riftlabs/crdt/id"
	"github.com/riftlabs/crdt/internal/config"
	"github.com/riftlabs/crdt/internal/telemetry"
	"github.com/riftlabs/crdt/option"
)

// WSeq is a replica of a WOOT sequence: the owning site, its local
// clock, the internal list of elements (sentinels plus tombstones plus
// visible content, never shrinking), the pending queue of
// not-yet-executable remote operations, and the set of already
// integrated operations used for idempotent replay detection.
type WSeq[S comparable, T any] struct {
	site     S
	siteLess id.SiteOrder[S]
	clock    uint64

	elements []Element[S, T]
	pending  []Op[S, T]

	integrated map[opKey[S]]struct{}
	index      *idIndex[S]

	log *telemetry.Replica
}

// New creates a replica owned by site. siteLess must be a strict total
// order over S; it is the only thing the engine needs to know about S
// beyond comparability.
func New[S comparable, T any](site S, siteLess id.SiteOrder[S], cfg config.ReplicaConfig) *WSeq[S, T] {
	s := &WSeq[S, T]{
		site:       site,
		siteLess:   siteLess,
		elements:   []Element[S, T]{startElement[S, T](), endElement[S, T]()},
		pending:    make([]Op[S, T], 0, cfg.PendingCapacity),
		integrated: make(map[opKey[S]]struct{}),
		index:      newIDIndex[S](siteLess),
		log:        telemetry.NewReplica(fmt.Sprint(site), cfg.Logger),
	}
	s.index.add(id.StartID[S]())
	s.index.add(id.EndID[S]())
	return s
}

// Site returns the owning replica's site identifier.
func (s *WSeq[S, T]) Site() S { return s.site }

// Clock returns the current local clock value.
func (s *WSeq[S, T]) Clock() uint64 { return s.clock }

// Len returns the length of the internal list, sentinels and
// tombstones included. It never decreases.
func (s *WSeq[S, T]) Len() int { return len(s.elements) }

// visibleAt returns the k-th visible element (0-based), and its
// position within elements.
func (s *WSeq[S, T]) visibleAt(k int) (Element[S, T], int, bool) {
	if k < 0 {
		return Element[S, T]{}, -1, false
	}
	seen := -1
	for i, e := range s.elements {
		if !e.Visible {
			continue
		}
		seen++
		if seen == k {
			return e, i, true
		}
	}
	return Element[S, T]{}, -1, false
}

// positionOf scans elements for eid, returning its slice index. This is
// the linear scan the specification's integration algorithm itself
// relies on (§4.2.4); identifier order and list-position order coincide
// only locally, so no cache can answer this faster without eager
// invalidation on every shift.
func (s *WSeq[S, T]) positionOf(eid id.ID[S]) (int, bool) {
	for i, e := range s.elements {
		if id.Equal(e.ID, eid) {
			return i, true
		}
	}
	return -1, false
}

// present answers the sub-linear membership question idIndex exists
// for: is eid currently in elements at all (position unknown/unneeded).
func (s *WSeq[S, T]) present(eid id.ID[S]) bool {
	return s.index.contains(eid)
}

func (s *WSeq[S, T]) markIntegrated(op Op[S, T]) {
	s.integrated[keyOf(op)] = struct{}{}
}

func (s *WSeq[S, T]) isIntegrated(op Op[S, T]) bool {
	_, ok := s.integrated[keyOf(op)]
	return ok
}

// GenerateInsert implements §4.2.1: insert v at visible index i,
// advance the local clock, integrate locally, and return the Insert
// operation to broadcast.
func (s *WSeq[S, T]) GenerateInsert(i int, v T) (Op[S, T], error) {
	var prevID id.ID[S]
	if i > 0 {
		prevElem, _, ok := s.visibleAt(i - 1)
		if !ok {
			return Op[S, T]{}, fmt.Errorf("%w: insert at %d", ErrIndexOutOfRange, i)
		}
		prevID = prevElem.ID
	} else {
		prevID = id.StartID[S]()
	}

	nextID := id.EndID[S]()
	if nextElem, _, ok := s.visibleAt(i); ok {
		nextID = nextElem.ID
	}

	s.clock++
	e := Element[S, T]{
		ID:       id.NewElement(s.site, s.clock),
		Value:    option.Some(v),
		Visible:  true,
		PrevHint: prevID,
		NextHint: nextID,
	}

	if err := s.integrateInsert(e, prevID, nextID); err != nil {
		return Op[S, T]{}, err
	}

	op := Op[S, T]{Tag: OpInsert, Element: e}
	s.log.Generated(op.Tag.String(), fmt.Sprint(e.ID))
	return op, nil
}

// GenerateDelete implements §4.2.2: delete the element at visible index
// i, integrate the tombstone locally, and return the Delete operation
// to broadcast.
func (s *WSeq[S, T]) GenerateDelete(i int) (Op[S, T], error) {
	e, _, ok := s.visibleAt(i)
	if !ok {
		return Op[S, T]{}, fmt.Errorf("%w: delete at %d", ErrIndexOutOfRange, i)
	}
	if err := s.integrateDelete(e); err != nil {
		return Op[S, T]{}, err
	}
	op := Op[S, T]{Tag: OpDelete, Element: e}
	s.log.Generated(op.Tag.String(), fmt.Sprint(e.ID))
	return op, nil
}

// integrateInsert implements §4.2.4 as an iterative scan rather than a
// recursion, per the design notes: on each pass the (prevID, nextID)
// bracket either resolves to the base case or narrows, and the scan
// only needs to cover [p+1, n] rather than [0, n] (the "equivalent,
// cheaper choice" the specification explicitly allows).
func (s *WSeq[S, T]) integrateInsert(e Element[S, T], prevID, nextID id.ID[S]) error {
	for {
		p, ok := s.positionOf(prevID)
		if !ok {
			return fmt.Errorf("woot: insert not executable: prev hint %v absent", prevID)
		}
		n, ok := s.positionOf(nextID)
		if !ok {
			return fmt.Errorf("woot: insert not executable: next hint %v absent", nextID)
		}

		if n-p == 1 {
			s.insertElementAt(n, e)
			s.markIntegrated(Op[S, T]{Tag: OpInsert, Element: e})
			return nil
		}

		// Free room between the hinted neighbours: resolve the
		// ambiguity purely by identifier order, which every replica
		// agrees on.
		k := n
		for i := p + 1; i <= n; i++ {
			if !id.Less(s.elements[i].ID, e.ID, s.siteLess) {
				k = i
				break
			}
		}
		prevID = s.elements[k-1].ID
		nextID = s.elements[k].ID
	}
}

func (s *WSeq[S, T]) insertElementAt(pos int, e Element[S, T]) {
	s.elements = append(s.elements, Element[S, T]{})
	copy(s.elements[pos+1:], s.elements[pos:])
	s.elements[pos] = e
	s.index.add(e.ID)
}

// integrateDelete implements §4.2.5: locate the element by identifier
// and mark it invisible. The wire-carried Visible flag on e is
// irrelevant; only e.ID matters.
func (s *WSeq[S, T]) integrateDelete(e Element[S, T]) error {
	p, ok := s.positionOf(e.ID)
	if !ok {
		return fmt.Errorf("woot: delete not executable: target %v absent", e.ID)
	}
	s.elements[p].Visible = false
	s.markIntegrated(Op[S, T]{Tag: OpDelete, Element: e})
	return nil
}

// executable implements §4.2.6.
func (s *WSeq[S, T]) executable(op Op[S, T]) bool {
	if op.Tag == OpDelete {
		return s.present(op.Element.ID)
	}
	return s.present(op.Element.PrevHint) && s.present(op.Element.NextHint)
}

// Enqueue implements §4.2.3: a pre-filter, not a correctness guarantee.
// integrated still guards against double-application during the drain.
func (s *WSeq[S, T]) Enqueue(op Op[S, T]) {
	if op.Tag == OpInsert && s.present(op.Element.ID) {
		s.log.Dropped(op.Tag.String(), fmt.Sprint(op.Element.ID), "already present")
		return
	}
	for _, p := range s.pending {
		if Equal(p, op) {
			s.log.Dropped(op.Tag.String(), fmt.Sprint(op.Element.ID), "already pending")
			return
		}
	}
	s.pending = append(s.pending, op)
	s.log.Enqueued(op.Tag.String(), fmt.Sprint(op.Element.ID))
}

// EnqueueAll enqueues every op in order; pure convenience over Enqueue.
func (s *WSeq[S, T]) EnqueueAll(ops []Op[S, T]) {
	for _, op := range ops {
		s.Enqueue(op)
	}
}

// ApplyPending implements §4.2.7: drain pending until empty, blocked on
// prerequisites, or a replayed (already integrated) head is found — at
// which point the drain stops for this call, matching the source's
// observable behavior.
func (s *WSeq[S, T]) ApplyPending() {
	for {
		if len(s.pending) == 0 {
			return
		}

		if !s.executable(s.pending[0]) {
			sort.SliceStable(s.pending, func(i, j int) bool {
				return s.executable(s.pending[i]) && !s.executable(s.pending[j])
			})
			if !s.executable(s.pending[0]) {
				s.log.DrainBlocked(len(s.pending))
				return
			}
		}

		op := s.pending[0]
		s.pending = s.pending[1:]

		if s.isIntegrated(op) {
			s.log.DrainStoppedReplay(op.Tag.String(), fmt.Sprint(op.Element.ID))
			return
		}

		switch op.Tag {
		case OpDelete:
			if err := s.integrateDelete(op.Element); err != nil {
				s.log.Dropped(op.Tag.String(), fmt.Sprint(op.Element.ID), err.Error())
				continue
			}
		case OpInsert:
			if err := s.integrateInsert(op.Element, op.Element.PrevHint, op.Element.NextHint); err != nil {
				s.log.Dropped(op.Tag.String(), fmt.Sprint(op.Element.ID), err.Error())
				continue
			}
		}
		s.log.Integrated(op.Tag.String(), fmt.Sprint(op.Element.ID))
	}
}

// Value implements §4.2.8: the visible projection, sentinels excluded.
func (s *WSeq[S, T]) Value() []T {
	out := make([]T, 0, len(s.elements))
	for _, e := range s.elements {
		if !e.Visible {
			continue
		}
		if v, ok := e.Value.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
