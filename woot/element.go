package woot

import (
	"github.com/riftlabs/crdt/id"
	"github.com/riftlabs/crdt/option"
)

// Element is a stable, never-removed record in a WSeq's internal list.
// Non-sentinel elements carry a value; the two sentinels (Start/End) do
// not and are never visible.
type Element[S comparable, T any] struct {
	ID       id.ID[S]
	Value    option.Option[T]
	Visible  bool
	PrevHint id.ID[S]
	NextHint id.ID[S]
}

// startElement builds the Start sentinel: value absent, never visible,
// hints pointing at itself and at End (there being nothing before it).
func startElement[S comparable, T any]() Element[S, T] {
	return Element[S, T]{
		ID:       id.StartID[S](),
		Value:    option.None[T](),
		Visible:  false,
		PrevHint: id.StartID[S](),
		NextHint: id.EndID[S](),
	}
}

// endElement builds the End sentinel.
func endElement[S comparable, T any]() Element[S, T] {
	return Element[S, T]{
		ID:       id.EndID[S](),
		Value:    option.None[T](),
		Visible:  false,
		PrevHint: id.StartID[S](),
		NextHint: id.EndID[S](),
	}
}

// IsSentinel reports whether e is the Start or End sentinel.
func (e Element[S, T]) IsSentinel() bool {
	return e.ID.IsSentinel()
}
