package woot

import "sync"

// Guarded wraps a *WSeq with a sync.RWMutex, for callers who share one
// replica across goroutines instead of serializing access themselves
// (§5's single-threaded-cooperative model is the primary contract;
// this is the opt-in exception). The locking shape follows the
// teacher's own guarded structs (drone/pkg/sensor/delta_set.go's
// DeltaSet, drone/pkg/network/neighbor_table.go's NeighborTable): one
// mutex field, Lock/Unlock bracketing each method body, read-only
// methods taking RLock.
type Guarded[S comparable, T any] struct {
	mu  sync.RWMutex
	seq *WSeq[S, T]
}

// NewGuarded wraps an existing *WSeq for concurrent access.
func NewGuarded[S comparable, T any](seq *WSeq[S, T]) *Guarded[S, T] {
	return &Guarded[S, T]{seq: seq}
}

// GenerateInsert is WSeq.GenerateInsert under the write lock.
func (g *Guarded[S, T]) GenerateInsert(i int, v T) (Op[S, T], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq.GenerateInsert(i, v)
}

// GenerateDelete is WSeq.GenerateDelete under the write lock.
func (g *Guarded[S, T]) GenerateDelete(i int) (Op[S, T], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq.GenerateDelete(i)
}

// Enqueue is WSeq.Enqueue under the write lock.
func (g *Guarded[S, T]) Enqueue(op Op[S, T]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq.Enqueue(op)
}

// EnqueueAll is WSeq.EnqueueAll under the write lock.
func (g *Guarded[S, T]) EnqueueAll(ops []Op[S, T]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq.EnqueueAll(ops)
}

// ApplyPending is WSeq.ApplyPending under the write lock.
func (g *Guarded[S, T]) ApplyPending() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq.ApplyPending()
}

// Value is WSeq.Value under the read lock.
func (g *Guarded[S, T]) Value() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.seq.Value()
}

// Len is WSeq.Len under the read lock.
func (g *Guarded[S, T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.seq.Len()
}
