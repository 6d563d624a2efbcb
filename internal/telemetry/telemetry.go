// Package telemetry is the ambient logging layer used by woot's
// sequence engine; the set and causal packages do not log. It follows the shape of the teacher repo's DroneLogger
// (drone/logging/logger.go): one method per event kind, printf-style
// structured fields — but built on the standard library's log/slog
// rather than a bespoke Printf wrapper, since slog is the structured
// logger the wider example corpus itself reaches for.
package telemetry

import (
	"log/slog"
)

// Replica wraps a *slog.Logger with the event vocabulary a WSeq, Graph,
// or set replica needs: local generation, remote delivery, and drain
// progress. A nil *Replica is valid and logs nothing, so callers that
// never configured a logger pay no cost.
type Replica struct {
	log *slog.Logger
	who string
}

// NewReplica returns a Replica logger scoped to the given site label. A
// nil log falls back to slog.Default().
func NewReplica(who string, log *slog.Logger) *Replica {
	if log == nil {
		log = slog.Default()
	}
	return &Replica{log: log, who: who}
}

// Generated logs a local generate (GenerateInsert/GenerateDelete).
func (r *Replica) Generated(op, elementID string) {
	if r == nil {
		return
	}
	r.log.Debug("generated", "site", r.who, "op", op, "element", elementID)
}

// Enqueued logs a remote operation accepted into the pending queue.
func (r *Replica) Enqueued(op, elementID string) {
	if r == nil {
		return
	}
	r.log.Debug("enqueued", "site", r.who, "op", op, "element", elementID)
}

// Dropped logs a remote operation rejected by the enqueue pre-filter
// (already present, or already pending).
func (r *Replica) Dropped(op, elementID, reason string) {
	if r == nil {
		return
	}
	r.log.Debug("dropped", "site", r.who, "op", op, "element", elementID, "reason", reason)
}

// Integrated logs a successful integration (insert placed, or delete
// applied).
func (r *Replica) Integrated(op, elementID string) {
	if r == nil {
		return
	}
	r.log.Debug("integrated", "site", r.who, "op", op, "element", elementID)
}

// DrainBlocked logs that ApplyPending made no further progress because
// the head of pending is still not executable.
func (r *Replica) DrainBlocked(pendingLen int) {
	if r == nil {
		return
	}
	r.log.Debug("drain_blocked", "site", r.who, "pending", pendingLen)
}

// DrainStoppedReplay logs the source-faithful drain stop (§4.2.7) when
// the head of pending turns out to already be integrated.
func (r *Replica) DrainStoppedReplay(op, elementID string) {
	if r == nil {
		return
	}
	r.log.Debug("drain_stopped_replay", "site", r.who, "op", op, "element", elementID)
}

// Merged logs a lattice merge (set or causal graph).
func (r *Replica) Merged(kind string) {
	if r == nil {
		return
	}
	r.log.Debug("merged", "site", r.who, "kind", kind)
}
