// Package config centralizes the small set of tunables a replica needs
// at construction time, following the shape of the teacher repo's
// drone/internal/config/config.go (a single struct plus a
// DefaultConfig constructor).
package config

import "log/slog"

// ReplicaConfig configures a woot.WSeq at construction time (woot.New).
// The set and causal constructors take no configuration.
type ReplicaConfig struct {
	// Logger receives structured events for generate/enqueue/integrate/
	// drain. Nil falls back to slog.Default().
	Logger *slog.Logger

	// PendingCapacity preallocates the pending queue's backing array;
	// it is a hint, not a bound — the queue still grows past it.
	PendingCapacity int
}

// DefaultReplicaConfig returns the configuration used when a caller
// does not supply one.
func DefaultReplicaConfig() ReplicaConfig {
	return ReplicaConfig{
		Logger:          slog.Default(),
		PendingCapacity: 16,
	}
}
