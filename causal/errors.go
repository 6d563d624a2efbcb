package causal

import "errors"

var (
	// ErrSiteMismatch is raised by Yarn.Merge when the two operands
	// belong to different sites.
	ErrSiteMismatch = errors.New("causal: yarn site mismatch")

	// ErrEmptyIterator is raised by iterating an empty yarn, mirroring
	// the source implementation's behaviour rather than silently
	// returning a closed/exhausted iterator.
	ErrEmptyIterator = errors.New("causal: cannot iterate an empty yarn")

	// ErrUnsupportedMutation is returned by Yarn.Clear and
	// Yarn.RetainAll; the one sanctioned destructive mutation is
	// Yarn.Remove, called explicitly for local garbage collection.
	ErrUnsupportedMutation = errors.New("causal: yarn does not support this mutation")
)
