// Package siteid supplies a concrete, production-shaped site identifier
// for the generic S type parameter used throughout id, woot, set, and
// causal. The core treats S as opaque; this package offers one ready-made
// choice, following the teacher repo's own use of github.com/google/uuid
// for delta and message identifiers. The demo CLIs and tests in this
// module use plain string and int sites instead.
package siteid

import "github.com/google/uuid"

// ID is a site identifier backed by a UUIDv7 (time-sortable). It is
// comparable (the underlying array is comparable, so == works) and
// orderable via Less.
type ID struct {
	u uuid.UUID
}

// New generates a fresh, time-sortable site identifier.
func New() ID {
	u, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the machine's entropy source is broken;
		// fall back to a random v4 rather than propagating a panic-class
		// error through every call site that just wants a site id.
		u = uuid.New()
	}
	return ID{u: u}
}

// FromString parses an existing identifier, e.g. one received from a
// remote peer out-of-band.
func FromString(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID{u: u}, nil
}

// String renders the canonical UUID text form.
func (id ID) String() string {
	return id.u.String()
}

// Less is a strict total order over ID, suitable as id.SiteOrder.
func Less(a, b ID) bool {
	return bytesLess(a.u[:], b.u[:])
}

func bytesLess(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
