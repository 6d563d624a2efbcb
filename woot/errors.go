package woot

import "errors"

// ErrIndexOutOfRange is returned by GenerateInsert/GenerateDelete when
// the requested visible index has no corresponding element, per §7 of
// the specification.
var ErrIndexOutOfRange = errors.New("woot: index out of range")
