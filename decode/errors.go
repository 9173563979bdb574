package decode

import "errors"

// ErrCycle signals a positive cycle was found while relaxing the lattice.
// The lattice is a DAG by construction (lattice.Build never creates a
// back edge), so seeing this means an invariant was violated upstream —
// treat it as an internal error, not a user-facing one.
var ErrCycle = errors.New("decode: positive cycle detected in lattice")
