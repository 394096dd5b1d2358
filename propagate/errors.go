package propagate

import "errors"

// ErrContradiction is returned by PropagateFrom when some cell is reduced
// to zero possibilities. The wave is left in an undefined state; the
// caller must reinitialise it before the engine can be reused.
var ErrContradiction = errors.New("propagate: contradiction")
