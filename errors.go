package wfc

import (
	"errors"

	"github.com/krychu/wfc/propagate"
)

// ErrInvalidDimensions indicates a non-positive output width or height was
// passed to CreateOverlapping.
var ErrInvalidDimensions = errors.New("wfc: output width and height must be >= 1")

// ErrContradiction is returned by Run when propagation reduces some cell to
// zero possibilities. The wave is left in an undefined state; callers must
// call Init before reusing the engine. It is the same sentinel the
// propagate package reports, re-exported here so callers never need to
// import propagate just to check errors.Is(err, wfc.ErrContradiction).
var ErrContradiction = propagate.ErrContradiction
