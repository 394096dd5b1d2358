package wave

import "errors"

// ErrNoTiles indicates a Wave was constructed with zero tiles, which would
// make every cell's possibility set empty from the start.
var ErrNoTiles = errors.New("wave: tile set must be non-empty")

// ErrDimensionsTooLarge indicates the requested width*height would allocate
// an unreasonably large cell grid; New rejects it before calling make.
var ErrDimensionsTooLarge = errors.New("wave: width*height exceeds maximum allowed cell count")
