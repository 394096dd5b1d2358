package tile

import "errors"

// Sentinel errors for tile extraction and the adjacency-rule build.
var (
	// ErrTileTooLarge indicates the requested tile size exceeds the input
	// image dimensions and expand was not requested.
	ErrTileTooLarge = errors.New("tile: tile size exceeds input dimensions")

	// ErrInvalidTileSize indicates a non-positive tile width or height.
	ErrInvalidTileSize = errors.New("tile: tile width and height must be >= 1")

	// ErrNoTiles indicates the extraction step produced zero windows (should
	// be unreachable given ErrTileTooLarge / ErrInvalidTileSize, but guarded
	// defensively since Build is the only public constructor of a Set).
	ErrNoTiles = errors.New("tile: no tiles extracted from input")
)
