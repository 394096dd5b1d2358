package tile

import "github.com/krychu/wfc/image"

// Tile is one distinct N×N patch extracted from the (augmented) input. Freq
// counts how many augmented source windows reduced to this exact pixel
// pattern after deduplication. All tiles produced by a single Build share
// identical (N, components).
type Tile struct {
	img  *image.Image
	freq int
}

// Image returns the tile's owned N×N pixel buffer.
func (t Tile) Image() *image.Image { return t.img }

// Freq returns the tile's frequency: the number of augmented windows that
// deduplicated to this tile.
func (t Tile) Freq() int { return t.freq }

// BuildOptions selects which augmentation variants Build appends to the
// raw set of extracted windows, and whether the input is toroidally
// expanded before extraction so that tiles may wrap the seam.
type BuildOptions struct {
	// Expand wraps the input by (tileW-1, tileH-1) before cutting windows.
	Expand bool
	// XFlip appends the horizontal mirror of every current tile.
	XFlip bool
	// YFlip appends the vertical mirror of every current tile, except the
	// combination already produced by XFlip+Rotate (see Build).
	YFlip bool
	// Rotate appends the 90/180/270 degree rotations of every current tile.
	Rotate bool
}

// Set is the output of Build: the deduplicated, frequency-weighted tile
// list together with the adjacency rules derived from it. Set is immutable
// after construction.
type Set struct {
	Tiles []Tile
	Rules AdjacencyMatrix
}

// Len returns the number of distinct tiles in the set.
func (s *Set) Len() int { return len(s.Tiles) }
