package tile

import "github.com/krychu/wfc/image"

// AdjacencyMatrix is a flat 4×T×T boolean matrix: Allowed(d, i, j) reports
// whether tile j may be placed adjacent to tile i in direction d. It is
// immutable after Build and satisfies the symmetry
// Allowed(d,i,j) == Allowed(d.Opposite(),j,i) by construction.
//
// The matrix is stored as four T*T dense slices, one per direction, rather
// than a map, so the propagator's innermost loop does a single slice index
// per lookup.
type AdjacencyMatrix struct {
	tileCount int
	data      [4][]bool
}

// newAdjacencyMatrix allocates a zeroed T×T matrix per direction.
func newAdjacencyMatrix(tileCount int) AdjacencyMatrix {
	m := AdjacencyMatrix{tileCount: tileCount}
	for d := 0; d < 4; d++ {
		m.data[d] = make([]bool, tileCount*tileCount)
	}
	return m
}

// TileCount returns T, the dimension of the matrix.
func (m AdjacencyMatrix) TileCount() int { return m.tileCount }

func (m AdjacencyMatrix) set(d image.Direction, i, j int, v bool) {
	m.data[d][i*m.tileCount+j] = v
}

// Allowed reports whether tile j may be placed d-ward of tile i.
// Complexity: O(1).
func (m AdjacencyMatrix) Allowed(d image.Direction, i, j int) bool {
	return m.data[d][i*m.tileCount+j]
}

// buildAdjacencyMatrix computes allowed[d][i,j] = OverlapEquals(tiles[i],
// tiles[j], d) for every ordered pair and every direction, including the
// self-pair i==j, which is tested like any other pair and may be true.
// Complexity: O(4*T^2*N^2).
func buildAdjacencyMatrix(tiles []Tile) AdjacencyMatrix {
	T := len(tiles)
	m := newAdjacencyMatrix(T)
	dirs := [4]image.Direction{image.UP, image.DOWN, image.LEFT, image.RIGHT}
	for i := 0; i < T; i++ {
		for j := 0; j < T; j++ {
			for _, d := range dirs {
				m.set(d, i, j, image.OverlapEquals(tiles[i].img, tiles[j].img, d))
			}
		}
	}
	return m
}
