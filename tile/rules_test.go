package tile

import (
	"testing"

	"github.com/krychu/wfc/image"
)

func TestBuildAdjacencyMatrix_SymmetryAndSelfPair(t *testing.T) {
	// Two 2x2 tiles whose RIGHT-overlap is compatible, to exercise a
	// non-trivial off-diagonal entry alongside the required self-pair check.
	a, _ := image.New(2, 2, 1)
	copy(a.Bytes(), []byte{1, 2, 3, 4})
	b, _ := image.New(2, 2, 1)
	copy(b.Bytes(), []byte{2, 9, 4, 9})

	tiles := []Tile{{img: a, freq: 1}, {img: b, freq: 1}}
	m := buildAdjacencyMatrix(tiles)

	dirs := []image.Direction{image.UP, image.DOWN, image.LEFT, image.RIGHT}
	for _, d := range dirs {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				got := m.Allowed(d, i, j)
				want := m.Allowed(d.Opposite(), j, i)
				if got != want {
					t.Errorf("Allowed(%v,%d,%d)=%v != Allowed(%v,%d,%d)=%v", d, i, j, got, d.Opposite(), j, i, want)
				}
			}
		}
	}

	// The self-pair must be computed, not assumed; a uniform-edge tile is
	// compatible with itself in every direction.
	uniform, _ := image.New(2, 2, 1)
	copy(uniform.Bytes(), []byte{7, 7, 7, 7})
	self := buildAdjacencyMatrix([]Tile{{img: uniform, freq: 1}})
	for _, d := range dirs {
		if !self.Allowed(d, 0, 0) {
			t.Errorf("uniform tile should self-tile in direction %v", d)
		}
	}
}
