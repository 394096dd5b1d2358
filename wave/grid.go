package wave

import "github.com/krychu/wfc/image"

// grid carries the row-major addressing shared by Wave, the propagator, and
// the renderer: dimensions, index<->coordinate conversion, and in-bounds
// neighbour lookups in each of the four directions.
type grid struct {
	width, height int
}

// index maps (x,y) to a row-major index: y*width + x.
// Complexity: O(1).
func (g grid) index(x, y int) int {
	return y*g.width + x
}

// coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g grid) coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// inBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// neighbor returns the cell index that lies d-ward of idx, and whether that
// neighbour is in bounds.
// Complexity: O(1).
func (g grid) neighbor(idx int, d image.Direction) (int, bool) {
	x, y := g.coordinate(idx)
	nx, ny := x+d.DX(), y+d.DY()
	if !g.inBounds(nx, ny) {
		return -1, false
	}
	return g.index(nx, ny), true
}

// cellCount returns width*height.
func (g grid) cellCount() int {
	return g.width * g.height
}
