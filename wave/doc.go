// Package wave holds the per-cell possibility sets that make up a Wave
// Function Collapse run: a W*H grid of cells, each carrying a bounded set
// of still-possible tile indices, a running sum of their frequencies, and a
// cached Shannon entropy used by the observer to pick the next cell to
// collapse.
//
// Wave also owns the row-major grid addressing (index/coordinate
// conversions and in-bounds neighbour lookups) shared by the propagator and
// the renderer.
package wave
