// Package image defines a tightly packed pixel buffer and a set of pure
// transforms over it (copy, flip, rotate, toroidal expand, sub-rectangle
// extraction, and the overlap/equality tests the tile builder and
// propagator rely on).
//
// An Image owns its bytes: width W, height H, a component count C in
// 1..4, and a row-major, component-interleaved byte slice of length
// W*H*C. The pixel at (x,y) begins at offset (y*W+x)*C.
//
// Every transform in this package allocates and returns a new Image;
// none of them mutate their source.
package image
