// Package wfc is a small image-generation engine implementing the
// overlapping variant of the Wave Function Collapse algorithm.
//
// Given a small input bitmap, it synthesizes a larger output bitmap that is
// locally similar to the input: every N×N window of the output appears
// somewhere in the (optionally augmented) input.
//
// The root package holds the observer/driver: Engine, its functional
// Options, and the renderer. Everything it orchestrates lives in leaf
// subpackages:
//
//	image/     — pixel buffer type & pure transforms (flip, rotate, expand, overlap)
//	tile/      — tile extraction, augmentation, dedup, adjacency rules
//	wave/      — per-cell possibility sets, entropy, grid addressing
//	propagate/ — worklist-driven constraint propagation
//	imageio/   — PNG/BMP/TGA/JPEG load & save (out-of-core collaborator)
//
// The solver is synchronous, single-threaded, and restarts on contradiction
// rather than backtracking. See CreateOverlapping for the main entry point.
//
//	go get github.com/krychu/wfc
package wfc
