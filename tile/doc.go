// Package tile extracts, augments, and deduplicates N×N patches from an
// input image, and computes the pairwise adjacency rules used by the
// propagator.
//
// Build cuts every N×N window from the (possibly toroidally expanded)
// input, optionally appends horizontal-flip, vertical-flip, and 90°-rotation
// variants, deduplicates by pixel equality while summing frequencies, and
// finally derives a dense AdjacencyMatrix: allowed[d][i,j] records whether
// tile j may sit d-ward of tile i, tested by overlap equality on an
// (N-1)-wide strip.
package tile
