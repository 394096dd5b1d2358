package tile

import "github.com/krychu/wfc/image"

// Build cuts every tileW x tileH window from input (optionally toroidally
// expanded), appends the augmentation variants requested by opts,
// deduplicates by pixel equality while summing frequencies, and derives the
// adjacency matrix. Returns ErrInvalidTileSize for a non-positive tile size,
// or ErrTileTooLarge if the tile does not fit the input and opts.Expand is
// false.
//
// Augmentation proceeds in a fixed order:
//  1. extract all windows;
//  2. if XFlip, append the horizontal mirror of every current tile;
//  3. if YFlip, append the vertical mirror of every current tile — unless
//     XFlip and Rotate are both set, in which case the upcoming 180°
//     rotation of the horizontally-mirrored tiles already reproduces every
//     vertical mirror, and re-adding them would only inflate the count;
//  4. if Rotate, append the 90/180/270 rotations of every current tile.
//
// Complexity: O(M*N^2) for extraction+augmentation (M windows, N the tile
// side), O(M'^2*N^2) for dedup+rules where M' is the post-augmentation
// count.
func Build(input *image.Image, tileW, tileH int, opts BuildOptions) (*Set, error) {
	if tileW < 1 || tileH < 1 {
		return nil, ErrInvalidTileSize
	}

	src := input
	if opts.Expand {
		src = image.Expand(input, tileW-1, tileH-1)
	} else if tileW > input.Width() || tileH > input.Height() {
		return nil, ErrTileTooLarge
	}

	tiles, err := extractWindows(src, input, tileW, tileH, opts.Expand)
	if err != nil {
		return nil, err
	}

	if opts.XFlip {
		tiles = append(tiles, mapImages(tiles, image.FlipH)...)
	}
	if opts.YFlip && !(opts.XFlip && opts.Rotate) {
		tiles = append(tiles, mapImages(tiles, image.FlipV)...)
	}
	if opts.Rotate {
		base := tiles
		tiles = append(tiles, mapImages(base, rotateBy(1))...)
		tiles = append(tiles, mapImages(base, rotateBy(2))...)
		tiles = append(tiles, mapImages(base, rotateBy(3))...)
	}

	deduped := dedup(tiles)
	if len(deduped) == 0 {
		return nil, ErrNoTiles
	}
	rules := buildAdjacencyMatrix(deduped)

	return &Set{Tiles: deduped, Rules: rules}, nil
}

// extractWindows slides a tileW x tileH window over src. When expanded is
// true the window count is governed by the original (pre-expansion) input
// dimensions; otherwise it is governed by src itself, shrunk by the tile
// size.
func extractWindows(src, original *image.Image, tileW, tileH int, expanded bool) ([]*image.Image, error) {
	countW, countH := src.Width()-tileW+1, src.Height()-tileH+1
	if expanded {
		countW, countH = original.Width(), original.Height()
	}
	if countW < 1 || countH < 1 {
		return nil, ErrTileTooLarge
	}
	out := make([]*image.Image, 0, countW*countH)
	for y := 0; y < countH; y++ {
		for x := 0; x < countW; x++ {
			win, err := image.Subrect(src, x, y, tileW, tileH)
			if err != nil {
				return nil, err
			}
			out = append(out, win)
		}
	}
	return out, nil
}

// mapImages applies fn to every image in imgs, returning the new slice of
// results (imgs itself is unchanged).
func mapImages(imgs []*image.Image, fn func(*image.Image) *image.Image) []*image.Image {
	out := make([]*image.Image, len(imgs))
	for i, im := range imgs {
		out[i] = fn(im)
	}
	return out
}

func rotateBy(k int) func(*image.Image) *image.Image {
	return func(a *image.Image) *image.Image { return image.Rotate90(a, k) }
}

// dedup scans imgs linearly, keeping the first occurrence of each distinct
// byte pattern and incrementing its frequency for every later duplicate.
// The result preserves the stable subsequence order of first occurrences.
func dedup(imgs []*image.Image) []Tile {
	out := make([]Tile, 0, len(imgs))
	for _, im := range imgs {
		found := false
		for i := range out {
			if image.Equals(out[i].img, im) {
				out[i].freq++
				found = true
				break
			}
		}
		if !found {
			out = append(out, Tile{img: im, freq: 1})
		}
	}
	return out
}
