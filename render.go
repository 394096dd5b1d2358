package wfc

import (
	"github.com/krychu/wfc/image"
	"github.com/krychu/wfc/tile"
	"github.com/krychu/wfc/wave"
)

// renderOutput produces one pixel per cell of w by averaging the top-left
// pixel of every tile still possible at that cell, truncating each
// component to a byte. A fully collapsed cell yields its singleton tile's
// top-left pixel exactly; a still-superposed cell yields a blended preview.
// Complexity: O(W*H*avg possibilities per cell * components).
func renderOutput(w *wave.Wave, tiles []tile.Tile, components int) *image.Image {
	out, _ := image.New(w.Width(), w.Height(), components)
	sums := make([]int, components)
	for idx := 0; idx < w.CellCount(); idx++ {
		for c := range sums {
			sums[c] = 0
		}
		poss := w.Cell(idx).Possibilities()
		for _, t := range poss {
			px := tiles[t].Image().Pixel(0, 0)
			for c := 0; c < components; c++ {
				sums[c] += int(px[c])
			}
		}
		avg := make([]byte, components)
		n := len(poss)
		if n > 0 {
			for c := 0; c < components; c++ {
				avg[c] = byte(sums[c] / n)
			}
		}
		x, y := idx%w.Width(), idx/w.Width()
		out.SetPixel(x, y, avg)
	}
	return out
}
