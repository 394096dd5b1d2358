package wave

import (
	"math"
	"math/rand"

	"github.com/krychu/wfc/image"
	"github.com/krychu/wfc/tile"
)

// tieBreakEpsilon scales the additive noise used to break entropy ties in
// NextCell: a cell's score is entropy + U*tieBreakEpsilon, U drawn uniformly
// from [0,1), so equal-entropy cells are picked at random, not in scan order.
const tieBreakEpsilon = 1e-5

// maxCells bounds width*height before it is used to size the cell grid,
// rejecting absurd dimensions instead of attempting a huge allocation.
const maxCells = 1 << 28

// Wave is the full W*H grid of cells for one generation attempt, together
// with the tile frequencies and adjacency rules the propagator and
// observer need to mutate and query it. A Wave is reinitialised by Init
// and is not safe for concurrent use.
type Wave struct {
	grid
	cells     []Cell
	freqs     []int
	rules     tile.AdjacencyMatrix
	collapsed int
}

// New allocates a Wave of the given dimensions bound to tiles and rules.
// New calls Init, so the returned wave starts with every cell holding the
// full possibility set. Returns ErrNoTiles
// if tiles is empty, or ErrDimensionsTooLarge if width*height exceeds
// maxCells.
func New(width, height int, tiles []tile.Tile, rules tile.AdjacencyMatrix) (*Wave, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	if width < 1 || height < 1 || width > maxCells/height {
		return nil, ErrDimensionsTooLarge
	}
	freqs := make([]int, len(tiles))
	for i, t := range tiles {
		freqs[i] = t.Freq()
	}
	w := &Wave{
		grid:  grid{width: width, height: height},
		cells: make([]Cell, width*height),
		freqs: freqs,
		rules: rules,
	}
	w.Init()
	return w, nil
}

// Init resets every cell to the full possibility set (all tiles) and
// recomputes their sum-of-frequencies and entropy, and resets the
// collapsed-cell counter to 0.
func (w *Wave) Init() {
	full := make([]int, len(w.freqs))
	sum := 0
	for i, f := range w.freqs {
		full[i] = i
		sum += f
	}
	entropy := shannonEntropy(full, w.freqs, sum)
	for i := range w.cells {
		poss := make([]int, len(full))
		copy(poss, full)
		w.cells[i] = Cell{possibilities: poss, sumFreqs: sum, entropy: entropy}
	}
	w.collapsed = 0
}

// Width returns the wave's width in cells.
func (w *Wave) Width() int { return w.width }

// Height returns the wave's height in cells.
func (w *Wave) Height() int { return w.height }

// CellCount returns Width()*Height().
func (w *Wave) CellCount() int { return w.cellCount() }

// Cell returns a pointer to the cell at idx, valid until the next Init.
func (w *Wave) Cell(idx int) *Cell { return &w.cells[idx] }

// CollapsedCount returns the number of cells currently reduced to a single
// tile.
func (w *Wave) CollapsedCount() int { return w.collapsed }

// Neighbor returns the cell index lying d-ward of idx, and whether that
// neighbour is in bounds.
func (w *Wave) Neighbor(idx int, d image.Direction) (int, bool) {
	return w.grid.neighbor(idx, d)
}

// Rules returns the adjacency matrix the wave was constructed with.
func (w *Wave) Rules() tile.AdjacencyMatrix { return w.rules }

// Freq returns the frequency of the given tile index.
func (w *Wave) Freq(tileIdx int) int { return w.freqs[tileIdx] }

// NextCell scans all cells and returns the index of the uncollapsed cell
// (Count() > 1) with minimum entropy, breaking near-ties with a small
// additive noise term drawn from rng. Returns -1 if every cell is
// collapsed (or contradicted).
func (w *Wave) NextCell(rng *rand.Rand) int {
	best := -1
	bestScore := math.Inf(1)
	for i := range w.cells {
		c := &w.cells[i]
		if c.Count() <= 1 {
			continue
		}
		score := c.entropy + rng.Float64()*tieBreakEpsilon
		if score < bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// Collapse samples one tile from the cell at cellIdx, weighted by
// frequency, reduces the cell to that singleton, and returns the chosen
// tile index. The sample draws r uniformly from [0, sumFreqs) and walks the
// possibility list accumulating frequencies; the first tile whose
// cumulative sum exceeds r is chosen.
func (w *Wave) Collapse(cellIdx int, rng *rand.Rand) int {
	c := &w.cells[cellIdx]
	r := rng.Intn(c.sumFreqs)
	chosen := c.possibilities[len(c.possibilities)-1]
	cum := 0
	for _, t := range c.possibilities {
		cum += w.freqs[t]
		if cum > r {
			chosen = t
			break
		}
	}
	c.possibilities = []int{chosen}
	c.sumFreqs = 0
	c.entropy = 0
	w.collapsed++
	return chosen
}

// RetainCell filters the possibility set at cellIdx down to tiles
// satisfying keep, updates the cell's cached sum-of-frequencies and
// entropy, and reports whether the set shrank and whether it is now a
// contradiction (empty). If the cell collapses to exactly one tile as a
// result, the wave's collapsed counter is incremented.
func (w *Wave) RetainCell(cellIdx int, keep func(tileIdx int) bool) (shrank, contradiction bool) {
	c := &w.cells[cellIdx]
	before := len(c.possibilities)
	kept := c.possibilities[:0]
	for _, t := range c.possibilities {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	c.possibilities = kept
	if len(kept) == before {
		return false, false
	}
	if len(kept) == 0 {
		c.sumFreqs = 0
		c.entropy = 0
		return true, true
	}
	sum := 0
	for _, t := range kept {
		sum += w.freqs[t]
	}
	c.sumFreqs = sum
	c.entropy = shannonEntropy(kept, w.freqs, sum)
	if len(kept) == 1 {
		w.collapsed++
	}
	return true, false
}

// shannonEntropy computes -sum(p_i*log(p_i)) over possibilities, where
// p_i = freqs[t]/sum. Returns 0 for a singleton or empty set.
func shannonEntropy(possibilities, freqs []int, sum int) float64 {
	if len(possibilities) <= 1 || sum <= 0 {
		return 0
	}
	var h float64
	for _, t := range possibilities {
		p := float64(freqs[t]) / float64(sum)
		if p > 0 {
			h -= p * math.Log(p)
		}
	}
	return h
}
