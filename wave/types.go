package wave

// Cell holds one grid position's possibility set during a run: a bounded,
// dense array of still-possible tile indices, the running sum of their
// frequencies, and a cached Shannon entropy.
//
// Invariants: len(possibilities) >= 1 except transiently while a
// contradiction is being reported; if len(possibilities) == 1, entropy is
// 0 and sumFreqs is irrelevant (Wave.Collapse stores 0; Wave.RetainCell
// keeps the remaining tile's frequency).
type Cell struct {
	possibilities []int
	sumFreqs      int
	entropy       float64
}

// Possibilities returns the cell's current possibility set. Callers must
// not retain or mutate the returned slice beyond the current step; it
// aliases the cell's internal storage.
func (c *Cell) Possibilities() []int { return c.possibilities }

// Count returns the number of tiles still possible at this cell.
func (c *Cell) Count() int { return len(c.possibilities) }

// Collapsed reports whether this cell has been reduced to a single tile.
func (c *Cell) Collapsed() bool { return len(c.possibilities) == 1 }

// Contradiction reports whether this cell has been reduced to zero
// possibilities.
func (c *Cell) Contradiction() bool { return len(c.possibilities) == 0 }

// SumFreqs returns the cached sum of Freq() over the cell's possibilities,
// or 0 for a cell reduced to one tile by Wave.Collapse.
func (c *Cell) SumFreqs() int { return c.sumFreqs }

// Entropy returns the cell's cached Shannon entropy.
func (c *Cell) Entropy() float64 { return c.entropy }
