package wfc

import (
	"math/rand"
	"time"

	"github.com/krychu/wfc/image"
	"github.com/krychu/wfc/propagate"
	"github.com/krychu/wfc/tile"
	"github.com/krychu/wfc/wave"
)

// Engine drives one overlapping-model generation attempt: it owns the
// extracted tile set, the adjacency rules derived from it, the wave, and the
// propagator, and exposes the observe/collapse/propagate loop as Run.
//
// An Engine is not safe for concurrent use; all data is owned exclusively by
// the instance, matching the solver's single-threaded, no-shared-state model.
type Engine struct {
	cfg        *config
	tiles      []tile.Tile
	components int
	w          *wave.Wave
	prop       *propagate.Propagator
}

// CreateOverlapping builds the tile set and adjacency rules from input via
// tile.Build, allocates a wave of outW x outH cells, calls Init, and returns
// an Engine ready for Run. Returns ErrInvalidDimensions if outW or outH is < 1;
// otherwise any error from tile.Build or wave.New is returned unwrapped.
func CreateOverlapping(outW, outH int, input *image.Image, tileW, tileH int, opts tile.BuildOptions, engineOpts ...Option) (*Engine, error) {
	if outW < 1 || outH < 1 {
		return nil, ErrInvalidDimensions
	}

	set, err := tile.Build(input, tileW, tileH, opts)
	if err != nil {
		return nil, err
	}

	w, err := wave.New(outW, outH, set.Tiles, set.Rules)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:        newConfig(engineOpts...),
		tiles:      set.Tiles,
		components: input.Components(),
		w:          w,
		prop:       propagate.New(w),
	}
	e.Init()
	return e, nil
}

// Init resets the wave to all-possibilities and the collapsed counter to 0.
// If the engine's PRNG was not explicitly seeded via WithSeed/WithRand, Init
// also reseeds it from wall-clock time, so repeated Init/Run cycles on an
// unconfigured engine draw fresh randomness each time; an explicitly seeded
// engine keeps its PRNG untouched across Init calls, so constructing two
// engines with the same seed and calling Init once each yields identical
// runs.
func (e *Engine) Init() {
	if !e.cfg.seeded {
		e.cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.w.Init()
}

// Run drives the observe/collapse/propagate loop to completion: it picks a
// starting cell (the option set by WithStartCell, or one drawn uniformly
// from the PRNG), collapses it, propagates the consequences, then repeatedly
// asks the wave for the next minimum-entropy cell until none remains or
// maxCollapses cells have been collapsed. A negative maxCollapses (the
// conventional -1) means unbounded; zero performs no collapses at all.
// Returns ErrContradiction if propagation
// ever empties a cell's possibility set; the wave is left in an undefined
// state and the caller must call Init before reusing the engine.
func (e *Engine) Run(maxCollapses int) error {
	if maxCollapses == 0 {
		return nil
	}
	cellIdx := e.startCell()
	if e.w.Cell(cellIdx).Count() <= 1 {
		// Already collapsed (e.g. Run called again without Init); resume
		// from the next uncollapsed cell instead of re-sampling it.
		cellIdx = e.w.NextCell(e.cfg.rng)
		if cellIdx == -1 {
			return nil
		}
	}
	for {
		e.w.Collapse(cellIdx, e.cfg.rng)
		if err := e.prop.PropagateFrom(cellIdx); err != nil {
			return err
		}
		if maxCollapses >= 0 && e.w.CollapsedCount() >= maxCollapses {
			return nil
		}
		cellIdx = e.w.NextCell(e.cfg.rng)
		if cellIdx == -1 {
			return nil
		}
	}
}

// startCell resolves Run's initial cell index.
func (e *Engine) startCell() int {
	if e.cfg.startAt {
		x, y := e.cfg.startX, e.cfg.startY
		if x < 0 {
			x = 0
		}
		if x >= e.w.Width() {
			x = e.w.Width() - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= e.w.Height() {
			y = e.w.Height() - 1
		}
		return y*e.w.Width() + x
	}
	return e.cfg.rng.Intn(e.w.CellCount())
}

// OutputImage renders the current wave state: one pixel per cell, averaging
// the top-left pixel of every tile still possible at that cell. See
// renderOutput for the averaging rule.
func (e *Engine) OutputImage() *image.Image {
	return renderOutput(e.w, e.tiles, e.components)
}

// TileCount returns the number of distinct tiles the engine was built with.
func (e *Engine) TileCount() int {
	return len(e.tiles)
}

// CollapsedCount returns the number of cells currently reduced to a single
// tile.
func (e *Engine) CollapsedCount() int {
	return e.w.CollapsedCount()
}

// Destroy releases the engine's internal references ahead of garbage
// collection. Go reclaims memory automatically; Destroy exists so callers
// used to an explicit create/destroy lifecycle have a direct counterpart,
// and so a long-lived caller can drop a large tile set or wave
// promptly instead of waiting on the engine value itself to go out of
// scope. The engine must not be used again after Destroy.
func (e *Engine) Destroy() {
	e.tiles = nil
	e.w = nil
	e.prop = nil
}
