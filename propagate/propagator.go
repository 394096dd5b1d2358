package propagate

import (
	"github.com/krychu/wfc/image"
	"github.com/krychu/wfc/wave"
)

var allDirections = [4]image.Direction{image.UP, image.DOWN, image.LEFT, image.RIGHT}

// record is one pending propagation step: re-examine dst's possibilities
// given src's current possibilities, via the overlap rule in direction d
// (dst lies d-ward of src).
type record struct {
	src, dst int
	dir      image.Direction
}

// pendingKey packs a (cell, direction) pair so duplicate records already
// in the queue can be skipped cheaply.
func pendingKey(cellIdx int, d image.Direction) int {
	return cellIdx*4 + int(d)
}

// Propagator drains a worklist of propagation records against a wave,
// shrinking each destination cell's possibility set to what its source
// cell still supports. It holds no state across calls to PropagateFrom
// other than scratch buffers, and is not safe for concurrent use.
type Propagator struct {
	w       *wave.Wave
	queue   []record
	pending map[int]bool
}

// New returns a Propagator bound to w.
func New(w *wave.Wave) *Propagator {
	return &Propagator{w: w, pending: make(map[int]bool)}
}

// PropagateFrom clears the worklist, seeds it with cellIdx's in-bounds
// neighbours tagged with the direction from cellIdx to each, and drains the
// queue in enqueue order until it is empty or a contradiction is found.
// Returns ErrContradiction if any cell is reduced to zero possibilities.
func (p *Propagator) PropagateFrom(cellIdx int) error {
	p.queue = p.queue[:0]
	for k := range p.pending {
		delete(p.pending, k)
	}
	for _, d := range allDirections {
		if nidx, ok := p.w.Neighbor(cellIdx, d); ok {
			p.enqueue(cellIdx, nidx, d)
		}
	}
	for len(p.queue) > 0 {
		r := p.dequeue()
		if err := p.propagateOne(r.src, r.dst, r.dir); err != nil {
			return err
		}
	}
	return nil
}

// enqueue pushes a record onto the worklist, skipping it if a record for
// the same (dst, dir) pair is already pending further along the queue.
func (p *Propagator) enqueue(src, dst int, d image.Direction) {
	k := pendingKey(dst, d)
	if p.pending[k] {
		return
	}
	p.pending[k] = true
	p.queue = append(p.queue, record{src: src, dst: dst, dir: d})
}

// dequeue pops the first record off the worklist.
func (p *Propagator) dequeue() record {
	r := p.queue[0]
	p.queue = p.queue[1:]
	delete(p.pending, pendingKey(r.dst, r.dir))
	return r
}

// propagateOne retains in dst's possibility set only those tiles supported
// by at least one tile still possible at src, via the overlap rule in
// direction d. If dst's set shrinks, its three neighbours other than the
// one back toward src are enqueued for re-examination; if it collapses to
// a singleton the wave's collapsed counter advances (handled inside
// wave.RetainCell). Returns ErrContradiction if dst is left with zero
// possibilities.
func (p *Propagator) propagateOne(src, dst int, d image.Direction) error {
	srcPoss := p.w.Cell(src).Possibilities()
	rules := p.w.Rules()
	supported := func(t int) bool {
		for _, s := range srcPoss {
			if rules.Allowed(d, s, t) {
				return true
			}
		}
		return false
	}

	shrank, contradiction := p.w.RetainCell(dst, supported)
	if contradiction {
		return ErrContradiction
	}
	if !shrank {
		return nil
	}

	back := d.Opposite()
	for _, nd := range allDirections {
		if nd == back {
			continue
		}
		if nidx, ok := p.w.Neighbor(dst, nd); ok {
			p.enqueue(dst, nidx, nd)
		}
	}
	return nil
}
