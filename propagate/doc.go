// Package propagate implements the worklist-based constraint propagator:
// when a cell's possibility set shrinks, its neighbours are enqueued for
// re-examination, and the queue is drained until no cell changes or a cell
// is reduced to zero possibilities (a contradiction).
//
// The propagator never backtracks: a contradiction is reported to the
// caller, which must reinitialise the wave and retry.
package propagate
