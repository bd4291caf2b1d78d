// Package wfc is the solving facade: it wires a compiled pattern set, a
// wave, a propagator, and a set of constraints into a single
// TilePropagator, and drives the observer loop (pick the lowest-entropy
// cell, collapse it, propagate, backtrack on contradiction) until the grid
// is fully decided or proven unsolvable within the configured backtrack
// budget (§4, §D).
package wfc
