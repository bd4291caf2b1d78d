// Package debugprint renders a *wfc.TilePropagator's tile-space decoders as
// ASCII tables, for use in tests and example programs. Nothing here
// participates in solving: every function is a pure consumer of
// TilePropagator.ToArray / ToValueArray / ToArraySets (§6).
package debugprint
