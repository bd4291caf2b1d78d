// Package pattern compiles a model.TileModel plus a topology.Topology into
// the pattern-space artifacts the wave and propagator operate on: an
// integer pattern id space 0..P-1, per-pattern frequency weights, a
// propagator table prop[pattern][direction] of compatible neighbor
// patterns, and a TileModelMapping lifting tile-space coordinates to
// pattern-space coordinates plus an offset (§3 "TileModelMapping", §4.1
// "Pattern Compilation").
//
// CompileAdjacent handles model.AdjacentModel (one pattern per tile,
// propagator table taken directly from declared pairs, expanded through
// the rotation group). CompileOverlapping handles model.OverlappingModel
// (patterns are N×M×L tile windows extracted from sample grids, expanded
// through the rotation group, propagator table derived by window-shift
// overlap, per §4.1).
package pattern
