// Package wfc (module github.com/katalvlaran/wfc) is a Wave Function
// Collapse family procedural-content generator core.
//
// Given a tile palette, a model describing which local configurations of
// tiles are permitted (declared adjacencies or overlapping sample
// windows), and an output topology (1D/2D/3D grid, optionally toroidal),
// the solver searches for an assignment of one tile per cell that is
// globally consistent with the model and with any registered constraints
// (borders, fixed tiles, paths, symmetries). The search is constraint
// propagation with randomized choice and bounded chronological
// backtracking; it is not guaranteed to find a solution when one exists.
//
// Under the hood, everything is organized under dependency-ordered
// subpackages:
//
//	core/        — opaque Tile identity, RotatedTile, Rotation group, TileRotation
//	topology/    — grid shape, periodicity, direction sets, cell masks
//	model/       — Adjacent and Overlapping tile-model variants
//	pattern/     — compiles a TileModel into patterns, weights, and propagator tables
//	wave/        — per-cell possible-pattern bitset, entropy, compatibility counters
//	propagator/  — arc-consistency ban/propagate with a backtrack journal
//	constraint/  — the Init/Check constraint hook contract and five built-ins
//	wfc/         — TilePropagator: the tile-space solving facade and observer loop
//	builder/     — declarative (YAML-capable) construction of a TilePropagator
//	debugprint/  — ASCII table dumps of a TilePropagator's decoders, for tests
//
// Quick ASCII example, a 4x1 strip forced to alternate two tiles:
//
//	A─B─A─B
//
// is the canonical "forced stripe" scenario exercised in wfc's tests: an
// Adjacent model declaring only A-B and B-A as valid horizontal
// neighbors, solved deterministically from a fixed seed.
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full design
// rationale and the grounding ledger tying each package back to its
// source idiom.
//
//	go get github.com/katalvlaran/wfc
package wfc
