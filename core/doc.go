// Package core defines the opaque Tile value, the rotation/reflection
// symmetry group, and the TileRotation map that lifts a base tile into its
// rotated/reflected forms.
//
// Tiles are user-supplied, equatable-hashable identity values (never an
// open type hierarchy). A RotatedTile is a tagged (base Tile, Rotation)
// pair; TileRotation resolves it back to a concrete Tile according to a
// per-tile Treatment (Unchanged, Missing, Generated).
//
// Nothing in this package depends on topology, patterns, or the wave —
// it is pure value/identity plumbing consumed by pattern compilation.
package core
