package pattern

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/wfc/core"
)

// Compiled is the output of pattern compilation: an integer pattern id
// space 0..P-1, per-pattern frequency weights, a propagator table, and the
// TileModelMapping lifting tile coordinates into pattern space (§3, §4.1).
type Compiled struct {
	// P is the number of distinct patterns.
	P int
	// Weights holds each pattern's relative frequency; len(Weights) == P.
	Weights []float64
	// Prop[p][dir] is the bitmap of patterns that may occupy the neighbor
	// cell reached by moving in direction dir from a cell holding pattern
	// p. Indexed by pattern id then by topology.Direction as int.
	Prop [][]*roaring.Bitmap
	// Mapping lifts tile-space coordinates into pattern space.
	Mapping *TileModelMapping
	// TileRot is the rotation table compilation was given, kept around so
	// the tile-space API can canonicalize a RotatedTile the same way
	// compilation itself did (§4.6 step 2: "canonicalize first using the
	// TileRotation"). Nil for a rotationally-asymmetric model.
	TileRot *core.TileRotation
}
