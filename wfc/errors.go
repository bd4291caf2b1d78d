package wfc

import "errors"

var (
	// ErrNeedRand is returned by New when no WithRand option supplied a
	// source of randomness. Entropy tie-breaking and weighted pattern
	// selection are both randomized; there is no sane zero-value default.
	ErrNeedRand = errors.New("wfc: rng required, supply one via WithRand")
	// ErrContradictionAtInit is returned by New when running every
	// registered constraint's Init leaves some cell with no possible
	// patterns, before a single observer decision has been made.
	ErrContradictionAtInit = errors.New("wfc: contradiction at initialization")
	// ErrContradiction is returned by Step/Run when the wave reaches a
	// contradiction and backtracking is disabled (WithBacktrackDepth(0)),
	// per §4.4: "backtrackDepth = 0 means no backtracking".
	ErrContradiction = errors.New("wfc: contradiction, backtracking disabled")
	// ErrUnsolvable is returned by Step/Run when a contradiction has
	// unwound every checkpoint without finding a consistent assignment.
	ErrUnsolvable = errors.New("wfc: no solution found, backtracking exhausted")
	// ErrNoTileRotation is returned by the tile-space API when asked to
	// resolve a core.RotatedTile but the compiled model carries no
	// TileRotation to canonicalize it with.
	ErrNoTileRotation = errors.New("wfc: rotated tile given but model has no TileRotation")
	// ErrBadTileReference is returned by the tile-space API when given a
	// tile reference that is neither a core.Tile nor a core.RotatedTile.
	ErrBadTileReference = errors.New("wfc: tile reference must be a core.Tile or core.RotatedTile")
)
