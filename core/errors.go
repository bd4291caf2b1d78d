package core

import "errors"

// Sentinel errors for the core package. Callers branch with errors.Is;
// sentinels are never wrapped with formatted strings at the definition site.
var (
	// ErrEmptyTileID indicates a Tile was constructed with an empty ID.
	ErrEmptyTileID = errors.New("core: tile ID is empty")

	// ErrUnknownRotation indicates a Rotation is not a member of the
	// RotationGroup it was checked against (bad angle or reflect combination).
	ErrUnknownRotation = errors.New("core: rotation is not a member of the group")

	// ErrTransformMissing indicates a TileRotation lookup failed for a tile
	// whose Treatment is Missing, i.e. the transform is defined not to exist.
	ErrTransformMissing = errors.New("core: rotation transform missing for tile")

	// ErrBadSymmetry indicates an invalid rotationalSymmetry value was
	// supplied to NewRotationGroup (must be 1, 2, or 4).
	ErrBadSymmetry = errors.New("core: rotational symmetry must be 1, 2, or 4")

	// ErrCanonicalizeFailed is a LogicError: canonicalization was asserted to
	// succeed (the caller already checked Treatment != Missing) but failed.
	// It indicates a bug in the caller or an inconsistent TileRotation table.
	ErrCanonicalizeFailed = errors.New("core: canonicalization failed unexpectedly")
)
