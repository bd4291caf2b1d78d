package topology

import "errors"

// Sentinel errors for the topology package.
var (
	// ErrBadDimensions indicates W, H, or D is less than 1.
	ErrBadDimensions = errors.New("topology: width, height, and depth must each be >= 1")

	// ErrMaskSizeMismatch indicates a supplied mask's length does not equal W*H*D.
	ErrMaskSizeMismatch = errors.New("topology: mask length must equal width*height*depth")

	// ErrNilDirectionSet indicates a Topology was constructed without a DirectionSet.
	ErrNilDirectionSet = errors.New("topology: direction set must not be nil")

	// ErrUnknownDirection indicates a Direction value is not a member of a
	// DirectionSet it was queried against.
	ErrUnknownDirection = errors.New("topology: direction is not a member of this direction set")
)
