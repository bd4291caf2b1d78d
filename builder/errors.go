package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDescriptor is returned by Build when given a nil Descriptor.
	ErrEmptyDescriptor = errors.New("builder: nil descriptor")
	// ErrMissingTiles is returned when a Descriptor declares zero tiles;
	// every model needs at least one.
	ErrMissingTiles = errors.New("builder: descriptor declares no tiles")
	// ErrUnknownTag is returned when a descriptor references a direction
	// set, treatment, model kind, or constraint tag that does not resolve
	// against the known table; the wrapping error message names the
	// closest known tag by edit distance.
	ErrUnknownTag = errors.New("builder: unknown tag")
	// ErrUnknownTile is returned when a descriptor references a tile id
	// that was not declared in Descriptor.Tiles.
	ErrUnknownTile = errors.New("builder: unknown tile id")
	// ErrNeedRand is returned by Build when no WithRand option supplied a
	// source of randomness for the resulting TilePropagator.
	ErrNeedRand = errors.New("builder: rng required, supply via WithRand")
)

// builderErrorf wraps err with the method name that produced it, giving
// every error from this package a consistent "builder.<Method>: ..." prefix
// callers can match on with errors.Is/errors.As against the sentinels above.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("builder.%s: %w", method, err)
}
