package model

import "errors"

// Sentinel errors for the model package.
var (
	// ErrEmptyTiles indicates a model was constructed with zero tiles.
	ErrEmptyTiles = errors.New("model: tile set must not be empty")

	// ErrUnknownTile indicates an operation referenced a tile not declared
	// in the model's tile set.
	ErrUnknownTile = errors.New("model: tile not declared in this model")

	// ErrBadFrequency indicates a non-positive frequency weight.
	ErrBadFrequency = errors.New("model: frequency must be > 0")

	// ErrBadWindowDims indicates N, M, or L is less than 1 for an
	// Overlapping model.
	ErrBadWindowDims = errors.New("model: window dimensions N, M, L must each be >= 1")

	// ErrSampleTooSmall indicates a sample grid is smaller than the
	// requested N×M×L window in some dimension. NewOverlappingModel returns
	// it for every undersized sample, whatever the periodicity later used.
	ErrSampleTooSmall = errors.New("model: sample grid smaller than window in at least one dimension")

	// ErrBadGridDims indicates a SampleGrid was constructed with W, H, or D < 1.
	ErrBadGridDims = errors.New("model: sample grid dimensions must each be >= 1")

	// ErrGridLengthMismatch indicates a SampleGrid's tile slice length does
	// not equal W*H*D.
	ErrGridLengthMismatch = errors.New("model: sample grid tile slice length must equal width*height*depth")

	// ErrNoSamples indicates an Overlapping model was constructed with zero
	// sample grids.
	ErrNoSamples = errors.New("model: overlapping model requires at least one sample grid")
)
