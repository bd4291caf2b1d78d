package wave

import "errors"

var (
	// ErrBadPatternCount is returned by New when weights is empty.
	ErrBadPatternCount = errors.New("wave: pattern count must be >= 1")
	// ErrCellOutOfRange is returned when a cell index falls outside the
	// topology's cell space.
	ErrCellOutOfRange = errors.New("wave: cell index out of range")
	// ErrPatternOutOfRange is returned when a pattern id falls outside
	// [0, P).
	ErrPatternOutOfRange = errors.New("wave: pattern id out of range")
)
