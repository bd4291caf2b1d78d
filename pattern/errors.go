package pattern

import "errors"

var (
	// ErrUnsupportedModel is returned when CompileAdjacent is handed an
	// OverlappingModel or vice versa.
	ErrUnsupportedModel = errors.New("pattern: unsupported model kind")
	// ErrNoPatterns is returned when compilation produces an empty pattern
	// set (e.g. an AdjacentModel with zero tiles, which model already
	// rejects, or an OverlappingModel whose samples yield no window under
	// the solving topology's extraction rule).
	ErrNoPatterns = errors.New("pattern: no patterns produced")
	// ErrWindowExceedsTopology is returned when the window dimensions do
	// not fit within the solving topology under its periodicity settings.
	ErrWindowExceedsTopology = errors.New("pattern: window exceeds topology")
	// ErrDirectionSetMismatch is returned when a model's declared
	// directions do not belong to the solving topology's DirectionSet.
	ErrDirectionSetMismatch = errors.New("pattern: direction set mismatch")
)
