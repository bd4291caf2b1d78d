package propagator

import "errors"

var (
	// ErrNoCompiledPatterns is returned when constructing a Propagator
	// over a pattern.Compiled with zero patterns.
	ErrNoCompiledPatterns = errors.New("propagator: compiled pattern set is empty")
	// ErrNothingToBacktrack is returned by Backtrack when the journal is
	// empty: there is no checkpoint to restore.
	ErrNothingToBacktrack = errors.New("propagator: no checkpoint to backtrack to")
)
