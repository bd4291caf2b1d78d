package constraint

import "errors"

var (
	// ErrUnknownTag is returned by Registry.Build for an unregistered
	// constraint tag.
	ErrUnknownTag = errors.New("constraint: unknown tag")
	// ErrBadParams is returned when a constraint factory receives
	// malformed or missing parameters.
	ErrBadParams = errors.New("constraint: bad parameters")
	// ErrUnknownTile is returned when a constraint references a tile id
	// absent from the compiled pattern's tile space.
	ErrUnknownTile = errors.New("constraint: unknown tile id")
)
