package topology

import "fmt"

// Direction is an opaque index into a DirectionSet's ordered direction
// list. Its meaning (which axis, which sign) is defined entirely by the
// DirectionSet that produced it; Direction values from different
// DirectionSets must never be mixed.
type Direction int

// offset is an integer displacement along (X, Y, Z, W); the fourth axis
// exists only for direction sets with more than three independent axes
// (spec §6: "W exists for higher-dim direction sets").
type offset struct {
	dx, dy, dz, dw int
}

// DirectionSet enumerates the directions patterns and the wave reason
// about, their coordinate offsets, their human-readable names, and the
// opposite() involution direction-set arithmetic depends on (§3, §4.3).
type DirectionSet struct {
	name      string
	dirNames  []string
	offsets   []offset
	opposites []Direction
}

// Len returns the number of directions in the set.
func (ds *DirectionSet) Len() int { return len(ds.offsets) }

// Name returns the direction set's human-readable name (e.g. "Cartesian2D").
func (ds *DirectionSet) Name() string { return ds.name }

// Directions returns every Direction in the set, in declaration order.
func (ds *DirectionSet) Directions() []Direction {
	out := make([]Direction, ds.Len())
	for i := range out {
		out[i] = Direction(i)
	}

	return out
}

// DirectionName returns the human-readable name of dir (e.g. "North").
func (ds *DirectionSet) DirectionName(dir Direction) string {
	if int(dir) < 0 || int(dir) >= len(ds.dirNames) {
		return fmt.Sprintf("Direction(%d)", int(dir))
	}

	return ds.dirNames[dir]
}

// Offset returns dir's coordinate displacement.
func (ds *DirectionSet) Offset(dir Direction) (dx, dy, dz, dw int, err error) {
	if int(dir) < 0 || int(dir) >= len(ds.offsets) {
		return 0, 0, 0, 0, fmt.Errorf("Offset(%d): %w", int(dir), ErrUnknownDirection)
	}
	o := ds.offsets[dir]

	return o.dx, o.dy, o.dz, o.dw, nil
}

// Opposite returns the direction-set arithmetic inverse of dir: the
// direction that undoes dir's offset. Used by the propagator to look up
// prop[q][opposite(dir)] when scanning q's compatibility back toward p
// (§3 propagator table, §4.3).
func (ds *DirectionSet) Opposite(dir Direction) (Direction, error) {
	if int(dir) < 0 || int(dir) >= len(ds.opposites) {
		return 0, fmt.Errorf("Opposite(%d): %w", int(dir), ErrUnknownDirection)
	}

	return ds.opposites[dir], nil
}

// byName returns the Direction named name, or (-1, false).
func (ds *DirectionSet) byName(name string) (Direction, bool) {
	for i, n := range ds.dirNames {
		if n == name {
			return Direction(i), true
		}
	}

	return -1, false
}

// ByName returns the Direction named name (e.g. "East"), or
// ErrUnknownDirection if the set has no direction of that name.
func (ds *DirectionSet) ByName(name string) (Direction, error) {
	if dir, ok := ds.byName(name); ok {
		return dir, nil
	}

	return 0, fmt.Errorf("ByName(%s): %w", name, ErrUnknownDirection)
}

// newDirectionSet builds a DirectionSet from parallel name/offset slices
// and a name→name opposite map, computing the opposites table once.
func newDirectionSet(name string, names []string, offs []offset, oppositeNames map[string]string) *DirectionSet {
	ds := &DirectionSet{name: name, dirNames: names, offsets: offs}
	ds.opposites = make([]Direction, len(names))
	for i, n := range names {
		opp, ok := oppositeNames[n]
		if !ok {
			panic(fmt.Errorf("newDirectionSet(%s): direction %q has no declared opposite", name, n))
		}
		idx, ok := ds.byName(opp)
		if !ok {
			panic(fmt.Errorf("newDirectionSet(%s): opposite %q of %q is not itself a member", name, opp, n))
		}
		ds.opposites[i] = idx
	}

	return ds
}

// Cartesian2D returns the four-connected orthogonal direction set used by
// 2D grids: North, East, South, West. Z is always 0.
//
// Grounded on gridgraph.Conn4's offsets {(0,-1),(1,0),(0,1),(-1,0)}.
func Cartesian2D() *DirectionSet {
	return newDirectionSet("Cartesian2D",
		[]string{"North", "East", "South", "West"},
		[]offset{
			{dy: -1}, // North
			{dx: 1},  // East
			{dy: 1},  // South
			{dx: -1}, // West
		},
		map[string]string{"North": "South", "South": "North", "East": "West", "West": "East"},
	)
}

// Cartesian2DDiagonal returns the eight-connected direction set used by 2D
// grids with diagonal adjacency, matching gridgraph.Conn8's ordering.
func Cartesian2DDiagonal() *DirectionSet {
	return newDirectionSet("Cartesian2DDiagonal",
		[]string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"},
		[]offset{
			{dy: -1},          // North
			{dx: 1, dy: -1},   // NorthEast
			{dx: 1},           // East
			{dx: 1, dy: 1},    // SouthEast
			{dy: 1},           // South
			{dx: -1, dy: 1},   // SouthWest
			{dx: -1},          // West
			{dx: -1, dy: -1},  // NorthWest
		},
		map[string]string{
			"North": "South", "South": "North",
			"East": "West", "West": "East",
			"NorthEast": "SouthWest", "SouthWest": "NorthEast",
			"NorthWest": "SouthEast", "SouthEast": "NorthWest",
		},
	)
}

// Cartesian3D returns the six-connected direction set used by 3D grids:
// the four Cartesian2D directions plus Up/Down along Z.
func Cartesian3D() *DirectionSet {
	return newDirectionSet("Cartesian3D",
		[]string{"North", "East", "South", "West", "Up", "Down"},
		[]offset{
			{dy: -1},
			{dx: 1},
			{dy: 1},
			{dx: -1},
			{dz: 1},
			{dz: -1},
		},
		map[string]string{
			"North": "South", "South": "North",
			"East": "West", "West": "East",
			"Up": "Down", "Down": "Up",
		},
	)
}

// Hexagonal returns the six-direction axial-coordinate direction set for a
// pointy-top hex grid (odd-q-free axial scheme): East, NorthEast,
// NorthWest, West, SouthWest, SouthEast.
func Hexagonal() *DirectionSet {
	return newDirectionSet("Hexagonal",
		[]string{"East", "NorthEast", "NorthWest", "West", "SouthWest", "SouthEast"},
		[]offset{
			{dx: 1},
			{dx: 1, dy: -1},
			{dy: -1},
			{dx: -1},
			{dx: -1, dy: 1},
			{dy: 1},
		},
		map[string]string{
			"East": "West", "West": "East",
			"NorthEast": "SouthWest", "SouthWest": "NorthEast",
			"NorthWest": "SouthEast", "SouthEast": "NorthWest",
		},
	)
}
