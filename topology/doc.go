// Package topology describes the shape of the output grid a solver runs
// over: its extents, which axes wrap (periodicity), its direction set
// (Cartesian 2D/3D, hexagonal, ...), and an optional per-cell mask of
// active cells.
//
// Topology is adapted from the lvlath gridgraph package's "treat a grid as
// a graph" idiom: this package drops gridgraph's island/flood-fill
// analysis (that lives in the constraint package, over the Wave) and keeps
// only what every downstream component needs — Index/Coordinate/Neighbor —
// generalized from a fixed 2D Conn4/Conn8 pair to an arbitrary
// *DirectionSet and a third dimension.
//
// Complexity: Index/Coordinate/Neighbor/InBounds are all O(1).
package topology
