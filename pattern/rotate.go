package pattern

import (
	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/topology"
)

// rotateVector rotates the (dx,dy) plane component of an offset by a
// multiple of 90 degrees (CCW) and then reflects dx if reflectX is set,
// matching the order core.Rotation documents (rotate, then reflect). dz is
// unaffected: tile rotation is a planar (Z-axis) operation.
func rotateVector(dx, dy, dz, angle int, reflectX bool) (int, int, int) {
	quarter := (angle / 90) % 4
	for i := 0; i < quarter; i++ {
		dx, dy = -dy, dx
	}
	if reflectX {
		dx = -dx
	}

	return dx, dy, dz
}

// rotateDirection finds the Direction in ds whose offset equals dir's
// offset rotated by rot. Returns ok=false if no such direction exists (the
// direction set's geometry does not admit this rotation, e.g. a Hexagonal
// set under a 90-degree Cartesian rotation) — callers drop the expansion
// for that (pair, rotation) rather than erroring, since this only narrows
// which declared adjacencies get rotation-expanded.
func rotateDirection(ds *topology.DirectionSet, dir topology.Direction, rot core.Rotation) (topology.Direction, bool) {
	dx, dy, dz, _, err := ds.Offset(dir)
	if err != nil {
		return 0, false
	}
	rdx, rdy, rdz := rotateVector(dx, dy, dz, rot.Angle, rot.ReflectX)
	for _, candidate := range ds.Directions() {
		cdx, cdy, cdz, _, _ := ds.Offset(candidate)
		if cdx == rdx && cdy == rdy && cdz == rdz {
			return candidate, true
		}
	}

	return 0, false
}

// rotateSampleGrid produces the grid obtained by applying rot to every
// tile of g (via tileRot) and rearranging coordinates accordingly: 90/270
// degree rotations swap width and height, 0/180 preserve them. Used to
// expand overlapping-model samples through the rotation group before
// window extraction (§4.1).
func rotateSampleGrid(g *model.SampleGrid, rot core.Rotation, tileRot *core.TileRotation) (*model.SampleGrid, error) {
	if rot == core.Identity {
		return g, nil
	}

	quarter := (rot.Angle / 90) % 4
	w, h := g.W, g.H
	if quarter%2 == 1 {
		w, h = h, w
	}

	out := make([]core.Tile, w*h*g.D)
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				nx, ny := rotateXY(x, y, g.W, g.H, quarter, rot.ReflectX)
				idx := (z*h+ny)*w + nx
				tile, err := tileRot.Transform(g.At(x, y, z), rot)
				if err != nil {
					return nil, err
				}
				out[idx] = tile
			}
		}
	}

	return model.NewSampleGrid(w, h, g.D, out)
}

// rotateXY maps a source (x,y) in a w×h grid to its destination coordinate
// after quarter 90-degree CCW turns followed by an optional X reflection,
// matching rotateVector's order of operations on grid coordinates rather
// than offset vectors.
func rotateXY(x, y, w, h, quarter int, reflectX bool) (int, int) {
	nx, ny, curW, curH := x, y, w, h
	for i := 0; i < quarter; i++ {
		nx, ny, curW, curH = curH-1-ny, nx, curH, curW
	}
	if reflectX {
		nx = curW - 1 - nx
	}

	return nx, ny
}
