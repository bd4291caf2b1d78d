package pattern

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/topology"
)

// CompileAdjacent compiles an AdjacentModel into pattern space: each
// declared tile becomes exactly one pattern, in model.Tiles() order, and
// the propagator table is built from declared pairs expanded through
// rotations (§4.1: "each declared pair is expanded through the rotation
// group"). tileTopo is the solving topology; rotations is nil for a
// rotationally-asymmetric model (no expansion beyond the identity).
//
// Complexity: O(T + D*R*pairs) where T is the tile count, D the direction
// set size, R the rotation group size, and pairs the declared adjacencies.
func CompileAdjacent(m *model.AdjacentModel, tileTopo *topology.Topology, rotations *core.RotationGroup, tileRot *core.TileRotation) (*Compiled, error) {
	tiles := m.Tiles()
	if len(tiles) == 0 {
		return nil, fmt.Errorf("CompileAdjacent: %w", ErrNoPatterns)
	}

	patternByTile := make(map[string]int, len(tiles))
	weights := make([]float64, len(tiles))
	for i, tile := range tiles {
		patternByTile[tile.ID()] = i
		weights[i] = m.Frequency(tile)
	}

	ds := tileTopo.Directions()
	for _, dir := range m.Directions() {
		if _, _, _, _, err := ds.Offset(dir); err != nil {
			return nil, fmt.Errorf("CompileAdjacent(direction %d): %w", int(dir), ErrDirectionSetMismatch)
		}
	}
	prop := make([][]*roaring.Bitmap, len(tiles))
	for p := range prop {
		prop[p] = make([]*roaring.Bitmap, ds.Len())
		for d := range prop[p] {
			prop[p][d] = roaring.New()
		}
	}

	elems := []core.Rotation{core.Identity}
	if rotations != nil {
		elems = rotations.Elements()
	}

	for _, dir := range ds.Directions() {
		for _, pair := range m.Pairs(dir) {
			for _, rot := range elems {
				rdir, ok := dir, true
				if rot != core.Identity {
					rdir, ok = rotateDirection(ds, dir, rot)
				}
				if !ok {
					continue
				}
				ra, err := rotatedOrSelf(tileRot, pair.A, rot)
				if err != nil {
					continue
				}
				rb, err := rotatedOrSelf(tileRot, pair.B, rot)
				if err != nil {
					continue
				}
				pa, aok := patternByTile[ra.ID()]
				pb, bok := patternByTile[rb.ID()]
				if !aok || !bok {
					continue
				}
				prop[pa][rdir].Add(uint32(pb))
			}
		}
	}

	mapping := &TileModelMapping{
		tileTopo:    tileTopo,
		patternTopo: tileTopo,
		n:           1, m: 1, l: 1,
		tilesToPatternsByOffset: []map[string]*roaring.Bitmap{make(map[string]*roaring.Bitmap, len(tiles))},
		patternsToTilesByOffset: [][]core.Tile{append([]core.Tile(nil), tiles...)},
	}
	for i, tile := range tiles {
		bm := roaring.New()
		bm.Add(uint32(i))
		mapping.tilesToPatternsByOffset[0][tile.ID()] = bm
	}

	return &Compiled{P: len(tiles), Weights: weights, Prop: prop, Mapping: mapping, TileRot: tileRot}, nil
}

// rotatedOrSelf transforms tile by rot using tileRot if rot isn't identity,
// otherwise returns tile unchanged. tileRot may be nil only when rot is
// always Identity (the caller's elems slice enforces this).
func rotatedOrSelf(tileRot *core.TileRotation, tile core.Tile, rot core.Rotation) (core.Tile, error) {
	if rot == core.Identity {
		return tile, nil
	}

	return tileRot.Transform(tile, rot)
}
