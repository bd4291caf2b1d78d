package pattern

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/topology"
)

// TileModelMapping connects tile-space coordinates to pattern-space
// coordinates plus an offset within the N×M×L compilation window (§3
// "TileModelMapping"). For an AdjacentModel, N=M=L=1 and every tile
// coordinate maps to the identical pattern coordinate at offset 0. For an
// OverlappingModel, the pattern-space topology may be smaller than tile
// space along non-periodic axes (a window needs N/M/L cells of headroom),
// and a tile coordinate near the far edge maps through a clamped anchor
// pattern cell at a non-zero offset.
type TileModelMapping struct {
	tileTopo    *topology.Topology
	patternTopo *topology.Topology
	n, m, l     int

	// tilesToPatternsByOffset[offset][tileID] = bitmap of pattern ids that
	// place tileID at that offset's slot of their window.
	tilesToPatternsByOffset []map[string]*roaring.Bitmap
	// patternsToTilesByOffset[offset][pattern] = the tile occupying that
	// offset's slot of pattern's window.
	patternsToTilesByOffset [][]core.Tile
}

// TileTopology returns the original tile-space topology.
func (tm *TileModelMapping) TileTopology() *topology.Topology { return tm.tileTopo }

// PatternTopology returns the (possibly smaller) pattern-space topology.
func (tm *TileModelMapping) PatternTopology() *topology.Topology { return tm.patternTopo }

// Window returns the compilation window dimensions (1,1,1 for Adjacent).
func (tm *TileModelMapping) Window() (n, m, l int) { return tm.n, tm.m, tm.l }

// slotIndex encodes a within-window coordinate as a row-major offset.
func (tm *TileModelMapping) slotIndex(ox, oy, oz int) int {
	return (oz*tm.m+oy)*tm.n + ox
}

// clampAxis returns the pattern-space coordinate and within-window offset
// for tile-space coordinate v on an axis of size patternSize, per the
// mapping rule described on TileModelMapping.
func clampAxis(v, patternSize int) (p, o int) {
	p = v
	if p > patternSize-1 {
		p = patternSize - 1
	}

	return p, v - p
}

// ToPatternCoord maps a tile-space coordinate to its pattern-space cell
// index and within-window offset slot.
//
// Complexity: O(1).
func (tm *TileModelMapping) ToPatternCoord(x, y, z int) (patternCell, offset int) {
	px, ox := clampAxis(x, tm.patternTopo.W)
	py, oy := clampAxis(y, tm.patternTopo.H)
	pz, oz := clampAxis(z, tm.patternTopo.D)

	return tm.patternTopo.Index(px, py, pz), tm.slotIndex(ox, oy, oz)
}

// PatternsForTile returns the bitmap of pattern ids that occupy offset's
// slot with tile, or an empty bitmap if none do.
func (tm *TileModelMapping) PatternsForTile(tile core.Tile, offset int) *roaring.Bitmap {
	if offset < 0 || offset >= len(tm.tilesToPatternsByOffset) {
		return roaring.New()
	}
	if bm, ok := tm.tilesToPatternsByOffset[offset][tile.ID()]; ok {
		return bm
	}

	return roaring.New()
}

// TileForPattern returns the tile pattern p contributes at offset's slot.
//
// Complexity: O(1).
func (tm *TileModelMapping) TileForPattern(p int, offset int) (core.Tile, error) {
	if offset < 0 || offset >= len(tm.patternsToTilesByOffset) {
		return core.Tile{}, fmt.Errorf("TileForPattern(%d,%d): %w", p, offset, ErrWindowExceedsTopology)
	}
	tiles := tm.patternsToTilesByOffset[offset]
	if p < 0 || p >= len(tiles) {
		return core.Tile{}, fmt.Errorf("TileForPattern(%d,%d): %w", p, offset, ErrNoPatterns)
	}

	return tiles[p], nil
}

// FindTile scans every offset slot for a tile with the given id and
// returns the first match. Used by constraints that reference tiles by id
// from configuration rather than by pattern id.
//
// Complexity: O(P * numSlots) worst case.
func (tm *TileModelMapping) FindTile(id string) (core.Tile, bool) {
	for _, tiles := range tm.patternsToTilesByOffset {
		for _, tile := range tiles {
			if tile.ID() == id {
				return tile, true
			}
		}
	}

	return core.Tile{}, false
}

// patternSpaceDim computes the pattern-space extent along one axis: the
// full tile-space extent when the axis is periodic (any tile coordinate is
// a valid window anchor, wrapping), or reduced by windowDim-1 otherwise (a
// window needs windowDim cells of headroom and cannot wrap off the edge).
func patternSpaceDim(tileDim, windowDim int, periodic bool) (int, error) {
	if periodic {
		return tileDim, nil
	}
	d := tileDim - windowDim + 1
	if d < 1 {
		return 0, ErrWindowExceedsTopology
	}

	return d, nil
}
