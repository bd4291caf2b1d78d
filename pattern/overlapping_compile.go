package pattern

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/topology"
	"golang.org/x/sync/errgroup"
)

// occurrence is one distinct window content found during extraction, plus
// how many times it occurred within a single sample/rotation variant.
type occurrence struct {
	tiles []core.Tile
	count int
}

// windowKey derives a deterministic, collision-resistant string key for a
// window's tile content, used both to deduplicate occurrences into
// patterns and to merge counts across variants.
func windowKey(tiles []core.Tile) string {
	var b strings.Builder
	for i, t := range tiles {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		b.WriteString(t.ID())
	}

	return b.String()
}

// extractFromGrid scans every valid window anchor of g and returns the
// distinct window contents found, first-seen order, with per-variant
// occurrence counts. Anchors wrap when the corresponding axis is periodic,
// otherwise they are clipped so the window never runs off the grid.
func extractFromGrid(g *model.SampleGrid, n, m, l int, periodicX, periodicY, periodicZ bool) []occurrence {
	xEnd, yEnd, zEnd := g.W, g.H, g.D
	if !periodicX {
		xEnd = g.W - n + 1
	}
	if !periodicY {
		yEnd = g.H - m + 1
	}
	if !periodicZ {
		zEnd = g.D - l + 1
	}

	index := make(map[string]int)
	var out []occurrence
	for z := 0; z < zEnd; z++ {
		for y := 0; y < yEnd; y++ {
			for x := 0; x < xEnd; x++ {
				tiles := make([]core.Tile, n*m*l)
				for oz := 0; oz < l; oz++ {
					for oy := 0; oy < m; oy++ {
						for ox := 0; ox < n; ox++ {
							gx, gy, gz := x+ox, y+oy, z+oz
							if periodicX {
								gx %= g.W
							}
							if periodicY {
								gy %= g.H
							}
							if periodicZ {
								gz %= g.D
							}
							tiles[(oz*m+oy)*n+ox] = g.At(gx, gy, gz)
						}
					}
				}
				key := windowKey(tiles)
				if idx, ok := index[key]; ok {
					out[idx].count++
					continue
				}
				index[key] = len(out)
				out = append(out, occurrence{tiles: tiles, count: 1})
			}
		}
	}

	return out
}

// compatible reports whether window q may be placed at a unit offset
// (dx,dy,dz) from window p (both n×m×l), i.e. every cell shared by the two
// windows after the shift agrees.
func compatible(p, q []core.Tile, n, m, l, dx, dy, dz int) bool {
	for z := 0; z < l; z++ {
		for y := 0; y < m; y++ {
			for x := 0; x < n; x++ {
				qx, qy, qz := x-dx, y-dy, z-dz
				if qx < 0 || qx >= n || qy < 0 || qy >= m || qz < 0 || qz >= l {
					continue
				}
				if !p[(z*m+y)*n+x].Equal(q[(qz*m+qy)*n+qx]) {
					return false
				}
			}
		}
	}

	return true
}

// CompileOverlapping compiles an OverlappingModel into pattern space:
// patterns are distinct N×M×L windows extracted from the model's sample
// grids, expanded through the rotation group, with weights accumulated
// from occurrence counts and a propagator table derived from window-shift
// overlap (§4.1). Sample/rotation variants are scanned concurrently via an
// errgroup and merged in a fixed, deterministic (sample, rotation, scan)
// order so pattern ids are reproducible across runs.
//
// Complexity: O(samples*R*cells) to extract, O(P^2 * D * N*M*L) to build
// the propagator table.
func CompileOverlapping(om *model.OverlappingModel, tileTopo *topology.Topology, rotations *core.RotationGroup, tileRot *core.TileRotation) (*Compiled, error) {
	n, m, l := om.N, om.M, om.L

	patternW, err := patternSpaceDim(tileTopo.W, n, tileTopo.PeriodicX())
	if err != nil {
		return nil, fmt.Errorf("CompileOverlapping: width: %w", err)
	}
	patternH, err := patternSpaceDim(tileTopo.H, m, tileTopo.PeriodicY())
	if err != nil {
		return nil, fmt.Errorf("CompileOverlapping: height: %w", err)
	}
	patternD, err := patternSpaceDim(tileTopo.D, l, tileTopo.PeriodicZ())
	if err != nil {
		return nil, fmt.Errorf("CompileOverlapping: depth: %w", err)
	}

	elems := []core.Rotation{core.Identity}
	if rotations != nil {
		elems = rotations.Elements()
	}

	variants := make([]*model.SampleGrid, 0, len(om.Samples)*len(elems))
	for _, sample := range om.Samples {
		for _, rot := range elems {
			rg, err := rotateSampleGrid(sample, rot, tileRot)
			if err != nil {
				return nil, fmt.Errorf("CompileOverlapping: rotating sample: %w", err)
			}
			variants = append(variants, rg)
		}
	}

	results := make([][]occurrence, len(variants))
	var eg errgroup.Group
	for i, g := range variants {
		i, g := i, g
		eg.Go(func() error {
			results[i] = extractFromGrid(g, n, m, l, tileTopo.PeriodicX(), tileTopo.PeriodicY(), tileTopo.PeriodicZ())

			return nil
		})
	}
	_ = eg.Wait() // extractFromGrid never errors; kept for interface symmetry with future variant sources

	patternIndex := make(map[string]int)
	var windows [][]core.Tile
	var weights []float64
	for _, variantOccs := range results {
		for _, occ := range variantOccs {
			key := windowKey(occ.tiles)
			if idx, ok := patternIndex[key]; ok {
				weights[idx] += float64(occ.count)
				continue
			}
			patternIndex[key] = len(windows)
			windows = append(windows, occ.tiles)
			weights = append(weights, float64(occ.count))
		}
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("CompileOverlapping: %w", ErrNoPatterns)
	}

	numSlots := n * m * l
	tilesToPatternsByOffset := make([]map[string]*roaring.Bitmap, numSlots)
	patternsToTilesByOffset := make([][]core.Tile, numSlots)
	for slot := 0; slot < numSlots; slot++ {
		tilesToPatternsByOffset[slot] = make(map[string]*roaring.Bitmap)
		patternsToTilesByOffset[slot] = make([]core.Tile, len(windows))
	}
	for p, win := range windows {
		for slot := 0; slot < numSlots; slot++ {
			tile := win[slot]
			patternsToTilesByOffset[slot][p] = tile
			bm, ok := tilesToPatternsByOffset[slot][tile.ID()]
			if !ok {
				bm = roaring.New()
				tilesToPatternsByOffset[slot][tile.ID()] = bm
			}
			bm.Add(uint32(p))
		}
	}

	patternTopo, err := topology.New(patternW, patternH, patternD, tileTopo.Directions(), topology.Options{
		PeriodicX: tileTopo.PeriodicX(),
		PeriodicY: tileTopo.PeriodicY(),
		PeriodicZ: tileTopo.PeriodicZ(),
	})
	if err != nil {
		return nil, fmt.Errorf("CompileOverlapping: pattern topology: %w", err)
	}

	mapping := &TileModelMapping{
		tileTopo:                tileTopo,
		patternTopo:             patternTopo,
		n:                       n,
		m:                       m,
		l:                       l,
		tilesToPatternsByOffset: tilesToPatternsByOffset,
		patternsToTilesByOffset: patternsToTilesByOffset,
	}

	dirs := tileTopo.Directions()
	prop := make([][]*roaring.Bitmap, len(windows))
	for p := range prop {
		prop[p] = make([]*roaring.Bitmap, dirs.Len())
		for d := range prop[p] {
			prop[p][d] = roaring.New()
		}
	}
	for _, dir := range dirs.Directions() {
		dx, dy, dz, _, err := dirs.Offset(dir)
		if err != nil {
			continue
		}
		for p := range windows {
			for q := range windows {
				if compatible(windows[p], windows[q], n, m, l, dx, dy, dz) {
					prop[p][dir].Add(uint32(q))
				}
			}
		}
	}

	return &Compiled{P: len(windows), Weights: weights, Prop: prop, Mapping: mapping, TileRot: tileRot}, nil
}
