package model

import (
	"fmt"

	"github.com/katalvlaran/wfc/core"
)

// SampleGrid is a rectangular W×H×D grid of tiles, row-major (z outermost,
// then y, then x), used as overlapping-model input. A SampleGrid is
// immutable once constructed.
type SampleGrid struct {
	W, H, D int
	tiles   []core.Tile
}

// NewSampleGrid constructs a SampleGrid. tiles must have length W*H*D.
//
// Complexity: O(W*H*D) to copy the tile slice.
func NewSampleGrid(w, h, d int, tiles []core.Tile) (*SampleGrid, error) {
	if w < 1 || h < 1 || d < 1 {
		return nil, fmt.Errorf("NewSampleGrid(%d,%d,%d): %w", w, h, d, ErrBadGridDims)
	}
	if len(tiles) != w*h*d {
		return nil, fmt.Errorf("NewSampleGrid: got %d tiles, want %d: %w", len(tiles), w*h*d, ErrGridLengthMismatch)
	}

	return &SampleGrid{W: w, H: h, D: d, tiles: append([]core.Tile(nil), tiles...)}, nil
}

// Index maps (x,y,z) to a row-major offset into the tile slice.
func (g *SampleGrid) Index(x, y, z int) int { return (z*g.H+y)*g.W + x }

// At returns the tile at (x,y,z). Panics if the coordinate is out of
// bounds (a LogicError condition: callers must bounds-check via W/H/D).
func (g *SampleGrid) At(x, y, z int) core.Tile {
	return g.tiles[g.Index(x, y, z)]
}

// OverlappingModel stores one or more SampleGrid inputs plus the N×M×L
// window dimensions pattern compilation extracts from them (§3
// "Overlapping(N, M, L)").
type OverlappingModel struct {
	N, M, L int
	Samples []*SampleGrid
}

// NewOverlappingModel constructs an OverlappingModel. n, m, l must each be
// >= 1; at least one sample is required, and every sample must be at least
// n×m×l in its respective dimensions; an undersized sample is rejected
// with ErrSampleTooSmall whether or not extraction will later be periodic.
//
// Complexity: O(len(samples)).
func NewOverlappingModel(n, m, l int, samples ...*SampleGrid) (*OverlappingModel, error) {
	if n < 1 || m < 1 || l < 1 {
		return nil, fmt.Errorf("NewOverlappingModel(%d,%d,%d): %w", n, m, l, ErrBadWindowDims)
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	for i, s := range samples {
		if s.W < n || s.H < m || s.D < l {
			return nil, fmt.Errorf("NewOverlappingModel: sample %d is %dx%dx%d, smaller than window %dx%dx%d: %w",
				i, s.W, s.H, s.D, n, m, l, ErrSampleTooSmall)
		}
	}

	return &OverlappingModel{N: n, M: m, L: l, Samples: append([]*SampleGrid(nil), samples...)}, nil
}

// Kind implements model.TileModel.
func (m *OverlappingModel) Kind() Kind { return OverlappingKind }
