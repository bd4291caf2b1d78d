package constraint

import (
	"fmt"

	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/topology"
)

// Border forbids a set of tiles from appearing within Thickness cells of
// any non-periodic edge of the solving topology (§5 "Border").
type Border struct {
	TileIDs   []string
	Thickness int

	forbidden map[string]bool
}

func newBorderFromParams(params map[string]interface{}) (Constraint, error) {
	ids, err := stringSliceParam(params, "tiles")
	if err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	thickness, err := intParam(params, "thickness", 1)
	if err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}

	return NewBorder(ids, thickness)
}

// NewBorder constructs a Border constraint. thickness must be >= 1.
func NewBorder(tileIDs []string, thickness int) (*Border, error) {
	if thickness < 1 {
		return nil, fmt.Errorf("NewBorder(thickness=%d): %w", thickness, ErrBadParams)
	}
	forbidden, err := tileIDSet(tileIDs)
	if err != nil {
		return nil, fmt.Errorf("NewBorder: %w", err)
	}

	return &Border{TileIDs: tileIDs, Thickness: thickness, forbidden: forbidden}, nil
}

func (b *Border) Name() string { return "Border" }

func (b *Border) isBorderCell(x, y, z int, t *topology.Topology) bool {
	if !t.PeriodicX() && (x < b.Thickness || x >= t.W-b.Thickness) {
		return true
	}
	if !t.PeriodicY() && (y < b.Thickness || y >= t.H-b.Thickness) {
		return true
	}
	if t.D > 1 && !t.PeriodicZ() && (z < b.Thickness || z >= t.D-b.Thickness) {
		return true
	}

	return false
}

// Init bans every forbidden tile from every border cell.
func (b *Border) Init(ctx *Context) error {
	mapping := ctx.Compiled.Mapping
	t := mapping.TileTopology()
	for z := 0; z < t.D; z++ {
		for y := 0; y < t.H; y++ {
			for x := 0; x < t.W; x++ {
				if !b.isBorderCell(x, y, z, t) {
					continue
				}
				patternCell, offset := mapping.ToPatternCoord(x, y, z)
				if err := banPatternsNotMatching(ctx, mapping, patternCell, offset, func(tile core.Tile) bool {
					return !b.forbidden[tile.ID()]
				}); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Check is a no-op: Border is fully enforced at Init.
func (b *Border) Check(ctx *Context, cell int) error { return nil }

func (b *Border) Snapshot() func() { return func() {} }
