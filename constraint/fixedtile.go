package constraint

import (
	"fmt"

	"github.com/katalvlaran/wfc/core"
)

// FixedTile pins a single tile-space cell to a specific tile before
// solving begins (§5 "FixedTile").
type FixedTile struct {
	X, Y, Z int
	TileID  string
}

func newFixedTileFromParams(params map[string]interface{}) (Constraint, error) {
	x, err := intParam(params, "x", 0)
	if err != nil {
		return nil, fmt.Errorf("fixedtile: %w", err)
	}
	y, err := intParam(params, "y", 0)
	if err != nil {
		return nil, fmt.Errorf("fixedtile: %w", err)
	}
	z, err := intParam(params, "z", 0)
	if err != nil {
		return nil, fmt.Errorf("fixedtile: %w", err)
	}
	id, err := stringParam(params, "tile")
	if err != nil {
		return nil, fmt.Errorf("fixedtile: %w", err)
	}

	return &FixedTile{X: x, Y: y, Z: z, TileID: id}, nil
}

func (f *FixedTile) Name() string { return "FixedTile" }

// Init bans every pattern at the target cell whose occupying tile isn't
// the fixed one.
func (f *FixedTile) Init(ctx *Context) error {
	mapping := ctx.Compiled.Mapping
	desired, ok := mapping.FindTile(f.TileID)
	if !ok {
		return fmt.Errorf("FixedTile.Init(%s): %w", f.TileID, ErrUnknownTile)
	}
	patternCell, offset := mapping.ToPatternCoord(f.X, f.Y, f.Z)

	return banPatternsNotMatching(ctx, mapping, patternCell, offset, func(t core.Tile) bool {
		return t.Equal(desired)
	})
}

// Check is a no-op: FixedTile is fully enforced at Init.
func (f *FixedTile) Check(ctx *Context, cell int) error { return nil }

func (f *FixedTile) Snapshot() func() { return func() {} }
