package constraint

import (
	"fmt"

	"github.com/katalvlaran/wfc/core"
)

// Mirror enforces symmetry across a parameterized axis ("x" or "y"): the
// tile decided at a cell must equal the reflected tile decided at its
// mirror cell, computed via a supplied *core.TileRotation (§5 "Mirror"; an
// Open Question the distilled spec left axis-agnostic is resolved here by
// making the axis an explicit field rather than hard-coding X).
type Mirror struct {
	Axis    string // "x" or "y"
	TileRot *core.TileRotation

	rot core.Rotation
}

func newMirrorFromParams(params map[string]interface{}) (Constraint, error) {
	return nil, fmt.Errorf("mirror: %w: construct via NewMirror (requires a *core.TileRotation, not representable in plain config params)", ErrBadParams)
}

// NewMirror constructs a Mirror constraint. axis must be "x" or "y".
func NewMirror(axis string, tileRot *core.TileRotation) (*Mirror, error) {
	var rot core.Rotation
	switch axis {
	case "x":
		rot = core.Rotation{Angle: 0, ReflectX: true}
	case "y":
		rot = core.Rotation{Angle: 180, ReflectX: true}
	default:
		return nil, fmt.Errorf("NewMirror(axis=%s): %w", axis, ErrBadParams)
	}

	return &Mirror{Axis: axis, TileRot: tileRot, rot: rot}, nil
}

func (m *Mirror) Name() string { return "Mirror" }

// Init is a no-op: Mirror has nothing to forbid before any cell decides.
func (m *Mirror) Init(ctx *Context) error { return nil }

func mirrorCoord(x, y, w, h int, axis string) (int, int) {
	if axis == "x" {
		return w - 1 - x, y
	}

	return x, h - 1 - y
}

// Check propagates a newly-decided cell's tile to its mirror cell: the
// mirror must hold the reflected tile.
func (m *Mirror) Check(ctx *Context, cell int) error {
	mapping := ctx.Compiled.Mapping
	patternTopo := mapping.PatternTopology()
	x, y, z := patternTopo.Coordinate(cell)
	mx, my := mirrorCoord(x, y, patternTopo.W, patternTopo.H, m.Axis)
	mirrorCell := patternTopo.Index(mx, my, z)
	if mirrorCell == cell {
		return nil
	}

	status := ctx.Prop.Wave().Status(cell)
	if status < 0 {
		return nil
	}
	tile, err := mapping.TileForPattern(status, 0)
	if err != nil {
		return err
	}
	desired, err := m.TileRot.Transform(tile, m.rot)
	if err != nil {
		return fmt.Errorf("Mirror.Check: %w", err)
	}

	return banPatternsNotMatching(ctx, mapping, mirrorCell, 0, func(t core.Tile) bool {
		return t.Equal(desired)
	})
}

func (m *Mirror) Snapshot() func() { return func() {} }
