package constraint_test

import (
	"testing"

	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/propagator"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// symmetricTileRotation returns a *core.TileRotation under the trivial
// group (no real rotation, reflection-only) with the default Unchanged
// treatment, matching setup's Land/Water tiles which are symmetric under
// any reflection.
func symmetricTileRotation(t *testing.T) *core.TileRotation {
	t.Helper()
	group, err := core.NewRotationGroup(1, true)
	require.NoError(t, err)

	return core.NewTileRotation(group, core.Unchanged)
}

func mustTile(t *testing.T, id string) core.Tile {
	t.Helper()
	tile, err := core.NewTile(id, nil)
	require.NoError(t, err)

	return tile
}

func setup(t *testing.T, w, h int) (*constraint.Context, *pattern.Compiled) {
	t.Helper()
	land := mustTile(t, "Land")
	water := mustTile(t, "Water")
	m, err := model.NewAdjacentModel([]core.Tile{land, water})
	require.NoError(t, err)

	ds := topology.Cartesian2D()
	for _, dir := range ds.Directions() {
		require.NoError(t, m.Allow(dir, land, land))
		require.NoError(t, m.Allow(dir, land, water))
		require.NoError(t, m.Allow(dir, water, land))
		require.NoError(t, m.Allow(dir, water, water))
	}

	topo, err := topology.New(w, h, 1, ds, topology.Options{})
	require.NoError(t, err)

	compiled, err := pattern.CompileAdjacent(m, topo, nil, nil)
	require.NoError(t, err)

	wv, err := wave.New(topo, compiled.Weights)
	require.NoError(t, err)
	prop, err := propagator.New(topo, compiled, wv)
	require.NoError(t, err)

	return &constraint.Context{Prop: prop, Compiled: compiled}, compiled
}

func TestBorder_BansForbiddenTileAtEdges(t *testing.T) {
	ctx, compiled := setup(t, 3, 3)
	b, err := constraint.NewBorder([]string{"Water"}, 1)
	require.NoError(t, err)
	require.NoError(t, b.Init(ctx))

	// corner (0,0) is a border cell: Water must be banned there.
	cell, _ := compiled.Mapping.ToPatternCoord(0, 0, 0)
	assert.False(t, ctx.Prop.Wave().IsPossible(cell, patternFor(t, compiled, "Water")))
	// center (1,1) of a 3x3 grid is not a border cell under thickness 1.
	center, _ := compiled.Mapping.ToPatternCoord(1, 1, 0)
	assert.True(t, ctx.Prop.Wave().IsPossible(center, patternFor(t, compiled, "Water")))
}

func TestFixedTile_PinsExactCell(t *testing.T) {
	ctx, compiled := setup(t, 2, 2)
	f := &constraint.FixedTile{X: 0, Y: 0, Z: 0, TileID: "Land"}
	require.NoError(t, f.Init(ctx))

	cell, _ := compiled.Mapping.ToPatternCoord(0, 0, 0)
	assert.Equal(t, patternFor(t, compiled, "Land"), ctx.Prop.Wave().Status(cell))
}

func TestMaxConsecutive_ContradictsOnOverrun(t *testing.T) {
	ctx, compiled := setup(t, 4, 1)
	ds := topology.Cartesian2D()
	mc, err := constraint.NewMaxConsecutive([]string{"Water"}, ds.Directions()[1], 2)
	require.NoError(t, err)
	require.NoError(t, mc.Init(ctx))

	water := patternFor(t, compiled, "Water")
	for x := 0; x < 3; x++ {
		cell, _ := compiled.Mapping.ToPatternCoord(x, 0, 0)
		require.NoError(t, ctx.Prop.Select(cell, water))
		require.NoError(t, ctx.Prop.Propagate())
		require.NoError(t, mc.Check(ctx, cell))
	}

	assert.True(t, ctx.Contradicted())
}

func TestMirror_PropagatesReflectedTileAcrossAxis(t *testing.T) {
	ctx, compiled := setup(t, 3, 3)
	m, err := constraint.NewMirror("x", symmetricTileRotation(t))
	require.NoError(t, err)
	require.NoError(t, m.Init(ctx))

	water := patternFor(t, compiled, "Water")
	src, _ := compiled.Mapping.ToPatternCoord(0, 1, 0)
	require.NoError(t, ctx.Prop.Select(src, water))
	require.NoError(t, ctx.Prop.Propagate())
	require.NoError(t, m.Check(ctx, src))

	mirror, _ := compiled.Mapping.ToPatternCoord(2, 1, 0)
	assert.Equal(t, water, ctx.Prop.Wave().Status(mirror))
}

func TestMirror_CenterColumnIsItsOwnMirror(t *testing.T) {
	ctx, compiled := setup(t, 3, 3)
	m, err := constraint.NewMirror("x", symmetricTileRotation(t))
	require.NoError(t, err)
	require.NoError(t, m.Init(ctx))

	land := patternFor(t, compiled, "Land")
	center, _ := compiled.Mapping.ToPatternCoord(1, 1, 0)
	require.NoError(t, ctx.Prop.Select(center, land))
	require.NoError(t, ctx.Prop.Propagate())
	require.NoError(t, m.Check(ctx, center))

	assert.False(t, ctx.Contradicted())
}

func TestPath_ContradictsOnCycleUnlessAllowed(t *testing.T) {
	ctx, compiled := setup(t, 2, 2)
	registry := constraint.NewRegistry()
	p, err := registry.Build("path", map[string]interface{}{"tiles": []interface{}{"Land"}, "maxDegree": 2})
	require.NoError(t, err)
	require.NoError(t, p.Init(ctx))

	land := patternFor(t, compiled, "Land")
	coords := [][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, c := range coords {
		cell, _ := compiled.Mapping.ToPatternCoord(c[0], c[1], 0)
		require.NoError(t, ctx.Prop.Select(cell, land))
		require.NoError(t, ctx.Prop.Propagate())
		require.NoError(t, p.Check(ctx, cell))
	}

	assert.True(t, ctx.Contradicted())
}

func patternFor(t *testing.T, compiled *pattern.Compiled, id string) int {
	t.Helper()
	tile, ok := compiled.Mapping.FindTile(id)
	require.True(t, ok)
	for p := 0; p < compiled.P; p++ {
		got, err := compiled.Mapping.TileForPattern(p, 0)
		require.NoError(t, err)
		if got.Equal(tile) {
			return p
		}
	}
	t.Fatalf("pattern for tile %s not found", id)

	return -1
}
