package wfc_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wfc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodedIDs maps ToValueArray's tiles to their string IDs, for diffing
// against an expected grid without reflect.DeepEqual noise from Tile's
// unexported/Payload fields.
func decodedIDs(values []core.Tile) []string {
	ids := make([]string, len(values))
	for i, tile := range values {
		ids[i] = tile.ID()
	}

	return ids
}

func mustTile(t *testing.T, id string) core.Tile {
	t.Helper()
	tile, err := core.NewTile(id, nil)
	require.NoError(t, err)

	return tile
}

// checkerboardCompiled builds a compiled pattern set over a w×h grid where
// Black only neighbors White and vice versa in every direction: the unique
// consistent assignment is a checkerboard.
func checkerboardCompiled(t *testing.T, w, h int) *pattern.Compiled {
	t.Helper()
	black := mustTile(t, "Black")
	white := mustTile(t, "White")
	m, err := model.NewAdjacentModel([]core.Tile{black, white})
	require.NoError(t, err)

	ds := topology.Cartesian2D()
	for _, dir := range ds.Directions() {
		require.NoError(t, m.Allow(dir, black, white))
		require.NoError(t, m.Allow(dir, white, black))
	}

	topo, err := topology.New(w, h, 1, ds, topology.Options{})
	require.NoError(t, err)

	compiled, err := pattern.CompileAdjacent(m, topo, nil, nil)
	require.NoError(t, err)

	return compiled
}

func TestTilePropagator_New_RequiresRand(t *testing.T) {
	compiled := checkerboardCompiled(t, 2, 2)
	_, err := wfc.New(compiled, nil)
	assert.ErrorIs(t, err, wfc.ErrNeedRand)
}

func TestTilePropagator_Run_SolvesCheckerboard(t *testing.T) {
	compiled := checkerboardCompiled(t, 4, 4)
	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	require.NoError(t, tp.Run(context.Background()))
	assert.Equal(t, 1.0, tp.Progress())

	values := tp.ToValueArray()
	for _, tile := range values {
		assert.False(t, tile.IsZero())
	}
}

func TestTilePropagator_ConflictingFixedTilesContradictAtInit(t *testing.T) {
	compiled := checkerboardCompiled(t, 3, 3)
	pinBlack := &constraint.FixedTile{X: 0, Y: 0, Z: 0, TileID: "Black"}
	pinWhite := &constraint.FixedTile{X: 0, Y: 0, Z: 0, TileID: "White"}

	_, err := wfc.New(compiled, []constraint.Constraint{pinBlack, pinWhite}, wfc.WithRand(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, wfc.ErrContradictionAtInit)
}

func TestTilePropagator_ClearResetsToInitialState(t *testing.T) {
	compiled := checkerboardCompiled(t, 3, 3)
	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	done, err := tp.Step(context.Background())
	require.NoError(t, err)
	assert.False(t, done)
	assert.Greater(t, tp.Progress(), 0.0)

	tp.Clear()
	assert.Equal(t, 0.0, tp.Progress())
	assert.Equal(t, 0, tp.BacktrackCount())
}

func TestTilePropagator_ManualBanAndSelect(t *testing.T) {
	compiled := checkerboardCompiled(t, 2, 2)
	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	require.NoError(t, tp.SelectPattern(0, 0))
	pattern, ok := tp.IsPatternSelected(0)
	require.True(t, ok)
	assert.Equal(t, 0, pattern)
	assert.True(t, tp.IsPatternBanned(0, 1))
}

// stripeCompiled builds a 4x1 Adjacent model where only A-B/B-A is
// permitted horizontally, matching spec scenario 2 ("forced stripe").
func stripeCompiled(t *testing.T) *pattern.Compiled {
	t.Helper()
	a := mustTile(t, "A")
	b := mustTile(t, "B")
	m, err := model.NewAdjacentModel([]core.Tile{a, b})
	require.NoError(t, err)

	ds := topology.Cartesian2D()
	east, err := ds.ByName("East")
	require.NoError(t, err)
	west, err := ds.ByName("West")
	require.NoError(t, err)
	require.NoError(t, m.Allow(east, a, b))
	require.NoError(t, m.Allow(west, b, a))
	require.NoError(t, m.Allow(east, b, a))
	require.NoError(t, m.Allow(west, a, b))

	topo, err := topology.New(4, 1, 1, ds, topology.Options{})
	require.NoError(t, err)

	compiled, err := pattern.CompileAdjacent(m, topo, nil, nil)
	require.NoError(t, err)

	return compiled
}

func TestTilePropagator_SelectThenRun_ForcedStripeMatchesExactSequence(t *testing.T) {
	compiled := stripeCompiled(t)
	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(0))))
	require.NoError(t, err)

	aPattern, ok := compiled.Mapping.FindTile("A")
	require.True(t, ok)
	patternID := -1
	for p := 0; p < compiled.P; p++ {
		tile, err := compiled.Mapping.TileForPattern(p, 0)
		require.NoError(t, err)
		if tile.Equal(aPattern) {
			patternID = p
			break
		}
	}
	require.GreaterOrEqual(t, patternID, 0)

	require.NoError(t, tp.SelectPattern(0, patternID))
	require.NoError(t, tp.Run(context.Background()))

	got := decodedIDs(tp.ToValueArray())
	want := []string{"A", "B", "A", "B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("forced stripe decoded grid mismatch (-want +got):\n%s", diff)
	}
}

func TestTilePropagator_TileSpace_BanSelectIsBannedIsSelected(t *testing.T) {
	compiled := checkerboardCompiled(t, 2, 2)
	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	black := mustTile(t, "Black")
	white := mustTile(t, "White")

	require.NoError(t, tp.Select(0, 0, 0, black))
	assert.True(t, tp.IsSelected(0, 0, 0, black))
	assert.False(t, tp.IsSelected(0, 0, 0, white))
	assert.True(t, tp.IsBanned(0, 0, 0, white))
	assert.False(t, tp.IsBanned(0, 0, 0, black))

	banned, selected := tp.GetBannedSelected(0, 0, 0, black)
	assert.False(t, banned)
	assert.True(t, selected)
}

func TestTilePropagator_TileSpace_BanRemovesJustThatTile(t *testing.T) {
	compiled := checkerboardCompiled(t, 2, 2)
	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	white := mustTile(t, "White")
	require.NoError(t, tp.Ban(0, 0, 0, white))
	assert.True(t, tp.IsBanned(0, 0, 0, white))
	assert.True(t, tp.IsSelected(0, 0, 0, mustTile(t, "Black")))
}

func TestTilePropagator_SetContradiction_EmptiesCell(t *testing.T) {
	compiled := checkerboardCompiled(t, 2, 2)
	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	tp.SetContradiction(0, 0, 0)
	assert.True(t, tp.IsBanned(0, 0, 0, mustTile(t, "Black")))
	assert.True(t, tp.IsBanned(0, 0, 0, mustTile(t, "White")))
}

func TestTilePropagator_BacktrackDepthZero_ReturnsErrContradictionInstead(t *testing.T) {
	a := mustTile(t, "A")
	b := mustTile(t, "B")
	c := mustTile(t, "C")
	m, err := model.NewAdjacentModel([]core.Tile{a, b, c})
	require.NoError(t, err)

	ds := topology.Cartesian2D()
	for _, dir := range ds.Directions() {
		require.NoError(t, m.Allow(dir, a, b))
		require.NoError(t, m.Allow(dir, b, a))
		require.NoError(t, m.Allow(dir, b, c))
		require.NoError(t, m.Allow(dir, c, b))
	}
	// B must alternate with A or C, which a 3-cell periodic cycle cannot
	// do: the first collapse always ends in a contradiction.
	topo, err := topology.New(3, 3, 1, ds, topology.Options{PeriodicX: true, PeriodicY: true})
	require.NoError(t, err)
	compiled, err := pattern.CompileAdjacent(m, topo, nil, nil)
	require.NoError(t, err)

	tp, err := wfc.New(compiled, nil,
		wfc.WithRand(rand.New(rand.NewSource(42))),
		wfc.WithBacktrackDepth(0),
	)
	require.NoError(t, err)

	err = tp.Run(context.Background())
	assert.ErrorIs(t, err, wfc.ErrContradiction)
}

func TestTilePropagator_Run_SolvesCheckerboardUnderEveryHeuristic(t *testing.T) {
	for _, h := range []wfc.HeuristicKind{wfc.MinEntropy, wfc.MRV, wfc.Scanline, wfc.Random} {
		t.Run(h.String(), func(t *testing.T) {
			compiled := checkerboardCompiled(t, 4, 4)
			tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(2))), wfc.WithHeuristic(h))
			require.NoError(t, err)

			require.NoError(t, tp.Run(context.Background()))
			assert.Equal(t, 1.0, tp.Progress())

			values := tp.ToValueArray()
			for _, tile := range values {
				assert.False(t, tile.IsZero())
			}
		})
	}
}
