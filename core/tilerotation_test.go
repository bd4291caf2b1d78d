package core_test

import (
	"testing"

	"github.com/katalvlaran/wfc/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileRotation_Unchanged(t *testing.T) {
	g, err := core.NewRotationGroup(4, false)
	require.NoError(t, err)
	tr := core.NewTileRotation(g, core.Unchanged)

	a, err := core.NewTile("A", nil)
	require.NoError(t, err)

	got, err := tr.Transform(a, core.Rotation{Angle: 90})
	require.NoError(t, err)
	assert.True(t, got.Equal(a))
}

func TestTileRotation_Missing(t *testing.T) {
	g, err := core.NewRotationGroup(4, false)
	require.NoError(t, err)
	tr := core.NewTileRotation(g, core.Missing)

	a, err := core.NewTile("A", nil)
	require.NoError(t, err)

	_, err = tr.Transform(a, core.Rotation{Angle: 90})
	assert.ErrorIs(t, err, core.ErrTransformMissing)
}

func TestTileRotation_Generated_Memoized(t *testing.T) {
	g, err := core.NewRotationGroup(4, false)
	require.NoError(t, err)
	tr := core.NewTileRotation(g, core.Generated)

	a, err := core.NewTile("A", nil)
	require.NoError(t, err)

	first, err := tr.Transform(a, core.Rotation{Angle: 90})
	require.NoError(t, err)
	assert.False(t, first.IsZero())
	assert.NotEqual(t, a.ID(), first.ID())

	second, err := tr.Transform(a, core.Rotation{Angle: 90})
	require.NoError(t, err)
	assert.True(t, first.Equal(second), "generated tiles must be memoized per (tile,rotation)")
}

func TestTileRotation_DeclareOverridesTreatment(t *testing.T) {
	g, err := core.NewRotationGroup(4, false)
	require.NoError(t, err)
	tr := core.NewTileRotation(g, core.Missing)

	a, err := core.NewTile("A", nil)
	require.NoError(t, err)
	b, err := core.NewTile("B", nil)
	require.NoError(t, err)
	require.NoError(t, tr.Declare(a, core.Rotation{Angle: 90}, b))

	got, err := tr.Transform(a, core.Rotation{Angle: 90})
	require.NoError(t, err)
	assert.True(t, got.Equal(b))
}

func TestTileRotation_Canonicalize(t *testing.T) {
	g, err := core.NewRotationGroup(4, false)
	require.NoError(t, err)
	tr := core.NewTileRotation(g, core.Unchanged)
	a, err := core.NewTile("A", nil)
	require.NoError(t, err)

	got, err := tr.Canonicalize(core.RotatedTile{Base: a, Rot: core.Identity})
	require.NoError(t, err)
	assert.True(t, got.Equal(a))
}
