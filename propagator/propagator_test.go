package propagator_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/propagator"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTileChain builds a 1D, 3-cell, non-periodic Cartesian2D topology with
// two patterns (0 and 1) that may only follow themselves East/West: a
// strict "all same color" constraint, so deciding cell 0 must force every
// other cell.
func twoTileChain(t *testing.T) (*topology.Topology, *pattern.Compiled) {
	t.Helper()
	ds := topology.Cartesian2D()
	topo, err := topology.New(3, 1, 1, ds, topology.Options{})
	require.NoError(t, err)

	east, west := ds.Directions()[1], ds.Directions()[3]
	prop := make([][]*roaring.Bitmap, 2)
	for p := range prop {
		prop[p] = make([]*roaring.Bitmap, ds.Len())
		for d := range prop[p] {
			prop[p][d] = roaring.New()
		}
	}
	prop[0][east].Add(0)
	prop[0][west].Add(0)
	prop[1][east].Add(1)
	prop[1][west].Add(1)

	return topo, &pattern.Compiled{P: 2, Weights: []float64{1, 1}, Prop: prop}
}

func TestPropagator_SelectForcesChain(t *testing.T) {
	topo, compiled := twoTileChain(t)
	w, err := wave.New(topo, compiled.Weights)
	require.NoError(t, err)
	p, err := propagator.New(topo, compiled, w)
	require.NoError(t, err)

	require.NoError(t, p.Select(0, 0))
	require.NoError(t, p.Propagate())

	assert.Equal(t, 0, p.Wave().Status(0))
	assert.Equal(t, 0, p.Wave().Status(1))
	assert.Equal(t, 0, p.Wave().Status(2))
	assert.False(t, p.Wave().Contradiction())
}

func TestPropagator_ConflictingSelectsContradict(t *testing.T) {
	topo, compiled := twoTileChain(t)
	w, err := wave.New(topo, compiled.Weights)
	require.NoError(t, err)
	p, err := propagator.New(topo, compiled, w)
	require.NoError(t, err)

	require.NoError(t, p.Select(0, 0))
	require.NoError(t, p.Propagate())
	require.NoError(t, p.Select(2, 1))
	require.NoError(t, p.Propagate())

	assert.True(t, p.Wave().Contradiction())
}

func TestPropagator_CheckpointBacktrackRestoresWave(t *testing.T) {
	topo, compiled := twoTileChain(t)
	w, err := wave.New(topo, compiled.Weights)
	require.NoError(t, err)
	p, err := propagator.New(topo, compiled, w)
	require.NoError(t, err)

	p.Checkpoint()
	undoCalled := false
	p.RegisterUndo(func() { undoCalled = true })

	require.NoError(t, p.Select(0, 0))
	require.NoError(t, p.Propagate())
	assert.Equal(t, 0, p.Wave().Status(0))

	require.NoError(t, p.Backtrack())
	assert.True(t, undoCalled)
	assert.Equal(t, wave.StatusUndecided, p.Wave().Status(0))
	assert.Equal(t, 0, p.Depth())
}

func TestPropagator_BacktrackEmptyJournal(t *testing.T) {
	topo, compiled := twoTileChain(t)
	w, err := wave.New(topo, compiled.Weights)
	require.NoError(t, err)
	p, err := propagator.New(topo, compiled, w)
	require.NoError(t, err)

	err = p.Backtrack()
	assert.ErrorIs(t, err, propagator.ErrNothingToBacktrack)
}
