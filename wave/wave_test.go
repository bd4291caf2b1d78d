package wave_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTopo(t *testing.T, w, h int) *topology.Topology {
	t.Helper()
	topo, err := topology.New(w, h, 1, topology.Cartesian2D(), topology.Options{})
	require.NoError(t, err)

	return topo
}

func TestWave_InitialStatusUndecided(t *testing.T) {
	topo := newTopo(t, 2, 2)
	w, err := wave.New(topo, []float64{1, 1, 1})
	require.NoError(t, err)

	for i := 0; i < topo.NumCells(); i++ {
		assert.Equal(t, wave.StatusUndecided, w.Status(i))
		assert.Equal(t, 3, w.Count(i))
	}
}

func TestWave_BanToDecided(t *testing.T) {
	topo := newTopo(t, 1, 1)
	w, err := wave.New(topo, []float64{1, 1})
	require.NoError(t, err)

	changed, err := w.Ban(0, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, w.Status(0))

	changed, err = w.Ban(0, 0)
	require.NoError(t, err)
	assert.False(t, changed, "banning an already-banned pattern is a no-op")
}

func TestWave_BanToContradiction(t *testing.T) {
	topo := newTopo(t, 1, 1)
	w, err := wave.New(topo, []float64{1, 1})
	require.NoError(t, err)

	_, err = w.Ban(0, 0)
	require.NoError(t, err)
	_, err = w.Ban(0, 1)
	require.NoError(t, err)

	assert.Equal(t, wave.StatusContradiction, w.Status(0))
	assert.True(t, w.Contradiction())
}

func TestWave_Select(t *testing.T) {
	topo := newTopo(t, 1, 1)
	w, err := wave.New(topo, []float64{1, 1, 1})
	require.NoError(t, err)

	banned, err := w.Select(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, banned)
	assert.Equal(t, 1, w.Status(0))
}

func TestWave_EntropyDropsAsPossibilitiesNarrow(t *testing.T) {
	topo := newTopo(t, 1, 1)
	w, err := wave.New(topo, []float64{1, 1, 1, 1})
	require.NoError(t, err)

	before := w.Entropy(0)
	_, err = w.Ban(0, 0)
	require.NoError(t, err)
	after := w.Entropy(0)
	assert.Less(t, after, before)
}

func TestWave_MinEntropyCell_SkipsDecidedAndMasked(t *testing.T) {
	topo, err := topology.New(3, 1, 1, topology.Cartesian2D(), topology.Options{Mask: []bool{true, false, true}})
	require.NoError(t, err)
	w, err := wave.New(topo, []float64{1, 1, 1})
	require.NoError(t, err)

	_, err = w.Select(0, 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	cell, ok := w.MinEntropyCell(rng)
	require.True(t, ok)
	assert.Equal(t, 2, cell)
}

func TestWave_MinRemainingValuesCell_SkipsDecidedAndMasked(t *testing.T) {
	topo, err := topology.New(3, 1, 1, topology.Cartesian2D(), topology.Options{Mask: []bool{true, false, true}})
	require.NoError(t, err)
	w, err := wave.New(topo, []float64{1, 1, 1})
	require.NoError(t, err)

	_, err = w.Select(0, 0)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	cell, ok := w.MinRemainingValuesCell(rng)
	require.True(t, ok)
	assert.Equal(t, 2, cell)
}

func TestWave_ScanlineCell_FirstUndecided(t *testing.T) {
	topo, err := topology.New(3, 1, 1, topology.Cartesian2D(), topology.Options{Mask: []bool{true, false, true}})
	require.NoError(t, err)
	w, err := wave.New(topo, []float64{1, 1, 1})
	require.NoError(t, err)

	cell, ok := w.ScanlineCell()
	require.True(t, ok)
	assert.Equal(t, 0, cell)

	_, err = w.Select(0, 0)
	require.NoError(t, err)
	cell, ok = w.ScanlineCell()
	require.True(t, ok)
	assert.Equal(t, 2, cell)
}

func TestWave_Clone_IsIndependent(t *testing.T) {
	topo := newTopo(t, 1, 1)
	w, err := wave.New(topo, []float64{1, 1})
	require.NoError(t, err)

	clone := w.Clone()
	_, err = w.Ban(0, 0)
	require.NoError(t, err)

	assert.Equal(t, wave.StatusUndecided, clone.Status(0))
	assert.Equal(t, 1, w.Status(0))
}
