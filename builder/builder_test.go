package builder_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/wfc/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkerboardYAML = `
width: 4
height: 4
directions: Cartesian2D
tiles:
  - id: Black
  - id: White
model:
  kind: adjacent
  pairs:
    - {direction: North, a: Black, b: White}
    - {direction: South, a: Black, b: White}
    - {direction: East, a: Black, b: White}
    - {direction: West, a: Black, b: White}
    - {direction: North, a: White, b: Black}
    - {direction: South, a: White, b: Black}
    - {direction: East, a: White, b: Black}
    - {direction: West, a: White, b: Black}
`

func TestBuild_FromYAML_SolvesCheckerboard(t *testing.T) {
	d, err := builder.DecodeYAML(strings.NewReader(checkerboardYAML))
	require.NoError(t, err)

	tp, err := builder.Build(d, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	require.NoError(t, tp.Run(context.Background()))
	assert.Equal(t, 1.0, tp.Progress())
}

func TestBuild_RequiresRand(t *testing.T) {
	d, err := builder.DecodeYAML(strings.NewReader(checkerboardYAML))
	require.NoError(t, err)

	_, err = builder.Build(d)
	assert.ErrorIs(t, err, builder.ErrNeedRand)
}

func TestBuild_NilDescriptor(t *testing.T) {
	_, err := builder.Build(nil, builder.WithRand(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, builder.ErrEmptyDescriptor)
}

func TestBuild_UnknownDirectionSet_SuggestsClosest(t *testing.T) {
	d, err := builder.DecodeYAML(strings.NewReader(checkerboardYAML))
	require.NoError(t, err)
	d.Directions = "Cartesia2D" // typo

	_, err = builder.Build(d, builder.WithRand(rand.New(rand.NewSource(1))))
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrUnknownTag)
}

func TestBuild_UnknownConstraintTag(t *testing.T) {
	d, err := builder.DecodeYAML(strings.NewReader(checkerboardYAML))
	require.NoError(t, err)
	d.Constraints = []builder.ConstraintDescriptor{
		{Tag: "boarder", Params: map[string]interface{}{"tiles": []interface{}{"Black"}, "thickness": 1}},
	}

	_, err = builder.Build(d, builder.WithRand(rand.New(rand.NewSource(1))))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "border")
}

func TestBuild_BorderConstraint_BansTileAtEdges(t *testing.T) {
	d, err := builder.DecodeYAML(strings.NewReader(checkerboardYAML))
	require.NoError(t, err)
	// White may also border White, so an all-White border is satisfiable.
	for _, dir := range []string{"North", "South", "East", "West"} {
		d.Model.Pairs = append(d.Model.Pairs, builder.PairDescriptor{Direction: dir, A: "White", B: "White"})
	}
	d.Constraints = []builder.ConstraintDescriptor{
		{Tag: "Border", Params: map[string]interface{}{"tiles": []interface{}{"Black"}, "thickness": 1}},
	}

	tp, err := builder.Build(d, builder.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	// Black is pattern 0 (declared first); (0,0) is cell 0, a border cell
	// at thickness 1.
	assert.True(t, tp.IsPatternBanned(0, 0))
}
