package debugprint_test

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/wfc/builder"
	"github.com/katalvlaran/wfc/debugprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkerboardYAML = `
width: 3
height: 3
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

func TestDumpArray_SolvedGrid_PrintsTileIDs(t *testing.T) {
	d, err := builder.DecodeYAML(strings.NewReader(checkerboardYAML))
	require.NoError(t, err)
	tp, err := builder.Build(d, builder.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	require.NoError(t, tp.Run(context.Background()))

	var buf bytes.Buffer
	debugprint.DumpArray(&buf, tp)

	out := buf.String()
	assert.Contains(t, out, "Black")
	assert.Contains(t, out, "White")
	assert.NotContains(t, out, "?")
	assert.NotContains(t, out, "!")
}

func TestDumpWave_UnsolvedGrid_PrintsCounts(t *testing.T) {
	d, err := builder.DecodeYAML(strings.NewReader(checkerboardYAML))
	require.NoError(t, err)
	tp, err := builder.Build(d, builder.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	var buf bytes.Buffer
	debugprint.DumpWave(&buf, tp)

	// Before any Step, every cell still has both patterns possible.
	assert.Contains(t, buf.String(), "(2)")
}
