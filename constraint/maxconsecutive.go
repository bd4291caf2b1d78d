package constraint

import (
	"fmt"

	"github.com/katalvlaran/wfc/topology"
)

// MaxConsecutive forbids more than Max consecutive decided cells matching
// TileIDs along Direction (and its opposite), e.g. "no more than 3 water
// tiles in a row" (§5 "MaxConsecutive").
type MaxConsecutive struct {
	TileIDs   []string
	Direction topology.Direction
	Max       int

	match map[string]bool
}

func newMaxConsecutiveFromParams(params map[string]interface{}) (Constraint, error) {
	ids, err := stringSliceParam(params, "tiles")
	if err != nil {
		return nil, fmt.Errorf("maxconsecutive: %w", err)
	}
	max, err := intParam(params, "max", 0)
	if err != nil {
		return nil, fmt.Errorf("maxconsecutive: %w", err)
	}
	dir, err := intParam(params, "direction", 0)
	if err != nil {
		return nil, fmt.Errorf("maxconsecutive: %w", err)
	}

	return NewMaxConsecutive(ids, topology.Direction(dir), max)
}

// NewMaxConsecutive constructs a MaxConsecutive constraint. max must be >= 1.
func NewMaxConsecutive(tileIDs []string, dir topology.Direction, max int) (*MaxConsecutive, error) {
	if max < 1 {
		return nil, fmt.Errorf("NewMaxConsecutive(max=%d): %w", max, ErrBadParams)
	}
	match, err := tileIDSet(tileIDs)
	if err != nil {
		return nil, fmt.Errorf("NewMaxConsecutive: %w", err)
	}

	return &MaxConsecutive{TileIDs: tileIDs, Direction: dir, Max: max, match: match}, nil
}

func (c *MaxConsecutive) Name() string { return "MaxConsecutive" }

// Init is a no-op: runs can only be measured once cells start deciding.
func (c *MaxConsecutive) Init(ctx *Context) error { return nil }

// Check walks both ways from cell along Direction, counting the
// consecutive run of decided cells matching TileIDs that cell belongs to.
func (c *MaxConsecutive) Check(ctx *Context, cell int) error {
	mapping := ctx.Compiled.Mapping
	patternTopo := mapping.PatternTopology()
	status := ctx.Prop.Wave().Status(cell)
	if status < 0 {
		return nil
	}
	tile, err := mapping.TileForPattern(status, 0)
	if err != nil {
		return err
	}
	if !c.match[tile.ID()] {
		return nil
	}

	backward, err := patternTopo.Directions().Opposite(c.Direction)
	if err != nil {
		return fmt.Errorf("MaxConsecutive.Check: %w", err)
	}

	run := 1
	run += c.walk(ctx, patternTopo, cell, backward)
	run += c.walk(ctx, patternTopo, cell, c.Direction)

	if run > c.Max {
		ctx.SetContradiction(cell)
	}

	return nil
}

// walk counts consecutive matching decided cells starting one step past
// cell in dir.
func (c *MaxConsecutive) walk(ctx *Context, t *topology.Topology, cell int, dir topology.Direction) int {
	count := 0
	cur := cell
	for {
		next, ok := t.Neighbor(cur, dir)
		if !ok {
			return count
		}
		status := ctx.Prop.Wave().Status(next)
		if status < 0 {
			return count
		}
		tile, err := ctx.Compiled.Mapping.TileForPattern(status, 0)
		if err != nil || !c.match[tile.ID()] {
			return count
		}
		count++
		cur = next
	}
}

func (c *MaxConsecutive) Snapshot() func() { return func() {} }
