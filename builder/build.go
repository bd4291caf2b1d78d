package builder

import (
	"math/rand"

	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wfc"
)

// builderConfig holds Build's resolved configuration. Unexported: callers
// only ever see it through functional BuilderOption values, mirroring the
// rest of this module's options pattern (core.TileRotation.SetTreatment,
// wfc.Option).
type builderConfig struct {
	registry       *constraint.Registry
	rng            *rand.Rand
	heuristic      wfc.HeuristicKind
	backtrackDepth int
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{heuristic: wfc.MinEntropy, backtrackDepth: -1}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// BuilderOption configures Build. Every WithX constructor is a no-op on a
// nil/invalid argument rather than panicking: Build itself is the only
// place that can fail, via its returned error.
type BuilderOption func(*builderConfig)

// WithRegistry supplies the constraint.Registry used to resolve
// ConstraintDescriptor tags. A nil registry is a no-op; Build falls back to
// constraint.NewRegistry()'s built-ins.
func WithRegistry(r *constraint.Registry) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithRand supplies the TilePropagator's source of randomness. A nil rng is
// a no-op; Build returns ErrNeedRand if none is ever supplied.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithHeuristic selects the resulting TilePropagator's cell-selection
// heuristic. An unrecognized kind is a no-op.
func WithHeuristic(h wfc.HeuristicKind) BuilderOption {
	return func(c *builderConfig) {
		switch h {
		case wfc.MinEntropy, wfc.MRV, wfc.Scanline, wfc.Random:
			c.heuristic = h
		}
	}
}

// WithBacktrackDepth sets the resulting TilePropagator's backtracking
// journal depth; see wfc.WithBacktrackDepth for the 0/negative/positive
// semantics. The default is -1 (unlimited).
func WithBacktrackDepth(depth int) BuilderOption {
	return func(c *builderConfig) {
		c.backtrackDepth = depth
	}
}

// Build constructs a *wfc.TilePropagator from d: the topology, rotation
// group/tile rotation, tile model, pattern compilation, and constraint set
// are each assembled by their dedicated sub-builder, then handed to
// wfc.New. Returns ErrEmptyDescriptor for a nil d, ErrNeedRand if no
// WithRand option was given.
//
// Complexity: dominated by pattern compilation (see pattern.CompileAdjacent
// / pattern.CompileOverlapping) and wfc.New's wave/propagator construction.
func Build(d *Descriptor, opts ...BuilderOption) (*wfc.TilePropagator, error) {
	if d == nil {
		return nil, builderErrorf("Build", ErrEmptyDescriptor)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf("Build", ErrNeedRand)
	}
	if cfg.registry == nil {
		cfg.registry = constraint.NewRegistry()
	}

	ds, err := resolveDirectionSet(d)
	if err != nil {
		return nil, builderErrorf("Build", err)
	}

	depth := d.Depth
	if depth == 0 {
		depth = 1
	}
	topo, err := topology.New(d.Width, d.Height, depth, ds, topology.Options{
		PeriodicX: d.PeriodicX,
		PeriodicY: d.PeriodicY,
		PeriodicZ: d.PeriodicZ,
		Mask:      d.Mask,
	})
	if err != nil {
		return nil, builderErrorf("Build", err)
	}

	rotations, tileRot, err := NewTileRotationBuilder().Build(d)
	if err != nil {
		return nil, builderErrorf("Build", err)
	}

	tm, err := NewModelFactory().Build(d, ds)
	if err != nil {
		return nil, builderErrorf("Build", err)
	}

	var compiled *pattern.Compiled
	switch m := tm.(type) {
	case *model.AdjacentModel:
		compiled, err = pattern.CompileAdjacent(m, topo, rotations, tileRot)
	case *model.OverlappingModel:
		compiled, err = pattern.CompileOverlapping(m, topo, rotations, tileRot)
	default:
		err = ErrUnknownTag
	}
	if err != nil {
		return nil, builderErrorf("Build", err)
	}

	cons, err := NewConstraintFactory(cfg.registry).Build(d, tileRot)
	if err != nil {
		return nil, builderErrorf("Build", err)
	}

	tp, err := wfc.New(compiled, cons,
		wfc.WithRand(cfg.rng),
		wfc.WithHeuristic(cfg.heuristic),
		wfc.WithBacktrackDepth(cfg.backtrackDepth),
	)
	if err != nil {
		return nil, builderErrorf("Build", err)
	}

	return tp, nil
}
