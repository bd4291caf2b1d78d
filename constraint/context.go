package constraint

import (
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/propagator"
)

// Context is the handle a Constraint uses to read and narrow the wave
// during Init and Check. It wraps a *propagator.Propagator so bans a
// constraint issues are queued and drained through the same
// arc-consistency machinery as the observer's own decisions.
type Context struct {
	Prop     *propagator.Propagator
	Compiled *pattern.Compiled
}

// SetContradiction forces cell contradictory without requiring the
// constraint to identify which single pattern removal is responsible —
// used for relational violations spanning more than one cell. Per §D,
// once any constraint calls SetContradiction during a Check dispatch, the
// engine skips remaining constraints' Check calls for that cell.
func (ctx *Context) SetContradiction(cell int) {
	ctx.Prop.Wave().ForceContradiction(cell)
}

// Contradicted reports whether the wave has already reached a
// contradiction, via SetContradiction or an ordinary Ban.
func (ctx *Context) Contradicted() bool {
	return ctx.Prop.Wave().Contradiction()
}

// Constraint is implemented by every built-in and user-supplied
// constraint (§5).
type Constraint interface {
	// Name identifies the constraint for diagnostics and registry lookup.
	Name() string
	// Init runs once before solving begins, with every cell still fully
	// undecided. It may Ban patterns that can never be valid regardless of
	// solving order (e.g. border exclusions, a fixed-tile pin).
	Init(ctx *Context) error
	// Check runs every time cell collapses to exactly one pattern during
	// solving (decided by the observer or forced by propagation). It may
	// Ban further patterns elsewhere, or call ctx.SetContradiction if it
	// detects a violation no single Ban models.
	Check(ctx *Context, cell int) error
	// Snapshot captures the constraint's own mutable state (if any) and
	// returns a closure that restores it; the engine registers that
	// closure as a propagator undo hook at every checkpoint, so
	// constraint-local state unwinds in lockstep with the wave on
	// backtrack (§D item 3). Stateless constraints return a no-op.
	Snapshot() func()
}
