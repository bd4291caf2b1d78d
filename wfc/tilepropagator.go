package wfc

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/propagator"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wave"
)

// StatusContradiction and StatusUndecided re-export wave's cell-status
// sentinels for callers that only ever import this package.
const (
	StatusContradiction = wave.StatusContradiction
	StatusUndecided     = wave.StatusUndecided
)

// decisionFrame is one speculative collapse the observer made, kept
// alongside the propagator's own checkpoint journal so that backtracking
// knows which (cell, pattern) to ban before retrying.
type decisionFrame struct {
	cell    int
	pattern int
}

// TilePropagator is the solving engine: a compiled pattern set, a wave, a
// propagator, and a set of constraints, driven by an observer loop that
// collapses the lowest-entropy cell, propagates, runs constraint Checks on
// every newly-decided cell, and backtracks chronologically on contradiction
// (§4, §D).
//
// Concurrency: not safe for concurrent use. One TilePropagator solves one
// grid on one goroutine, matching the wave's own single-threaded contract.
type TilePropagator struct {
	compiled       *pattern.Compiled
	prop           *propagator.Propagator
	constraints    []constraint.Constraint
	rng            *rand.Rand
	heuristic      HeuristicKind
	backtrackDepth int

	checked        []bool
	decisions      []decisionFrame
	initial        *wave.Wave
	backtrackCount int
}

// New constructs a TilePropagator over compiled, running every constraint's
// Init once. Returns ErrContradictionAtInit if that leaves any cell with no
// possible patterns, or ErrNeedRand if no WithRand option was given.
//
// Complexity: O(cells*P*D) to build the wave and propagator tables, plus
// each constraint's own Init cost.
func New(compiled *pattern.Compiled, cons []constraint.Constraint, opts ...Option) (*TilePropagator, error) {
	cfg := newOptions(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRand
	}

	patternTopo := compiled.Mapping.PatternTopology()
	w, err := wave.New(patternTopo, compiled.Weights)
	if err != nil {
		return nil, fmt.Errorf("wfc.New: %w", err)
	}
	prop, err := propagator.New(patternTopo, compiled, w)
	if err != nil {
		return nil, fmt.Errorf("wfc.New: %w", err)
	}

	tp := &TilePropagator{
		compiled:       compiled,
		prop:           prop,
		constraints:    append([]constraint.Constraint(nil), cons...),
		rng:            cfg.rng,
		heuristic:      cfg.heuristic,
		backtrackDepth: cfg.backtrackDepth,
		checked:        make([]bool, patternTopo.NumCells()),
	}

	ctx := &constraint.Context{Prop: prop, Compiled: compiled}
	for _, c := range tp.constraints {
		if err := c.Init(ctx); err != nil {
			return nil, fmt.Errorf("wfc.New: constraint %s: %w", c.Name(), err)
		}
	}
	if prop.Wave().Contradiction() {
		return nil, ErrContradictionAtInit
	}

	tp.initial = prop.Wave().Clone()

	return tp, nil
}

// BanPattern removes pattern from cell and settles its consequences
// (propagation plus any constraint Checks newly-decided cells trigger).
// Unlike Step, this is not a checkpointed search decision: it is a
// pattern-space primitive for callers who already work in pattern ids
// (constraints, debugprint). Most callers want the tile-space Ban instead.
func (tp *TilePropagator) BanPattern(cell, pattern int) error {
	if err := tp.prop.Ban(cell, pattern); err != nil {
		return err
	}

	return tp.settle()
}

// SelectPattern collapses cell to pattern and settles consequences, with
// the same non-checkpointed, pattern-space caveat as BanPattern.
func (tp *TilePropagator) SelectPattern(cell, pattern int) error {
	if err := tp.prop.Select(cell, pattern); err != nil {
		return err
	}

	return tp.settle()
}

// IsPatternBanned reports whether pattern is no longer possible at
// pattern-space cell.
func (tp *TilePropagator) IsPatternBanned(cell, pattern int) bool {
	return !tp.prop.Wave().IsPossible(cell, pattern)
}

// IsPatternSelected reports the pattern cell has collapsed to, if any.
func (tp *TilePropagator) IsPatternSelected(cell int) (pattern int, ok bool) {
	status := tp.prop.Wave().Status(cell)
	if status >= 0 {
		return status, true
	}

	return 0, false
}

// resolveTileRef resolves tileRef, which must be a core.Tile or a
// core.RotatedTile, to the core.Tile actually keyed in the compiled
// mapping's pattern tables. A RotatedTile is canonicalized through the
// compiled model's TileRotation first (§4.6 step 2).
func (tp *TilePropagator) resolveTileRef(tileRef interface{}) (core.Tile, error) {
	switch v := tileRef.(type) {
	case core.Tile:
		return v, nil
	case core.RotatedTile:
		if tp.compiled.TileRot == nil {
			return core.Tile{}, fmt.Errorf("resolveTileRef(%s): %w", v, ErrNoTileRotation)
		}

		return tp.compiled.TileRot.Canonicalize(v)
	default:
		return core.Tile{}, fmt.Errorf("resolveTileRef: %w: %T", ErrBadTileReference, tileRef)
	}
}

// Ban removes tile from tile-space cell (x,y,z): every pattern the
// compiled mapping associates with tile at that cell's offset slot is
// banned from the underlying pattern cell, and consequences are settled
// (§4.6, §6). tile may be a core.Tile or a core.RotatedTile, in which case
// it is canonicalized via the model's TileRotation first (§4.6 step 2).
func (tp *TilePropagator) Ban(x, y, z int, tile interface{}) error {
	resolved, err := tp.resolveTileRef(tile)
	if err != nil {
		return err
	}
	patternCell, offset := tp.compiled.Mapping.ToPatternCoord(x, y, z)
	banSet := tp.compiled.Mapping.PatternsForTile(resolved, offset)
	it := banSet.Iterator()
	for it.HasNext() {
		if err := tp.prop.Ban(patternCell, int(it.Next())); err != nil {
			return err
		}
	}

	return tp.settle()
}

// Select collapses tile-space cell (x,y,z) to tile: every pattern the
// mapping does NOT associate with tile at that cell's offset is banned
// from the underlying pattern cell, leaving only tile's patterns possible
// (§4.6, §6). tile may be a core.Tile or a core.RotatedTile, canonicalized
// as in Ban.
func (tp *TilePropagator) Select(x, y, z int, tile interface{}) error {
	resolved, err := tp.resolveTileRef(tile)
	if err != nil {
		return err
	}
	patternCell, offset := tp.compiled.Mapping.ToPatternCoord(x, y, z)
	keep := tp.compiled.Mapping.PatternsForTile(resolved, offset)
	toBan := tp.prop.Wave().Possible(patternCell).Clone()
	toBan.AndNot(keep)
	it := toBan.Iterator()
	for it.HasNext() {
		if err := tp.prop.Ban(patternCell, int(it.Next())); err != nil {
			return err
		}
	}

	return tp.settle()
}

// IsBanned reports whether tile is no longer possible at tile-space cell
// (x,y,z): none of the patterns the mapping associates with tile at that
// cell's offset remain (§4.6 step 5). An unresolvable tile reference
// reports banned, since it can never become possible.
func (tp *TilePropagator) IsBanned(x, y, z int, tile interface{}) bool {
	resolved, err := tp.resolveTileRef(tile)
	if err != nil {
		return true
	}
	patternCell, offset := tp.compiled.Mapping.ToPatternCoord(x, y, z)
	tilePatterns := tp.compiled.Mapping.PatternsForTile(resolved, offset)

	return !tilePatterns.Intersects(tp.prop.Wave().Possible(patternCell))
}

// IsSelected reports whether tile-space cell (x,y,z) has collapsed
// specifically to tile: the cell's possible set is non-empty and every
// pattern remaining there decodes to tile at its offset (§4.6 step 5),
// i.e. no other tile remains possible.
func (tp *TilePropagator) IsSelected(x, y, z int, tile interface{}) bool {
	resolved, err := tp.resolveTileRef(tile)
	if err != nil {
		return false
	}
	patternCell, offset := tp.compiled.Mapping.ToPatternCoord(x, y, z)
	tilePatterns := tp.compiled.Mapping.PatternsForTile(resolved, offset)
	possible := tp.prop.Wave().Possible(patternCell)
	if possible.IsEmpty() {
		return false
	}
	remainder := possible.Clone()
	remainder.AndNot(tilePatterns)

	return remainder.IsEmpty()
}

// GetBannedSelected reports, for tile at tile-space cell (x,y,z), both
// whether it has been banned and whether the cell has been selected to it,
// in one call (§6). It is exactly IsBanned and IsSelected composed; some
// callers (a UI painting cell state) want both without resolving tile and
// its pattern coordinate twice.
func (tp *TilePropagator) GetBannedSelected(x, y, z int, tile interface{}) (banned, selected bool) {
	return tp.IsBanned(x, y, z, tile), tp.IsSelected(x, y, z, tile)
}

// SetContradiction forces tile-space cell (x,y,z) into a contradictory
// state without identifying which pattern removal caused it (§6), mirroring
// constraint.Context.SetContradiction for callers outside a Check dispatch
// (e.g. a host application that detected an out-of-band conflict and wants
// Step/Run's ordinary backtracking to unwind it). Every pattern still
// possible at the underlying pattern cell is removed, so every tile there
// reports banned.
func (tp *TilePropagator) SetContradiction(x, y, z int) {
	patternCell, _ := tp.compiled.Mapping.ToPatternCoord(x, y, z)
	w := tp.prop.Wave()
	it := w.Possible(patternCell).Clone().Iterator()
	for it.HasNext() {
		_, _ = w.Ban(patternCell, int(it.Next()))
	}
	w.ForceContradiction(patternCell)
}

// BacktrackCount returns how many times Step has backtracked so far.
func (tp *TilePropagator) BacktrackCount() int { return tp.backtrackCount }

// TileTopology returns the tile-space topology the decoders (ToArray,
// ToValueArray, ToArraySets, ToValueSets) index against, for callers that
// need to lay out a decoded grid (e.g. debugprint).
func (tp *TilePropagator) TileTopology() *topology.Topology {
	return tp.compiled.Mapping.TileTopology()
}

// Progress returns the fraction of active (unmasked) cells that have
// collapsed to a single pattern, in [0,1].
func (tp *TilePropagator) Progress() float64 {
	w := tp.prop.Wave()
	topo := w.Topology()
	total, decided := 0, 0
	for i := 0; i < topo.NumCells(); i++ {
		if topo.IsMasked(i) {
			continue
		}
		total++
		if w.Status(i) >= 0 {
			decided++
		}
	}
	if total == 0 {
		return 1
	}

	return float64(decided) / float64(total)
}

// Clear resets the TilePropagator to its post-Init state (every constraint
// re-applied, no observer decisions made), discarding the backtracking
// journal and decision stack.
func (tp *TilePropagator) Clear() {
	tp.prop.Reset(tp.initial.Clone())
	tp.decisions = nil
	tp.backtrackCount = 0
	for i := range tp.checked {
		tp.checked[i] = false
	}
}

// checkpoint snapshots both the propagator's wave and this engine's own
// per-cell "already Checked" bookkeeping, so Backtrack can unwind them
// together (§D item 3).
func (tp *TilePropagator) checkpoint() {
	tp.prop.Checkpoint()
	snapshot := append([]bool(nil), tp.checked...)
	tp.prop.RegisterUndo(func() { tp.checked = snapshot })
	for _, c := range tp.constraints {
		tp.prop.RegisterUndo(c.Snapshot())
	}
}

// trimDecisions discards decisions older than the current backtrackDepth
// bound, mirroring propagator.TrimToDepth so the decision stack and the
// journal stay aligned frame-for-frame (§4.4).
func (tp *TilePropagator) trimDecisions() {
	if tp.backtrackDepth <= 0 || len(tp.decisions) <= tp.backtrackDepth {
		return
	}
	drop := len(tp.decisions) - tp.backtrackDepth
	tp.decisions = tp.decisions[drop:]
}

// settle drains propagation to arc-consistency and dispatches Check to
// every constraint for each cell that newly collapsed to a single pattern,
// looping until no cell changes status (a Check may itself ban patterns
// that decide further cells).
func (tp *TilePropagator) settle() error {
	topo := tp.prop.Wave().Topology()
	for {
		if err := tp.prop.Propagate(); err != nil {
			return err
		}
		if tp.prop.Wave().Contradiction() {
			return nil
		}

		progressed := false
		for cell := 0; cell < topo.NumCells(); cell++ {
			if tp.checked[cell] {
				continue
			}
			if tp.prop.Wave().Status(cell) == wave.StatusUndecided {
				continue
			}
			tp.checked[cell] = true
			progressed = true

			ctx := &constraint.Context{Prop: tp.prop, Compiled: tp.compiled}
			for _, c := range tp.constraints {
				if ctx.Contradicted() {
					break
				}
				if err := c.Check(ctx, cell); err != nil {
					return err
				}
			}
			if tp.prop.Wave().Contradiction() {
				return nil
			}
		}
		if !progressed {
			return nil
		}
	}
}

// selectCell picks the next cell to collapse per the configured heuristic.
func (tp *TilePropagator) selectCell() (int, bool) {
	switch tp.heuristic {
	case Random:
		return tp.randomUndecidedCell()
	case MRV:
		return tp.prop.Wave().MinRemainingValuesCell(tp.rng)
	case Scanline:
		return tp.prop.Wave().ScanlineCell()
	default:
		return tp.prop.Wave().MinEntropyCell(tp.rng)
	}
}

func (tp *TilePropagator) randomUndecidedCell() (int, bool) {
	w := tp.prop.Wave()
	topo := w.Topology()
	var candidates []int
	for i := 0; i < topo.NumCells(); i++ {
		if topo.IsMasked(i) || w.Count(i) <= 1 {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return 0, false
	}

	return candidates[tp.rng.Intn(len(candidates))], true
}

// choosePattern picks among cell's remaining patterns, weighted by
// frequency, matching the classic WFC collapse rule.
func (tp *TilePropagator) choosePattern(cell int) int {
	ids := tp.prop.Wave().Possible(cell).ToArray()
	weights := tp.compiled.Weights

	total := 0.0
	for _, id := range ids {
		total += weights[id]
	}
	r := tp.rng.Float64() * total
	for _, id := range ids {
		r -= weights[id]
		if r <= 0 {
			return int(id)
		}
	}

	return int(ids[len(ids)-1])
}

// Step performs one observer cycle: pick a cell, collapse it, settle
// consequences, and backtrack chronologically while the result is
// contradictory. Returns done=true once every active cell has collapsed.
//
// Complexity: O(cells*P*D) worst case per backtrack; amortized far lower in
// practice since most cells settle via propagation alone.
func (tp *TilePropagator) Step(ctx context.Context) (done bool, err error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	cell, ok := tp.selectCell()
	if !ok {
		return true, nil
	}

	pattern := tp.choosePattern(cell)
	tp.checkpoint()
	tp.decisions = append(tp.decisions, decisionFrame{cell: cell, pattern: pattern})
	if tp.backtrackDepth > 0 {
		tp.prop.TrimToDepth(tp.backtrackDepth)
		tp.trimDecisions()
	}
	if err := tp.prop.Select(cell, pattern); err != nil {
		return false, err
	}
	if err := tp.settle(); err != nil {
		return false, err
	}

	for tp.prop.Wave().Contradiction() {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		if tp.backtrackDepth == 0 {
			return false, ErrContradiction
		}
		tp.backtrackCount++
		if len(tp.decisions) == 0 {
			return false, ErrUnsolvable
		}

		last := tp.decisions[len(tp.decisions)-1]
		tp.decisions = tp.decisions[:len(tp.decisions)-1]
		if err := tp.prop.Backtrack(); err != nil {
			return false, fmt.Errorf("Step: %w", ErrUnsolvable)
		}
		if err := tp.prop.Ban(last.cell, last.pattern); err != nil {
			return false, err
		}
		if err := tp.settle(); err != nil {
			return false, err
		}
	}

	return false, nil
}

// Run calls Step until the grid is fully decided or an error occurs.
func (tp *TilePropagator) Run(ctx context.Context) error {
	for {
		done, err := tp.Step(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// ToArray returns, for every tile-space cell in row-major order, the
// decided pattern id (StatusUndecided or StatusContradiction for cells that
// haven't settled).
func (tp *TilePropagator) ToArray() []int {
	t := tp.compiled.Mapping.TileTopology()
	out := make([]int, t.NumCells())
	for idx := 0; idx < t.NumCells(); idx++ {
		x, y, z := t.Coordinate(idx)
		pc, _ := tp.compiled.Mapping.ToPatternCoord(x, y, z)
		out[idx] = tp.prop.Wave().Status(pc)
	}

	return out
}

// ToValueArray returns, for every tile-space cell, the decided core.Tile
// (the zero Tile for cells that haven't settled to exactly one pattern).
func (tp *TilePropagator) ToValueArray() []core.Tile {
	t := tp.compiled.Mapping.TileTopology()
	out := make([]core.Tile, t.NumCells())
	for idx := 0; idx < t.NumCells(); idx++ {
		x, y, z := t.Coordinate(idx)
		pc, offset := tp.compiled.Mapping.ToPatternCoord(x, y, z)
		status := tp.prop.Wave().Status(pc)
		if status < 0 {
			continue
		}
		tile, err := tp.compiled.Mapping.TileForPattern(status, offset)
		if err != nil {
			continue
		}
		out[idx] = tile
	}

	return out
}

// ToArraySets returns, for every tile-space cell, the set of pattern ids
// still possible there (a single-element slice once decided).
func (tp *TilePropagator) ToArraySets() [][]int {
	t := tp.compiled.Mapping.TileTopology()
	out := make([][]int, t.NumCells())
	for idx := 0; idx < t.NumCells(); idx++ {
		x, y, z := t.Coordinate(idx)
		pc, _ := tp.compiled.Mapping.ToPatternCoord(x, y, z)
		ids := tp.prop.Wave().Possible(pc).ToArray()
		set := make([]int, len(ids))
		for i, id := range ids {
			set[i] = int(id)
		}
		out[idx] = set
	}

	return out
}

// ToValueSets returns, for every tile-space cell, the distinct tiles still
// possible there (patterns that agree on the tile occupying this cell's
// offset slot are deduplicated).
func (tp *TilePropagator) ToValueSets() [][]core.Tile {
	t := tp.compiled.Mapping.TileTopology()
	out := make([][]core.Tile, t.NumCells())
	for idx := 0; idx < t.NumCells(); idx++ {
		x, y, z := t.Coordinate(idx)
		pc, offset := tp.compiled.Mapping.ToPatternCoord(x, y, z)
		ids := tp.prop.Wave().Possible(pc).ToArray()
		seen := make(map[string]bool, len(ids))
		tiles := make([]core.Tile, 0, len(ids))
		for _, id := range ids {
			tile, err := tp.compiled.Mapping.TileForPattern(int(id), offset)
			if err != nil || seen[tile.ID()] {
				continue
			}
			seen[tile.ID()] = true
			tiles = append(tiles, tile)
		}
		out[idx] = tiles
	}

	return out
}
