package propagator

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/emirpasic/gods/v2/queues/arrayqueue"
	"github.com/emirpasic/gods/v2/stacks/arraystack"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wave"
)

// banRecord is one queued consequence: pattern was just removed from cell,
// and its downstream support effects have not yet been propagated.
type banRecord struct {
	cell    int
	pattern int
}

// frame is one backtracking checkpoint: a full wave snapshot and a copy of
// the compatibility counts, plus any undo hooks callers registered while
// this frame was on top (§D item 3: RegisterUndo lets constraints unwind
// their own incremental state, e.g. a union-find structure, in lockstep
// with wave restoration).
type frame struct {
	snapshot  *wave.Wave
	compat    []int32
	undoHooks []func()
}

// Propagator drains pattern removals to full arc-consistency over a
// wave.Wave, and supports checkpoint/backtrack for the observer's
// chronological backtracking search (§4.3, §4.4).
type Propagator struct {
	topo     *topology.Topology
	compiled *pattern.Compiled
	w        *wave.Wave

	// reverseProp[dir][t2] = bitmap of patterns t1 such that t2 is a
	// member of compiled.Prop[t1][dir] (t1 at the source cell supports t2
	// at the dir-neighbor).
	reverseProp [][]*roaring.Bitmap
	// compat[cell][pattern][dir], flattened: remaining count of patterns
	// possible at the dir-neighbor of cell compatible with pattern, or -1
	// if cell has no neighbor in that direction (border, non-periodic).
	compat []int32
	dirs   int

	queue   *arrayqueue.Queue[banRecord]
	journal *arraystack.Stack[*frame]
}

func compatIndex(cell, pattern, dir, p, d int) int {
	return (cell*p+pattern)*d + dir
}

// New constructs a Propagator over w using compiled's propagator table.
//
// Complexity: O(cells*P*D) to build the initial compatibility counts,
// O(P*D*avgCompat) to build the reverse-support index.
func New(topo *topology.Topology, compiled *pattern.Compiled, w *wave.Wave) (*Propagator, error) {
	if compiled.P == 0 {
		return nil, ErrNoCompiledPatterns
	}
	d := topo.Directions().Len()

	reverseProp := make([][]*roaring.Bitmap, d)
	for dir := 0; dir < d; dir++ {
		reverseProp[dir] = make([]*roaring.Bitmap, compiled.P)
		for t2 := 0; t2 < compiled.P; t2++ {
			reverseProp[dir][t2] = roaring.New()
		}
	}
	for t1 := 0; t1 < compiled.P; t1++ {
		for dir := 0; dir < d; dir++ {
			it := compiled.Prop[t1][dir].Iterator()
			for it.HasNext() {
				t2 := it.Next()
				reverseProp[dir][int(t2)].Add(uint32(t1))
			}
		}
	}

	compat := make([]int32, topo.NumCells()*compiled.P*d)
	for cell := 0; cell < topo.NumCells(); cell++ {
		for t := 0; t < compiled.P; t++ {
			for dir := 0; dir < d; dir++ {
				idx := compatIndex(cell, t, dir, compiled.P, d)
				if _, ok := topo.Neighbor(cell, topology.Direction(dir)); !ok {
					compat[idx] = -1
					continue
				}
				compat[idx] = int32(compiled.Prop[t][dir].GetCardinality())
			}
		}
	}

	p := &Propagator{
		topo:        topo,
		compiled:    compiled,
		w:           w,
		reverseProp: reverseProp,
		compat:      compat,
		dirs:        d,
		queue:       arrayqueue.New[banRecord](),
		journal:     arraystack.New[*frame](),
	}
	// A pattern with no compatible pattern toward an existing neighbor can
	// never be placed; ban it before solving starts.
	for i, count := range compat {
		if count == 0 {
			if err := p.Ban(i/(compiled.P*d), (i/d)%compiled.P); err != nil {
				return nil, err
			}
		}
	}
	if err := p.Propagate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Wave returns the propagator's current wave (the live one, or the one
// last restored by Backtrack).
func (p *Propagator) Wave() *wave.Wave { return p.w }

// Ban removes pattern from cell and, if that changed anything, enqueues
// the consequence for Propagate to drain.
//
// Complexity: O(1) amortized.
func (p *Propagator) Ban(cell, pattern int) error {
	changed, err := p.w.Ban(cell, pattern)
	if err != nil {
		return fmt.Errorf("Propagator.Ban: %w", err)
	}
	if changed {
		p.queue.Enqueue(banRecord{cell: cell, pattern: pattern})
	}

	return nil
}

// Select collapses cell to exactly pattern, banning (and enqueueing) every
// other currently possible pattern there.
func (p *Propagator) Select(cell, pattern int) error {
	others := p.w.Possible(cell).Clone()
	others.Remove(uint32(pattern))
	it := others.Iterator()
	for it.HasNext() {
		if err := p.Ban(cell, int(it.Next())); err != nil {
			return err
		}
	}

	return nil
}

// Propagate drains the ban queue to full arc-consistency: every cascading
// loss of support is banned and its own consequences enqueued in turn.
// Stops early once the wave reaches a contradiction; the caller is
// expected to check Wave().Contradiction() and decide whether to
// Backtrack.
//
// Complexity: O(total cascading bans * D * avgCompat).
func (p *Propagator) Propagate() error {
	for {
		rec, ok := p.queue.Dequeue()
		if !ok {
			return nil
		}
		if p.w.Contradiction() {
			p.queue.Clear()

			return nil
		}
		for dir := 0; dir < p.dirs; dir++ {
			opp, err := p.topo.Directions().Opposite(topology.Direction(dir))
			if err != nil {
				continue
			}
			source, ok := p.topo.Neighbor(rec.cell, opp)
			if !ok {
				continue
			}
			support := p.reverseProp[dir][rec.pattern]
			affected := roaring.And(support, p.w.Possible(source))
			it := affected.Iterator()
			for it.HasNext() {
				t1 := int(it.Next())
				idx := compatIndex(source, t1, dir, p.compiled.P, p.dirs)
				if p.compat[idx] < 0 {
					continue
				}
				p.compat[idx]--
				if p.compat[idx] == 0 {
					if err := p.Ban(source, t1); err != nil {
						return err
					}
				}
			}
		}
	}
}

// Checkpoint snapshots the current wave and compatibility counts onto the
// backtracking journal. Call before a speculative decision (the observer's
// collapse step).
//
// Complexity: O(cells*P*D) to clone the wave and copy the counts.
func (p *Propagator) Checkpoint() {
	p.journal.Push(&frame{snapshot: p.w.Clone(), compat: append([]int32(nil), p.compat...)})
}

// RegisterUndo attaches fn to the most recently pushed, not-yet-popped
// checkpoint. fn runs (LIFO, alongside other hooks on the same frame) when
// that checkpoint is restored by Backtrack, letting constraints unwind
// incremental state (e.g. a union-find root table) in lockstep with wave
// restoration (§D item 3). A no-op if no checkpoint exists yet.
func (p *Propagator) RegisterUndo(fn func()) {
	top, ok := p.journal.Peek()
	if !ok {
		return
	}
	top.undoHooks = append(top.undoHooks, fn)
}

// Backtrack pops the most recent checkpoint, runs its undo hooks
// (most-recently-registered first), restores the wave and the
// compatibility counts to that snapshot, and clears the propagation queue (a restored wave has no pending
// consequences of its own). Returns ErrNothingToBacktrack if the journal
// is empty.
//
// Complexity: O(1) plus the cost of the undo hooks.
func (p *Propagator) Backtrack() error {
	top, ok := p.journal.Pop()
	if !ok {
		return ErrNothingToBacktrack
	}
	for i := len(top.undoHooks) - 1; i >= 0; i-- {
		top.undoHooks[i]()
	}
	p.w = top.snapshot
	p.compat = top.compat
	p.queue.Clear()

	return nil
}

// Depth returns the number of checkpoints currently on the journal.
func (p *Propagator) Depth() int { return p.journal.Size() }

// TrimToDepth discards the oldest checkpoints until at most depth remain,
// implementing the bounded-journal half of backtrackDepth (§4.4:
// "If backtrackDepth > 0, frames older than that depth are discarded, and
// older decisions thus become irrevocable"). depth <= 0 is a no-op (0 and
// negative depths are handled by the caller, not by trimming the journal).
//
// Complexity: O(depth) when trimming is needed, O(1) otherwise.
func (p *Propagator) TrimToDepth(depth int) {
	if depth <= 0 || p.journal.Size() <= depth {
		return
	}
	newestFirst := make([]*frame, 0, p.journal.Size())
	for p.journal.Size() > 0 {
		f, _ := p.journal.Pop()
		newestFirst = append(newestFirst, f)
	}
	for i := depth - 1; i >= 0; i-- {
		p.journal.Push(newestFirst[i])
	}
}

// Reset discards the journal and pending queue, replaces the live wave
// with w and recounts the compatibility counts against it, used to restore
// a TilePropagator to its pre-solving state (§D "Clear").
func (p *Propagator) Reset(w *wave.Wave) {
	p.w = w
	p.queue.Clear()
	for p.journal.Size() > 0 {
		p.journal.Pop()
	}
	for i := range p.compat {
		cell, t, dir := i/(p.compiled.P*p.dirs), (i/p.dirs)%p.compiled.P, i%p.dirs
		neighbor, ok := p.topo.Neighbor(cell, topology.Direction(dir))
		if !ok {
			p.compat[i] = -1
			continue
		}
		p.compat[i] = int32(p.compiled.Prop[t][dir].AndCardinality(w.Possible(neighbor)))
	}
}
