package wave

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/wfc/topology"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// driftCorrectionInterval is how many Ban calls a cell tolerates before its
// incrementally-maintained entropy accumulators are recomputed exactly.
const driftCorrectionInterval = 64

// Wave holds, for every cell of a topology.Topology, the set of pattern
// ids still possible there, plus the running statistics (count, weight
// sums, entropy) propagation and the observer need. It is not safe for
// concurrent use: the solving loop is single-threaded by design (§9).
type Wave struct {
	topo       *topology.Topology
	P          int
	weights    []float64
	logWeights []float64

	possible      []*roaring.Bitmap
	counts        []int
	sumWeights    []float64
	sumWeightLW   []float64
	entropy       []float64
	contradictory []bool
	banTally      []int

	anyContradiction bool
}

// New constructs a Wave over topo with every active cell initialized to
// "all patterns possible". weights must have length P >= 1 and every
// weight must be > 0.
//
// Complexity: O(cells * P) to populate each cell's initial bitmap.
func New(topo *topology.Topology, weights []float64) (*Wave, error) {
	if len(weights) == 0 {
		return nil, ErrBadPatternCount
	}
	logWeights := make([]float64, len(weights))
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("New: pattern %d has non-positive weight %g: %w", i, w, ErrBadPatternCount)
		}
		logWeights[i] = math.Log(w)
	}

	n := topo.NumCells()
	w := &Wave{
		topo:          topo,
		P:             len(weights),
		weights:       append([]float64(nil), weights...),
		logWeights:    logWeights,
		possible:      make([]*roaring.Bitmap, n),
		counts:        make([]int, n),
		sumWeights:    make([]float64, n),
		sumWeightLW:   make([]float64, n),
		entropy:       make([]float64, n),
		contradictory: make([]bool, n),
		banTally:      make([]int, n),
	}

	sumW := floats.Sum(weights)
	sumWLW := 0.0
	for i, lw := range logWeights {
		sumWLW += weights[i] * lw
	}
	baseEntropy := math.Log(sumW) - sumWLW/sumW

	for i := 0; i < n; i++ {
		if topo.IsMasked(i) {
			w.possible[i] = roaring.New()
			continue
		}
		bm := roaring.New()
		bm.AddRange(0, uint64(len(weights)))
		w.possible[i] = bm
		w.counts[i] = len(weights)
		w.sumWeights[i] = sumW
		w.sumWeightLW[i] = sumWLW
		w.entropy[i] = baseEntropy
	}

	return w, nil
}

// Topology returns the topology this Wave was constructed over.
func (w *Wave) Topology() *topology.Topology { return w.topo }

// PatternCount returns the number of patterns.
func (w *Wave) PatternCount() int { return w.P }

// Possible returns the live bitmap of still-possible patterns for cell.
// Callers must not mutate the returned bitmap; use Ban instead.
func (w *Wave) Possible(cell int) *roaring.Bitmap { return w.possible[cell] }

// IsPossible reports whether pattern remains possible at cell.
func (w *Wave) IsPossible(cell, pattern int) bool {
	return w.possible[cell].Contains(uint32(pattern))
}

// Count returns the number of remaining possible patterns at cell.
func (w *Wave) Count(cell int) int { return w.counts[cell] }

// Entropy returns cell's current Shannon entropy over its remaining
// patterns' weights.
func (w *Wave) Entropy(cell int) float64 { return w.entropy[cell] }

// Status returns a non-negative pattern id if cell has collapsed to
// exactly one pattern, StatusContradiction if it has none, or
// StatusUndecided otherwise.
func (w *Wave) Status(cell int) int {
	switch {
	case w.contradictory[cell]:
		return StatusContradiction
	case w.counts[cell] == 1:
		ids := w.possible[cell].ToArray()

		return int(ids[0])
	default:
		return StatusUndecided
	}
}

// Contradiction reports whether any cell has reached a Status of
// StatusContradiction.
func (w *Wave) Contradiction() bool { return w.anyContradiction }

// ForceContradiction marks cell contradictory without touching its
// possibility bitset. Used by relational constraints (e.g. path
// connectivity) that detect a violation spanning multiple cells, where no
// single Ban call is responsible for emptying a bitset (§D).
func (w *Wave) ForceContradiction(cell int) {
	w.contradictory[cell] = true
	w.anyContradiction = true
}

// Ban removes pattern from cell's possibility set. Returns changed=false
// if pattern was already impossible there (a no-op the propagator treats
// as "nothing to enqueue"). Driving a cell's count to zero sets its status
// to StatusContradiction and Contradiction() to true, but does not panic
// or error: the caller (propagator) is responsible for halting and the
// observer for triggering backtracking.
//
// Complexity: O(1) amortized; O(P) on the rare drift-correction pass.
func (w *Wave) Ban(cell, pattern int) (changed bool, err error) {
	if cell < 0 || cell >= len(w.possible) {
		return false, fmt.Errorf("Ban(%d,%d): %w", cell, pattern, ErrCellOutOfRange)
	}
	if pattern < 0 || pattern >= w.P {
		return false, fmt.Errorf("Ban(%d,%d): %w", cell, pattern, ErrPatternOutOfRange)
	}
	bm := w.possible[cell]
	if !bm.Contains(uint32(pattern)) {
		return false, nil
	}
	bm.Remove(uint32(pattern))
	w.counts[cell]--
	w.sumWeights[cell] -= w.weights[pattern]
	w.sumWeightLW[cell] -= w.weights[pattern] * w.logWeights[pattern]
	w.banTally[cell]++

	switch {
	case w.counts[cell] == 0:
		w.contradictory[cell] = true
		w.anyContradiction = true
		w.entropy[cell] = 0
	case w.banTally[cell]%driftCorrectionInterval == 0:
		w.recomputeExact(cell)
	default:
		if w.sumWeights[cell] > 0 {
			w.entropy[cell] = math.Log(w.sumWeights[cell]) - w.sumWeightLW[cell]/w.sumWeights[cell]
		}
	}

	return true, nil
}

// recomputeExact rebuilds cell's weight accumulators and entropy from
// scratch via gonum, correcting floating-point drift from many
// incremental subtractions.
func (w *Wave) recomputeExact(cell int) {
	ids := w.possible[cell].ToArray()
	if len(ids) == 0 {
		w.sumWeights[cell] = 0
		w.sumWeightLW[cell] = 0
		w.entropy[cell] = 0

		return
	}
	ws := make([]float64, len(ids))
	probs := make([]float64, len(ids))
	for i, id := range ids {
		ws[i] = w.weights[id]
	}
	sum := floats.Sum(ws)
	slw := 0.0
	for i, id := range ids {
		probs[i] = ws[i] / sum
		slw += ws[i] * w.logWeights[id]
	}
	w.sumWeights[cell] = sum
	w.sumWeightLW[cell] = slw
	w.entropy[cell] = stat.Entropy(probs)
}

// Select collapses cell to exactly pattern, banning every other currently
// possible pattern there. Returns the number of patterns banned.
//
// Complexity: O(cell's remaining pattern count).
func (w *Wave) Select(cell, pattern int) (int, error) {
	if !w.IsPossible(cell, pattern) {
		return 0, fmt.Errorf("Select(%d,%d): %w", cell, pattern, ErrPatternOutOfRange)
	}
	others := w.possible[cell].Clone()
	others.Remove(uint32(pattern))
	banned := 0
	it := others.Iterator()
	for it.HasNext() {
		p := it.Next()
		changed, err := w.Ban(cell, int(p))
		if err != nil {
			return banned, err
		}
		if changed {
			banned++
		}
	}

	return banned, nil
}

// MinEntropyCell returns the undecided, unmasked cell with the lowest
// entropy, breaking ties by adding a small amount of rng-derived noise to
// each candidate's entropy (classic WFC tie-breaking: without noise, many
// cells share identical entropy early in solving and selection order would
// be a silent artifact of iteration order). Returns ok=false if every
// active cell is already decided or contradictory.
//
// Complexity: O(cells).
func (w *Wave) MinEntropyCell(rng *rand.Rand) (cell int, ok bool) {
	best := math.Inf(1)
	bestCell := -1
	for i := range w.possible {
		if w.topo.IsMasked(i) || w.counts[i] <= 1 {
			continue
		}
		noisy := w.entropy[i] + rng.Float64()*1e-6
		if noisy < best {
			best = noisy
			bestCell = i
		}
	}
	if bestCell < 0 {
		return 0, false
	}

	return bestCell, true
}

// MinRemainingValuesCell returns the undecided, unmasked cell with the
// fewest remaining patterns, ignoring weights entirely (the classic CSP
// "minimum remaining values" heuristic, as distinct from MinEntropyCell's
// weight-aware entropy). Ties are broken the same way, with rng-derived
// noise, so index order is never a silent tiebreak source.
//
// Complexity: O(cells).
func (w *Wave) MinRemainingValuesCell(rng *rand.Rand) (cell int, ok bool) {
	best := math.Inf(1)
	bestCell := -1
	for i := range w.possible {
		if w.topo.IsMasked(i) || w.counts[i] <= 1 {
			continue
		}
		noisy := float64(w.counts[i]) + rng.Float64()*1e-6
		if noisy < best {
			best = noisy
			bestCell = i
		}
	}
	if bestCell < 0 {
		return 0, false
	}

	return bestCell, true
}

// ScanlineCell returns the first undecided, unmasked cell in index order.
// No randomness or weighting is involved; this heuristic exists for
// callers that want fully deterministic, position-driven collapse order
// (e.g. reproducing a reference solver's scan order cell-for-cell).
//
// Complexity: O(cells) worst case.
func (w *Wave) ScanlineCell() (cell int, ok bool) {
	for i := range w.possible {
		if w.topo.IsMasked(i) || w.counts[i] <= 1 {
			continue
		}

		return i, true
	}

	return 0, false
}

// Clone deep-copies the wave, used by the propagator's backtracking
// journal to snapshot state before a speculative decision (§4.3).
func (w *Wave) Clone() *Wave {
	clone := &Wave{
		topo:          w.topo,
		P:             w.P,
		weights:       w.weights,
		logWeights:    w.logWeights,
		possible:      make([]*roaring.Bitmap, len(w.possible)),
		counts:        append([]int(nil), w.counts...),
		sumWeights:    append([]float64(nil), w.sumWeights...),
		sumWeightLW:   append([]float64(nil), w.sumWeightLW...),
		entropy:       append([]float64(nil), w.entropy...),
		contradictory: append([]bool(nil), w.contradictory...),
		banTally:      append([]int(nil), w.banTally...),

		anyContradiction: w.anyContradiction,
	}
	for i, bm := range w.possible {
		clone.possible[i] = bm.Clone()
	}

	return clone
}
