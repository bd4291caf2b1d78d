package topology

import "fmt"

// Options configures a Topology at construction time: which axes wrap
// (periodicity) and which cells are active. The zero value means
// non-periodic on every axis with every cell active.
type Options struct {
	// PeriodicX, PeriodicY, PeriodicZ make the corresponding axis wrap.
	PeriodicX, PeriodicY, PeriodicZ bool
	// Mask, if non-nil, must have length W*H*D; Mask[i] == false marks
	// cell i inactive ("outside", per §9's masked-topology note).
	Mask []bool
}

// Topology describes a W×H×D grid: its extents, which axes are periodic,
// its DirectionSet, and an optional activity mask. It is immutable once
// constructed and owns no pattern/wave state — adapted from
// gridgraph.GridGraph, generalized from a fixed 2D 4/8-neighborhood to an
// arbitrary *DirectionSet over up to three spatial axes.
type Topology struct {
	W, H, D                          int
	periodicX, periodicY, periodicZ  bool
	dirs                             *DirectionSet
	mask                             []bool // nil means "no mask, all cells active"
	active                           int    // number of active (unmasked) cells
}

// New constructs a Topology. W, H, and D must each be >= 1 (use D=1 for 2D
// grids, per §6's "z=0 for 2D topologies" convention). If opts.Mask is
// supplied its length must equal W*H*D.
//
// Complexity: O(W*H*D) to count active cells when a mask is supplied, O(1)
// otherwise.
func New(w, h, d int, dirs *DirectionSet, opts Options) (*Topology, error) {
	if w < 1 || h < 1 || d < 1 {
		return nil, fmt.Errorf("New(%d,%d,%d): %w", w, h, d, ErrBadDimensions)
	}
	if dirs == nil {
		return nil, fmt.Errorf("New: %w", ErrNilDirectionSet)
	}

	total := w * h * d
	t := &Topology{
		W: w, H: h, D: d,
		periodicX: opts.PeriodicX, periodicY: opts.PeriodicY, periodicZ: opts.PeriodicZ,
		dirs:   dirs,
		active: total,
	}

	if opts.Mask != nil {
		if len(opts.Mask) != total {
			return nil, fmt.Errorf("New: mask length %d, want %d: %w", len(opts.Mask), total, ErrMaskSizeMismatch)
		}
		t.mask = make([]bool, total)
		copy(t.mask, opts.Mask)
		active := 0
		for _, on := range t.mask {
			if on {
				active++
			}
		}
		t.active = active
	}

	return t, nil
}

// Directions returns the topology's DirectionSet.
func (t *Topology) Directions() *DirectionSet { return t.dirs }

// NumCells returns the total number of cells, W*H*D, including masked ones.
func (t *Topology) NumCells() int { return t.W * t.H * t.D }

// ActiveCells returns the number of unmasked cells.
func (t *Topology) ActiveCells() int { return t.active }

// Index maps a coordinate to a row-major cell index: (z*H+y)*W+x.
//
// Complexity: O(1).
func (t *Topology) Index(x, y, z int) int {
	return (z*t.H+y)*t.W + x
}

// Coordinate converts a row-major index back to (x,y,z).
//
// Complexity: O(1).
func (t *Topology) Coordinate(idx int) (x, y, z int) {
	z = idx / (t.W * t.H)
	rem := idx % (t.W * t.H)
	y = rem / t.W
	x = rem % t.W

	return x, y, z
}

// InBounds reports whether (x,y,z) lies within [0,W)×[0,H)×[0,D) prior to
// any periodic wraparound.
//
// Complexity: O(1).
func (t *Topology) InBounds(x, y, z int) bool {
	return x >= 0 && x < t.W && y >= 0 && y < t.H && z >= 0 && z < t.D
}

// IsMasked reports whether cell idx is inactive ("outside").
//
// Complexity: O(1).
func (t *Topology) IsMasked(idx int) bool {
	return t.mask != nil && !t.mask[idx]
}

// wrap applies periodic wraparound along one axis if enabled, otherwise
// reports out-of-range via ok=false.
func wrap(v, size int, periodic bool) (int, bool) {
	if v >= 0 && v < size {
		return v, true
	}
	if !periodic {
		return 0, false
	}

	return ((v % size) + size) % size, true
}

// Neighbor returns the cell index reached from idx by moving one step in
// dir, honoring per-axis periodicity. It returns ok=false when the target
// falls outside a non-periodic axis, or when the target cell is masked out
// (masked cells are excluded from propagation per §9's open-question
// resolution: "no pattern's active cells fall on masked coordinates").
//
// Complexity: O(1).
func (t *Topology) Neighbor(idx int, dir Direction) (neighbor int, ok bool) {
	dx, dy, dz, _, err := t.dirs.Offset(dir)
	if err != nil {
		return -1, false
	}

	x, y, z := t.Coordinate(idx)
	nx, okx := wrap(x+dx, t.W, t.periodicX)
	if !okx {
		return -1, false
	}
	ny, oky := wrap(y+dy, t.H, t.periodicY)
	if !oky {
		return -1, false
	}
	nz, okz := wrap(z+dz, t.D, t.periodicZ)
	if !okz {
		return -1, false
	}

	nIdx := t.Index(nx, ny, nz)
	if t.IsMasked(nIdx) {
		return -1, false
	}

	return nIdx, true
}

// PeriodicX, PeriodicY, PeriodicZ report this topology's per-axis
// periodicity flags.
func (t *Topology) PeriodicX() bool { return t.periodicX }
func (t *Topology) PeriodicY() bool { return t.periodicY }
func (t *Topology) PeriodicZ() bool { return t.periodicZ }
