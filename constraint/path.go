package constraint

import (
	"fmt"

	"github.com/katalvlaran/wfc/topology"
)

// unionFind is a path-compressing, union-by-rank disjoint-set structure
// over a fixed universe of cell indices, adapted from the union-find used
// by Kruskal's-algorithm-style spanning constructions to instead track
// connected components of decided path tiles.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &unionFind{parent: parent, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges x and y's components and reports whether they were already
// in the same component (a union that doesn't merge anything signals a
// cycle when both cells are path tiles).
func (u *unionFind) union(x, y int) (alreadyConnected bool) {
	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return true
	}
	if u.rank[rx] < u.rank[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	if u.rank[rx] == u.rank[ry] {
		u.rank[rx]++
	}

	return false
}

func (u *unionFind) clone() *unionFind {
	return &unionFind{parent: append([]int(nil), u.parent...), rank: append([]int(nil), u.rank...)}
}

// Path enforces that decided cells matching TileIDs form a simple path (or
// an edged network, if AllowCycles/higher MaxDegree is set): each such
// cell may touch at most MaxDegree other decided path cells, and — unless
// AllowCycles — connecting two cells already in the same component is a
// contradiction (§5 "Path" / "EdgedPath"; EdgedPath is this same
// constraint with MaxDegree raised past 2 and AllowCycles set).
type Path struct {
	TileIDs     []string
	MaxDegree   int
	AllowCycles bool

	match  map[string]bool
	degree []int
	uf     *unionFind
}

func newPathFromParams(params map[string]interface{}) (Constraint, error) {
	ids, err := stringSliceParam(params, "tiles")
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	maxDegree, err := intParam(params, "maxDegree", 2)
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	allowCycles, _ := params["allowCycles"].(bool)

	return &Path{TileIDs: ids, MaxDegree: maxDegree, AllowCycles: allowCycles, match: mustSet(ids)}, nil
}

func mustSet(ids []string) map[string]bool {
	set, err := tileIDSet(ids)
	if err != nil {
		return map[string]bool{}
	}

	return set
}

func (p *Path) Name() string { return "Path" }

// Init allocates the per-cell degree table and union-find once the
// pattern-space cell count is known.
func (p *Path) Init(ctx *Context) error {
	n := ctx.Compiled.Mapping.PatternTopology().NumCells()
	p.degree = make([]int, n)
	p.uf = newUnionFind(n)

	return nil
}

// Check links a newly-decided path cell to its already-decided path
// neighbors, enforcing the degree bound and (unless AllowCycles) acyclicity.
func (p *Path) Check(ctx *Context, cell int) error {
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
	if !p.match[tile.ID()] {
		return nil
	}

	for _, dir := range patternTopo.Directions().Directions() {
		neighbor, ok := patternTopo.Neighbor(cell, dir)
		if !ok {
			continue
		}
		nstatus := ctx.Prop.Wave().Status(neighbor)
		if nstatus < 0 {
			continue
		}
		ntile, err := mapping.TileForPattern(nstatus, 0)
		if err != nil || !p.match[ntile.ID()] {
			continue
		}

		p.degree[cell]++
		p.degree[neighbor]++
		alreadyConnected := p.uf.union(cell, neighbor)
		if alreadyConnected && !p.AllowCycles {
			ctx.SetContradiction(cell)

			return nil
		}
		if p.degree[cell] > p.MaxDegree || p.degree[neighbor] > p.MaxDegree {
			ctx.SetContradiction(cell)

			return nil
		}
	}

	return nil
}

// Snapshot copies the degree table and union-find so Check's incremental
// updates unwind correctly on backtrack.
func (p *Path) Snapshot() func() {
	degree := append([]int(nil), p.degree...)
	uf := p.uf.clone()

	return func() {
		p.degree = degree
		p.uf = uf
	}
}
