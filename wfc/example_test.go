package wfc_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/topology"
	"github.com/katalvlaran/wfc/wfc"
)

// ExampleNew_trivialAdjacent solves the smallest possible model: two tiles
// that may neighbor each other in every direction, a single cell. The grid always decides, though
// which of the two tiles wins depends on the rng.
func ExampleNew_trivialAdjacent() {
	a, _ := core.NewTile("A", nil)
	b, _ := core.NewTile("B", nil)
	m, _ := model.NewAdjacentModel([]core.Tile{a, b})

	ds := topology.Cartesian2D()
	for _, dir := range ds.Directions() {
		_ = m.Allow(dir, a, b)
		_ = m.Allow(dir, b, a)
	}
	topo, _ := topology.New(1, 1, 1, ds, topology.Options{})
	compiled, _ := pattern.CompileAdjacent(m, topo, nil, nil)

	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(0))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := tp.Run(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("decided:", tp.Progress() == 1)
	// Output:
	// decided: true
}

// ExampleTilePropagator_Select_forcedStripe demonstrates pinning cell (0,0)
// and letting propagation alone (no backtracking search needed) finish a
// 4x1 strip where only A-B and B-A adjacency is allowed horizontally.
func ExampleTilePropagator_Select_forcedStripe() {
	a, _ := core.NewTile("A", nil)
	b, _ := core.NewTile("B", nil)
	m, _ := model.NewAdjacentModel([]core.Tile{a, b})

	ds := topology.Cartesian2D()
	east, _ := ds.ByName("East")
	west, _ := ds.ByName("West")
	_ = m.Allow(east, a, b)
	_ = m.Allow(west, b, a)
	_ = m.Allow(east, b, a)
	_ = m.Allow(west, a, b)

	topo, _ := topology.New(4, 1, 1, ds, topology.Options{})
	compiled, _ := pattern.CompileAdjacent(m, topo, nil, nil)

	tp, err := wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(0))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// cell 0 holds whichever pattern id corresponds to tile A at offset 0.
	ids := tp.ToArraySets()[0]
	if err := tp.SelectPattern(0, ids[0]); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := tp.Run(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}

	values := tp.ToValueArray()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.ID()
	}
	fmt.Println(out)
}

// ExampleNew_contradictionAtInit shows that a model with no allowed
// adjacencies at all fails to construct: every cell would immediately have
// zero possible patterns once its neighbors rule everything out.
func ExampleNew_contradictionAtInit() {
	a, _ := core.NewTile("A", nil)
	b, _ := core.NewTile("B", nil)
	m, _ := model.NewAdjacentModel([]core.Tile{a, b})
	// No Allow calls: every pairing is forbidden.

	ds := topology.Cartesian2D()
	topo, _ := topology.New(2, 1, 1, ds, topology.Options{})
	compiled, err := pattern.CompileAdjacent(m, topo, nil, nil)
	if err != nil {
		fmt.Println("compile error:", err)
		return
	}

	_, err = wfc.New(compiled, nil, wfc.WithRand(rand.New(rand.NewSource(0))))
	fmt.Println("contradiction:", err != nil)
	// Output:
	// contradiction: true
}

// ExampleTilePropagator_Run_backtrackRecovery shows Run deciding a 3x3
// grid, where B must border A or C and A and C must border B, with an
// unlimited backtrack budget.
func ExampleTilePropagator_Run_backtrackRecovery() {
	a, _ := core.NewTile("A", nil)
	b, _ := core.NewTile("B", nil)
	c, _ := core.NewTile("C", nil)
	m, _ := model.NewAdjacentModel([]core.Tile{a, b, c})

	ds := topology.Cartesian2D()
	for _, dir := range ds.Directions() {
		_ = m.Allow(dir, a, b)
		_ = m.Allow(dir, b, a)
		_ = m.Allow(dir, b, c)
		_ = m.Allow(dir, c, b)
	}
	topo, _ := topology.New(3, 3, 1, ds, topology.Options{})
	compiled, _ := pattern.CompileAdjacent(m, topo, nil, nil)

	tp, err := wfc.New(compiled, nil,
		wfc.WithRand(rand.New(rand.NewSource(42))),
		wfc.WithBacktrackDepth(-1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := tp.Run(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("decided:", tp.Progress() == 1)
	// Output:
	// decided: true
}
