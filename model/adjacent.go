package model

import (
	"fmt"

	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/topology"
)

// TilePair is a declared ordered adjacency: B may appear immediately in
// some direction of A.
type TilePair struct {
	A, B core.Tile
}

type pairKey struct{ a, b string }

// AdjacentModel stores, per direction, the set of ordered tile pairs
// declaring permitted neighbors, plus a per-tile frequency weight (§3).
type AdjacentModel struct {
	tiles       []core.Tile
	tileByID    map[string]core.Tile
	frequencies map[string]float64
	adjacency   map[topology.Direction]map[pairKey]TilePair
}

// NewAdjacentModel constructs an AdjacentModel over tiles, each initialized
// with frequency 1. Returns ErrEmptyTiles if tiles is empty.
//
// Complexity: O(len(tiles)).
func NewAdjacentModel(tiles []core.Tile) (*AdjacentModel, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyTiles
	}

	m := &AdjacentModel{
		tiles:       append([]core.Tile(nil), tiles...),
		tileByID:    make(map[string]core.Tile, len(tiles)),
		frequencies: make(map[string]float64, len(tiles)),
		adjacency:   make(map[topology.Direction]map[pairKey]TilePair),
	}
	for _, tile := range tiles {
		m.tileByID[tile.ID()] = tile
		m.frequencies[tile.ID()] = 1
	}

	return m, nil
}

// Kind implements model.TileModel.
func (m *AdjacentModel) Kind() Kind { return AdjacentKind }

// Tiles returns the model's declared tiles, in declaration order.
func (m *AdjacentModel) Tiles() []core.Tile {
	return append([]core.Tile(nil), m.tiles...)
}

// SetFrequency assigns tile's weight. Returns ErrUnknownTile if tile was
// not part of the constructor's tile set, ErrBadFrequency if freq <= 0.
//
// Complexity: O(1).
func (m *AdjacentModel) SetFrequency(tile core.Tile, freq float64) error {
	if _, ok := m.tileByID[tile.ID()]; !ok {
		return fmt.Errorf("SetFrequency(%s): %w", tile, ErrUnknownTile)
	}
	if freq <= 0 {
		return fmt.Errorf("SetFrequency(%s, %g): %w", tile, freq, ErrBadFrequency)
	}
	m.frequencies[tile.ID()] = freq

	return nil
}

// Frequency returns tile's weight, or 0 if tile is unknown.
func (m *AdjacentModel) Frequency(tile core.Tile) float64 {
	return m.frequencies[tile.ID()]
}

// Allow declares that b may appear immediately in direction dir of a.
// Idempotent: declaring the same pair twice is a no-op. Returns
// ErrUnknownTile if either tile was not part of the constructor's tile set.
//
// Complexity: O(1) amortized.
func (m *AdjacentModel) Allow(dir topology.Direction, a, b core.Tile) error {
	if _, ok := m.tileByID[a.ID()]; !ok {
		return fmt.Errorf("Allow(%s): %w", a, ErrUnknownTile)
	}
	if _, ok := m.tileByID[b.ID()]; !ok {
		return fmt.Errorf("Allow(%s): %w", b, ErrUnknownTile)
	}
	set, ok := m.adjacency[dir]
	if !ok {
		set = make(map[pairKey]TilePair)
		m.adjacency[dir] = set
	}
	set[pairKey{a: a.ID(), b: b.ID()}] = TilePair{A: a, B: b}

	return nil
}

// Pairs returns every declared pair for dir, in no particular order.
//
// Complexity: O(declared pairs for dir).
func (m *AdjacentModel) Pairs(dir topology.Direction) []TilePair {
	set := m.adjacency[dir]
	out := make([]TilePair, 0, len(set))
	for _, p := range set {
		out = append(out, p)
	}

	return out
}

// Directions returns every direction with at least one declared pair.
func (m *AdjacentModel) Directions() []topology.Direction {
	out := make([]topology.Direction, 0, len(m.adjacency))
	for dir := range m.adjacency {
		out = append(out, dir)
	}

	return out
}
