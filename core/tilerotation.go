package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Treatment determines what happens when a TileRotation has no declared
// transform for a given (Tile, Rotation) pair.
type Treatment int

const (
	// Unchanged returns the input tile itself: the tile is assumed
	// symmetric under the missing rotation.
	Unchanged Treatment = iota
	// Missing causes the transform to fail with ErrTransformMissing.
	Missing
	// Generated synthesizes a new, first-class Tile to stand in for the
	// (base, rotation) pair.
	Generated
)

func (t Treatment) String() string {
	switch t {
	case Unchanged:
		return "Unchanged"
	case Missing:
		return "Missing"
	case Generated:
		return "Generated"
	default:
		return fmt.Sprintf("Treatment(%d)", int(t))
	}
}

// tileRotKey is the lookup key for both explicit declarations and the
// generated-tile cache.
type tileRotKey struct {
	tileID string
	rot    Rotation
}

// TileRotation is a partial map (Tile, Rotation) → Tile plus a per-tile
// Treatment governing entries absent from the map. It is built once (via
// Declare/SetTreatment) and then used read-mostly by pattern compilation.
type TileRotation struct {
	group            *RotationGroup
	defaultTreatment Treatment
	overrides        map[string]Treatment
	table            map[tileRotKey]Tile
	generated        map[tileRotKey]Tile // cache: same (tile,rotation) always yields the same synthetic Tile
}

// NewTileRotation constructs an empty TileRotation bound to group, with
// defaultTreatment applied to any tile without a per-tile override.
//
// Complexity: O(1).
func NewTileRotation(group *RotationGroup, defaultTreatment Treatment) *TileRotation {
	return &TileRotation{
		group:            group,
		defaultTreatment: defaultTreatment,
		overrides:        make(map[string]Treatment),
		table:            make(map[tileRotKey]Tile),
		generated:        make(map[tileRotKey]Tile),
	}
}

// SetTreatment overrides the Treatment used for tileID when no explicit
// Declare entry exists for a given rotation. The override is recorded
// unconditionally, replacing any earlier one for tileID; it never fails.
//
// Complexity: O(1).
func (tr *TileRotation) SetTreatment(tileID string, t Treatment) {
	tr.overrides[tileID] = t
}

// Declare records an explicit transform: rotating tile by rot yields result.
// Explicit declarations always take precedence over Treatment.
//
// Complexity: O(1).
func (tr *TileRotation) Declare(tile Tile, rot Rotation, result Tile) error {
	if !tr.group.Contains(rot) {
		return fmt.Errorf("Declare(%s, %s): %w", tile, rot, ErrUnknownRotation)
	}
	tr.table[tileRotKey{tileID: tile.ID(), rot: rot}] = result

	return nil
}

// treatmentFor resolves the effective Treatment for tileID.
func (tr *TileRotation) treatmentFor(tileID string) Treatment {
	if t, ok := tr.overrides[tileID]; ok {
		return t
	}

	return tr.defaultTreatment
}

// Transform resolves tile rotated by rot to a concrete Tile.
//
// Resolution order: identity rotation is always a no-op; then an explicit
// Declare entry; then the tile's Treatment (Unchanged/Missing/Generated).
// Generated transforms are memoized so repeated calls for the same
// (tile, rotation) return the same synthetic Tile.
//
// Complexity: O(1) amortized.
func (tr *TileRotation) Transform(tile Tile, rot Rotation) (Tile, error) {
	if rot == Identity {
		return tile, nil
	}
	if !tr.group.Contains(rot) {
		return Tile{}, fmt.Errorf("Transform(%s, %s): %w", tile, rot, ErrUnknownRotation)
	}

	key := tileRotKey{tileID: tile.ID(), rot: rot}
	if result, ok := tr.table[key]; ok {
		return result, nil
	}

	switch tr.treatmentFor(tile.ID()) {
	case Unchanged:
		return tile, nil
	case Missing:
		return Tile{}, fmt.Errorf("Transform(%s, %s): %w", tile, rot, ErrTransformMissing)
	case Generated:
		if synthetic, ok := tr.generated[key]; ok {
			return synthetic, nil
		}
		// Synthesize a first-class Tile for this (base, rotation) pair. The
		// ID is UUID-derived so synthesized tiles never collide with
		// user-declared tile IDs across independent compilations.
		synthetic, err := NewTile(uuid.New().String(), RotatedTile{Base: tile, Rot: rot})
		if err != nil {
			// uuid.New() never returns an empty string; this would indicate
			// a broken uuid implementation, a LogicError condition.
			panic(fmt.Errorf("Transform(%s, %s): generated empty synthetic ID: %w", tile, rot, ErrCanonicalizeFailed))
		}
		tr.generated[key] = synthetic

		return synthetic, nil
	default:
		panic(fmt.Errorf("Transform(%s, %s): unknown treatment %v: %w", tile, rot, tr.treatmentFor(tile.ID()), ErrCanonicalizeFailed))
	}
}

// Canonicalize reduces a RotatedTile to its canonical Tile representative
// under this TileRotation, per §3 "Canonicalization".
//
// Complexity: O(1) amortized.
func (tr *TileRotation) Canonicalize(rt RotatedTile) (Tile, error) {
	result, err := tr.Transform(rt.Base, rt.Rot)
	if err != nil {
		return Tile{}, fmt.Errorf("Canonicalize(%s): %w", rt, err)
	}

	return result, nil
}
