package builder

import "github.com/katalvlaran/wfc/core"

func treatmentTable() map[string]core.Treatment {
	return buildTagTable([]tagEntry[core.Treatment]{
		{Name: "Unchanged", Value: core.Unchanged},
		{Name: "Missing", Value: core.Missing},
		{Name: "Generated", Value: core.Generated},
	})
}

// TileRotationBuilder builds a *core.RotationGroup and *core.TileRotation
// from a Descriptor's rotation-symmetry and per-tile treatment
// configuration (§4.1, §6).
type TileRotationBuilder struct{}

// NewTileRotationBuilder constructs a TileRotationBuilder. It holds no
// state; the zero value is equally usable.
func NewTileRotationBuilder() *TileRotationBuilder { return &TileRotationBuilder{} }

// Build resolves d's RotationalSymmetry/ReflectionalSymmetry into a
// *core.RotationGroup, and d's DefaultTreatment plus any per-tile
// TileDescriptor.Treatment overrides into a *core.TileRotation bound to
// that group.
func (b *TileRotationBuilder) Build(d *Descriptor) (*core.RotationGroup, *core.TileRotation, error) {
	rotational := d.RotationalSymmetry
	if rotational == 0 {
		rotational = 1
	}
	group, err := core.NewRotationGroup(rotational, d.ReflectionalSymmetry)
	if err != nil {
		return nil, nil, builderErrorf("TileRotationBuilder.Build", err)
	}

	defaultTreatment := core.Unchanged
	if d.DefaultTreatment != "" {
		t, err := resolveNamed(d.DefaultTreatment, treatmentTable(), "treatment")
		if err != nil {
			return nil, nil, builderErrorf("TileRotationBuilder.Build", err)
		}
		defaultTreatment = t
	}

	tileRot := core.NewTileRotation(group, defaultTreatment)
	for _, td := range d.Tiles {
		if td.Treatment == "" {
			continue
		}
		t, err := resolveNamed(td.Treatment, treatmentTable(), "treatment")
		if err != nil {
			return nil, nil, builderErrorf("TileRotationBuilder.Build", err)
		}
		tileRot.SetTreatment(td.ID, t)
	}

	return group, tileRot, nil
}
