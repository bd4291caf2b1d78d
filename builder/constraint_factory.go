package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wfc/constraint"
	"github.com/katalvlaran/wfc/core"
)

// ConstraintFactory builds the []constraint.Constraint described by a
// Descriptor's Constraints list, resolving each ConstraintDescriptor.Tag
// against a constraint.Registry (§5, §6).
//
// Mirror is special-cased: its factory (constraint.Registry's
// "mirror" entry) always errors, since NewMirror requires a live
// *core.TileRotation that cannot travel through a plain params map.
// ConstraintFactory.Build constructs it directly instead.
type ConstraintFactory struct {
	registry *constraint.Registry
}

// NewConstraintFactory constructs a ConstraintFactory over registry. A nil
// registry falls back to constraint.NewRegistry's built-ins.
func NewConstraintFactory(registry *constraint.Registry) *ConstraintFactory {
	if registry == nil {
		registry = constraint.NewRegistry()
	}

	return &ConstraintFactory{registry: registry}
}

// Build constructs every constraint d.Constraints declares, in order.
// tileRot is required only if a "mirror" entry is present.
func (f *ConstraintFactory) Build(d *Descriptor, tileRot *core.TileRotation) ([]constraint.Constraint, error) {
	out := make([]constraint.Constraint, 0, len(d.Constraints))
	tags := f.canonicalTags()
	registered := make(map[string]string)
	for _, t := range f.registry.Tags() {
		registered[canonicalizeTag(t)] = t
	}

	for i, cd := range d.Constraints {
		tag := canonicalizeTag(cd.Tag)

		if tag == "mirror" {
			axis, _ := cd.Params["axis"].(string)
			m, err := constraint.NewMirror(axis, tileRot)
			if err != nil {
				return nil, fmt.Errorf("ConstraintFactory.Build(#%d, tag=%q): %w", i, cd.Tag, err)
			}
			out = append(out, m)
			continue
		}

		regTag, ok := registered[tag]
		if !ok {
			regTag = tag
		}
		c, err := f.registry.Build(regTag, cd.Params)
		if err != nil {
			suggestion := closestTag(tag, tags)

			return nil, fmt.Errorf("ConstraintFactory.Build(#%d, tag=%q, did you mean %q?): %w", i, cd.Tag, suggestion, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func (f *ConstraintFactory) canonicalTags() []string {
	raw := f.registry.Tags()
	out := make([]string, len(raw))
	for i, t := range raw {
		out[i] = canonicalizeTag(t)
	}
	sort.Strings(out)

	return out
}
