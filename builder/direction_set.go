package builder

import (
	"strings"

	"github.com/katalvlaran/wfc/topology"
)

func directionSetTable() map[string]func() *topology.DirectionSet {
	return buildTagTable([]tagEntry[func() *topology.DirectionSet]{
		{Name: "Cartesian2D", Value: topology.Cartesian2D},
		{Name: "Cartesian2DDiagonal", Value: topology.Cartesian2DDiagonal},
		{Name: "Cartesian3D", Value: topology.Cartesian3D},
		{Name: "Hexagonal", Value: topology.Hexagonal},
	})
}

// resolveDirectionSet resolves a Descriptor's Directions tag to a
// *topology.DirectionSet.
func resolveDirectionSet(d *Descriptor) (*topology.DirectionSet, error) {
	ctor, err := resolveNamed(d.Directions, directionSetTable(), "direction set")
	if err != nil {
		return nil, err
	}

	return ctor(), nil
}

// findDirection returns the Direction in ds whose declared name matches
// name case-insensitively (e.g. "north" matches "North").
func findDirection(ds *topology.DirectionSet, name string) (topology.Direction, error) {
	for _, dir := range ds.Directions() {
		if strings.EqualFold(ds.DirectionName(dir), name) {
			return dir, nil
		}
	}

	return 0, builderErrorf("findDirection", ErrUnknownTag)
}
