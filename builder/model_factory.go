package builder

import (
	"fmt"

	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/topology"
)

func modelKindTable() map[string]model.Kind {
	return buildTagTable([]tagEntry[model.Kind]{
		{Name: "Adjacent", Value: model.AdjacentKind},
		{Name: "Overlapping", Value: model.OverlappingKind},
	})
}

// ModelFactory builds a model.TileModel (an *model.AdjacentModel or
// *model.OverlappingModel) from a Descriptor's tile list and
// ModelDescriptor (§3, §6).
type ModelFactory struct{}

// NewModelFactory constructs a ModelFactory. It holds no state; the zero
// value is equally usable.
func NewModelFactory() *ModelFactory { return &ModelFactory{} }

func (f *ModelFactory) buildTiles(d *Descriptor) ([]core.Tile, map[string]core.Tile, error) {
	if len(d.Tiles) == 0 {
		return nil, nil, ErrMissingTiles
	}
	tiles := make([]core.Tile, 0, len(d.Tiles))
	byID := make(map[string]core.Tile, len(d.Tiles))
	for _, td := range d.Tiles {
		tile, err := core.NewTile(td.ID, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("ModelFactory: tile %q: %w", td.ID, err)
		}
		tiles = append(tiles, tile)
		byID[td.ID] = tile
	}

	return tiles, byID, nil
}

// Build constructs the model.TileModel described by d, resolving tile
// adjacencies (Adjacent) or sample grids (Overlapping) against d's declared
// tiles and ds's direction names.
func (f *ModelFactory) Build(d *Descriptor, ds *topology.DirectionSet) (model.TileModel, error) {
	tiles, byID, err := f.buildTiles(d)
	if err != nil {
		return nil, builderErrorf("ModelFactory.Build", err)
	}

	kind, err := resolveNamed(d.Model.Kind, modelKindTable(), "model kind")
	if err != nil {
		return nil, builderErrorf("ModelFactory.Build", err)
	}

	switch kind {
	case model.AdjacentKind:
		return f.buildAdjacent(d, ds, tiles, byID)
	case model.OverlappingKind:
		return f.buildOverlapping(d, byID)
	default:
		return nil, builderErrorf("ModelFactory.Build", ErrUnknownTag)
	}
}

func (f *ModelFactory) buildAdjacent(d *Descriptor, ds *topology.DirectionSet, tiles []core.Tile, byID map[string]core.Tile) (model.TileModel, error) {
	m, err := model.NewAdjacentModel(tiles)
	if err != nil {
		return nil, builderErrorf("ModelFactory.buildAdjacent", err)
	}

	for _, td := range d.Tiles {
		if td.Frequency <= 0 {
			continue
		}
		if err := m.SetFrequency(byID[td.ID], td.Frequency); err != nil {
			return nil, builderErrorf("ModelFactory.buildAdjacent", err)
		}
	}

	for _, pd := range d.Model.Pairs {
		dir, err := findDirection(ds, pd.Direction)
		if err != nil {
			return nil, builderErrorf("ModelFactory.buildAdjacent", err)
		}
		a, ok := byID[pd.A]
		if !ok {
			return nil, fmt.Errorf("ModelFactory.buildAdjacent: pair a=%q: %w", pd.A, ErrUnknownTile)
		}
		b, ok := byID[pd.B]
		if !ok {
			return nil, fmt.Errorf("ModelFactory.buildAdjacent: pair b=%q: %w", pd.B, ErrUnknownTile)
		}
		if err := m.Allow(dir, a, b); err != nil {
			return nil, builderErrorf("ModelFactory.buildAdjacent", err)
		}
	}

	return m, nil
}

func (f *ModelFactory) buildOverlapping(d *Descriptor, byID map[string]core.Tile) (model.TileModel, error) {
	n, m, l := d.Model.N, d.Model.M, d.Model.L
	if n == 0 {
		n = 1
	}
	if m == 0 {
		m = 1
	}
	if l == 0 {
		l = 1
	}

	samples := make([]*model.SampleGrid, 0, len(d.Model.Samples))
	for i, sd := range d.Model.Samples {
		tiles := make([]core.Tile, len(sd.Tiles))
		for j, id := range sd.Tiles {
			tile, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("ModelFactory.buildOverlapping: sample %d tile %d %q: %w", i, j, id, ErrUnknownTile)
			}
			tiles[j] = tile
		}
		depth := sd.D
		if depth == 0 {
			depth = 1
		}
		grid, err := model.NewSampleGrid(sd.W, sd.H, depth, tiles)
		if err != nil {
			return nil, fmt.Errorf("ModelFactory.buildOverlapping: sample %d: %w", i, err)
		}
		samples = append(samples, grid)
	}

	om, err := model.NewOverlappingModel(n, m, l, samples...)
	if err != nil {
		return nil, builderErrorf("ModelFactory.buildOverlapping", err)
	}

	return om, nil
}
