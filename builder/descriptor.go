package builder

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TileDescriptor declares one tile: its id, an optional per-tile rotation
// Treatment override ("unchanged", "missing", "generated"), and an optional
// frequency weight (meaningful only for an Adjacent model; Overlapping
// derives weights from sample occurrence counts).
type TileDescriptor struct {
	ID        string  `yaml:"id"`
	Treatment string  `yaml:"treatment,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
}

// PairDescriptor declares one Adjacent-model adjacency: B may appear
// immediately in Direction of A.
type PairDescriptor struct {
	Direction string `yaml:"direction"`
	A         string `yaml:"a"`
	B         string `yaml:"b"`
}

// SampleDescriptor declares one Overlapping-model sample grid: its
// dimensions and its tiles, row-major (z outermost, then y, then x).
type SampleDescriptor struct {
	W     int      `yaml:"w"`
	H     int      `yaml:"h"`
	D     int      `yaml:"d,omitempty"`
	Tiles []string `yaml:"tiles"`
}

// ModelDescriptor selects and configures the tile model: Kind is
// "adjacent" or "overlapping". Adjacent uses Pairs; Overlapping uses
// N/M/L and Samples.
type ModelDescriptor struct {
	Kind    string             `yaml:"kind"`
	Pairs   []PairDescriptor   `yaml:"pairs,omitempty"`
	N       int                `yaml:"n,omitempty"`
	M       int                `yaml:"m,omitempty"`
	L       int                `yaml:"l,omitempty"`
	Samples []SampleDescriptor `yaml:"samples,omitempty"`
}

// ConstraintDescriptor declares one constraint by its registry tag plus
// loosely-typed parameters (decoded from YAML scalars/sequences/mappings,
// consumed by the matching constraint's param-decoding helpers).
type ConstraintDescriptor struct {
	Tag    string                 `yaml:"tag"`
	Params map[string]interface{} `yaml:"params,omitempty"`
}

// Descriptor is the complete declarative description of a solve: topology
// extents and periodicity, the direction set, an optional mask, rotation
// symmetry, tiles, the tile model, and the constraint set (§6).
type Descriptor struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Depth      int  `yaml:"depth,omitempty"`
	PeriodicX  bool `yaml:"periodicX,omitempty"`
	PeriodicY  bool `yaml:"periodicY,omitempty"`
	PeriodicZ  bool `yaml:"periodicZ,omitempty"`
	Directions string `yaml:"directions"`
	Mask       []bool `yaml:"mask,omitempty"`

	RotationalSymmetry   int    `yaml:"rotationalSymmetry,omitempty"`
	ReflectionalSymmetry bool   `yaml:"reflectionalSymmetry,omitempty"`
	DefaultTreatment     string `yaml:"defaultTreatment,omitempty"`

	Tiles       []TileDescriptor       `yaml:"tiles"`
	Model       ModelDescriptor        `yaml:"model"`
	Constraints []ConstraintDescriptor `yaml:"constraints,omitempty"`
}

// DecodeYAML reads one Descriptor from r. Unknown fields are rejected
// (yaml.Decoder.KnownFields) so a typo'd key surfaces immediately rather
// than silently decoding to a zero value.
//
// Complexity: O(size of the document).
func DecodeYAML(r io.Reader) (*Descriptor, error) {
	var d Descriptor
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("builder.DecodeYAML: %w", err)
	}
	if d.Depth == 0 {
		d.Depth = 1
	}

	return &d, nil
}
