// Package builder turns a declarative Descriptor — the kind of thing a
// YAML file or a hand-built struct literal supplies — into a fully wired
// *wfc.TilePropagator: topology, rotation group, tile model, pattern
// compilation, and constraint set are each assembled by a dedicated
// sub-builder (TileRotationBuilder, ModelFactory, ConstraintFactory) and
// handed to the single Build orchestrator (§6 "configuration-driven
// construction").
//
// Tag lookups (direction set names, treatment names, constraint tags) are
// case- and delimiter-insensitive and, on a miss, report the closest known
// tag by edit distance so a typo in a config file produces an actionable
// error instead of a bare "not found".
package builder
