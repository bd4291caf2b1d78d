// Package model holds the two TileModel variants pattern compilation
// consumes: Adjacent (declared tile-pair adjacency rules) and Overlapping
// (N×M×L tile windows sampled from example grids), per §3 "TileModel
// (variants)".
//
// Neither variant knows about patterns, the wave, or propagation — they
// are pure, validated data holders, styled after core's Vertex/Edge
// structs and builder's eager-validation constructors.
package model
