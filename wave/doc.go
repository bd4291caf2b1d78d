// Package wave implements the per-cell possibility state the propagator
// and observer operate on (§3 "Wave", §4.2 "Entropy"): for every topology
// cell, a roaring.Bitmap of still-possible pattern ids, a live pattern
// count, and a Shannon entropy over the remaining patterns' weights.
//
// Entropy is maintained incrementally in O(1) per Ban via running
// sumWeights/sumWeightLogWeights accumulators (the standard WFC identity
// H = ln(ΣwΟ) - Σ(wΟ·ln wΟ)/ΣwΟ), with a periodic exact recomputation via
// gonum.org/v1/gonum/stat and floats to correct floating-point drift
// accumulated over many incremental updates (§9).
package wave
