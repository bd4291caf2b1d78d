// Package propagator implements arc-consistency propagation over a
// wave.Wave (§4.3 "Propagation"): banning a pattern from a cell enqueues
// it, and draining the queue bans, transitively, every neighbor pattern
// that pattern was the last remaining support for. A compatibility count
// compat[cell][pattern][direction] tracks how many patterns are still
// possible in that direction's neighbor that are compatible with
// (cell, pattern); it is decremented as neighbor patterns are banned, and
// reaching zero triggers a further ban.
//
// The propagation queue is a github.com/emirpasic/gods/v2 arrayqueue; the
// backtracking journal (Checkpoint/Backtrack, §4.4 "Backtracking") is an
// arraystack of wave and compatibility-count snapshots plus
// caller-registered undo hooks.
package propagator
