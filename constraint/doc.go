// Package constraint implements the Constraint hook protocol (§5
// "Constraints"): a constraint gets one Init call before solving starts
// (to outright ban patterns that can never be valid, e.g. at border
// cells) and one Check call every time a cell collapses to a single
// pattern during solving (to enforce relational invariants incrementally,
// e.g. "this tile extends a path without branching").
//
// Five built-ins are provided: Border, FixedTile, MaxConsecutive, Mirror,
// and Path (general path/edged-path connectivity, adapted from bfs/dfs
// traversal and union-find component tracking). A string-tag-keyed
// Registry lets the builder package construct constraints from
// configuration data (§6).
package constraint
