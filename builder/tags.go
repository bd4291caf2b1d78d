package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/iancoleman/strcase"
)

// canonicalizeTag normalizes a user-supplied tag (any case, any word
// separator — "Cartesian2D", "cartesian_2d", "CARTESIAN-2-D") into a single
// comparable form (lower case, word separators dropped), so lookups don't
// depend on exactly matching a registration string's casing or separators.
func canonicalizeTag(name string) string {
	return strings.ReplaceAll(strcase.ToSnake(strings.TrimSpace(name)), "_", "")
}

// closestTag returns the candidate with the smallest Levenshtein distance
// to target, for "unknown tag X, did you mean Y?" error messages.
func closestTag(target string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, c)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best
}

// tagEntry pairs a human-readable registration name with its value; the
// name is canonicalized once when the table is built.
type tagEntry[T any] struct {
	Name  string
	Value T
}

func buildTagTable[T any](entries []tagEntry[T]) map[string]T {
	out := make(map[string]T, len(entries))
	for _, e := range entries {
		out[canonicalizeTag(e.Name)] = e.Value
	}

	return out
}

// resolveNamed looks up name in table after canonicalizing it, returning a
// did-you-mean suggestion against table's keys on a miss.
func resolveNamed[T any](name string, table map[string]T, kind string) (T, error) {
	key := canonicalizeTag(name)
	if v, ok := table[key]; ok {
		return v, nil
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	suggestion := closestTag(key, keys)

	var zero T

	return zero, fmt.Errorf("resolveNamed(%s=%q, did you mean %q?): %w", kind, name, suggestion, ErrUnknownTag)
}
