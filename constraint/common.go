package constraint

import (
	"fmt"

	"github.com/katalvlaran/wfc/core"
	"github.com/katalvlaran/wfc/pattern"
)

// banPatternsNotMatching bans every pattern currently possible at
// patternCell whose tile at offset's slot does not satisfy keep.
func banPatternsNotMatching(ctx *Context, mapping *pattern.TileModelMapping, patternCell, offset int, keep func(core.Tile) bool) error {
	it := ctx.Prop.Wave().Possible(patternCell).Clone().Iterator()
	for it.HasNext() {
		p := int(it.Next())
		tile, err := mapping.TileForPattern(p, offset)
		if err != nil {
			return err
		}
		if keep(tile) {
			continue
		}
		if err := ctx.Prop.Ban(patternCell, p); err != nil {
			return err
		}
	}

	return ctx.Prop.Propagate()
}

// tileIDSet builds a membership set from a string slice, erroring if it's
// empty (a mistakenly-empty allow/deny list is almost certainly a config
// bug, not an intentional "match nothing").
func tileIDSet(ids []string) (map[string]bool, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("tileIDSet: %w", ErrBadParams)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set, nil
}

func stringSliceParam(params map[string]interface{}, key string) ([]string, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("stringSliceParam(%s): %w", key, ErrBadParams)
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("stringSliceParam(%s): element %d not a string: %w", key, i, ErrBadParams)
			}
			out[i] = s
		}

		return out, nil
	default:
		return nil, fmt.Errorf("stringSliceParam(%s): %w", key, ErrBadParams)
	}
}

func intParam(params map[string]interface{}, key string, def int) (int, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("intParam(%s): %w", key, ErrBadParams)
	}
}

func stringParam(params map[string]interface{}, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", fmt.Errorf("stringParam(%s): %w", key, ErrBadParams)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("stringParam(%s): %w", key, ErrBadParams)
	}

	return s, nil
}
