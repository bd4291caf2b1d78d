package wfc

import "math/rand"

// HeuristicKind selects how Step picks the next cell to collapse.
type HeuristicKind int

const (
	// MinEntropy picks the undecided cell with the lowest Shannon entropy
	// over its remaining patterns (classic WFC, §4.2). The default.
	MinEntropy HeuristicKind = iota
	// MRV picks the undecided cell with the fewest remaining patterns,
	// ignoring weights (the classic CSP "minimum remaining values" rule).
	MRV
	// Scanline picks the first undecided cell in index order, ignoring
	// both entropy and weights, for fully deterministic collapse order.
	Scanline
	// Random picks uniformly among undecided cells, ignoring entropy.
	Random
)

func (h HeuristicKind) String() string {
	switch h {
	case MinEntropy:
		return "MinEntropy"
	case MRV:
		return "MRV"
	case Scanline:
		return "Scanline"
	case Random:
		return "Random"
	default:
		return "Unknown"
	}
}

// options holds New's resolved configuration. Unexported: callers only ever
// see it through functional Option values.
type options struct {
	rng            *rand.Rand
	heuristic      HeuristicKind
	backtrackDepth int
}

func newOptions(opts ...Option) *options {
	cfg := &options{heuristic: MinEntropy, backtrackDepth: -1}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option configures a TilePropagator at construction time.
type Option func(*options)

// WithRand supplies the source of randomness used for entropy tie-breaking
// and weighted pattern selection. A nil rng is a no-op: New returns
// ErrNeedRand if none is ever supplied, rather than silently seeding one
// and producing irreproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithHeuristic selects the cell-selection heuristic. An unrecognized kind
// is a no-op, leaving the previous (or default MinEntropy) value in place.
func WithHeuristic(h HeuristicKind) Option {
	return func(o *options) {
		switch h {
		case MinEntropy, MRV, Scanline, Random:
			o.heuristic = h
		}
	}
}

// WithBacktrackDepth sets the backtracking journal depth (§4.4): 0 disables
// backtracking entirely (Step/Run return ErrContradiction the moment the
// wave contradicts), a negative depth (the default, -1) keeps the full
// journal so every decision ever made can be undone, and a positive depth
// bounds the journal to that many most-recent decision frames, discarding
// older ones so decisions past that horizon become irrevocable.
func WithBacktrackDepth(depth int) Option {
	return func(o *options) {
		o.backtrackDepth = depth
	}
}
