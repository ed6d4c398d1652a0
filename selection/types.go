package selection

import "fmt"

// Heuristic selects which scoring rule Select uses to pick a branching
// element from the current conflict set.
type Heuristic int

const (
	// MinRemainingValues picks the eligible element with the smallest
	// remaining universe-graph degree.
	MinRemainingValues Heuristic = iota

	// MaxRemainingValues picks the eligible element with the largest
	// remaining universe-graph degree.
	MaxRemainingValues

	// MinConflicts picks the eligible element appearing in the fewest
	// conflict tuples of the current round.
	MinConflicts

	// MaxConflicts picks the eligible element appearing in the most
	// conflict tuples of the current round.
	MaxConflicts

	// MinConflictHistory picks by the smallest cumulative conflict
	// count across the whole search so far.
	MinConflictHistory

	// MaxConflictHistory picks by the largest cumulative conflict
	// count across the whole search so far.
	MaxConflictHistory

	// FirstVar picks the first eligible argument of the first conflict
	// tuple, in encounter order.
	FirstVar

	// WeightedRandom picks uniformly over the multiset of (conflict,
	// argument) occurrences, so elements implicated in more conflicts
	// are proportionally more likely to be picked.
	WeightedRandom

	// UniformRandom picks uniformly over the set of distinct eligible
	// elements.
	UniformRandom
)

// String renders the heuristic using the same spelling Parse accepts, for flags and diagnostics.
func (h Heuristic) String() string {
	switch h {
	case MinRemainingValues:
		return "min-remaining-values"
	case MaxRemainingValues:
		return "max-remaining-values"
	case MinConflicts:
		return "min-conflicts"
	case MaxConflicts:
		return "max-conflicts"
	case MinConflictHistory:
		return "min-conflict-history"
	case MaxConflictHistory:
		return "max-conflict-history"
	case FirstVar:
		return "first-var"
	case WeightedRandom:
		return "weighted-random"
	case UniformRandom:
		return "uniform-random"
	default:
		return fmt.Sprintf("selection.Heuristic(%d)", int(h))
	}
}

// Parse maps a heuristic's String() spelling back to its Heuristic
// value, for use by CLI flag parsing.
func Parse(name string) (Heuristic, error) {
	for h := MinRemainingValues; h <= UniformRandom; h++ {
		if h.String() == name {
			return h, nil
		}
	}

	return 0, fmt.Errorf("selection: unknown heuristic %q", name)
}
