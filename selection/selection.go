package selection

import (
	"math/rand"

	"github.com/katalvlaran/matchembeds/embedding"
)

// Selector carries the state a selection heuristic needs across repeated
// calls within one search: the per-element conflict-history counters
// (MinConflictHistory / MaxConflictHistory) and the random source the
// randomized heuristics draw from.
type Selector struct {
	// History[x] is the cumulative number of times A-element x has been
	// scanned as an eligible argument of a conflict tuple, across every
	// Select call made with a history heuristic on this Selector.
	History []int

	// Rng backs WeightedRandom and UniformRandom. Selection never seeds
	// or reads from the global math/rand source, so a run is fully
	// reproducible from a single seed handed to the solver.
	Rng *rand.Rand
}

// NewSelector allocates a Selector for a universe of the given size (A's
// element count), drawing randomized choices from rng.
func NewSelector(universeSizeA int, rng *rand.Rand) *Selector {
	return &Selector{
		History: make([]int, universeSizeA),
		Rng:     rng,
	}
}

// occurrence is one (conflict tuple, eligible argument) pairing found
// while scanning the conflict set.
type occurrence struct {
	tuple int
	x     int
}

// Select picks the next A-element to branch on from the conflict set
// conflicts (indices of A-tuples the current matching fails to satisfy),
// using e only to read universe-graph degrees (e.U.DegreeLeft) and tuple
// arguments (e.ArgsA) — it never mutates e.
//
// It returns (false, 0) if conflicts is empty or any conflict tuple has
// no eligible argument (an immediate dead end — no branch can possibly
// resolve that tuple), and (true, x) otherwise, where x is the chosen
// A-element.
func (s *Selector) Select(e *embedding.Embedding, conflicts []int, h Heuristic) (bool, int) {
	if len(conflicts) == 0 {
		return false, 0
	}

	var occurrences []occurrence
	var firstSeen []int
	seen := make(map[int]bool)
	deadEnd := false

	for _, p := range conflicts {
		args := e.ArgsA(p)
		tupleEligible := false
		for _, x := range args {
			if e.U.DegreeLeft(x) <= 1 {
				continue
			}
			tupleEligible = true
			occurrences = append(occurrences, occurrence{tuple: p, x: x})
			if !seen[x] {
				seen[x] = true
				firstSeen = append(firstSeen, x)
			}
			if h == MinConflictHistory || h == MaxConflictHistory {
				s.History[x]++
			}
		}
		if !tupleEligible {
			deadEnd = true
		}
	}

	if deadEnd || len(firstSeen) == 0 {
		return false, 0
	}

	switch h {
	case MinRemainingValues, MaxRemainingValues:
		best := firstSeen[0]
		bestScore := e.U.DegreeLeft(best)
		for _, x := range firstSeen[1:] {
			score := e.U.DegreeLeft(x)
			if better(h == MinRemainingValues, score, bestScore) {
				best, bestScore = x, score
			}
		}

		return true, best

	case MinConflicts, MaxConflicts:
		counts := make(map[int]int, len(firstSeen))
		for _, o := range occurrences {
			counts[o.x]++
		}
		best := firstSeen[0]
		bestScore := counts[best]
		for _, x := range firstSeen[1:] {
			score := counts[x]
			if better(h == MinConflicts, score, bestScore) {
				best, bestScore = x, score
			}
		}

		return true, best

	case MinConflictHistory, MaxConflictHistory:
		best := firstSeen[0]
		bestScore := s.History[best]
		for _, x := range firstSeen[1:] {
			score := s.History[x]
			if better(h == MinConflictHistory, score, bestScore) {
				best, bestScore = x, score
			}
		}

		return true, best

	case WeightedRandom:
		return true, occurrences[s.Rng.Intn(len(occurrences))].x

	case UniformRandom:
		return true, firstSeen[s.Rng.Intn(len(firstSeen))]

	case FirstVar:
		return true, firstSeen[0]

	default:
		return true, firstSeen[0]
	}
}

// better reports whether candidate score beats incumbent bestScore under
// the given direction, using strict comparison so the first-seen
// incumbent wins every tie.
func better(minimizing bool, score, bestScore int) bool {
	if minimizing {
		return score < bestScore
	}

	return score > bestScore
}
