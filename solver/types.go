package solver

import (
	"errors"

	"github.com/katalvlaran/matchembeds/selection"
)

// ErrAborted is returned by Solve when Options.AbortCheck reports true
// between two outer-loop iterations.
var ErrAborted = errors.New("solver: aborted")

// Options configures one Solve call.
type Options struct {
	// Heuristic selects which of selection's nine rules picks the next
	// branching element.
	Heuristic selection.Heuristic

	// Seed drives every randomized choice made during this call
	// (WeightedRandom / UniformRandom selection). The zero value is a
	// valid, reproducible seed — there is no ambient time-seeded
	// fallback anywhere in this package.
	Seed int64

	// AbortCheck, if non-nil, is invoked once per outer-loop iteration.
	// Returning true stops the search and Solve returns ErrAborted. The
	// Embedding is always left in a self-consistent state at that point,
	// so an aborted solver is safe to discard.
	AbortCheck func() bool
}

// Witness is a total injective map from A's elements to B's elements,
// valid only when Result.Satisfiable is true. Witness[u] == v means the
// embedding sends A-element u to B-element v.
type Witness []int

// Result is Solve's outcome.
type Result struct {
	// Satisfiable reports whether an embedding of A into B exists.
	Satisfiable bool

	// Witness holds the embedding found, sized len(A's elements), or is
	// nil when Satisfiable is false.
	Witness Witness
}
