package embedding

import (
	"github.com/katalvlaran/matchembeds/bipartite"
	"github.com/katalvlaran/matchembeds/structure"
)

// occurrence records that a universe element appears as the argument at
// Pos of the A-tuple (left vertex of P) Tuple.
type occurrence struct {
	Tuple int
	Pos   int
}

// Decision is a tentative commitment u -> v (u an A-element, v a
// B-element) together with the complete list of edges removed from U
// and from P to enforce it. Decision is how Embedding.Decide reports its
// work to the solver, and how Embedding.AddBack undoes it on backtrack.
type Decision struct {
	// U is the decided A-element (left vertex of U).
	U int

	// V is the B-element U was committed to (right vertex of U).
	V int

	// RemoveU logs every U-edge removed while enforcing this decision
	// (the committed edge itself is never logged here — it survives).
	RemoveU []bipartite.Edge

	// RemoveP logs every P-edge removed while enforcing this decision.
	RemoveP []bipartite.Edge
}

// Embedding holds the universe graph U and predicate graph P built from
// two structures, plus the bookkeeping needed to filter them to a fixed
// point and to undo any decision exactly.
type Embedding struct {
	// U is the universe graph: left = A-elements, right = B-elements.
	U *bipartite.Graph

	// P is the predicate graph: left = tuples of A, right = tuples of B.
	P *bipartite.Graph

	// Valid is false once any left vertex of U or P has reached degree
	// zero, or a commit has failed; callers check this between phases
	// rather than unwinding through exceptional control flow.
	Valid bool

	aTuples []structure.Tuple
	bTuples []structure.Tuple

	// invLabelA[u] lists every (A-tuple index, position) where A-element
	// u occurs as an argument; it is immutable after New and is the
	// table Decide walks to re-filter tuples touched by a new commit.
	invLabelA [][]occurrence

	// invLabelB is the symmetric table for B-elements, built for the
	// same structural reason invLabelA is (every universe vertex, left
	// or right, gets one) even though the current algorithm only ever
	// triggers re-filtering from the A side, since every decision commits
	// an A-element (see Decide).
	invLabelB [][]occurrence
}

// TupleCountA reports the number of A-tuples, i.e. the left size of P.
func (e *Embedding) TupleCountA() int { return len(e.aTuples) }

// ArgsA returns the argument vector of A-tuple p. The slice is owned by
// e and must not be mutated.
func (e *Embedding) ArgsA(p int) []int { return e.aTuples[p].Args }

// ArgsB returns the argument vector of B-tuple q. The slice is owned by
// e and must not be mutated.
func (e *Embedding) ArgsB(q int) []int { return e.bTuples[q].Args }
