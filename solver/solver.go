package solver

import (
	"math/rand"

	"github.com/katalvlaran/matchembeds/bipartite"
	"github.com/katalvlaran/matchembeds/embedding"
	"github.com/katalvlaran/matchembeds/selection"
	"github.com/katalvlaran/matchembeds/structure"
)

// engine owns every piece of mutable state one Solve call touches: the
// embedding, the decision stack, and the matching scratch buffers. A
// dedicated struct (rather than a closure capturing local variables)
// keeps the hot loop's state explicit and makes every mutation traceable
// to a field.
type engine struct {
	e    *embedding.Embedding
	opts Options
	sel  *selection.Selector

	match1 []int
	match2 []int
	vis    []bool

	stack []*embedding.Decision
}

// Solve is the sole entry point: it decides whether an embedding of A
// into B exists and, if so, returns one witness.
//
// Concurrency: Solve itself is single-threaded and synchronous; the only
// parallel phase anywhere in this module is embedding.New's universe-
// graph construction, which has already returned by the time Solve's
// loop begins.
func Solve(a, b structure.Structure, opts Options) (Result, error) {
	e := embedding.New(a, b)
	if !e.Valid {
		return Result{Satisfiable: false}, nil
	}

	var discardU, discardP []bipartite.Edge
	if !e.U.UnitProp(&discardU) {
		return Result{Satisfiable: false}, nil
	}
	e.Filter(&discardU, &discardP)
	if !e.Valid {
		return Result{Satisfiable: false}, nil
	}

	n := e.U.LeftSize()
	eng := &engine{
		e:      e,
		opts:   opts,
		sel:    selection.NewSelector(n, rand.New(rand.NewSource(opts.Seed))),
		match1: make([]int, n),
		match2: make([]int, e.U.RightSize()),
		vis:    make([]bool, e.U.RightSize()),
	}
	for i := range eng.match1 {
		eng.match1[i] = -1
	}
	for i := range eng.match2 {
		eng.match2[i] = -1
	}

	return eng.run()
}

// run is the loop of spec section 4.5: unmatch stale edges, recompute
// the maximum matching, detect the conflict set, select a branching
// element, decide, and on any dead end backtrack with blame. It
// terminates because every iteration either commits a decision
// (strictly shrinking Σ deg_U(u)) or permanently removes one U-edge via
// blame, and both measures are bounded below by zero.
func (eng *engine) run() (Result, error) {
	n := len(eng.match1)

	for {
		if eng.opts.AbortCheck != nil && eng.opts.AbortCheck() {
			return Result{}, ErrAborted
		}

		eng.unmatchStale()

		size := eng.e.U.MaxMatching(eng.match1, eng.match2, eng.vis)
		if size < n {
			if !eng.backtrack() {
				return Result{Satisfiable: false}, nil
			}

			continue
		}

		conflicts := eng.conflictSet()
		if len(conflicts) == 0 {
			witness := make(Witness, n)
			copy(witness, eng.match1)

			return Result{Satisfiable: true, Witness: witness}, nil
		}

		ok, x := eng.sel.Select(eng.e, conflicts, eng.opts.Heuristic)
		if !ok {
			if !eng.backtrack() {
				return Result{Satisfiable: false}, nil
			}

			continue
		}

		d := &embedding.Decision{U: x, V: eng.match1[x]}
		eng.stack = append(eng.stack, d)
		eng.e.Decide(d)
		if !eng.e.Valid {
			if !eng.backtrack() {
				return Result{Satisfiable: false}, nil
			}
		}
	}
}

// unmatchStale clears every matched pair whose U-edge no longer exists,
// step 2a of the search loop: a decision or a prior backtrack may have
// removed the edge a stale entry in match1/match2 still points at.
func (eng *engine) unmatchStale() {
	for u, v := range eng.match1 {
		if v == -1 {
			continue
		}
		if !eng.e.U.HasEdge(u, v) {
			eng.match1[u] = -1
			eng.match2[v] = -1
		}
	}
}

// conflictSet returns every left tuple of P no surviving candidate of
// which agrees with the current matching at every argument position.
func (eng *engine) conflictSet() []int {
	var conflicts []int
	for p := 0; p < eng.e.TupleCountA(); p++ {
		x := eng.e.ArgsA(p)
		witnessed := false
		for _, q := range eng.e.P.NeighborsLeft(p) {
			y := eng.e.ArgsB(q)
			agree := true
			for i := range x {
				if eng.match1[x[i]] != y[i] {
					agree = false

					break
				}
			}
			if agree {
				witnessed = true

				break
			}
		}
		if !witnessed {
			conflicts = append(conflicts, p)
		}
	}

	return conflicts
}

// backtrack pops the most recent decision, restores everything it
// removed, then permanently blames (removes) the single edge the
// decision had committed to. It returns false iff the stack was already
// empty, meaning the whole search is exhausted.
//
// AddBack strictly precedes the blame removal: by the time blame runs,
// (d.U, d.V) is guaranteed to be an edge of U again, since AddBack just
// reinserted it (this is the invariant the open question in section 9 of
// the design notes resolves).
func (eng *engine) backtrack() bool {
	if len(eng.stack) == 0 {
		return false
	}

	last := len(eng.stack) - 1
	d := eng.stack[last]
	eng.stack = eng.stack[:last]

	eng.e.AddBack(d.RemoveP, d.RemoveU)
	eng.e.U.RemoveEdgeValue(d.U, d.V)

	if len(eng.stack) > 0 {
		parent := eng.stack[len(eng.stack)-1]
		parent.RemoveU = append(parent.RemoveU, bipartite.Edge{U: d.U, V: d.V})
	}

	return true
}
