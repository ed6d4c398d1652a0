package embedding

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/matchembeds/bipartite"
	"github.com/katalvlaran/matchembeds/structure"
)

// New builds an Embedding from two structures: the universe graph U
// from their signatures, the predicate graph P from their tuples, and
// the inverse-label tables used by Decide.
//
// Construction of U's edges (comparing every (a,b) signature pair) is
// the one phase the specification permits to run in parallel: workers
// are partitioned by left vertex and each writes into a disjoint row
// buffer, merged into U sequentially once every worker has returned. No
// other phase of construction, and nothing after New returns, runs off
// the calling goroutine.
func New(a, b structure.Structure) *Embedding {
	e := &Embedding{
		U:       bipartite.New(a.Universe(), b.Universe()),
		P:       nil, // assigned once tuple counts are known, below
		Valid:   true,
		aTuples: a.Tuples(),
		bTuples: b.Tuples(),
	}

	buildUniverseGraph(e.U, a, b)
	for u := 0; u < a.Universe(); u++ {
		if e.U.DegreeLeft(u) == 0 {
			e.Valid = false
		}
	}

	e.P = bipartite.New(len(e.aTuples), len(e.bTuples))
	buildPredicateGraph(e.P, e.U, e.aTuples, e.bTuples)
	for p := range e.aTuples {
		if e.P.DegreeLeft(p) == 0 {
			e.Valid = false
		}
	}

	e.invLabelA = buildInverseLabel(a.Universe(), e.aTuples)
	e.invLabelB = buildInverseLabel(b.Universe(), e.bTuples)

	return e
}

// buildUniverseGraph adds edge (i,j) to U for every pair whose
// signatures satisfy sigma(i) <= sigma(j), using a bounded worker pool
// over left vertices i; each worker computes its own row independently
// (read-only access to a and b) and the rows are merged into U once all
// workers have joined.
func buildUniverseGraph(u *bipartite.Graph, a, b structure.Structure) {
	leftN := a.Universe()
	rightN := b.Universe()
	if leftN == 0 || rightN == 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > leftN {
		workers = leftN
	}
	if workers < 1 {
		workers = 1
	}

	rows := make([][]int, leftN)
	rowIdx := make(chan int, leftN)
	for i := 0; i < leftN; i++ {
		rowIdx <- i
	}
	close(rowIdx)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rowIdx {
				sigA := a.Signature(i)
				row := make([]int, 0, rightN)
				for j := 0; j < rightN; j++ {
					if sigA.Leq(b.Signature(j)) {
						row = append(row, j)
					}
				}
				rows[i] = row
			}
		}()
	}
	wg.Wait()

	for i, row := range rows {
		for _, j := range row {
			u.AddEdge(i, j)
		}
	}
}

// buildPredicateGraph adds edge (tA, tB) to P for every pair of same-
// predicate, same-arity tuples whose argument pairs are all already
// edges of U.
func buildPredicateGraph(p, u *bipartite.Graph, aTuples, bTuples []structure.Tuple) {
	for tA, left := range aTuples {
		for tB, right := range bTuples {
			if left.Pred != right.Pred || left.Arity() != right.Arity() {
				continue
			}
			supported := true
			for i := range left.Args {
				if !u.HasEdge(left.Args[i], right.Args[i]) {
					supported = false

					break
				}
			}
			if supported {
				p.AddEdge(tA, tB)
			}
		}
	}
}

// buildInverseLabel builds, for each of the n universe elements, the
// list of (tuple index, position) occurrences among tuples.
func buildInverseLabel(n int, tuples []structure.Tuple) [][]occurrence {
	table := make([][]occurrence, n)
	for idx, t := range tuples {
		for pos, arg := range t.Args {
			table[arg] = append(table[arg], occurrence{Tuple: idx, Pos: pos})
		}
	}

	return table
}
