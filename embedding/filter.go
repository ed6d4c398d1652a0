package embedding

import "github.com/katalvlaran/matchembeds/bipartite"

// Decide commits d.U's only remaining U-candidate to d.V, then
// re-filters every P-tuple that argues d.U (via invLabelA), then runs
// the global filter to a fixed point. All edges removed along the way
// are appended to d.RemoveU / d.RemoveP.
func (e *Embedding) Decide(d *Decision) {
	if !e.U.CommitEdge(d.U, d.V, &d.RemoveU) {
		e.Valid = false

		return
	}

	for _, occ := range e.invLabelA[d.U] {
		e.filterOne(occ.Tuple, &d.RemoveU, &d.RemoveP)
		if !e.Valid {
			return
		}
	}

	e.Filter(&d.RemoveU, &d.RemoveP)
}

// Filter repeatedly scans every left tuple of P, calling filterOne,
// until a full pass removes nothing (or e.Valid turns false, in which
// case it returns immediately).
func (e *Embedding) Filter(removeU, removeP *[]bipartite.Edge) {
	for {
		anyRemoved := false
		for p := range e.aTuples {
			if e.filterOne(p, removeU, removeP) {
				anyRemoved = true
			}
			if !e.Valid {
				return
			}
		}
		if !anyRemoved {
			return
		}
	}
}

// AddBack restores every listed edge to P and U respectively and sets
// Valid back to true. The inverse-label tables are untouched because
// they depend only on tuple identity, never on which edges currently
// survive.
func (e *Embedding) AddBack(pEdges, uEdges []bipartite.Edge) {
	e.P.Restore(pEdges)
	e.U.Restore(uEdges)
	e.Valid = true
}

// filterOne is the arc-consistency kernel of section 4.3.1: pass 1
// prunes P from U, pass 2 (when P still leaves p ambiguous) prunes U
// from P. It returns whether any edge was removed; e.Valid is cleared
// as soon as any left vertex (of either graph) is driven to degree zero.
func (e *Embedding) filterOne(p int, removeU, removeP *[]bipartite.Edge) bool {
	x := e.aTuples[p].Args
	// Logged-edge count is the ground truth for "did this call change
	// anything": every real removal or commit-induced removal appends to
	// removeU/removeP, so comparing the count on entry and on each
	// return gives an exact answer even through the commit branches
	// below, which may run without actually removing a further edge
	// (e.g. a tuple that was already singleton before this call).
	before := len(*removeU) + len(*removeP)
	changed := func() bool { return len(*removeU)+len(*removeP) > before }

	// Pass 1 — prune P from U.
	candidates := append([]int(nil), e.P.NeighborsLeft(p)...)
	for _, q := range candidates {
		y := e.bTuples[q].Args
		supported := true
		for i := range x {
			if !e.U.HasEdge(x[i], y[i]) {
				supported = false

				break
			}
		}
		if !supported {
			if e.P.RemoveEdgeValue(p, q) {
				*removeP = append(*removeP, bipartite.Edge{U: p, V: q})
			}
		}
	}

	switch e.P.DegreeLeft(p) {
	case 0:
		e.Valid = false

		return changed()
	case 1:
		qStar := e.P.NeighborsLeft(p)[0]
		if !e.P.CommitEdge(p, qStar, removeP) {
			e.Valid = false

			return changed()
		}
		yStar := e.bTuples[qStar].Args
		for i := range x {
			if !e.U.CommitEdge(x[i], yStar[i], removeU) {
				e.Valid = false

				return changed()
			}
		}

		return changed()
	}

	// Pass 2 — prune U from P (only reached when |A_p| >= 2).
	for i := range x {
		xi := x[i]
		neighbors := append([]int(nil), e.U.NeighborsLeft(xi)...)
		for _, y := range neighbors {
			if supportedByP(e, p, i, y) {
				continue
			}
			if e.U.RemoveEdgeValue(xi, y) {
				*removeU = append(*removeU, bipartite.Edge{U: xi, V: y})
			}
		}

		switch e.U.DegreeLeft(xi) {
		case 0:
			e.Valid = false

			return changed()
		case 1:
			only := e.U.NeighborsLeft(xi)[0]
			if !e.U.CommitEdge(xi, only, removeU) {
				e.Valid = false

				return changed()
			}
		}
	}

	return changed()
}

// supportedByP reports whether some surviving P-neighbor of p has y as
// its argument at position i — i.e. whether U-edge (x[i], y) is still
// backed by at least one candidate tuple match.
func supportedByP(e *Embedding, p, i, y int) bool {
	for _, q := range e.P.NeighborsLeft(p) {
		if e.bTuples[q].Args[i] == y {
			return true
		}
	}

	return false
}
