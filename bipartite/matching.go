package bipartite

// Restore reinserts every edge in edges into the graph. It is the
// inverse of the removals logged by CommitEdge/UnitProp/filterOne: it
// strictly reinserts edges a prior removal took out, so plain AddEdge
// calls are safe here (no duplicate-detection needed).
func (g *Graph) Restore(edges []Edge) {
	for _, e := range edges {
		g.AddEdge(e.U, e.V)
	}
}

// UnitProp iteratively commits the edge of every left vertex that has
// exactly one neighbor v, and removes v from every other left vertex's
// adjacency (a forced mapping to v conflicts with any other left vertex
// also claiming v, by injectivity). Removed edges are appended to
// *removedOut so the caller can undo.
//
// Returns false iff some left vertex reaches degree 0 during the
// closure (a dead end); the graph is left in whatever partial state the
// closure reached at that point, matching CommitEdge's "well-defined
// partially-committed state" discipline.
func (g *Graph) UnitProp(removedOut *[]Edge) bool {
	changed := true
	for changed {
		changed = false
		for u := 0; u < len(g.left); u++ {
			if len(g.left[u]) == 0 {
				return false
			}
			if len(g.left[u]) != 1 {
				continue
			}
			v := g.left[u][0]

			// Snapshot v's other left-neighbors before mutating.
			rivals := make([]int, 0, len(g.right[v]))
			for _, w := range g.right[v] {
				if w != u {
					rivals = append(rivals, w)
				}
			}
			for _, w := range rivals {
				if g.RemoveEdgeValue(w, v) {
					*removedOut = append(*removedOut, Edge{U: w, V: v})
					changed = true
					if len(g.left[w]) == 0 {
						return false
					}
				}
			}
		}
	}

	return true
}

// MaxMatching computes a maximum-cardinality bipartite matching via
// repeated augmenting-path search (Kuhn's algorithm), seeded from the
// caller's partial match1/match2. match1[u] is u's current partner or
// -1; match2[v] is symmetric. vis is a caller-owned scratch buffer of
// length RightSize(), cleared fresh before each left vertex's augmenting
// attempt.
//
// After the call: match1[u] == v iff match2[v] == u iff (u,v) is in the
// matching. Returns the total matching size.
func (g *Graph) MaxMatching(match1, match2 []int, vis []bool) int {
	for u := 0; u < len(g.left); u++ {
		if match1[u] != -1 {
			continue
		}
		for i := range vis {
			vis[i] = false
		}
		g.tryAugment(u, match1, match2, vis)
	}

	count := 0
	for _, v := range match1 {
		if v != -1 {
			count++
		}
	}

	return count
}

// tryAugment looks for an augmenting path rooted at unmatched left
// vertex u, using vis to avoid revisiting a right vertex within the
// current search.
func (g *Graph) tryAugment(u int, match1, match2 []int, vis []bool) bool {
	for _, v := range g.left[u] {
		if vis[v] {
			continue
		}
		vis[v] = true
		if match2[v] == -1 || g.tryAugment(match2[v], match1, match2, vis) {
			match1[u] = v
			match2[v] = u

			return true
		}
	}

	return false
}
