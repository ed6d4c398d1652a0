package bipartite

import "testing"

func buildSample() *Graph {
	g := New(3, 3)
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)
	g.AddEdge(1, 1)
	g.AddEdge(2, 2)

	return g
}

func TestAddEdgeAndHasEdge(t *testing.T) {
	g := buildSample()
	if !g.HasEdge(0, 0) || !g.HasEdge(0, 1) || !g.HasEdge(1, 1) || !g.HasEdge(2, 2) {
		t.Fatalf("expected all constructed edges to be present")
	}
	if g.HasEdge(1, 0) {
		t.Fatalf("did not expect edge (1,0)")
	}
	if g.DegreeLeft(0) != 2 || g.DegreeRight(1) != 2 {
		t.Fatalf("unexpected degrees: left0=%d right1=%d", g.DegreeLeft(0), g.DegreeRight(1))
	}
}

func TestRemoveEdgeSymmetric(t *testing.T) {
	g := buildSample()
	v, ok := g.RemoveEdge(0, 0)
	if !ok {
		t.Fatalf("expected removal to succeed")
	}
	if g.HasEdge(0, v) {
		t.Fatalf("edge (0,%d) should be gone from the left side", v)
	}
	for _, u := range g.NeighborsRight(v) {
		if u == 0 {
			t.Fatalf("edge (0,%d) should be gone from the right side too", v)
		}
	}
}

func TestRemoveEdgeValue(t *testing.T) {
	g := buildSample()
	if !g.RemoveEdgeValue(0, 1) {
		t.Fatalf("expected (0,1) to be removed")
	}
	if g.HasEdge(0, 1) {
		t.Fatalf("(0,1) should no longer be an edge")
	}
	if g.RemoveEdgeValue(0, 1) {
		t.Fatalf("removing a non-edge must report false")
	}
}

func TestCommitEdge(t *testing.T) {
	g := buildSample()
	var removed []Edge
	ok := g.CommitEdge(0, 1, &removed)
	if !ok {
		t.Fatalf("expected commit to succeed")
	}
	if g.DegreeLeft(0) != 1 || !g.HasEdge(0, 1) {
		t.Fatalf("expected vertex 0's only neighbor to be 1")
	}
	if len(removed) != 1 || removed[0] != (Edge{U: 0, V: 0}) {
		t.Fatalf("expected exactly the (0,0) edge to be logged as removed, got %v", removed)
	}
}

func TestCommitEdgeOnNonEdgeFails(t *testing.T) {
	g := buildSample()
	var removed []Edge
	if g.CommitEdge(0, 2, &removed) {
		t.Fatalf("committing a non-edge must fail")
	}
	if len(removed) != 0 {
		t.Fatalf("a failed commit must not log any removals")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	g := buildSample()
	var removed []Edge
	g.CommitEdge(0, 1, &removed)
	g.Restore(removed)
	if !g.HasEdge(0, 0) {
		t.Fatalf("expected (0,0) to be restored")
	}
	if g.DegreeLeft(0) != 2 {
		t.Fatalf("expected degree 2 after restore, got %d", g.DegreeLeft(0))
	}
}
