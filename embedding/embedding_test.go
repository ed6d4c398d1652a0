package embedding

import (
	"testing"

	"github.com/katalvlaran/matchembeds/structure"
)

// identity builds A = B = {P(x), Q(x,y), Q(y,x)} over a 2-element universe.
func identityStructures(t *testing.T) (structure.Structure, structure.Structure) {
	t.Helper()
	tuples := []structure.Tuple{
		{Pred: 0, Args: []int{0}},
		{Pred: 1, Args: []int{0, 1}},
		{Pred: 1, Args: []int{1, 0}},
	}
	s, err := structure.New(2, tuples)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return s, s
}

func TestNewValidEmbedding(t *testing.T) {
	a, b := identityStructures(t)
	e := New(a, b)
	if !e.Valid {
		t.Fatalf("expected identity embedding to start valid")
	}
	if e.U.LeftSize() != 2 || e.U.RightSize() != 2 {
		t.Fatalf("unexpected U dimensions")
	}
	if e.P.LeftSize() != 3 || e.P.RightSize() != 3 {
		t.Fatalf("unexpected P dimensions")
	}
}

func TestNewDetectsArityMismatch(t *testing.T) {
	// A has P(x) (arity 1); B has only P(x,y) (arity 2) -> no edge ever
	// enters P, so the sole A-tuple has degree zero -> invalid.
	a, err := structure.New(1, []structure.Tuple{{Pred: 0, Args: []int{0}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := structure.New(2, []structure.Tuple{{Pred: 0, Args: []int{0, 1}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := New(a, b)
	if e.Valid {
		t.Fatalf("expected arity mismatch to leave the sole A-tuple unsupported")
	}
}

func TestDecideAndAddBackRoundTrip(t *testing.T) {
	a, b := identityStructures(t)
	e := New(a, b)

	beforeU0 := append([]int(nil), e.U.NeighborsLeft(0)...)
	beforeU1 := append([]int(nil), e.U.NeighborsLeft(1)...)
	beforeP0 := append([]int(nil), e.P.NeighborsLeft(0)...)

	d := &Decision{U: 0, V: 0}
	e.Decide(d)
	if !e.Valid {
		t.Fatalf("expected Decide to keep the identity embedding valid")
	}
	if len(e.U.NeighborsLeft(1)) != 1 {
		t.Fatalf("expected deciding 0->0 to narrow element 1's candidates to a singleton, got %v", e.U.NeighborsLeft(1))
	}

	e.AddBack(d.RemoveP, d.RemoveU)
	if !e.Valid {
		t.Fatalf("AddBack must restore Valid")
	}

	afterU0 := append([]int(nil), e.U.NeighborsLeft(0)...)
	afterU1 := append([]int(nil), e.U.NeighborsLeft(1)...)
	afterP0 := append([]int(nil), e.P.NeighborsLeft(0)...)

	if !sameSet(beforeU0, afterU0) {
		t.Fatalf("U adjacency of vertex 0 not restored: before=%v after=%v", beforeU0, afterU0)
	}
	if !sameSet(beforeU1, afterU1) {
		t.Fatalf("U adjacency of vertex 1 not restored: before=%v after=%v", beforeU1, afterU1)
	}
	if !sameSet(beforeP0, afterP0) {
		t.Fatalf("P adjacency of vertex 0 not restored: before=%v after=%v", beforeP0, afterP0)
	}
}

func TestFilterOneRejectsSelfLoopAfterDecide(t *testing.T) {
	// A = {E(a,a)}, B = {E(1,2), E(2,1)} -- self-loop distinction (scenario 6).
	a, err := structure.New(1, []structure.Tuple{{Pred: 0, Args: []int{0, 0}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := structure.New(2, []structure.Tuple{
		{Pred: 0, Args: []int{0, 1}},
		{Pred: 0, Args: []int{1, 0}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := New(a, b)
	// Construction only checks positionwise U-support: a->1 and a->2 are
	// both U-edges, so both B-tuples enter P and the embedding starts valid.
	if !e.Valid {
		t.Fatalf("expected construction to keep both B-tuples as candidates of E(a,a)")
	}

	// Deciding a->1 removes a->2 from U; filterOne then finds no B-tuple
	// with a's image at both positions and drives E(a,a) to degree zero.
	e.Decide(&Decision{U: 0, V: 0})
	if e.Valid {
		t.Fatalf("expected filterOne to reject E(a,a) once a is decided")
	}
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]int)
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
	}
	for _, c := range seen {
		if c != 0 {
			return false
		}
	}

	return true
}
