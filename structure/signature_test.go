package structure

import "testing"

func TestSignatureLeq(t *testing.T) {
	a := newSignature()
	a.update(0, 0)
	a.update(0, 0)

	b := newSignature()
	b.update(0, 0)
	b.update(0, 0)
	b.update(0, 0)

	if !a.Leq(b) {
		t.Fatalf("expected a.Leq(b) to hold (2 <= 3)")
	}
	if b.Leq(a) {
		t.Fatalf("expected b.Leq(a) to fail (3 <= 2 is false)")
	}
}

func TestSignatureLeqDisjointKeys(t *testing.T) {
	a := newSignature()
	a.update(1, 2)

	b := newSignature()
	b.update(5, 6)

	// a has a key b lacks (count 0 in b) -> a.Leq(b) fails.
	if a.Leq(b) {
		t.Fatalf("expected a.Leq(b) to fail: b has zero occurrences at (1,2)")
	}
	// b's key is absent from a (count 0 in a) -> b.Leq(a) fails for the
	// same reason, symmetric case.
	if b.Leq(a) {
		t.Fatalf("expected b.Leq(a) to fail: a has zero occurrences at (5,6)")
	}
}

func TestSignatureLeqReflexive(t *testing.T) {
	a := newSignature()
	a.update(3, 0)
	a.update(3, 1)

	if !a.Leq(a) {
		t.Fatalf("Leq must be reflexive")
	}
}
