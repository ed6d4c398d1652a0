package structure

import (
	"errors"
	"fmt"
)

// Sentinel errors for structure construction.
var (
	// ErrNegativeUniverseSize indicates a Structure was asked to allocate
	// a negative number of elements.
	ErrNegativeUniverseSize = errors.New("structure: negative universe size")

	// ErrElementOutOfRange indicates a tuple referenced an element index
	// outside [0, universeSize).
	ErrElementOutOfRange = errors.New("structure: element index out of range")

	// ErrNegativePredicate indicates a negative predicate index was supplied.
	ErrNegativePredicate = errors.New("structure: negative predicate index")
)

// Tuple is a single proposition: a predicate index plus its ordered
// arguments, each a dense element index in [0, universeSize).
//
// Arity is fixed per predicate across both structures of a matching
// attempt, but Tuple itself makes no such assumption; embedding.New only
// pairs tuples of the same predicate and equal arity.
type Tuple struct {
	// Pred is the predicate symbol index, shared across both structures.
	Pred int

	// Args is the ordered argument vector. len(Args) is the tuple's arity.
	Args []int
}

// Arity reports the number of arguments of t.
func (t Tuple) Arity() int { return len(t.Args) }

// Structure is an immutable, read-only finite relational structure: a
// universe of size N (elements 0..N-1) and a flat list of tuples.
//
// Structure never mutates its Tuples slice or recomputes signatures after
// construction; New does all the work once.
type Structure struct {
	universe   int
	tuples     []Tuple
	signatures []Signature
}

// New builds a Structure over a universe of the given size from the
// supplied tuples, precomputing one Signature per element.
//
// New validates that every tuple argument lies in [0, universe) and that
// no predicate index is negative; it does not validate arities are
// uniform per predicate (the caller, e.g. parse, owns that check against
// its own symbol table).
func New(universe int, tuples []Tuple) (Structure, error) {
	if universe < 0 {
		return Structure{}, ErrNegativeUniverseSize
	}
	for _, t := range tuples {
		if t.Pred < 0 {
			return Structure{}, ErrNegativePredicate
		}
		for _, a := range t.Args {
			if a < 0 || a >= universe {
				return Structure{}, ErrElementOutOfRange
			}
		}
	}

	// Copy defensively so the caller's slice may be reused/mutated freely,
	// keeping each (predicate, arguments) tuple once: relations are sets.
	owned := make([]Tuple, 0, len(tuples))
	seen := make(map[string]bool, len(tuples))
	for _, t := range tuples {
		key := fmt.Sprint(t.Pred, t.Args)
		if !seen[key] {
			seen[key] = true
			owned = append(owned, t)
		}
	}

	sigs := make([]Signature, universe)
	for i := range sigs {
		sigs[i] = newSignature()
	}
	for _, t := range owned {
		for pos, a := range t.Args {
			sigs[a].update(t.Pred, pos)
		}
	}

	return Structure{universe: universe, tuples: owned, signatures: sigs}, nil
}

// Universe reports the number of elements, i.e. |N|.
func (s Structure) Universe() int { return s.universe }

// Tuples returns the structure's tuples. The slice is owned by s and must
// not be mutated by the caller.
func (s Structure) Tuples() []Tuple { return s.tuples }

// Signature returns the precomputed Signature of element u.
//
// Panics if u is outside [0, Universe()); this is a programming error at
// the call site, not a user-facing condition (see spec's error taxonomy).
func (s Structure) Signature(u int) Signature { return s.signatures[u] }
