package structure

// predPos keys a signature's occurrence-count map by (predicate, position).
type predPos struct {
	pred int
	pos  int
}

// Signature summarizes the positional roles an element plays across all
// tuples it occurs in: for every (predicate, position) pair, how many
// times the element fills that slot.
//
// Signature supports a partial order: sigA.Leq(sigB) holds when, for
// every (predicate, position) key, sigA's count is <= sigB's count. This
// is a necessary (not sufficient) condition for an element of A to embed
// into an element of B, and it is used only to prune the initial edges of
// the universe graph — signatures are never mutated after construction
// (Structure.New is the only writer).
type Signature struct {
	counts map[predPos]int
}

// newSignature returns an empty Signature (no occurrences yet).
func newSignature() Signature {
	return Signature{counts: make(map[predPos]int)}
}

// update records one more occurrence of the owning element at position
// pos of a tuple with predicate pred.
func (s *Signature) update(pred, pos int) {
	s.counts[predPos{pred: pred, pos: pos}]++
}

// Leq reports whether s <= other componentwise: every key present in s
// has a count in other that is at least as large. Keys present only in
// other (count 0 in s) trivially satisfy the comparison.
func (s Signature) Leq(other Signature) bool {
	for k, v := range s.counts {
		if other.counts[k] < v {
			return false
		}
	}

	return true
}
