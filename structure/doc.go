// Package structure defines the read-only view of a finite relational
// structure consumed by the embedding core: a dense 0..n-1 universe and,
// for each predicate symbol, the set of tuples of universe indices that
// hold under that predicate.
//
// Structures are built once by a collaborator (the parse package, or any
// other producer) and never mutated afterwards. Element and predicate
// symbols never appear here as strings; normalization to dense integers
// is the caller's job (see package intern).
package structure
