// Package selection implements the nine variable-selection heuristics
// the solver uses to pick which A-element to branch on next, given the
// current conflict set (the A-tuples the present matching fails to
// satisfy).
//
// An eligible candidate is an argument of some conflict tuple whose
// universe-graph degree is still greater than one (i.e. not yet
// decided). Selection never decides on the solver's behalf — it only
// reports which element to branch on, or that the conflict set contains
// an immediate dead end.
package selection
