// Package solver drives the top-level DPLL-style search: starting from
// an Embedding already reduced to a fixed point, it alternates matching,
// conflict detection, variable selection and decision, backtracking with
// blame whenever a branch dies.
//
// The search is single-threaded and synchronous; see the package-level
// concurrency notes next to Solve for the one exception (Embedding
// construction, which happens before Solve's loop ever starts).
package solver
