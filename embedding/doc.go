// Package embedding owns the two bipartite constraint graphs at the
// heart of the solver — the universe graph U (candidate element-to-
// element mappings) and the predicate graph P (candidate tuple-to-tuple
// mappings) — and the arc-consistency filter that keeps them mutually
// supported.
//
// An Embedding is built once from a pair of structure.Structure values
// (New) and thereafter only has edges removed and, on backtrack,
// restored (Decide / AddBack); no new edges are ever introduced except
// as the exact inverses of a prior removal.
package embedding
