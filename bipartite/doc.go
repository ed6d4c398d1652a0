// Package bipartite implements an undirected bipartite graph with
// edge-removal undo support and a maximum-cardinality matching routine.
//
// It is the one performance-critical data structure in the embedding
// core (see the "universe graph" and "predicate graph" of package
// embedding, both of which are *bipartite.Graph values). Edges are only
// ever removed after construction — except for embedding.AddBack, which
// strictly reinserts edges a prior removal took out — so adjacency rows
// use swap-and-pop removal: O(1) per edge, order within a row is not
// observable outside a single scan.
package bipartite
