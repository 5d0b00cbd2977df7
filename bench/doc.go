// Package bench implements the `measure` benchmarking harness: for every
// (graph, query) pair under a directory tree, it times the Kronecker
// intersection and the two transitive-closure strategies labelgraph
// exposes (squaring and adjacency-matrix), writing one CSV row per run.
package bench
