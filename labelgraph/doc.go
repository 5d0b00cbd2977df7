// Package labelgraph implements the labelled directed multigraph: a map
// from edge label to a square Boolean matrix, plus the vertex count
// shared by every one of those matrices.
//
// What & Why:
//
//	Every label gets its own boolmatrix.Matrix[bool] of shape size×size;
//	a (from,label,to) edge is simply `matrices[label].Insert(from, to,
//	true)`. This keeps per-label adjacency queries and per-label Kronecker
//	products (automaton.Intersection, rfa tensor step) O(nvals) rather than
//	O(size²) per label, the way a single dense size×size×|labels| cube
//	would force.
//
// Complexity:
//
//	ReadFrom/FromText are O(lines). Kronecker is O(sum over shared labels
//	of nvals(a)*nvals(b) for that label). AdjacencyMatrix is O(sum of
//	nvals across labels). TransitiveClosureSquaring and
//	TransitiveClosureAdjacency are each O(iterations * nvals-per-iteration)
//	until nvals stabilises.
package labelgraph

import "errors"

// Sentinel errors for labelgraph operations.
var (
	// ErrParseGraph indicates a line of graph text did not split into
	// exactly three whitespace-separated tokens, or its from/to token is not
	// a non-negative decimal integer.
	ErrParseGraph = errors.New("labelgraph: malformed edge line, expected \"from label to\"")
)
