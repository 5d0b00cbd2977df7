// Package cfpq implements three context-free path query algorithms —
// Hellings, matrix-product and tensor-product — each returning the set
// of (u,v) pairs reachable per nonterminal, behind one shared Result
// contract so a caller can swap algorithms without caring which one
// produced a given answer.
package cfpq

import "github.com/katalvlaran/pathquery/labelgraph"

// Result is the common contract of every CFPQ algorithm in this package:
// the set of vertex pairs reachable under a given nonterminal.
type Result interface {
	ReachableEdges(nonterminal string) []labelgraph.Ends
	Nonterminals() map[string]struct{}
}
