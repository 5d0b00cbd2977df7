package rpq

import (
	"github.com/katalvlaran/pathquery/automaton"
	"github.com/katalvlaran/pathquery/labelgraph"
)

// Evaluate computes rpq(G, Q) = {(u,v) | ∃ w ∈ L(Q), u →_G^w v} by
// Kronecker-intersecting G with Q's graph, closing the intersection, and
// projecting surviving (initial,final)-tagged pairs back onto G's vertex
// space. The closure is not reflexive, so only paths of at least one edge
// count: ε ∈ L(Q) does not by itself put (u,u) in the result.
func Evaluate(g *labelgraph.Graph, q *automaton.FA) []labelgraph.Ends {
	m := q.Graph.Size
	k := g.Kronecker(q.Graph)

	closure := k.AdjacencyMatrix()
	labelgraph.TransitiveClosureSquaring(closure)

	seen := make(map[labelgraph.Ends]struct{})
	var out []labelgraph.Ends
	for _, pair := range labelgraph.ExtractPairs(closure) {
		qFrom := pair.From % m
		qTo := pair.To % m
		if _, ok := q.Initials[qFrom]; !ok {
			continue
		}
		if _, ok := q.Finals[qTo]; !ok {
			continue
		}
		ends := labelgraph.Ends{From: pair.From / m, To: pair.To / m}
		if _, dup := seen[ends]; dup {
			continue
		}
		seen[ends] = struct{}{}
		out = append(out, ends)
	}
	return out
}
