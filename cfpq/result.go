package cfpq

import (
	"github.com/katalvlaran/pathquery/boolmatrix"
	"github.com/katalvlaran/pathquery/labelgraph"
)

// setResult backs Hellings: per-nonterminal sets of witnessed pairs.
type setResult struct {
	sets         map[string]map[labelgraph.Ends]struct{}
	nonterminals map[string]struct{}
}

func (r *setResult) ReachableEdges(nonterminal string) []labelgraph.Ends {
	set, ok := r.sets[nonterminal]
	if !ok {
		return nil
	}
	out := make([]labelgraph.Ends, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}

func (r *setResult) Nonterminals() map[string]struct{} { return r.nonterminals }

// matrixResult backs matrix-product and tensor-product: per-nonterminal
// Boolean reachability matrices.
type matrixResult struct {
	matrices     map[string]*boolmatrix.Matrix[bool]
	nonterminals map[string]struct{}
}

func (r *matrixResult) ReachableEdges(nonterminal string) []labelgraph.Ends {
	if _, ok := r.nonterminals[nonterminal]; !ok {
		return nil
	}
	m, ok := r.matrices[nonterminal]
	if !ok {
		return nil
	}
	return labelgraph.ExtractPairs(m)
}

func (r *matrixResult) Nonterminals() map[string]struct{} { return r.nonterminals }
