package cfpq

import (
	"github.com/katalvlaran/pathquery/boolmatrix"
	"github.com/katalvlaran/pathquery/labelgraph"
	"github.com/katalvlaran/pathquery/rfa"
)

// TensorProduct runs the fixpoint CFPQ algorithm via repeated Kronecker
// products against a recursive automaton. It mutates a working copy of
// g, growing one reachability matrix per nonterminal until a full
// intersection-and-project pass adds nothing new.
func TensorProduct(g *labelgraph.Graph, r *rfa.RFA) Result {
	work := g.Clone()

	matrixFor := func(nt string) *boolmatrix.Matrix[bool] {
		m, ok := work.Matrices[nt]
		if !ok {
			m = boolmatrix.New[bool](work.Size, work.Size)
			work.Matrices[nt] = m
		}
		return m
	}

	for nt := range r.WithEpsilon {
		m := matrixFor(nt)
		for i := uint64(0); i < g.Size; i++ {
			m.Insert(i, i, true)
		}
	}

	changing := true
	for changing {
		changing = false
		intersection := r.DFA.Graph.Kronecker(work)
		for _, pair := range intersection.ReachablePairs() {
			rfaFrom, rfaTo := pair.From/work.Size, pair.To/work.Size
			if _, ok := r.DFA.Initials[rfaFrom]; !ok {
				continue
			}
			if _, ok := r.DFA.Finals[rfaTo]; !ok {
				continue
			}
			nt, ok := r.EndsToNT[[2]uint64{rfaFrom, rfaTo}]
			if !ok {
				continue
			}
			from, to := pair.From%work.Size, pair.To%work.Size
			m := matrixFor(nt)
			if _, already := m.Get(from, to); !already {
				m.Insert(from, to, true)
				changing = true
			}
		}
	}

	return &matrixResult{matrices: work.Matrices, nonterminals: r.Nonterminals}
}
