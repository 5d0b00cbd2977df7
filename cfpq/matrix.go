package cfpq

import (
	"github.com/katalvlaran/pathquery/boolmatrix"
	"github.com/katalvlaran/pathquery/cfg"
	"github.com/katalvlaran/pathquery/labelgraph"
)

// MatrixProduct runs the fixpoint CFPQ algorithm over per-nonterminal
// reachability matrices.
func MatrixProduct(g *labelgraph.Graph, grammar *cfg.CFG) Result {
	matrices := make(map[string]*boolmatrix.Matrix[bool])
	get := func(nt string) *boolmatrix.Matrix[bool] {
		m, ok := matrices[nt]
		if !ok {
			m = boolmatrix.New[bool](g.Size, g.Size)
			matrices[nt] = m
		}
		return m
	}

	for body, heads := range grammar.Unit {
		bodyMatrix, ok := g.Matrices[body]
		if !ok {
			continue
		}
		for head := range heads {
			boolmatrix.Apply(get(head), &boolmatrix.Lor, boolmatrix.BoolIdentity, bodyMatrix, nil)
		}
	}

	if grammar.ProducesEpsilon {
		start := get(grammar.Start)
		for i := uint64(0); i < g.Size; i++ {
			start.Insert(i, i, true)
		}
	}

	production := boolmatrix.New[bool](g.Size, g.Size)
	changing := true
	for changing {
		changing = false
		for left, rights := range grammar.Pair {
			leftMatrix, ok := matrices[left]
			if !ok {
				continue
			}
			for right, heads := range rights {
				rightMatrix, ok := matrices[right]
				if !ok {
					continue
				}
				production.Clear()
				boolmatrix.Mxm(production, &boolmatrix.Lor, boolmatrix.LorLand, leftMatrix, rightMatrix)
				for head := range heads {
					dst := get(head)
					before := dst.NVals()
					boolmatrix.Apply(dst, &boolmatrix.Lor, boolmatrix.BoolIdentity, production, nil)
					if dst.NVals() != before {
						changing = true
					}
				}
			}
		}
	}

	return &matrixResult{matrices: matrices, nonterminals: grammar.Nonterminals}
}
