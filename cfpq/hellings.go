package cfpq

import (
	"github.com/katalvlaran/pathquery/cfg"
	"github.com/katalvlaran/pathquery/labelgraph"
)

type hellingsItem struct {
	pair labelgraph.Ends
	nt   string
}

// Hellings runs the set-worklist CFPQ algorithm.
func Hellings(g *labelgraph.Graph, grammar *cfg.CFG) Result {
	r := make(map[string]map[labelgraph.Ends]struct{})
	var worklist []hellingsItem

	add := func(pair labelgraph.Ends, nt string) {
		set, ok := r[nt]
		if !ok {
			set = make(map[labelgraph.Ends]struct{})
			r[nt] = set
		}
		if _, dup := set[pair]; dup {
			return
		}
		set[pair] = struct{}{}
		worklist = append(worklist, hellingsItem{pair: pair, nt: nt})
	}

	if grammar.ProducesEpsilon {
		for v := uint64(0); v < g.Size; v++ {
			add(labelgraph.Ends{From: v, To: v}, grammar.Start)
		}
	}

	for label, m := range g.Matrices {
		heads, ok := grammar.Unit[label]
		if !ok {
			continue
		}
		for _, pair := range labelgraph.ExtractPairs(m) {
			for head := range heads {
				add(pair, head)
			}
		}
	}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]
		v, u, ni := item.pair.From, item.pair.To, item.nt

		var candidates []hellingsItem
		for nj, set := range r {
			for existing := range set {
				vPrime, uPrime := existing.From, existing.To
				if uPrime == v {
					if heads, ok := grammar.Pair[nj][ni]; ok {
						for nk := range heads {
							candidates = append(candidates, hellingsItem{pair: labelgraph.Ends{From: vPrime, To: u}, nt: nk})
						}
					}
				}
				if vPrime == u {
					if heads, ok := grammar.Pair[ni][nj]; ok {
						for nk := range heads {
							candidates = append(candidates, hellingsItem{pair: labelgraph.Ends{From: v, To: uPrime}, nt: nk})
						}
					}
				}
			}
		}

		for _, c := range candidates {
			add(c.pair, c.nt)
		}
	}

	return &setResult{sets: r, nonterminals: grammar.Nonterminals}
}
