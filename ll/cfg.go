package ll

import "fmt"

// Production is a right-hand side: a flat sequence of tagged Symbols.
type Production []Symbol

// namedProduction pairs a production with the index of the nonterminal
// that heads it.
type namedProduction struct {
	NT   uint64
	Body Production
}

// Cfg is the grammar input to Build: a flat, index-addressed production
// list plus the set of nonterminals that directly produce ε.
type Cfg struct {
	EpsilonProducers  map[uint64]struct{}
	NonterminalsCount uint64
	productions       []namedProduction
}

// NewCfg returns an empty Cfg of the given nonterminal count. Nonterminal
// 0 is always the start symbol.
func NewCfg(nonterminalsCount uint64) *Cfg {
	return &Cfg{
		EpsilonProducers:  make(map[uint64]struct{}),
		NonterminalsCount: nonterminalsCount,
	}
}

// AddProduction registers one production nonterminal -> body.
func (g *Cfg) AddProduction(nonterminal uint64, body Production) {
	g.productions = append(g.productions, namedProduction{NT: nonterminal, Body: body})
}

type firstSet struct {
	epsilon bool
	others  map[uint64]struct{}
}

// firstOfSeq computes FIRST(seq) into (epsilon, others), given the
// already-known FIRST sets of every nonterminal.
func firstOfSeq(firsts []firstSet, seq Production, epsilon *bool, others map[uint64]struct{}) {
	if len(seq) == 0 {
		*epsilon = true
		return
	}
	head := seq[0]
	if head.IsTerminal() {
		others[head.Code()] = struct{}{}
		return
	}
	a := firsts[head.Code()]
	for t := range a.others {
		others[t] = struct{}{}
	}
	if a.epsilon {
		firstOfSeq(firsts, seq[1:], epsilon, others)
	}
}

// firsts computes FIRST(A) for every nonterminal A by monotone fixpoint
// iteration.
func (g *Cfg) firsts() []firstSet {
	firsts := make([]firstSet, g.NonterminalsCount)
	for i := range firsts {
		firsts[i].others = make(map[uint64]struct{})
	}
	for nt := range g.EpsilonProducers {
		firsts[nt].epsilon = true
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			before := firsts[p.NT]
			epsilon := before.epsilon
			sizeBefore := len(before.others)
			firstOfSeq(firsts, p.Body, &epsilon, before.others)
			if epsilon != before.epsilon || len(before.others) != sizeBefore {
				firsts[p.NT].epsilon = epsilon
				changed = true
			}
		}
	}
	return firsts
}

// follows computes FOLLOW(A) for every nonterminal A by monotone fixpoint
// iteration, seeded with END in FOLLOW(start).
func (g *Cfg) follows(firsts []firstSet) []map[uint64]struct{} {
	follows := make([]map[uint64]struct{}, g.NonterminalsCount)
	for i := range follows {
		follows[i] = make(map[uint64]struct{})
	}
	follows[0][EndSymbolCode] = struct{}{}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			a := p.NT
			for i, sym := range p.Body {
				if sym.IsTerminal() {
					continue
				}
				x := sym.Code()
				before := len(follows[x])

				epsilon := false
				tail := make(map[uint64]struct{})
				firstOfSeq(firsts, p.Body[i+1:], &epsilon, tail)
				for t := range tail {
					follows[x][t] = struct{}{}
				}
				if epsilon {
					for t := range follows[a] {
						follows[x][t] = struct{}{}
					}
				}
				if len(follows[x]) != before {
					changed = true
				}
			}
		}
	}
	return follows
}

// Build constructs the LL(1) parse Table for g, failing with
// ErrGrammarAmbiguous if any (nonterminal, terminal) cell would need two
// different productions.
func Build(g *Cfg) (*Table, error) {
	firsts := g.firsts()
	follows := g.follows(firsts)

	table := make([]map[uint64]uint64, g.NonterminalsCount)
	for i := range table {
		table[i] = make(map[uint64]uint64)
	}

	for nt := range g.EpsilonProducers {
		line := table[nt]
		for terminal := range follows[nt] {
			if _, dup := line[terminal]; dup {
				return nil, fmt.Errorf("%w: nonterminal %d, terminal %d (epsilon)", ErrGrammarAmbiguous, nt, terminal)
			}
			line[terminal] = EpsilonRuleCode
		}
	}

	productions := make([]Production, len(g.productions))
	for code, p := range g.productions {
		productions[code] = p.Body
		line := table[p.NT]

		epsilon := false
		first := make(map[uint64]struct{})
		firstOfSeq(firsts, p.Body, &epsilon, first)

		for terminal := range first {
			if _, dup := line[terminal]; dup {
				return nil, fmt.Errorf("%w: nonterminal %d, terminal %d", ErrGrammarAmbiguous, p.NT, terminal)
			}
			line[terminal] = uint64(code)
		}

		if epsilon {
			for terminal := range follows[p.NT] {
				if _, dup := line[terminal]; dup {
					return nil, fmt.Errorf("%w: nonterminal %d, terminal %d (epsilon tail)", ErrGrammarAmbiguous, p.NT, terminal)
				}
				line[terminal] = uint64(code)
			}
		}
	}

	return &Table{Productions: productions, ParseTable: table}, nil
}
