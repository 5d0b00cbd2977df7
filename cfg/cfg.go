package cfg

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathquery/internal/cnftext"
)

// CFG is a context-free grammar already in Chomsky Normal Form.
type CFG struct {
	Start           string
	Nonterminals    map[string]struct{}
	ProducesEpsilon bool
	Unit            map[string]map[string]struct{}            // terminal -> heads
	Pair            map[string]map[string]map[string]struct{} // left -> right -> heads
}

// FromText parses CNF grammar text: one production per line, "HEAD body…".
// A one-symbol body is a unit production, a two-symbol body is
// a binary production, an empty body is the ε production and is only
// legal on the grammar's start nonterminal (the head of the first line).
func FromText(text string) (*CFG, error) {
	lines := cnftext.Read(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty grammar", ErrParseGrammar)
	}

	g := &CFG{
		Start:        lines[0].Head,
		Nonterminals: make(map[string]struct{}),
		Unit:         make(map[string]map[string]struct{}),
		Pair:         make(map[string]map[string]map[string]struct{}),
	}

	for _, p := range lines {
		g.Nonterminals[p.Head] = struct{}{}
		switch len(p.Body) {
		case 0:
			if p.Head != g.Start {
				return nil, fmt.Errorf("%w: line %d: ε production on non-start nonterminal %q", ErrParseGrammar, p.Line, p.Head)
			}
			g.ProducesEpsilon = true
		case 1:
			heads, ok := g.Unit[p.Body[0]]
			if !ok {
				heads = make(map[string]struct{})
				g.Unit[p.Body[0]] = heads
			}
			heads[p.Head] = struct{}{}
		case 2:
			rights, ok := g.Pair[p.Body[0]]
			if !ok {
				rights = make(map[string]map[string]struct{})
				g.Pair[p.Body[0]] = rights
			}
			heads, ok := rights[p.Body[1]]
			if !ok {
				heads = make(map[string]struct{})
				rights[p.Body[1]] = heads
			}
			heads[p.Head] = struct{}{}
		default:
			return nil, fmt.Errorf("%w: line %d", ErrParseGrammar, p.Line)
		}
	}

	return g, nil
}

// ReadFile opens path and delegates to FromText.
func ReadFile(path string) (*CFG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cfg: %w", err)
	}
	return FromText(string(data))
}

// Cyk reports whether word (a sequence of terminal tokens) is generated by
// g, via the classic dynamic-programming CYK recognizer.
func (g *CFG) Cyk(word []string) bool {
	n := len(word)
	if n == 0 {
		return g.ProducesEpsilon
	}

	table := make([][]map[string]struct{}, n)
	for i := range table {
		table[i] = make([]map[string]struct{}, n)
		for j := range table[i] {
			table[i][j] = make(map[string]struct{})
		}
	}

	for i, tok := range word {
		for head := range g.Unit[tok] {
			table[i][i][head] = struct{}{}
		}
	}

	for length := 1; length < n; length++ {
		for start := 0; start+length < n; start++ {
			end := start + length
			cell := table[start][end]
			for split := start; split < end; split++ {
				for left := range table[start][split] {
					rights, ok := g.Pair[left]
					if !ok {
						continue
					}
					for right := range table[split+1][end] {
						for head := range rights[right] {
							cell[head] = struct{}{}
						}
					}
				}
			}
		}
	}

	_, ok := table[0][n-1][g.Start]
	return ok
}
