// Package llgrammar loads a general (non-CNF) grammar in the "HEAD
// body..." text format used elsewhere for CNF grammars, relaxed to
// allow bodies of any length, and interns symbol names into the integer
// codes ll.Cfg needs, once at grammar load.
package llgrammar

import (
	"fmt"

	"github.com/katalvlaran/pathquery/internal/cnftext"
	"github.com/katalvlaran/pathquery/ll"
)

// FromText parses text into an ll.Cfg plus the nonterminal/terminal name
// tables used to invert codes back to names for diagnostics. A symbol is a
// nonterminal iff it appears as some line's head; every other symbol is a
// terminal. The start nonterminal (code 0) is the head of the first line,
// matching the CNF grammar format's rule.
func FromText(text string) (*ll.Cfg, []string, []string, error) {
	productions := cnftext.Read(text)
	if len(productions) == 0 {
		return nil, nil, nil, fmt.Errorf("llgrammar: empty grammar")
	}

	ntCodes := map[string]uint64{}
	ntNames := []string{productions[0].Head}
	ntCodes[productions[0].Head] = 0
	for _, p := range productions {
		if _, ok := ntCodes[p.Head]; !ok {
			ntCodes[p.Head] = uint64(len(ntNames))
			ntNames = append(ntNames, p.Head)
		}
	}

	tCodes := map[string]uint64{}
	var tNames []string
	internTerminal := func(name string) uint64 {
		if code, ok := tCodes[name]; ok {
			return code
		}
		code := uint64(len(tNames))
		tCodes[name] = code
		tNames = append(tNames, name)
		return code
	}

	g := ll.NewCfg(uint64(len(ntNames)))
	for _, p := range productions {
		head := ntCodes[p.Head]
		if len(p.Body) == 0 {
			g.EpsilonProducers[head] = struct{}{}
			continue
		}
		body := make(ll.Production, 0, len(p.Body))
		for _, sym := range p.Body {
			if code, ok := ntCodes[sym]; ok {
				body = append(body, ll.Nonterminal(code))
			} else {
				body = append(body, ll.Terminal(internTerminal(sym)))
			}
		}
		g.AddProduction(head, body)
	}

	return g, ntNames, tNames, nil
}
