package rfa

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathquery/automaton"
	"github.com/katalvlaran/pathquery/internal/cnftext"
	"github.com/katalvlaran/pathquery/internal/regexfa"
	"github.com/katalvlaran/pathquery/labelgraph"
)

// RFA is a recursive automaton: one automaton component per nonterminal,
// packed into a single labelled graph, with a map recovering which
// nonterminal owns a given (begin,end) state pair.
type RFA struct {
	DFA          *automaton.FA
	Nonterminals map[string]struct{}
	EndsToNT     map[[2]uint64]string
	WithEpsilon  map[string]struct{}
	Start        string
}

// FromText parses recursive-automaton grammar text: one line per
// nonterminal, "HEAD regex". A HEAD with an empty regex body matches
// only ε and is recorded in WithEpsilon rather than contributing any
// edges. The reserved start nonterminal is always "S".
func FromText(text string) (*RFA, error) {
	lines := cnftext.ReadHeadRest(text)

	size := uint64(0)
	var edges []labelgraph.Edge
	initials := make(map[uint64]struct{})
	finals := make(map[uint64]struct{})
	withEpsilon := make(map[string]struct{})
	nonterminals := make(map[string]struct{})
	endsToNT := make(map[[2]uint64]string)

	for _, p := range lines {
		localInit, localFinals, localEdges, err := regexfa.Compile(p.Rest)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParseRFA, p.Line, err)
		}

		maxState := localInit
		for _, e := range localEdges {
			if e.From > maxState {
				maxState = e.From
			}
			if e.To > maxState {
				maxState = e.To
			}
		}
		for _, f := range localFinals {
			if f > maxState {
				maxState = f
			}
		}

		offset := size
		initials[offset+localInit] = struct{}{}
		for _, f := range localFinals {
			finals[offset+f] = struct{}{}
			endsToNT[[2]uint64{offset + localInit, offset + f}] = p.Head
		}

		if len(localEdges) == 0 {
			withEpsilon[p.Head] = struct{}{}
		} else {
			for _, e := range localEdges {
				edges = append(edges, labelgraph.Edge{From: offset + e.From, To: offset + e.To, Label: e.Label})
			}
		}

		nonterminals[p.Head] = struct{}{}
		size += maxState + 1
	}

	return &RFA{
		DFA: &automaton.FA{
			Graph:    labelgraph.FromEdges(size, edges),
			Initials: initials,
			Finals:   finals,
		},
		Nonterminals: nonterminals,
		EndsToNT:     endsToNT,
		WithEpsilon:  withEpsilon,
		Start:        "S",
	}, nil
}

// ReadFile opens path and delegates to FromText.
func ReadFile(path string) (*RFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rfa: %w", err)
	}
	return FromText(string(data))
}
