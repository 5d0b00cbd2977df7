package automaton

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/pathquery/internal/regexfa"
	"github.com/katalvlaran/pathquery/labelgraph"
)

// FA is a finite automaton: a labelled graph of states plus initial and
// final state sets.
type FA struct {
	Graph    *labelgraph.Graph
	Initials map[uint64]struct{}
	Finals   map[uint64]struct{}
}

// FromEdges builds an FA directly from a state count and edge list, with
// explicit initial/final state sets.
func FromEdges(size uint64, edges []labelgraph.Edge, initials, finals []uint64) *FA {
	fa := &FA{
		Graph:    labelgraph.FromEdges(size, edges),
		Initials: toSet(initials),
		Finals:   toSet(finals),
	}
	return fa
}

func toSet(ids []uint64) map[uint64]struct{} {
	s := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// FromRegex builds an FA accepting exactly the words of the regular
// language denoted by pattern, where every rune of pattern is a terminal
// label. The regex-to-DFA compilation itself is delegated to regexfa.
func FromRegex(pattern string) (*FA, error) {
	initial, finals, edges, err := regexfa.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("automaton: %w", err)
	}

	maxState := initial
	lgEdges := make([]labelgraph.Edge, len(edges))
	for i, e := range edges {
		lgEdges[i] = labelgraph.Edge{From: e.From, To: e.To, Label: e.Label}
		if e.From > maxState {
			maxState = e.From
		}
		if e.To > maxState {
			maxState = e.To
		}
	}
	for _, f := range finals {
		if f > maxState {
			maxState = f
		}
	}

	return FromEdges(maxState+1, lgEdges, []uint64{initial}, finals), nil
}

// ReadRegexFile reads a single-line regex pattern from path and compiles it
// via FromRegex (the REGEX-PATH argument of the `stats` script command).
func ReadRegexFile(path string) (*FA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("automaton: %w", err)
	}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return FromRegex(line)
	}
	return nil, fmt.Errorf("%w: %s: no pattern line", ErrParseAutomaton, path)
}

// Intersection computes a.Graph ⊗ b.Graph (per-label Kronecker) with
// combined state sets: initials = {i*|b|+j}, finals likewise.
func Intersection(a, b *FA) *FA {
	return &FA{
		Graph:    a.Graph.Kronecker(b.Graph),
		Initials: combineStates(a.Initials, b.Initials, b.Graph.Size),
		Finals:   combineStates(a.Finals, b.Finals, b.Graph.Size),
	}
}

func combineStates(a, b map[uint64]struct{}, bSize uint64) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(a)*len(b))
	for i := range a {
		for j := range b {
			out[i*bSize+j] = struct{}{}
		}
	}
	return out
}

// Accepts reports whether word, a sequence of terminal labels, can be
// walked from some initial state to some final state one label at a time.
func (fa *FA) Accepts(word []string) bool {
	current := make(map[uint64]struct{}, len(fa.Initials))
	for s := range fa.Initials {
		current[s] = struct{}{}
	}

	for _, label := range word {
		m, ok := fa.Graph.Matrices[label]
		if !ok {
			return false
		}
		next := make(map[uint64]struct{})
		for s := range current {
			for col := uint64(0); col < fa.Graph.Size; col++ {
				if _, ok := m.Get(s, col); ok {
					next[col] = struct{}{}
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}

	for s := range current {
		if _, ok := fa.Finals[s]; ok {
			return true
		}
	}
	return false
}
