// Package automaton implements the finite automaton layer: a
// labelgraph.Graph of states plus an initial state set and a final state
// set. It is the right-hand operand of every regular path query.
//
// What & Why:
//
//	An automaton's transition relation is stored exactly like any other
//	labelgraph.Graph, so Intersection reuses labelgraph.Kronecker and the
//	RPQ layer's closure machinery verbatim instead of a bespoke product
//	construction.
package automaton

import "errors"

// ErrParseAutomaton indicates a regex file (ReadRegexFile) that holds no
// non-blank pattern line.
var ErrParseAutomaton = errors.New("automaton: malformed automaton text")
