// Package ll implements the LL(1) predictive-parsing engine: Symbol
// encoding (a tagged terminal/nonterminal integer), FIRST/FOLLOW
// monotone fixpoints, parse table construction with ambiguity detection,
// and a stack-driven AST builder.
//
// What & Why:
//
//	Productions and nonterminal indices form cycles (A can reference B
//	which references A), so everything here is addressed by flat integer
//	index, never by owning pointer: Cfg's production list is a flat slice,
//	Symbol wraps a single uint64, and Table.Productions/ParseTable are
//	indexed by production code and nonterminal code respectively.
package ll

import "errors"

// ErrGrammarAmbiguous indicates that building a parse table hit a cell
// that two different productions both want to claim: the input grammar
// is not LL(1).
var ErrGrammarAmbiguous = errors.New("ll: grammar is not LL(1): ambiguous table cell")

// ErrNoRule indicates the parser found no table entry for the current
// (nonterminal, lookahead) pair while building an AST.
var ErrNoRule = errors.New("ll: no production for this (nonterminal, token) pair")

// ErrUnexpectedToken indicates a terminal on the parse stack did not match
// the next input token.
var ErrUnexpectedToken = errors.New("ll: unexpected token")

// ErrTrailingInput indicates the parse completed its start symbol but the
// token stream did not end there.
var ErrTrailingInput = errors.New("ll: input continues past the end of the parse")
