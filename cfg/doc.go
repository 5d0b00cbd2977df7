// Package cfg implements the CNF context-free grammar layer (L2c): a start
// nonterminal, an ε-producer flag, a unit-production index (terminal →
// heads) and a binary-production index (left nonterminal → right
// nonterminal → heads), plus the CYK recognizer.
//
// What & Why:
//
//	A production's arity alone decides its kind, the defining property of
//	Chomsky Normal Form: a one-symbol body is a unit production (head ←
//	terminal), a two-symbol body is a binary production (head ← A B).
package cfg

import "errors"

// ErrParseGrammar indicates malformed CNF grammar text: no production at
// all, a production body of more than two symbols, or an empty (ε) body
// on a nonterminal other than the start.
var ErrParseGrammar = errors.New("cfg: malformed CNF grammar")
