// Package rfa implements the recursive automaton layer: one DFA
// component per nonterminal, built by compiling that nonterminal's regex
// body via internal/regexfa, all packed into one shared automaton.FA whose
// (begin,end) state pairs map back to the nonterminal that owns them.
package rfa

import "errors"

// ErrParseRFA indicates malformed recursive-automaton grammar text: a
// line that failed to compile as "HEAD regex".
var ErrParseRFA = errors.New("rfa: malformed recursive-automaton grammar line")
