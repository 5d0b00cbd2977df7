// Package scriptgrammar is the small built-in grammar the `check` and
// `dot` script commands validate against: the LL(1) engine and the CYK
// checker serve as two independent syntax validators. This package
// supplies a minimal, genuinely exercised grammar, with every other byte
// folded to a handful of classes before feeding the CYK checker.
//
// Check and BuildAST deliberately validate two different languages, not
// the same one via two engines: cfg's CNF/CYK recognizer has no notion of
// a nullable symbol occurring mid-derivation (every span it tracks is a
// non-empty token range), so its grammar here folds all bracket kinds to
// one generic open/close pair and requires every bracketed group to have
// non-empty content. ll's LL(1) engine handles nullable nonterminals via
// FIRST/FOLLOW natively, so its grammar keeps the full three-bracket-kind,
// empty-group-permitting language — a cheap char-grammar sanity check
// paired with a separate, more precise parser for the real AST.
package scriptgrammar

import (
	"github.com/katalvlaran/pathquery/cfg"
	"github.com/katalvlaran/pathquery/ll"
)

const (
	lparen = "("
	rparen = ")"
	lbrack = "["
	rbrack = "]"
	lbrace = "{"
	rbrace = "}"
	atom   = "x"
)

// tokens maps raw script bytes to the LL grammar's seven-symbol alphabet.
func tokens(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		switch r {
		case '(', ')', '[', ']', '{', '}':
			out = append(out, string(r))
		default:
			out = append(out, atom)
		}
	}
	return out
}

// cnfTokens folds every bracket kind to a single generic open/close pair
// for the CNF/CYK checker.
func cnfTokens(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		switch r {
		case '(', '[', '{':
			out = append(out, "o")
		case ')', ']', '}':
			out = append(out, "c")
		default:
			out = append(out, "x")
		}
	}
	return out
}

// cnfText is a list grammar in the CNF shape cfg.FromText accepts: the
// start symbol's ε line admits the empty script as a whole, and otherwise
// the script is one or more items, an item being either a bare atom or a
// bracketed group with non-empty content, `o S c`. Every terminal gets its
// own unit-producing proxy nonterminal (X, O, C), and the group body (with
// its optional trailing items) is binarised through helper nonterminals
// M1 and M2 (so no rule ever needs to represent "S derived nothing here",
// which this recognizer cannot express).
const cnfText = `S
S x
X x
S X S
O o
C c
S O M1
M1 S M2
M2 c
M2 C S`

// Check reports whether text is a nonempty-bracket-content, single-kind
// balanced list, via cfg.CFG.Cyk against cnfText (the CYK-checker half of
// the pair of syntax validators).
func Check(text string) (bool, error) {
	g, err := cfg.FromText(cnfText)
	if err != nil {
		return false, err
	}
	return g.Cyk(cnfTokens(text)), nil
}

const (
	ntS uint64 = 0

	tLParen uint64 = 0
	tRParen uint64 = 1
	tLBrack uint64 = 2
	tRBrack uint64 = 3
	tLBrace uint64 = 4
	tRBrace uint64 = 5
	tAtom   uint64 = 6
)

// llCfg builds the language's LL(1) grammar, a direct generalisation of
// the single-bracket Dyck grammar `S -> ( S ) S | ε` to three bracket
// kinds plus a bare-atom alternative — every alternative starts with a
// distinct terminal, so the table is conflict-free without any helper
// nonterminals, for the `dot` command's AST rendering (the LL(1) half of
// the pair of syntax validators).
func llCfg() *ll.Cfg {
	g := ll.NewCfg(1)
	g.EpsilonProducers[ntS] = struct{}{}
	g.AddProduction(ntS, ll.Production{ll.Terminal(tAtom), ll.Nonterminal(ntS)})
	g.AddProduction(ntS, ll.Production{ll.Terminal(tLParen), ll.Nonterminal(ntS), ll.Terminal(tRParen), ll.Nonterminal(ntS)})
	g.AddProduction(ntS, ll.Production{ll.Terminal(tLBrack), ll.Nonterminal(ntS), ll.Terminal(tRBrack), ll.Nonterminal(ntS)})
	g.AddProduction(ntS, ll.Production{ll.Terminal(tLBrace), ll.Nonterminal(ntS), ll.Terminal(tRBrace), ll.Nonterminal(ntS)})
	return g
}

// Table builds the LL(1) parse table for llCfg.
func Table() (*ll.Table, error) {
	return ll.Build(llCfg())
}

type tape struct {
	codes []uint64
	pos   int
}

func (t *tape) Peek() (uint64, error) {
	if t.pos >= len(t.codes) {
		return ll.EndSymbolCode, nil
	}
	return t.codes[t.pos], nil
}

func (t *tape) Pop() (struct{}, bool, error) {
	t.pos++
	return struct{}{}, false, nil
}

var terminalCode = map[string]uint64{
	lparen: tLParen, rparen: tRParen,
	lbrack: tLBrack, rbrack: tRBrack,
	lbrace: tLBrace, rbrace: tRBrace,
	atom: tAtom,
}

// Tokens adapts text into an ll.Tokens[struct{}] stream over llCfg's
// terminal alphabet.
func Tokens(text string) ll.Tokens[struct{}] {
	raw := tokens(text)
	codes := make([]uint64, len(raw))
	for i, s := range raw {
		codes[i] = terminalCode[s]
	}
	return &tape{codes: codes}
}

// BuildAST parses text against llCfg's table and returns its AST, for the
// `dot PATH` command.
func BuildAST(text string) (*ll.Node[struct{}], error) {
	table, err := Table()
	if err != nil {
		return nil, err
	}
	return ll.BuildAST[struct{}](table, Tokens(text))
}
