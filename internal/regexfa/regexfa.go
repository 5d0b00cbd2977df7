// Package regexfa is the external collaborator that turns a regular
// expression over single-character terminal labels into a DFA.
//
// No Go library in the retrieval pack builds automata from regular
// expressions (see DESIGN.md), so this package leans on the standard
// library's regexp/syntax parser for the regex AST and implements the
// classic Thompson-construction-then-subset-construction pipeline itself:
// every rune in the pattern becomes one terminal label (a one-character
// string), matching how the rest of this module treats edge labels.
package regexfa

import (
	"fmt"
	"sort"

	"regexp/syntax"
)

// Edge is a single (from, label, to) transition of the built automaton.
type Edge struct {
	From, To uint64
	Label    string
}

// Compile parses pattern and returns a DFA as (initial state, final states,
// edges), ready to be handed to automaton.FromEdges.
func Compile(pattern string) (initial uint64, finals []uint64, edges []Edge, err error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("regexfa: %w", err)
	}
	re = re.Simplify()

	b := newNFABuilder()
	start, accept := b.build(re)
	b.accept[accept] = struct{}{}

	dfaInit, dfaFinals, dfaEdges := subsetConstruct(b, start)
	return dfaInit, dfaFinals, dfaEdges, nil
}

// --- Thompson construction -------------------------------------------------

type nfaBuilder struct {
	next    uint64
	eps     map[uint64][]uint64
	trans   map[uint64]map[rune][]uint64
	accept  map[uint64]struct{}
}

func newNFABuilder() *nfaBuilder {
	return &nfaBuilder{
		eps:    make(map[uint64][]uint64),
		trans:  make(map[uint64]map[rune][]uint64),
		accept: make(map[uint64]struct{}),
	}
}

func (b *nfaBuilder) newState() uint64 {
	s := b.next
	b.next++
	return s
}

func (b *nfaBuilder) addEps(from, to uint64) {
	b.eps[from] = append(b.eps[from], to)
}

func (b *nfaBuilder) addRune(from uint64, r rune, to uint64) {
	m, ok := b.trans[from]
	if !ok {
		m = make(map[rune][]uint64)
		b.trans[from] = m
	}
	m[r] = append(m[r], to)
}

// build recursively compiles re into the NFA, returning (start, accept)
// states for the fragment, following the standard Thompson rules.
func (b *nfaBuilder) build(re *syntax.Regexp) (start, accept uint64) {
	switch re.Op {
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText, syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		s, a := b.newState(), b.newState()
		b.addEps(s, a)
		return s, a

	case syntax.OpLiteral:
		s := b.newState()
		cur := s
		for _, r := range re.Rune {
			n := b.newState()
			b.addRune(cur, r, n)
			cur = n
		}
		return s, cur

	case syntax.OpCharClass:
		s, a := b.newState(), b.newState()
		for i := 0; i+1 < len(re.Rune); i += 2 {
			lo, hi := re.Rune[i], re.Rune[i+1]
			for r := lo; r <= hi; r++ {
				b.addRune(s, r, a)
			}
		}
		return s, a

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		// Bounded to a reasonable printable ASCII range: query alphabets in
		// this module's domain are small label sets, never Unicode text.
		s, a := b.newState(), b.newState()
		for r := rune(0x20); r < 0x7f; r++ {
			b.addRune(s, r, a)
		}
		return s, a

	case syntax.OpCapture:
		return b.build(re.Sub[0])

	case syntax.OpConcat:
		if len(re.Sub) == 0 {
			s, a := b.newState(), b.newState()
			b.addEps(s, a)
			return s, a
		}
		start, acc := b.build(re.Sub[0])
		for _, sub := range re.Sub[1:] {
			ns, na := b.build(sub)
			b.addEps(acc, ns)
			acc = na
		}
		return start, acc

	case syntax.OpAlternate:
		s, a := b.newState(), b.newState()
		for _, sub := range re.Sub {
			ss, sa := b.build(sub)
			b.addEps(s, ss)
			b.addEps(sa, a)
		}
		return s, a

	case syntax.OpStar:
		s, a := b.newState(), b.newState()
		ss, sa := b.build(re.Sub[0])
		b.addEps(s, ss)
		b.addEps(s, a)
		b.addEps(sa, ss)
		b.addEps(sa, a)
		return s, a

	case syntax.OpPlus:
		ss, sa := b.build(re.Sub[0])
		a := b.newState()
		b.addEps(sa, ss)
		b.addEps(sa, a)
		return ss, a

	case syntax.OpQuest:
		s, a := b.newState(), b.newState()
		ss, sa := b.build(re.Sub[0])
		b.addEps(s, ss)
		b.addEps(s, a)
		b.addEps(sa, a)
		return s, a

	case syntax.OpRepeat:
		// Expand {min,max} as min mandatory copies followed by (max-min)
		// optional copies, or an unbounded Star tail when Max == -1.
		var start, acc uint64
		first := true
		for i := 0; i < re.Min; i++ {
			ss, sa := b.build(re.Sub[0])
			if first {
				start = ss
				first = false
			} else {
				b.addEps(acc, ss)
			}
			acc = sa
		}
		if re.Max == -1 {
			ss, sa := b.build(&syntax.Regexp{Op: syntax.OpStar, Sub: re.Sub})
			if first {
				return ss, sa
			}
			b.addEps(acc, ss)
			return start, sa
		}
		for i := re.Min; i < re.Max; i++ {
			ss, sa := b.build(&syntax.Regexp{Op: syntax.OpQuest, Sub: re.Sub})
			if first {
				start = ss
				first = false
			} else {
				b.addEps(acc, ss)
			}
			acc = sa
		}
		if first {
			s, a := b.newState(), b.newState()
			b.addEps(s, a)
			return s, a
		}
		return start, acc

	default:
		s, a := b.newState(), b.newState()
		b.addEps(s, a)
		return s, a
	}
}

// --- Subset construction ----------------------------------------------------

func epsilonClosure(b *nfaBuilder, states map[uint64]struct{}) map[uint64]struct{} {
	stack := make([]uint64, 0, len(states))
	for s := range states {
		stack = append(stack, s)
	}
	closure := map[uint64]struct{}{}
	for k := range states {
		closure[k] = struct{}{}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range b.eps[s] {
			if _, ok := closure[n]; !ok {
				closure[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}
	return closure
}

func setKey(s map[uint64]struct{}) string {
	ids := make([]uint64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return fmt.Sprint(ids)
}

func subsetConstruct(b *nfaBuilder, nfaStart uint64) (initial uint64, finals []uint64, edges []Edge) {
	startSet := epsilonClosure(b, map[uint64]struct{}{nfaStart: {}})
	startKey := setKey(startSet)

	dfaID := map[string]uint64{startKey: 0}
	var order []string
	order = append(order, startKey)
	sets := map[string]map[uint64]struct{}{startKey: startSet}

	var next uint64 = 1
	finalSet := map[uint64]struct{}{}
	if isAccepting(b, startSet) {
		finalSet[0] = struct{}{}
	}

	for i := 0; i < len(order); i++ {
		key := order[i]
		from := dfaID[key]
		set := sets[key]

		byRune := map[rune]map[uint64]struct{}{}
		for s := range set {
			for r, targets := range b.trans[s] {
				m, ok := byRune[r]
				if !ok {
					m = map[uint64]struct{}{}
					byRune[r] = m
				}
				for _, t := range targets {
					m[t] = struct{}{}
				}
			}
		}

		runes := make([]rune, 0, len(byRune))
		for r := range byRune {
			runes = append(runes, r)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

		for _, r := range runes {
			closure := epsilonClosure(b, byRune[r])
			ckey := setKey(closure)
			to, ok := dfaID[ckey]
			if !ok {
				to = next
				next++
				dfaID[ckey] = to
				sets[ckey] = closure
				order = append(order, ckey)
				if isAccepting(b, closure) {
					finalSet[to] = struct{}{}
				}
			}
			edges = append(edges, Edge{From: from, To: to, Label: string(r)})
		}
	}

	for f := range finalSet {
		finals = append(finals, f)
	}
	sort.Slice(finals, func(i, j int) bool { return finals[i] < finals[j] })
	return 0, finals, edges
}

func isAccepting(b *nfaBuilder, set map[uint64]struct{}) bool {
	for s := range set {
		if _, ok := b.accept[s]; ok {
			return true
		}
	}
	return false
}
