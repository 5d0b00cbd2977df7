// Package pathquery answers graph reachability queries constrained by
// formal languages over edge labels: given a labelled directed
// multigraph and a query language (a regex / finite automaton for
// regular path queries, or a CNF grammar / recursive automaton for
// context-free path queries), it computes the set of vertex pairs linked
// by a path whose labels spell a word in that language.
//
// The engine is layered bottom-up:
//
//	boolmatrix/  — sparse Boolean matrix algebra (build/apply/mxm/kronecker)
//	labelgraph/  — a graph as one boolmatrix per edge label
//	automaton/   — finite automata, built from a regex or from edges directly
//	cfg/         — Chomsky-normal-form context-free grammars, with CYK
//	rfa/         — recursive automata (one component per nonterminal)
//	rpq/         — regular path query evaluation
//	cfpq/        — context-free path query evaluation (three algorithms)
//	ll/          — LL(1) table construction and AST building
//	dotgraph/    — Graphviz DOT rendering of graphs and ASTs
//	bench/       — the `measure` benchmarking harness
//
// cmd/pathquery wires these into the script front-end: stats, measure,
// check, dot, ll-table, and ll.
package pathquery
