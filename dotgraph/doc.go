// Package dotgraph renders an ll.Node AST or a labelgraph.Graph as
// Graphviz DOT text, for the `dot` and `ll` script commands.
package dotgraph
