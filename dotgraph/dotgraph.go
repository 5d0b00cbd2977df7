package dotgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathquery/labelgraph"
	"github.com/katalvlaran/pathquery/ll"
)

// RenderNode renders an ll.Node AST as a Graphviz DOT digraph: one node
// per tree node, labelled with the nonterminal/terminal it represents.
func RenderNode[T any](root *ll.Node[T]) string {
	var b strings.Builder
	b.WriteString("digraph AST {\n")
	next := 0
	renderNode(&b, root, &next)
	b.WriteString("}\n")
	return b.String()
}

func renderNode[T any](b *strings.Builder, n *ll.Node[T], next *int) int {
	id := *next
	*next++
	fmt.Fprintf(b, "  n%d [label=\"N%d\"];\n", id, n.Nonterminal)

	for _, c := range n.Children {
		switch c.Kind {
		case ll.ChildTerminal:
			childID := *next
			*next++
			fmt.Fprintf(b, "  n%d [label=\"t%d\", shape=box];\n", childID, c.Terminal)
			fmt.Fprintf(b, "  n%d -> n%d;\n", id, childID)
		case ll.ChildValue:
			childID := *next
			*next++
			fmt.Fprintf(b, "  n%d [label=\"t%d=%v\", shape=box];\n", childID, c.Terminal, c.Value)
			fmt.Fprintf(b, "  n%d -> n%d;\n", id, childID)
		case ll.ChildNonterminal:
			childID := renderNode(b, c.Node, next)
			fmt.Fprintf(b, "  n%d -> n%d;\n", id, childID)
		}
	}
	return id
}

// RenderGraph renders a labelgraph.Graph as a Graphviz DOT digraph: one
// edge per (label, from, to) triple.
func RenderGraph(g *labelgraph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	for label, m := range g.Matrices {
		for _, pair := range labelgraph.ExtractPairs(m) {
			fmt.Fprintf(&b, "  %d -> %d [label=%q];\n", pair.From, pair.To, label)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
