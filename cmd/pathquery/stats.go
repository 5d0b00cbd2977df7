package main

import (
	"fmt"

	"github.com/katalvlaran/pathquery/automaton"
	"github.com/katalvlaran/pathquery/labelgraph"
)

// cmdStats implements `stats GRAPH-PATH REGEX-PATH`: prints per-label
// value counts of the Kronecker intersection of the graph and the
// regex-built query automaton.
func cmdStats(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("stats: usage: stats GRAPH-PATH REGEX-PATH")
	}

	g, err := labelgraph.ReadFile(args[0])
	if err != nil {
		return err
	}
	q, err := automaton.ReadRegexFile(args[1])
	if err != nil {
		return err
	}

	intersection := g.Kronecker(q.Graph)
	for _, label := range sortedKeys(intersection.Matrices) {
		fmt.Printf("%s\t%d\n", label, intersection.Matrices[label].NVals())
	}
	return nil
}
