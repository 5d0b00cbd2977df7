package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathquery/dotgraph"
	"github.com/katalvlaran/pathquery/internal/scriptgrammar"
)

// cmdDot implements `dot PATH`: prints a DOT graph of the AST obtained by
// parsing PATH against the built-in script grammar's LL(1) table (spec
// §6).
func cmdDot(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("dot: usage: dot PATH")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	root, err := scriptgrammar.BuildAST(string(data))
	if err != nil {
		return err
	}
	fmt.Print(dotgraph.RenderNode(root))
	return nil
}
