package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathquery/dotgraph"
	"github.com/katalvlaran/pathquery/ll"
)

// codeTape is an ll.Tokens[struct{}] over a fixed list of terminal codes,
// the wire format `ll INPUT-PATH` expects: whitespace-separated decimal
// terminal codes, since a saved ll.Table carries no symbol-name mapping
// to re-tokenise arbitrary text against — its JSON is strictly
// {productions, table}, both already integer-coded.
type codeTape struct {
	codes []uint64
	pos   int
}

func (t *codeTape) Peek() (uint64, error) {
	if t.pos >= len(t.codes) {
		return ll.EndSymbolCode, nil
	}
	return t.codes[t.pos], nil
}

func (t *codeTape) Pop() (struct{}, bool, error) {
	t.pos++
	return struct{}{}, false, nil
}

func parseCodeTape(text string) (*codeTape, error) {
	fields := strings.Fields(text)
	codes := make([]uint64, len(fields))
	for i, f := range fields {
		code, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ll: input token %d (%q) is not a terminal code: %w", i, f, err)
		}
		codes[i] = code
	}
	return &codeTape{codes: codes}, nil
}

// cmdLL implements `ll TABLE-PATH INPUT-PATH`: parses the input against a
// previously saved table and emits a DOT graph of the resulting AST.
func cmdLL(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("ll: usage: ll TABLE-PATH INPUT-PATH")
	}

	table, err := ll.ReadJSONFile(args[0])
	if err != nil {
		return err
	}

	inputData, err := readFileString(args[1])
	if err != nil {
		return fmt.Errorf("ll: %w", err)
	}
	tokens, err := parseCodeTape(inputData)
	if err != nil {
		return err
	}

	root, err := ll.BuildAST[struct{}](table, tokens)
	if err != nil {
		return err
	}
	fmt.Print(dotgraph.RenderNode(root))
	return nil
}
