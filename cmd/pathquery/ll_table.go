package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathquery/internal/llgrammar"
	"github.com/katalvlaran/pathquery/ll"
)

// cmdLLTable implements `ll-table PATH [--format=yaml]`: loads a general
// grammar from PATH, builds its LL(1) table, and emits it as the fixed
// JSON wire format, or, with --format=yaml, as a human-readable YAML
// dump of the same table.
func cmdLLTable(args []string) error {
	format := "json"
	var path string
	for _, a := range args {
		if v, ok := strings.CutPrefix(a, "--format="); ok {
			format = v
			continue
		}
		if path != "" {
			return fmt.Errorf("ll-table: usage: ll-table PATH [--format=yaml]")
		}
		path = a
	}
	if path == "" {
		return fmt.Errorf("ll-table: usage: ll-table PATH [--format=yaml]")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ll-table: %w", err)
	}
	cfg, _, _, err := llgrammar.FromText(string(data))
	if err != nil {
		return err
	}
	table, err := ll.Build(cfg)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		out, err := json.Marshal(table)
		if err != nil {
			return fmt.Errorf("ll-table: %w", err)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(table)
		if err != nil {
			return fmt.Errorf("ll-table: %w", err)
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("ll-table: unknown --format=%s", format)
	}
	return nil
}
