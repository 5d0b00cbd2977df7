package ll

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is a built LL(1) parse table: a flat production list plus, per
// nonterminal code, a map from lookahead terminal code to production
// code.
type Table struct {
	Productions []Production       `json:"productions" yaml:"productions"`
	ParseTable  []map[uint64]uint64 `json:"table" yaml:"table"`
}

// Get returns the production selected for (nonterminal, terminal), or
// false if the grammar has no rule for that pair.
func (t *Table) Get(nonterminal, terminal uint64) (code uint64, production Production, ok bool) {
	code, ok = t.ParseTable[nonterminal][terminal]
	if !ok {
		return 0, nil, false
	}
	if code == EpsilonRuleCode {
		return code, nil, true
	}
	return code, t.Productions[code], true
}

// ReadJSON deserialises a table previously written by WriteJSONFile. The
// wire shape is {"productions": [[int]], "table": [{terminal: code}]}.
func ReadJSON(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("ll: %w", err)
	}
	return &t, nil
}

// ReadJSONFile reads a table from a JSON file.
func ReadJSONFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ll: %w", err)
	}
	return ReadJSON(data)
}

// WriteJSONFile writes t as JSON to path (the `ll-table` script command).
func WriteJSONFile(t *Table, path string) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("ll: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteYAMLFile writes t as YAML to path: a human-readable companion dump
// alongside the JSON wire format.
func WriteYAMLFile(t *Table, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("ll: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
