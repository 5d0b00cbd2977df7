package main

import (
	"os"
	"sort"
)

// readFileString reads path as a string.
func readFileString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// sortedKeys returns m's keys in ascending order, for deterministic CLI
// output over a Go map's otherwise randomised iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
