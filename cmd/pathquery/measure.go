package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathquery/bench"
)

// cmdMeasure implements `measure DIR CSV ITERATIONS`.
func cmdMeasure(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("measure: usage: measure DIR CSV ITERATIONS")
	}
	iterations, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("measure: ITERATIONS must be an integer: %w", err)
	}
	return bench.WriteCSV(args[0], args[1], iterations)
}
