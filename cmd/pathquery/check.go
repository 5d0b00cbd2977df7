package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathquery/internal/scriptgrammar"
)

// cmdCheck implements `check PATH`: prints "valid" or "invalid" per the
// built-in script grammar's CYK recognizer.
func cmdCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check: usage: check PATH")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	ok, err := scriptgrammar.Check(string(data))
	if err != nil {
		return err
	}
	if ok {
		fmt.Println("valid")
	} else {
		fmt.Println("invalid")
	}
	return nil
}
