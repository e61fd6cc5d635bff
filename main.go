package main

import (
	"os"

	"github.com/gridkit/sudoku-checker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
