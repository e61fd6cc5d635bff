// Package pkg provides Sudoku grid parsing and validation functionality for Go applications.
//
// Sudoku Checker offers both a high-level and a low-level API for checking
// textual 9×9 grids against Sudoku placement rules, reporting every
// violation found in one call.
//
// # Package Structure
//
// The pkg directory contains several specialized packages:
//
//   - checker: High-level configurable API (recommended starting point)
//   - sudoku: Core parse-then-validate pipeline and the Grid type
//   - config: Configuration loading and management
//   - logger: Logging setup for the CLI
//
// # Getting Started
//
// For most use cases, start with the checker package:
//
//	import (
//	    "github.com/gridkit/sudoku-checker/pkg/checker"
//	)
//
//	func main() {
//	    c := checker.New()
//	    result, err := c.Check(context.Background(), gridText)
//	    ...
//	}
//
// Callers that only need the pure pipeline can use pkg/sudoku directly:
//
//	grid, err := sudoku.Parse(gridText)
//	violations := grid.Validate()
package pkg
