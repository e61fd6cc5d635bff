// Package sudoku parses textual 9×9 grids and checks them against Sudoku
// placement rules: no repeated digit within any row, column, or 3×3 box.
//
// The package is deliberately small and pure. Parse converts text into a
// Grid, Grid.Validate reports every rule violation in one call, and
// Grid.String renders the grid for display. There is no solver and no
// generator.
//
//	grid, err := sudoku.Parse(text)
//	if err != nil {
//	    // structural problem: bad symbol, wrong row length, wrong row count
//	}
//	if violations := grid.Validate(); len(violations) > 0 {
//	    // every duplicate across all 27 rule groups, in one list
//	}
package sudoku

import "strings"

// Size is the side length of a standard Sudoku grid. Non-9×9 variants are
// out of scope.
const Size = 9

// Grid is a fixed 9×9 puzzle. Each cell holds a digit 0–9, where 0 means no
// digit is present. A Grid is a value type and is never mutated after Parse.
type Grid struct {
	cells [Size][Size]uint8
}

// Cell identifies a single grid position. Row and Col are both in [0, 8].
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// At returns the digit at (row, col). It panics if either index is outside
// [0, 8].
func (g Grid) At(row, col int) uint8 {
	return g.cells[row][col]
}

// String renders the grid as 9 lines, each holding the row's digits
// separated by single spaces. The output parses back to an equal Grid.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for col, val := range row {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('0' + val)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
