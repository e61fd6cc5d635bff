package sudoku

import (
	"fmt"
	"strings"
)

// SymbolError reports the first character that could not be decoded as a
// base-10 digit. Parsing stops immediately; nothing after the offending
// character is examined.
type SymbolError struct {
	Row    int
	Symbol rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("unrecognized symbol %q in row %d", e.Symbol, e.Row)
}

// RowSizeError reports a row whose digit count is not exactly 9. Rows after
// the offending one are not parsed.
type RowSizeError struct {
	Row int
	Len int
}

func (e *RowSizeError) Error() string {
	return fmt.Sprintf("row %d has %d digits, want %d", e.Row, e.Len, Size)
}

// GridSizeError reports a grid whose row count is not exactly 9. It is only
// produced after every row has individually passed.
type GridSizeError struct {
	Rows int
}

func (e *GridSizeError) Error() string {
	return fmt.Sprintf("grid has %d rows, want %d", e.Rows, Size)
}

// Parse decodes text into a Grid.
//
// The expected format is one row per line, nine base-10 digits per row.
// Spaces and tabs inside a row are skipped, so the output of Grid.String is
// accepted as input. Checks run in a fixed order: a bad symbol fails first,
// then a wrong per-row digit count, and only after all rows pass, a wrong
// row count. Parsing stops at the first failure.
//
// Parse is a pure function of its input and never partially succeeds.
func Parse(text string) (Grid, error) {
	var g Grid

	rows := strings.Split(text, "\n")
	if n := len(rows); n > 0 && rows[n-1] == "" {
		rows = rows[:n-1]
	}

	for i, row := range rows {
		row = strings.TrimSuffix(row, "\r")
		n := 0
		for _, r := range row {
			switch {
			case r == ' ' || r == '\t':
			case r >= '0' && r <= '9':
				if i < Size && n < Size {
					g.cells[i][n] = uint8(r - '0')
				}
				n++
			default:
				return Grid{}, &SymbolError{Row: i, Symbol: r}
			}
		}
		if n != Size {
			return Grid{}, &RowSizeError{Row: i, Len: n}
		}
	}

	if len(rows) != Size {
		return Grid{}, &GridSizeError{Rows: len(rows)}
	}
	return g, nil
}
