package sudoku

import (
	"errors"
	"reflect"
	"testing"
)

const almostValidPuzzle = "534678912\n" +
	"672195348\n" +
	"198342567\n" +
	"859761423\n" +
	"426853791\n" +
	"713924856\n" +
	"961537284\n" +
	"287419635\n" +
	"345286177"

func TestParse(t *testing.T) {
	grid, err := Parse(almostValidPuzzle)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	want := Grid{cells: [Size][Size]uint8{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 7},
	}}
	if grid != want {
		t.Errorf("Parse() = %v, want %v", grid, want)
	}
}

func TestParse_RowSize(t *testing.T) {
	text := "1111111111\n" + // 10 digits
		"111111111\n111111111\n111111111\n111111111\n" +
		"111111111\n111111111\n111111111\n111111111"

	_, err := Parse(text)
	var rowErr *RowSizeError
	if !errors.As(err, &rowErr) {
		t.Fatalf("Parse() = %v, want RowSizeError", err)
	}
	if rowErr.Row != 0 || rowErr.Len != 10 {
		t.Errorf("got RowSizeError{Row: %d, Len: %d}, want {0, 10}", rowErr.Row, rowErr.Len)
	}
}

func TestParse_GridSize(t *testing.T) {
	text := "111111111\n111111111\n111111111\n111111111\n111111111\n" +
		"111111111\n111111111\n111111111\n111111111\n111111111" // 10 rows

	_, err := Parse(text)
	var gridErr *GridSizeError
	if !errors.As(err, &gridErr) {
		t.Fatalf("Parse() = %v, want GridSizeError", err)
	}
	if gridErr.Rows != 10 {
		t.Errorf("got GridSizeError{Rows: %d}, want {10}", gridErr.Rows)
	}
}

func TestParse_Symbol(t *testing.T) {
	text := "a11111111\n" +
		"111111111\n111111111\n111111111\n111111111\n" +
		"111111111\n111111111\n111111111\n111111111"

	_, err := Parse(text)
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("Parse() = %v, want SymbolError", err)
	}
	if symErr.Row != 0 || symErr.Symbol != 'a' {
		t.Errorf("got SymbolError{Row: %d, Symbol: %q}, want {0, 'a'}", symErr.Row, symErr.Symbol)
	}
}

func TestParse_SymbolBeforeRowSize(t *testing.T) {
	// Row 0 is both too long and holds a bad symbol. The symbol check runs
	// per character, so it fires before the length check.
	text := "11111x11111\n" +
		"111111111\n111111111\n111111111\n111111111\n" +
		"111111111\n111111111\n111111111\n111111111"

	_, err := Parse(text)
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("Parse() = %v, want SymbolError", err)
	}
	if symErr.Symbol != 'x' {
		t.Errorf("got symbol %q, want 'x'", symErr.Symbol)
	}
}

func TestParse_RowSizeBeforeGridSize(t *testing.T) {
	// 10 rows and a short row: the per-row check fires before the row-count
	// check, naming the offending row.
	text := "111111111\n111111111\n11111111\n111111111\n111111111\n" +
		"111111111\n111111111\n111111111\n111111111\n111111111"

	_, err := Parse(text)
	var rowErr *RowSizeError
	if !errors.As(err, &rowErr) {
		t.Fatalf("Parse() = %v, want RowSizeError", err)
	}
	if rowErr.Row != 2 || rowErr.Len != 8 {
		t.Errorf("got RowSizeError{Row: %d, Len: %d}, want {2, 8}", rowErr.Row, rowErr.Len)
	}
}

func TestParse_Whitespace(t *testing.T) {
	spaced := "5 3 4 6 7 8 9 1 2\n" +
		"6 7 2 1 9 5 3 4 8\n" +
		"1 9 8 3 4 2 5 6 7\n" +
		"8 5 9 7 6 1 4 2 3\n" +
		"4 2 6 8 5 3 7 9 1\n" +
		"7 1 3 9 2 4 8 5 6\n" +
		"9 6 1 5 3 7 2 8 4\n" +
		"2 8 7 4 1 9 6 3 5\n" +
		"3 4 5 2 8 6 1 7 7\n"

	want, err := Parse(almostValidPuzzle)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	got, err := Parse(spaced)
	if err != nil {
		t.Fatalf("Parse() with spaces failed: %v", err)
	}
	if got != want {
		t.Errorf("spaced input parsed differently:\ngot\n%vwant\n%v", got, want)
	}
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{
		almostValidPuzzle,
		"a11111111\n111111111",
		"",
	}
	for _, text := range inputs {
		g1, err1 := Parse(text)
		g2, err2 := Parse(text)
		if g1 != g2 || !reflect.DeepEqual(err1, err2) {
			t.Errorf("Parse(%q) is not deterministic: (%v, %v) vs (%v, %v)", text, g1, err1, g2, err2)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	var gridErr *GridSizeError
	if !errors.As(err, &gridErr) {
		t.Fatalf("Parse(\"\") = %v, want GridSizeError", err)
	}
	if gridErr.Rows != 0 {
		t.Errorf("got GridSizeError{Rows: %d}, want {0}", gridErr.Rows)
	}
}
