package checker

import (
	"fmt"

	"github.com/gridkit/sudoku-checker/pkg/sudoku"
)

// Result contains the outcome of one grid check.
//
// It carries the parsed grid, every violation found across the enabled rule
// groups, and aggregate statistics for quick analysis.
type Result struct {
	// Grid is the parsed grid the checks ran against.
	Grid sudoku.Grid `json:"-" yaml:"-"`

	// Violations contains every duplicate-digit finding, ordered by kind
	// (rows, columns, boxes), group index, and digit. Empty if the grid is
	// valid.
	Violations []sudoku.Violation `json:"violations" yaml:"violations"`

	// EmptyCells lists cells holding no digit. Populated only when the
	// configuration (or a per-call option) requires a fully specified grid.
	EmptyCells []sudoku.Cell `json:"emptyCells,omitempty" yaml:"emptyCells,omitempty"`

	// Summary provides aggregate statistics about the findings.
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summary provides aggregate statistics about check findings.
type Summary struct {
	// Total number of duplicate-digit violations across all kinds.
	Total int `json:"total" yaml:"total"`

	// Rows, Columns, and Boxes count violations per rule-group kind.
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`
	Boxes   int `json:"boxes" yaml:"boxes"`

	// Empty is the number of cells holding no digit, when reported.
	Empty int `json:"empty" yaml:"empty"`
}

// HasViolations reports whether the check found any duplicate digits.
func (r *Result) HasViolations() bool {
	return r.Summary.Total > 0
}

// IsClean reports whether the grid passed every enabled check, including
// the filled-grid requirement when active.
//
// This is the condition CI-style callers gate on:
//
//	if !result.IsClean() {
//	    os.Exit(1)
//	}
func (r *Result) IsClean() bool {
	return r.Summary.Total == 0 && r.Summary.Empty == 0
}

// String returns a human-readable summary of the check results.
//
// Example output:
//
//	Check Results: 3 violations (1 rows, 1 columns, 1 boxes)
func (r *Result) String() string {
	return fmt.Sprintf(
		"Check Results: %d violations (%d rows, %d columns, %d boxes)",
		r.Summary.Total,
		r.Summary.Rows,
		r.Summary.Columns,
		r.Summary.Boxes,
	)
}

// FilterByKind returns only the violations of the given rule-group kind.
//
//	rowIssues := result.FilterByKind(sudoku.RowGroup)
func (r *Result) FilterByKind(kind sudoku.GroupKind) []sudoku.Violation {
	filtered := make([]sudoku.Violation, 0)
	for _, v := range r.Violations {
		if v.Kind == kind {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// FilterByValue returns only the violations involving the given digit.
func (r *Result) FilterByValue(value uint8) []sudoku.Violation {
	filtered := make([]sudoku.Violation, 0)
	for _, v := range r.Violations {
		if v.Value == value {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
