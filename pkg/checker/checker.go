// Package checker provides a high-level API for Sudoku grid checking.
//
// It wraps the parse-then-validate pipeline from pkg/sudoku behind a
// configurable Checker, making it easy to integrate grid checks into Go
// applications.
//
// # Quick Start
//
//	c := checker.New()
//
//	result, err := c.Check(context.Background(), gridText)
//	if err != nil {
//	    log.Fatal(err) // structural parse error
//	}
//
//	fmt.Printf("Found %d violations\n", result.Summary.Total)
//	for _, v := range result.Violations {
//	    fmt.Printf("[%s %d] duplicate %d\n", v.Kind, v.Index, v.Value)
//	}
//
// # Using Custom Configuration
//
//	c := checker.New()
//	if err := c.WithConfig("custom-rules.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	result, err := c.Check(ctx, gridText)
package checker

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/gridkit/sudoku-checker/pkg/config"
	"github.com/gridkit/sudoku-checker/pkg/sudoku"
)

// Checker runs Sudoku placement checks according to its configuration.
//
// Checker is safe for concurrent use by multiple goroutines as long as its
// configuration is not mutated between calls.
type Checker struct {
	config *config.Config
}

// New creates a Checker with the default configuration: all three
// rule-group kinds enabled, incomplete grids allowed.
func New() *Checker {
	return &Checker{config: config.Default("default")}
}

// WithConfig loads configuration from a YAML or JSON file, replacing the
// current configuration.
func (c *Checker) WithConfig(filename string) error {
	cfg, err := config.LoadFromFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to load config from %s", filename)
	}
	c.config = cfg
	return nil
}

// WithConfigObject sets a configuration object directly, replacing the
// current configuration. It returns the Checker for method chaining.
func (c *Checker) WithConfigObject(cfg *config.Config) *Checker {
	c.config = cfg
	return c
}

// Check parses text into a grid and validates it against the enabled rule
// groups.
//
// It returns an error only for structural problems: a context already
// cancelled, or text that does not parse into a 9×9 grid of digits. Rule
// violations are not errors; they are collected exhaustively into the
// Result, which also carries the parsed grid and a summary.
//
// Optional CheckOption parameters override the configuration for a single
// call:
//
//	result, err := c.Check(ctx, text,
//	    checker.WithGroups(sudoku.RowGroup),
//	    checker.WithRequireFilled(),
//	)
func (c *Checker) Check(ctx context.Context, text string, opts ...CheckOption) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	checkOpts := &checkOptions{
		groups:        enabledGroups(c.config),
		requireFilled: c.config.RequireFilled,
	}
	for _, opt := range opts {
		opt(checkOpts)
	}

	grid, err := sudoku.Parse(text)
	if err != nil {
		slog.Debug("Parse failed", "error", err)
		return nil, err
	}

	var violations []sudoku.Violation
	for _, v := range grid.Validate() {
		if checkOpts.groups[v.Kind] {
			violations = append(violations, v)
		}
	}

	var empty []sudoku.Cell
	if checkOpts.requireFilled {
		empty = grid.EmptyCells()
	}

	return &Result{
		Grid:       grid,
		Violations: violations,
		EmptyCells: empty,
		Summary:    calculateSummary(violations, empty),
	}, nil
}

func enabledGroups(cfg *config.Config) map[sudoku.GroupKind]bool {
	groups := make(map[sudoku.GroupKind]bool, 3)
	for _, kind := range []sudoku.GroupKind{sudoku.RowGroup, sudoku.ColumnGroup, sudoku.BoxGroup} {
		groups[kind] = cfg.GroupEnabled(kind)
	}
	return groups
}

func calculateSummary(violations []sudoku.Violation, empty []sudoku.Cell) Summary {
	summary := Summary{Empty: len(empty)}
	for _, v := range violations {
		summary.Total++
		switch v.Kind {
		case sudoku.RowGroup:
			summary.Rows++
		case sudoku.ColumnGroup:
			summary.Columns++
		case sudoku.BoxGroup:
			summary.Boxes++
		}
	}
	return summary
}
