package checker

import "github.com/gridkit/sudoku-checker/pkg/sudoku"

// CheckOption is a functional option customizing a single Check call. It
// overrides the Checker's configuration for that call only.
type CheckOption func(*checkOptions)

// checkOptions holds the effective settings for one check.
type checkOptions struct {
	groups        map[sudoku.GroupKind]bool
	requireFilled bool
}

// WithGroups restricts the check to the given rule-group kinds.
//
//	// report only row duplicates
//	result, err := c.Check(ctx, text, checker.WithGroups(sudoku.RowGroup))
func WithGroups(kinds ...sudoku.GroupKind) CheckOption {
	return func(opts *checkOptions) {
		groups := make(map[sudoku.GroupKind]bool, len(kinds))
		for _, kind := range kinds {
			groups[kind] = true
		}
		opts.groups = groups
	}
}

// WithRequireFilled reports cells holding no digit as findings, regardless
// of the configuration.
func WithRequireFilled() CheckOption {
	return func(opts *checkOptions) {
		opts.requireFilled = true
	}
}
