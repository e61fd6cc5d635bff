package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridkit/sudoku-checker/pkg/sudoku"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] <grid-file>",
	Short: "Parse a Sudoku grid and print its display form",
	Long: `Parse a Sudoku grid file and print it with the digits of each row
separated by single spaces. Pass "-" to read the grid from standard
input. The grid is only parsed, not validated.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	initLogger()

	text, err := readGrid(args[0])
	if err != nil {
		return err
	}

	grid, err := sudoku.Parse(text)
	if err != nil {
		return describeParseError(err)
	}

	fmt.Print(grid)
	return nil
}
