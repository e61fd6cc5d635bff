package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gridkit/sudoku-checker/pkg/checker"
	"github.com/gridkit/sudoku-checker/pkg/logger"
	"github.com/gridkit/sudoku-checker/pkg/sudoku"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <grid-file>",
	Short: "Check a Sudoku grid against placement rules",
	Long: `Check a Sudoku grid file against the configured placement rules.

The file holds one row per line, nine digits per row. Pass "-" to read
the grid from standard input. Every duplicate digit across all rows,
columns, and boxes is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Flags for check command
	checkCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	checkCmd.Flags().StringP("rules", "r", "", "path to rules configuration file")
	checkCmd.Flags().Bool("require-filled", false, "report cells holding no digit")
	checkCmd.Flags().Bool("fail-on-violation", false, "exit with non-zero code if violations are found")

	// Bind flags to viper
	_ = viper.BindPFlag("output", checkCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("rules", checkCmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("require-filled", checkCmd.Flags().Lookup("require-filled"))
	_ = viper.BindPFlag("fail-on-violation", checkCmd.Flags().Lookup("fail-on-violation"))
}

func runCheck(cmd *cobra.Command, args []string) error {
	initLogger()

	slog.Debug("Starting check command", "args", args)

	text, err := readGrid(args[0])
	if err != nil {
		return err
	}
	slog.Debug("Grid read successfully", "size", len(text))

	c := checker.New()
	if rulesPath := viper.GetString("rules"); rulesPath != "" {
		slog.Debug("Loading rules configuration", "path", rulesPath)
		if err := c.WithConfig(rulesPath); err != nil {
			return err
		}
	}

	var opts []checker.CheckOption
	if viper.GetBool("require-filled") {
		opts = append(opts, checker.WithRequireFilled())
	}

	result, err := c.Check(context.Background(), text, opts...)
	if err != nil {
		return describeParseError(err)
	}

	if err := outputResult(result, viper.GetString("output")); err != nil {
		return err
	}

	if !result.IsClean() && viper.GetBool("fail-on-violation") {
		os.Exit(1)
	}
	return nil
}

func initLogger() {
	logLevel := slog.LevelWarn
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(logger.NewWithLevel(logLevel).GetSlogLogger())
}

func readGrid(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read grid from stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read grid file: %s", path)
	}
	return string(data), nil
}

// describeParseError turns the typed parse errors into one-line diagnostics
// naming the offending symbol, row, or count.
func describeParseError(err error) error {
	switch e := err.(type) {
	case *sudoku.SymbolError:
		return errors.Errorf("grid is malformed: symbol %q in row %d is not a digit", e.Symbol, e.Row)
	case *sudoku.RowSizeError:
		return errors.Errorf("grid is malformed: row %d has %d digits instead of %d", e.Row, e.Len, sudoku.Size)
	case *sudoku.GridSizeError:
		return errors.Errorf("grid is malformed: %d rows instead of %d", e.Rows, sudoku.Size)
	default:
		return err
	}
}

func outputResult(result *checker.Result, format string) error {
	switch format {
	case "json":
		return outputJSON(result)
	case "yaml":
		return outputYAML(result)
	case "text":
		return outputText(result)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

func outputJSON(result *checker.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputYAML(result *checker.Result) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(result)
}

func outputText(result *checker.Result) error {
	if result.IsClean() {
		fmt.Println("No violations found.")
		return nil
	}

	for _, v := range result.Violations {
		fmt.Printf("[%s %d] digit %d appears %d times:", v.Kind, v.Index, v.Value, len(v.Cells))
		for _, c := range v.Cells {
			fmt.Printf(" (%d,%d)", c.Row, c.Col)
		}
		fmt.Println()
	}
	for _, c := range result.EmptyCells {
		fmt.Printf("[empty] cell (%d,%d) holds no digit\n", c.Row, c.Col)
	}

	fmt.Printf("\nSummary: %d violation(s) in %d row(s), %d column(s), %d box(es)",
		result.Summary.Total, result.Summary.Rows, result.Summary.Columns, result.Summary.Boxes)
	if result.Summary.Empty > 0 {
		fmt.Printf(", %d empty cell(s)", result.Summary.Empty)
	}
	fmt.Println()
	return nil
}
