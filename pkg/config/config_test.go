package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridkit/sudoku-checker/pkg/sudoku"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default("default")
	require.Equal(t, "default", cfg.ID)
	require.True(t, cfg.GroupEnabled(sudoku.RowGroup))
	require.True(t, cfg.GroupEnabled(sudoku.ColumnGroup))
	require.True(t, cfg.GroupEnabled(sudoku.BoxGroup))
	require.False(t, cfg.RequireFilled)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeConfig(t, "rules.yaml", `
id: ci
groups:
  - rows
  - boxes
requireFilled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "ci", cfg.ID)
	require.True(t, cfg.GroupEnabled(sudoku.RowGroup))
	require.False(t, cfg.GroupEnabled(sudoku.ColumnGroup))
	require.True(t, cfg.GroupEnabled(sudoku.BoxGroup))
	require.True(t, cfg.RequireFilled)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeConfig(t, "rules.json", `{"id": "ci", "groups": ["columns"]}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.False(t, cfg.GroupEnabled(sudoku.RowGroup))
	require.True(t, cfg.GroupEnabled(sudoku.ColumnGroup))
}

func TestLoadFromFile_NormalizesNames(t *testing.T) {
	path := writeConfig(t, "rules.yaml", "groups: [\" Rows \", \"BOXES\"]\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"rows", "boxes"}, cfg.Groups)
}

func TestLoadFromFile_UnknownGroup(t *testing.T) {
	path := writeConfig(t, "rules.yaml", "groups: [diagonals]\n")

	_, err := LoadFromFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown rule group")
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
