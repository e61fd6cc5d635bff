// Package config loads and represents checker configuration: which
// rule-group kinds run and whether incomplete grids are reported.
package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gridkit/sudoku-checker/pkg/sudoku"
)

// Group names accepted in configuration files.
const (
	GroupRows    = "rows"
	GroupColumns = "columns"
	GroupBoxes   = "boxes"
)

// Config controls which checks the checker runs.
type Config struct {
	ID string `yaml:"id" json:"id"`

	// Groups lists the enabled rule-group kinds by name (rows, columns,
	// boxes). An empty list disables duplicate checking entirely.
	Groups []string `yaml:"groups" json:"groups"`

	// RequireFilled reports cells holding no digit as findings.
	RequireFilled bool `yaml:"requireFilled" json:"requireFilled"`
}

// Default returns a configuration with all three rule-group kinds enabled
// and incomplete grids allowed.
func Default(id string) *Config {
	return &Config{
		ID:     id,
		Groups: []string{GroupRows, GroupColumns, GroupBoxes},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("Loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config

	// Try YAML first, then JSON
	if yamlErr := yaml.Unmarshal(data, &config); yamlErr != nil {
		slog.Debug("YAML unmarshal failed, attempting JSON", "error", yamlErr)
		if jsonErr := json.Unmarshal(data, &config); jsonErr != nil {
			return nil, jsonErr
		}
	}

	for i, group := range config.Groups {
		config.Groups[i] = strings.ToLower(strings.TrimSpace(group))
		switch config.Groups[i] {
		case GroupRows, GroupColumns, GroupBoxes:
		default:
			return nil, errors.Errorf("unknown rule group: %s", group)
		}
	}

	slog.Debug("Loaded config", "id", config.ID, "groups", config.Groups)
	return &config, nil
}

// GroupEnabled reports whether the given rule-group kind is enabled.
func (c *Config) GroupEnabled(kind sudoku.GroupKind) bool {
	var name string
	switch kind {
	case sudoku.RowGroup:
		name = GroupRows
	case sudoku.ColumnGroup:
		name = GroupColumns
	case sudoku.BoxGroup:
		name = GroupBoxes
	default:
		return false
	}
	for _, group := range c.Groups {
		if group == name {
			return true
		}
	}
	return false
}
