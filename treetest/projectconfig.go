// treetest/projectconfig.go - Project-specific configuration via .treetest.yaml
//
// Projects can pin a theme and report layout without code changes by
// placing a .treetest.yaml in the project root.
package treetest

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig represents project-specific harness configuration.
// This is loaded from .treetest.yaml in the project root.
type ProjectConfig struct {
	// Theme name: "default" or "mono". Empty picks by terminal.
	Theme string `yaml:"theme"`

	Report struct {
		Title       string `yaml:"title"`        // heading above the legend
		StatsColumn int    `yaml:"stats_column"` // statistics column (default: 50)
		HideLegend  bool   `yaml:"hide_legend"`  // suppress the glyph key
	} `yaml:"report"`
}

// DefaultProjectConfig returns a ProjectConfig with sensible defaults.
func DefaultProjectConfig() *ProjectConfig {
	cfg := &ProjectConfig{}
	cfg.Report.StatsColumn = DefaultStatsColumn
	return cfg
}

// LoadProjectConfig loads configuration from .treetest.yaml, falling back
// to defaults when the file is missing or malformed.
func LoadProjectConfig() *ProjectConfig {
	cfg := DefaultProjectConfig()

	configPath := findConfigFile()
	if configPath == "" {
		return cfg
	}

	data, err := os.ReadFile(configPath) // #nosec G304 - config file path is controlled
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg
	}
	if cfg.Report.StatsColumn <= 0 {
		cfg.Report.StatsColumn = DefaultStatsColumn
	}

	return cfg
}

// findConfigFile looks for .treetest.yaml in current and parent directories.
func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, ".treetest.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// NewRunnerFromProject creates a Runner configured from project settings.
func NewRunnerFromProject() *Runner {
	cfg := LoadProjectConfig()
	return NewRunner(Config{
		Theme:       cfg.Theme,
		StatsColumn: cfg.Report.StatsColumn,
		Title:       cfg.Report.Title,
		HideLegend:  cfg.Report.HideLegend,
	})
}
