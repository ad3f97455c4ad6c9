// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mfreitag/cvgen/internal/compile"
	"github.com/mfreitag/cvgen/internal/types"
)

// Config represents the CLI configuration that can be loaded from a YAML
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	YAMLFolder   string `yaml:"yaml_folder,omitempty"`   // Folder with the CV data files
	ConfigFolder string `yaml:"config_folder,omitempty"` // Folder with cv_config.yaml (defaults to yaml_folder)
	Template     string `yaml:"template,omitempty"`      // Path to a LaTeX template overriding the embedded one
	Picture      string `yaml:"picture,omitempty"`       // Path to the portrait picture file

	// Behavior
	Engine  string `yaml:"engine,omitempty"`  // LaTeX engine (pdflatex, xelatex, lualatex)
	Verbose bool   `yaml:"verbose,omitempty"` // Print resolution details

	// Languages replaces the built-in language proficiency seed list.
	Languages []Language `yaml:"languages,omitempty"`
}

// Language is one configured language proficiency entry
type Language struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

// Load loads configuration from a YAML file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; flag validation handles those after
// merging.
func (c *Config) Validate() error {
	if c.Engine != "" && !compile.SupportedEngine(c.Engine) {
		return fmt.Errorf("config error: unsupported engine %q", c.Engine)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	if c.YAMLFolder != "" {
		if _, err := os.Stat(c.YAMLFolder); os.IsNotExist(err) {
			return fmt.Errorf("config error: yaml_folder not found: %s", c.YAMLFolder)
		}
	}

	for i, lang := range c.Languages {
		if lang.Name == "" || lang.Level == "" {
			return fmt.Errorf("config error: languages[%d] needs both name and level", i)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.YAMLFolder == "" {
		result.YAMLFolder = defaults.YAMLFolder
	}
	if result.ConfigFolder == "" {
		result.ConfigFolder = defaults.ConfigFolder
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Picture == "" {
		result.Picture = defaults.Picture
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if len(result.Languages) == 0 {
		result.Languages = defaults.Languages
	}

	return result
}

// SeedLanguages converts the configured language list to model values, or
// returns nil when none are configured so the resolver default applies.
func (c *Config) SeedLanguages() []types.Language {
	if len(c.Languages) == 0 {
		return nil
	}
	languages := make([]types.Language, len(c.Languages))
	for i, lang := range c.Languages {
		languages[i] = types.Language{Name: lang.Name, Level: lang.Level}
	}
	return languages
}
