// Package config loads gate configuration from .checkup.yaml.
//
// Configuration is optional: a missing file yields the defaults, which
// reproduce the legacy shell gate (pylint and mypy over top-level and
// one-directory-deep source files, pytest over the current directory).
// Precedence is flags > environment > YAML > defaults; the flag layer
// is applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and
// its parents.
const FileName = ".checkup.yaml"

// FilesPlaceholder marks where the expanded source file set is
// substituted into a check command.
const FilesPlaceholder = "{files}"

// Check configures one of the three gate checks.
type Check struct {
	Label   string   `yaml:"label,omitempty"`   // progress line printed before the check runs
	Command []string `yaml:"command,omitempty"` // argv; may contain {files}
}

// Config is the full .checkup.yaml schema.
type Config struct {
	Theme       string `yaml:"theme"`        // "default", "orca", "mono"
	Format      string `yaml:"format"`       // "auto", "terminal", "plain", "json"
	ShowOutput  string `yaml:"show_output"`  // "always", "on-fail", "never"
	FilePattern string `yaml:"file_pattern"` // glob for {files} expansion

	Checks struct {
		Lint  Check `yaml:"lint"`
		Types Check `yaml:"types"`
		Test  Check `yaml:"test"`
	} `yaml:"checks"`
}

// Show-output policies.
const (
	ShowAlways = "always"
	ShowOnFail = "on-fail"
	ShowNever  = "never"
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Theme:       "default",
		Format:      "auto",
		ShowOutput:  ShowOnFail,
		FilePattern: "*.py",
	}
	cfg.Checks.Lint = Check{Label: "Linting code...", Command: []string{"pylint", FilesPlaceholder}}
	cfg.Checks.Types = Check{Label: "Checking types...", Command: []string{"mypy", FilesPlaceholder}}
	cfg.Checks.Test = Check{Label: "Running tests...", Command: []string{"pytest", "."}}
	return cfg
}

// Load reads configuration from path, or from the nearest
// .checkup.yaml when path is empty. Missing files yield defaults;
// malformed YAML warns on stderr and yields defaults.
func Load(path string) *Config {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return cfg
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 - config file path is controlled
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "checkup: ignoring malformed %s: %v\n", path, err)
		return Default()
	}

	cfg.normalize()
	return cfg
}

// normalize fills back any field a sparse YAML file cleared.
func (c *Config) normalize() {
	def := Default()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.ShowOutput == "" {
		c.ShowOutput = def.ShowOutput
	}
	if c.FilePattern == "" {
		c.FilePattern = def.FilePattern
	}
	fillCheck(&c.Checks.Lint, def.Checks.Lint)
	fillCheck(&c.Checks.Types, def.Checks.Types)
	fillCheck(&c.Checks.Test, def.Checks.Test)
}

func fillCheck(c *Check, def Check) {
	if c.Label == "" {
		c.Label = def.Label
	}
	if len(c.Command) == 0 {
		c.Command = def.Command
	}
}

// ApplyEnv overlays environment settings. NO_COLOR forces the mono
// theme; CHECKUP_THEME and CHECKUP_FORMAT override their YAML
// counterparts.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CHECKUP_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("CHECKUP_FORMAT"); v != "" {
		c.Format = v
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Theme = "mono"
	}
}

// findConfigFile looks for .checkup.yaml in the working directory and
// its parents.
func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, FileName)
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
