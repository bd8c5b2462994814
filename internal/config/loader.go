package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"memberlint.yml",
	"memberlint.yaml",
	".memberlint.yml",
	".memberlint.yaml",
}

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a memberlint config file. If configPath is empty,
// the current working directory is searched using Discover, and
// DefaultConfig is returned when nothing is found.
//
// Partial YAML files are supported: fields not present keep their defaults.
// A list given in YAML replaces the default list rather than extending it.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks values that would make the scanner meaningless.
func (c *Config) Validate() error {
	if c.Lint.MaxIndent <= 0 {
		return fmt.Errorf("lint.max_indent must be positive, got %d", c.Lint.MaxIndent)
	}
	if c.Lint.SuspectIndent < 0 {
		return fmt.Errorf("lint.suspect_indent must not be negative, got %d", c.Lint.SuspectIndent)
	}
	if len(c.Files.Include) == 0 {
		return errors.New("files.include must list at least one pattern")
	}
	return nil
}
