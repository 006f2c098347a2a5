// Package config loads optional solver settings from a lexigrid.yaml
// (or .json) file. Flags override whatever the file provides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when the user passes no --config flag.
const DefaultPath = "lexigrid.yaml"

// Config mirrors the configuration file.
type Config struct {
	// Strategy is "filter" or "trie".
	Strategy string `yaml:"strategy" json:"strategy"`
	// Workers applies to the filter strategy; 0 keeps solves
	// single-threaded, negative values mean one worker per CPU.
	Workers int `yaml:"workers" json:"workers"`
	// MinWordLength defaults to 4 when zero.
	MinWordLength int `yaml:"min_word_length" json:"min_word_length"`
	// Port is the serve-mode listen port.
	Port string `yaml:"port" json:"port"`
	// Dictionary is the serve-mode default word list path.
	Dictionary string `yaml:"dictionary" json:"dictionary"`
}

// Load reads a configuration file (YAML or JSON). A missing file at the
// default path is not an error; it just means "no configuration".
// An explicitly requested file that is missing is reported.
func Load(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
