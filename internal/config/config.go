package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Editor  EditorConfig  `yaml:"editor"`
	View    ViewConfig    `yaml:"view"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// EditorConfig configures the mutating commands
type EditorConfig struct {
	MaxFileSizeKB       int  `yaml:"max_file_size_kb"`      // refuse to read or edit files larger than this (default: 4096)
	IncludeDiff         bool `yaml:"include_diff"`          // append a unified diff to edit results
	SnippetContextLines int  `yaml:"snippet_context_lines"` // context lines above the edit anchor in snippets (default: 4)
}

// ViewConfig configures the view command
type ViewConfig struct {
	// DefaultMaxDepth is the directory listing depth used when the request
	// does not set max_depth. Level 1 is the immediate children.
	DefaultMaxDepth int `yaml:"default_max_depth"`
}

// HistoryConfig configures the undo_edit snapshot store
type HistoryConfig struct {
	Enabled      bool `yaml:"enabled"`       // default false: the one-shot CLI keeps no state between invocations
	MaxSnapshots int  `yaml:"max_snapshots"` // per-path stack cap (default: 50)
}

// LogConfig configures logging
type LogConfig struct {
	File        string `yaml:"file"`        // empty disables logging
	Development bool   `yaml:"development"` // human-readable encoder instead of JSON
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Editor.MaxFileSizeKB == 0 {
		cfg.Editor.MaxFileSizeKB = 4096
	}
	if cfg.Editor.SnippetContextLines == 0 {
		cfg.Editor.SnippetContextLines = 4
	}
	if cfg.View.DefaultMaxDepth == 0 {
		cfg.View.DefaultMaxDepth = 1
	}
	if cfg.History.MaxSnapshots == 0 {
		cfg.History.MaxSnapshots = 50
	}
}
