// Package config loads the huffpack JSON configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is where the configuration is looked up when no path is given.
const DefaultPath = "config.json"

// ErrMissingTextPath is returned when the configuration names no input file.
var ErrMissingTextPath = errors.New("config: filepath_text is required")

// Config is the on-disk configuration.
type Config struct {
	// FilepathText is the file compressed when no file is given on the command line.
	FilepathText string `json:"filepath_text"`
	// OutputDir overrides where containers are written. Empty means next to the input.
	OutputDir string `json:"output_dir,omitempty"`
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.FilepathText == "" {
		return Config{}, ErrMissingTextPath
	}
	return cfg, nil
}
