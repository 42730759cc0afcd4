// Package config loads and watches the TOML configuration file.
//
// A missing file is not an error: every option has a default, and the
// zero configuration is a working one. The Watcher reloads the file on
// change so level and notice settings can be adjusted live.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the full configuration tree.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Input      InputConfig      `toml:"input"`
	Dispatcher DispatcherConfig `toml:"dispatcher"`
	Demo       DemoConfig       `toml:"demo"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// InputConfig controls key interpretation.
type InputConfig struct {
	// StartMode is the mode entered on activation: normal or insert.
	StartMode string `toml:"start_mode"`

	// Surround enables the ys/cs/ds/S key family.
	Surround bool `toml:"surround"`
}

// DispatcherConfig controls keystroke dispatch.
type DispatcherConfig struct {
	// NoticeUnmatched shows a notice when a key sequence dead-ends.
	NoticeUnmatched bool `toml:"notice_unmatched"`

	// Metrics enables keystroke counters.
	Metrics bool `toml:"metrics"`
}

// DemoConfig holds options for the terminal demo binary.
type DemoConfig struct {
	// File is loaded into the buffer at startup when set.
	File string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log:        LogConfig{Level: "info"},
		Input:      InputConfig{StartMode: "normal", Surround: true},
		Dispatcher: DispatcherConfig{NoticeUnmatched: true},
	}
}

// validLevels and validModes bound the free-text options.
var (
	validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validModes  = map[string]bool{"normal": true, "insert": true}
)

// Validate checks the option values that come from free-form strings.
func (c Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if !validModes[c.Input.StartMode] {
		return fmt.Errorf("input.start_mode %q is not one of normal, insert", c.Input.StartMode)
	}
	return nil
}

// Load reads the TOML file at path over the defaults. A missing file
// returns the defaults with no error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
