// Package config handles configuration loading and validation for texedit.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/texedit/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Editor EditorConfig `yaml:"editor"`
	TUI    TUIConfig    `yaml:"tui"`
}

// EditorConfig holds document handling settings.
type EditorConfig struct {
	// MaxFileSize is the maximum accepted input size in characters.
	MaxFileSize int `yaml:"max_file_size"`
	// DebounceMS is the quiet period after the last keystroke before a
	// history snapshot is taken, in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
	// Extensions are glob patterns for recognized document file names.
	Extensions []string `yaml:"extensions"`
}

// TUIConfig holds display settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
	// TypesetStyle is the glamour style used in render mode.
	TypesetStyle string `yaml:"typeset_style"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Editor: EditorConfig{
			MaxFileSize: 1_000_000,
			DebounceMS:  500,
			Extensions:  []string{"*.tex", "*.ltx", "*.latex", "*.txt"},
		},
		TUI: TUIConfig{
			Theme:        "tokyo-night",
			TypesetStyle: "dark",
		},
	}
}

// Load reads configuration from the given path. A missing file returns
// defaults; a malformed file is an error.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills zero values the user left out.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Editor.MaxFileSize == 0 {
		c.Editor.MaxFileSize = def.Editor.MaxFileSize
	}
	if c.Editor.DebounceMS == 0 {
		c.Editor.DebounceMS = def.Editor.DebounceMS
	}
	if len(c.Editor.Extensions) == 0 {
		c.Editor.Extensions = def.Editor.Extensions
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = def.TUI.Theme
	}
	if c.TUI.TypesetStyle == "" {
		c.TUI.TypesetStyle = def.TUI.TypesetStyle
	}
}

// Validate checks invariants on the loaded configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("editor.max_file_size", c.Editor.MaxFileSize, nonNegative),
		criterio.Run("editor.debounce_ms", c.Editor.DebounceMS, nonNegative),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		c.validateExtensions(),
	)
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must be non-negative, got %d", n)
	}
	return nil
}

func (c *Config) validateExtensions() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Editor.Extensions {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("editor.extensions[%d]", i), fmt.Errorf("invalid pattern %q", pattern))
		}
	}
	return errs.ToError()
}

// DebounceInterval returns the debounce window as a duration.
func (c *Config) DebounceInterval() time.Duration {
	return time.Duration(c.Editor.DebounceMS) * time.Millisecond
}

// RecognizedFile reports whether name matches any configured extension glob.
func (c *Config) RecognizedFile(name string) bool {
	for _, pattern := range c.Editor.Extensions {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
