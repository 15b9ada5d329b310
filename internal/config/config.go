package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1broseidon/paneldock/internal/placement"
)

// Placement tunes the dialog placement search.
type Placement struct {
	AnchorX int `yaml:"anchor_x"` // preferred top-left corner, x
	AnchorY int `yaml:"anchor_y"` // preferred top-left corner, y
	Gap     int `yaml:"gap"`      // spacing enforced between dialogs
}

// LoggingConfig configures the dialog lifecycle event log.
type LoggingConfig struct {
	// Enabled turns lifecycle event logging on/off
	Enabled bool `yaml:"enabled,omitempty"`
	// Level controls logging verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is the log file path (default: ~/.local/share/paneldock/events.log)
	File string `yaml:"file,omitempty"`
	// MaxSizeMB is the maximum log file size before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty"`
	// MaxFiles is the number of rotated files to keep (default: 3)
	MaxFiles int `yaml:"max_files,omitempty"`
}

// DialogPreset describes a named dialog size usable from the CLI demo
// and the MCP open_dialog tool.
type DialogPreset struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title,omitempty"`
}

// Config holds the application configuration.
type Config struct {
	Display    string                  `yaml:"display,omitempty"`
	XAuthority string                  `yaml:"xauthority,omitempty"`
	Placement  Placement               `yaml:"placement"`
	LogLevel   string                  `yaml:"log_level"`
	Logging    LoggingConfig           `yaml:"logging,omitempty"`
	Dialogs    map[string]DialogPreset `yaml:"dialogs,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Placement: Placement{
			AnchorX: 10,
			AnchorY: 10,
			Gap:     5,
		},
		LogLevel: "info",
		Dialogs: map[string]DialogPreset{
			"note":      {Width: 320, Height: 200, Title: "Note"},
			"palette":   {Width: 520, Height: 320, Title: "Palette"},
			"inspector": {Width: 420, Height: 560, Title: "Inspector"},
		},
	}
}

// ValidationError reports an invalid configuration value along with the
// YAML path that produced it.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PlacementParams converts the placement section for the placement
// package.
func (c *Config) PlacementParams() placement.Params {
	if c == nil {
		return placement.DefaultParams()
	}
	return placement.Params{
		AnchorX: c.Placement.AnchorX,
		AnchorY: c.Placement.AnchorY,
		Gap:     c.Placement.Gap,
	}
}

// GetLoggingConfig returns the logging configuration with defaults applied.
func (c *Config) GetLoggingConfig() LoggingConfig {
	if c == nil {
		return LoggingConfig{}
	}
	cfg := c.Logging
	if cfg.File == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = os.Getenv("HOME")
		}
		if home == "" {
			// Last resort fallback - use current directory
			home = "."
		}
		cfg.File = filepath.Join(home, ".local/share/paneldock/events.log")
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = 3
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}

// GetDialog retrieves a dialog preset by name.
func (c *Config) GetDialog(name string) (DialogPreset, error) {
	preset, ok := c.Dialogs[name]
	if !ok {
		return DialogPreset{}, fmt.Errorf("dialog preset %q not found; available: %v", name, c.DialogNames())
	}
	return preset, nil
}

// DialogNames returns the configured preset names in sorted order.
func (c *Config) DialogNames() []string {
	names := make([]string, 0, len(c.Dialogs))
	for name := range c.Dialogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if c.Placement.AnchorX < 0 || c.Placement.AnchorY < 0 {
		return &ValidationError{Path: "placement", Err: fmt.Errorf("anchor_x and anchor_y must be >= 0")}
	}
	if c.Placement.Gap < 0 {
		return &ValidationError{Path: "placement.gap", Err: fmt.Errorf("gap must be >= 0")}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if c.Logging.MaxSizeMB < 0 {
		return &ValidationError{Path: "logging.max_size_mb", Err: fmt.Errorf("max_size_mb must be >= 0")}
	}
	if c.Logging.MaxFiles < 0 {
		return &ValidationError{Path: "logging.max_files", Err: fmt.Errorf("max_files must be >= 0")}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")}
	}
	for name, preset := range c.Dialogs {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Path: "dialogs", Err: fmt.Errorf("dialogs contains an empty preset name")}
		}
		if preset.Width <= 0 || preset.Height <= 0 {
			return &ValidationError{Path: "dialogs." + name, Err: fmt.Errorf("width and height must be positive, got %dx%d", preset.Width, preset.Height)}
		}
	}
	return nil
}
