package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	params := cfg.PlacementParams()
	if params.AnchorX != 10 || params.AnchorY != 10 || params.Gap != 5 {
		t.Fatalf("unexpected default placement params: %+v", params)
	}
}

func TestLoadFrom_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
placement:
  anchor_x: 20
  anchor_y: 30
  gap: 8
dialogs:
  scratch:
    width: 200
    height: 100
    title: Scratch
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params := cfg.PlacementParams()
	if params.AnchorX != 20 || params.AnchorY != 30 || params.Gap != 8 {
		t.Fatalf("unexpected placement params: %+v", params)
	}

	preset, err := cfg.GetDialog("scratch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preset.Width != 200 || preset.Height != 100 || preset.Title != "Scratch" {
		t.Fatalf("unexpected preset: %+v", preset)
	}
}

func TestLoadFrom_KeepsDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, `
placement:
  gap: 12
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Anchor not set in the file keeps the default.
	params := cfg.PlacementParams()
	if params.AnchorX != 10 || params.AnchorY != 10 {
		t.Fatalf("expected default anchor (10,10), got (%d,%d)", params.AnchorX, params.AnchorY)
	}
	if params.Gap != 12 {
		t.Fatalf("expected gap 12, got %d", params.Gap)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"negative anchor", func(c *Config) { c.Placement.AnchorX = -1 }, "placement"},
		{"negative gap", func(c *Config) { c.Placement.Gap = -5 }, "placement.gap"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"bad logging level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"negative max size", func(c *Config) { c.Logging.MaxSizeMB = -1 }, "logging.max_size_mb"},
		{"zero size preset", func(c *Config) {
			c.Dialogs["broken"] = DialogPreset{Width: 0, Height: 100}
		}, "dialogs.broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("expected path %q, got %q", tt.path, verr.Path)
			}
		})
	}
}

func TestGetDialog_UnknownListsAvailable(t *testing.T) {
	cfg := DefaultConfig()

	_, err := cfg.GetDialog("nope")
	if err == nil {
		t.Fatalf("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "inspector") {
		t.Fatalf("expected available presets in error, got: %v", err)
	}
}

func TestDialogNames_Sorted(t *testing.T) {
	cfg := DefaultConfig()

	names := cfg.DialogNames()
	want := []string{"inspector", "note", "palette"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestGetLoggingConfig_AppliesDefaults(t *testing.T) {
	cfg := DefaultConfig()

	logCfg := cfg.GetLoggingConfig()
	if logCfg.MaxSizeMB != 10 || logCfg.MaxFiles != 3 {
		t.Fatalf("unexpected rotation defaults: %+v", logCfg)
	}
	if logCfg.Level != "info" {
		t.Fatalf("expected default level info, got %q", logCfg.Level)
	}
	if !strings.HasSuffix(logCfg.File, filepath.Join(".local/share/paneldock", "events.log")) {
		t.Fatalf("unexpected default log path: %s", logCfg.File)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
