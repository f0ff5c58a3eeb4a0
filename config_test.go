package editorui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	def := DefaultConfig()
	if cfg.Undo.MaxLevels != def.Undo.MaxLevels || cfg.Docking.EdgeBand != def.Docking.EdgeBand {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	data := `
verbose: true
docking:
  edge_band: 30
undo:
  max_levels: 5
layout:
  preset_dir: presets
  autosave_interval: 30s
theme:
  accent: "#ff0000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	defer SetVerbose(false)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.Verbose || cfg.Docking.EdgeBand != 30 || cfg.Undo.MaxLevels != 5 {
		t.Errorf("Expected overrides to apply, got %+v", cfg)
	}
	if cfg.Docking.DefaultRatio != 0.5 {
		t.Errorf("Expected unset fields to keep defaults, got ratio %v", cfg.Docking.DefaultRatio)
	}
	if cfg.Layout.AutoSaveInterval != 30*time.Second {
		t.Errorf("Expected 30s autosave, got %v", cfg.Layout.AutoSaveInterval)
	}
	if cfg.Style().TabActiveColor != RGBA(255, 0, 0, 255) {
		t.Errorf("Expected red accent, got %#x", cfg.Style().TabActiveColor)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.toml")
	data := `
[docking]
edge_band = 25.0
default_ratio = 0.4

[snap]
enabled = true
snap_to_grid = true
grid_size = 16.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Docking.EdgeBand != 25 || cfg.Docking.DefaultRatio != 0.4 {
		t.Errorf("Expected docking overrides, got %+v", cfg.Docking)
	}
	if !cfg.Snap.SnapToGrid || cfg.Snap.GridSize != 16 {
		t.Errorf("Expected grid snapping, got %+v", cfg.Snap)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"malformed yaml", "a.yaml", "docking: [unterminated"},
		{"bad ratio", "a.yaml", "docking:\n  default_ratio: 1.5\n"},
		{"bad undo", "a.toml", "[undo]\nmax_levels = 0\n"},
		{"bad color", "a.yaml", "theme:\n  accent: notacolor\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ParseConfig(tt.file, []byte(tt.data), &cfg)
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Expected *ConfigError, got %v", err)
			}
			if cerr.Path != tt.file {
				t.Errorf("Expected path %s, got %s", tt.file, cerr.Path)
			}
		})
	}
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose logging")
	}
	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected quiet logging")
	}
}
