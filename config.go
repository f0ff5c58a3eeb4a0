package editorui

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds editor settings loaded from YAML or TOML.
type Config struct {
	Verbose bool           `yaml:"verbose" toml:"verbose"`
	Docking DockingConfig  `yaml:"docking" toml:"docking"`
	Undo    UndoConfig     `yaml:"undo" toml:"undo"`
	Snap    SnapSettings   `yaml:"snap" toml:"snap"`
	Layout  LayoutSettings `yaml:"layout" toml:"layout"`
	Theme   ThemeConfig    `yaml:"theme" toml:"theme"`
}

// DockingConfig configures drag-to-dock behavior.
type DockingConfig struct {
	// EdgeBand is the width in pixels of the Left/Right/Top/Bottom drop bands.
	EdgeBand float32 `yaml:"edge_band" toml:"edge_band"`
	// DefaultRatio is the share of the target given to the dropped window.
	DefaultRatio float32 `yaml:"default_ratio" toml:"default_ratio"`
}

// UndoConfig configures property undo history.
type UndoConfig struct {
	MaxLevels int `yaml:"max_levels" toml:"max_levels"`
}

// LayoutSettings configures layout persistence.
type LayoutSettings struct {
	PresetDir        string        `yaml:"preset_dir" toml:"preset_dir"`
	WatchPresets     bool          `yaml:"watch_presets" toml:"watch_presets"`
	AutoSavePath     string        `yaml:"autosave_path" toml:"autosave_path"`
	AutoSaveInterval time.Duration `yaml:"autosave_interval" toml:"autosave_interval"`
}

// ThemeConfig holds hex colors overriding the default style. Empty fields keep defaults.
type ThemeConfig struct {
	Background string `yaml:"background" toml:"background"`
	Accent     string `yaml:"accent" toml:"accent"`
	Text       string `yaml:"text" toml:"text"`
	Tab        string `yaml:"tab" toml:"tab"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Docking: DockingConfig{
			EdgeBand:     DefaultDockEdgeBand,
			DefaultRatio: 0.5,
		},
		Undo: UndoConfig{MaxLevels: DefaultMaxUndoLevels},
		Snap: DefaultSnapSettings(),
		Layout: LayoutSettings{
			PresetDir:        filepath.Join("layouts", "presets"),
			AutoSaveInterval: 5 * time.Minute,
		},
	}
}

// ConfigError reports a config file that could not be parsed or is invalid.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadConfig reads path over DefaultConfig. Files ending in .toml are parsed
// as TOML, everything else as YAML. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := ParseConfig(path, data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// ParseConfig decodes data into cfg, choosing the format from the name's extension,
// and validates the result.
func ParseConfig(name string, data []byte, cfg *Config) error {
	var err error
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		err = toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return &ConfigError{Path: name, Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Path: name, Message: err.Error(), Err: err}
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Docking.EdgeBand <= 0 {
		errs = append(errs, fmt.Errorf("docking.edge_band must be positive, got %v", c.Docking.EdgeBand))
	}
	if c.Docking.DefaultRatio <= 0 || c.Docking.DefaultRatio >= 1 {
		errs = append(errs, fmt.Errorf("docking.default_ratio must be in (0,1), got %v", c.Docking.DefaultRatio))
	}
	if c.Undo.MaxLevels < 1 {
		errs = append(errs, fmt.Errorf("undo.max_levels must be at least 1, got %d", c.Undo.MaxLevels))
	}
	if c.Snap.SnapToGrid && c.Snap.GridSize < 1 {
		errs = append(errs, fmt.Errorf("snap.grid_size must be at least 1, got %v", c.Snap.GridSize))
	}
	if c.Snap.SnapDistance < 0 {
		errs = append(errs, fmt.Errorf("snap.snap_distance must not be negative, got %v", c.Snap.SnapDistance))
	}
	if _, err := c.Theme.Apply(DefaultStyle()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Style returns DefaultStyle with the theme's colors applied.
// Invalid colors were rejected by Validate, so errors are ignored here.
func (c Config) Style() Style {
	s, _ := c.Theme.Apply(DefaultStyle())
	return s
}

// Apply overrides colors in base with any set theme fields.
func (t ThemeConfig) Apply(base Style) (Style, error) {
	set := func(field, hex string, dst *uint32) error {
		if hex == "" {
			return nil
		}
		c, err := ColorFromHex(hex, 1)
		if err != nil {
			return fmt.Errorf("theme.%s: %w", field, err)
		}
		*dst = c
		return nil
	}
	if err := set("background", t.Background, &base.DockBgColor); err != nil {
		return base, err
	}
	if err := set("text", t.Text, &base.TextColor); err != nil {
		return base, err
	}
	if err := set("tab", t.Tab, &base.TabColor); err != nil {
		return base, err
	}
	if err := set("accent", t.Accent, &base.TabActiveColor); err != nil {
		return base, err
	}
	if t.Accent != "" {
		base.SplitterHotColor = base.TabActiveColor
		base.PreviewColor = WithAlpha(base.TabActiveColor, 0.3)
		base.PreviewBorderColor = WithAlpha(base.TabActiveColor, 0.8)
		base.RowBgAltColor = BlendColors(base.DockBgColor, base.TabActiveColor, 0.05)
	}
	return base, nil
}
