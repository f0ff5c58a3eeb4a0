package editorui

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// LayoutOption configures a LayoutManager.
type LayoutOption func(*LayoutManager)

// WithPresetDir sets the directory holding user preset files.
func WithPresetDir(dir string) LayoutOption {
	return func(m *LayoutManager) { m.presetDir = dir }
}

// WithLayoutEventBus publishes EventLayoutLoaded on bus after every load.
func WithLayoutEventBus(bus *EventBus) LayoutOption {
	return func(m *LayoutManager) { m.bus = bus }
}

// LayoutManager saves and loads layouts and manages layout presets.
//
// The bool-returning methods log failures and leave the current layout
// untouched; the *File and *JSON variants return the error instead.
type LayoutManager struct {
	serializer LayoutSerializer
	bus        *EventBus

	presets    map[string]*LayoutPreset
	presetDir  string
	lastPreset string
	watcher    *PresetWatcher

	autoSavePath     string
	autoSaveInterval time.Duration
	sinceAutoSave    time.Duration
}

// NewLayoutManager creates a manager over the given components. The built-in
// presets are always available.
func NewLayoutManager(windows *WindowRegistry, docking *DockingManager, tabs *TabSystem, opts ...LayoutOption) *LayoutManager {
	m := &LayoutManager{
		serializer: LayoutSerializer{Windows: windows, Docking: docking, Tabs: tabs},
		presets:    make(map[string]*LayoutPreset),
	}
	for _, p := range builtInPresets() {
		m.presets[p.Name] = p
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Serializer returns the serializer used by the manager.
func (m *LayoutManager) Serializer() *LayoutSerializer { return &m.serializer }

// PresetDir returns the user preset directory.
func (m *LayoutManager) PresetDir() string { return m.presetDir }

// SaveLayoutFile writes the current layout to path. The file is replaced
// only after the whole layout has been encoded and written.
func (m *LayoutManager) SaveLayoutFile(path string) error {
	data, err := m.serializer.Serialize()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("saving layout %s: %w", path, err)
	}
	return nil
}

// SaveLayout writes the current layout to path.
func (m *LayoutManager) SaveLayout(path string) bool {
	if err := m.SaveLayoutFile(path); err != nil {
		logger().Error("failed to save layout", "path", path, "error", err)
		return false
	}
	return true
}

// LoadLayoutFile replaces the current layout with the one stored at path.
func (m *LayoutManager) LoadLayoutFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading layout %s: %w", path, err)
	}
	if err := m.serializer.Deserialize(data); err != nil {
		return fmt.Errorf("loading layout %s: %w", path, err)
	}
	m.loaded(path)
	return nil
}

// LoadLayout replaces the current layout with the one stored at path.
func (m *LayoutManager) LoadLayout(path string) bool {
	if err := m.LoadLayoutFile(path); err != nil {
		logger().Error("failed to load layout", "path", path, "error", err)
		return false
	}
	return true
}

// ExportLayout returns the current layout as JSON.
func (m *LayoutManager) ExportLayout() (string, bool) {
	data, err := m.serializer.Serialize()
	if err != nil {
		logger().Error("failed to export layout", "error", err)
		return "", false
	}
	return string(data), true
}

// ImportLayoutJSON replaces the current layout with the one encoded in s.
func (m *LayoutManager) ImportLayoutJSON(s string) error {
	if err := m.serializer.Deserialize([]byte(s)); err != nil {
		return err
	}
	m.loaded("")
	return nil
}

// ImportLayout replaces the current layout with the one encoded in s.
func (m *LayoutManager) ImportLayout(s string) bool {
	if err := m.ImportLayoutJSON(s); err != nil {
		logger().Error("failed to import layout", "error", err)
		return false
	}
	return true
}

func (m *LayoutManager) loaded(source string) {
	if m.bus != nil {
		m.bus.Publish(Event{Kind: EventLayoutLoaded, Payload: source})
	}
}

// SavePreset stores the current layout as a user preset, replacing a user
// preset of the same name. Built-in names and names ValidPresetName refuses
// are rejected. With a preset directory the preset file is written too; if
// that fails nothing changes.
func (m *LayoutManager) SavePreset(name, description, category string) bool {
	name = strings.TrimSpace(name)
	if !ValidPresetName(name) {
		logger().Warn("invalid preset name", "preset", name)
		return false
	}
	if p, ok := m.presets[name]; ok && p.BuiltIn {
		logger().Warn("cannot overwrite built-in preset", "preset", name)
		return false
	}
	data, err := m.serializer.Serialize()
	if err != nil {
		logger().Error("failed to capture preset", "preset", name, "error", err)
		return false
	}
	if category == "" {
		category = UserCategory
	}
	p := &LayoutPreset{Name: name, Description: description, Category: category, Data: data}
	if m.presetDir != "" {
		if err := m.writePreset(p); err != nil {
			logger().Error("failed to save preset", "preset", name, "error", err)
			return false
		}
	}
	m.presets[name] = p
	return true
}

// LoadPreset applies a preset.
func (m *LayoutManager) LoadPreset(name string) bool {
	p, ok := m.presets[name]
	if !ok {
		logger().Warn("unknown layout preset", "preset", name)
		return false
	}
	if err := m.serializer.Deserialize(p.Data); err != nil {
		logger().Error("failed to load preset", "preset", name, "error", err)
		return false
	}
	m.lastPreset = name
	m.loaded(name)
	return true
}

// DeletePreset removes a user preset and its file. Built-in and unknown
// presets cannot be deleted.
func (m *LayoutManager) DeletePreset(name string) bool {
	p, ok := m.presets[name]
	if !ok || p.BuiltIn {
		return false
	}
	if m.presetDir != "" {
		err := os.Remove(filepath.Join(m.presetDir, presetFileName(name)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger().Error("failed to delete preset file", "preset", name, "error", err)
			return false
		}
	}
	delete(m.presets, name)
	if m.lastPreset == name {
		m.lastPreset = ""
	}
	return true
}

// Preset returns a preset by name.
func (m *LayoutManager) Preset(name string) (LayoutPreset, bool) {
	p, ok := m.presets[name]
	if !ok {
		return LayoutPreset{}, false
	}
	return *p, true
}

// Presets returns all presets: built-ins first, then by category and name.
func (m *LayoutManager) Presets() []LayoutPreset {
	out := make([]LayoutPreset, 0, len(m.presets))
	for _, p := range m.presets {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b LayoutPreset) int {
		if a.BuiltIn != b.BuiltIn {
			if a.BuiltIn {
				return -1
			}
			return 1
		}
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
	})
	return out
}

// PresetsInCategory returns the presets of one category, sorted by name.
func (m *LayoutManager) PresetsInCategory(category string) []LayoutPreset {
	var out []LayoutPreset
	for _, p := range m.Presets() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// LastLoadedPreset returns the name of the last preset applied, or "".
func (m *LayoutManager) LastLoadedPreset() string { return m.lastPreset }

// LoadUserPresets replaces the user presets with the *.json files of the
// preset directory. A missing directory means no user presets. Unreadable
// or invalid files and files naming a built-in preset are skipped.
func (m *LayoutManager) LoadUserPresets() error {
	for name, p := range m.presets {
		if !p.BuiltIn {
			delete(m.presets, name)
		}
	}
	if m.presetDir == "" {
		return nil
	}
	entries, err := os.ReadDir(m.presetDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading preset directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		path := filepath.Join(m.presetDir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			logger().Warn("skipping unreadable preset", "path", path, "error", err)
			continue
		}
		p, err := decodePreset(raw, strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			logger().Warn("skipping invalid preset", "path", path, "error", err)
			continue
		}
		if !ValidPresetName(p.Name) {
			logger().Warn("skipping preset with invalid name", "path", path, "preset", p.Name)
			continue
		}
		if existing, ok := m.presets[p.Name]; ok && existing.BuiltIn {
			logger().Warn("skipping preset shadowing a built-in", "path", path, "preset", p.Name)
			continue
		}
		m.presets[p.Name] = p
	}
	return nil
}

// SaveUserPresets writes every user preset to the preset directory,
// creating it if needed.
func (m *LayoutManager) SaveUserPresets() error {
	if m.presetDir == "" {
		return errors.New("no preset directory configured")
	}
	var errs []error
	for _, p := range m.presets {
		if p.BuiltIn {
			continue
		}
		if err := m.writePreset(p); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", p.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (m *LayoutManager) writePreset(p *LayoutPreset) error {
	if err := os.MkdirAll(m.presetDir, 0o755); err != nil {
		return err
	}
	data, err := encodePreset(p)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(m.presetDir, presetFileName(p.Name)), data)
}

// WatchPresets reloads the user presets whenever the preset directory
// changes. Changes are picked up by Tick.
func (m *LayoutManager) WatchPresets() error {
	if m.watcher != nil {
		return nil
	}
	if m.presetDir == "" {
		return errors.New("no preset directory configured")
	}
	w, err := NewPresetWatcher(m.presetDir)
	if err != nil {
		return err
	}
	m.watcher = w
	return nil
}

// SetAutoSave saves the layout to path every interval of Tick time.
// An empty path or non-positive interval disables auto-save.
func (m *LayoutManager) SetAutoSave(path string, interval time.Duration) {
	m.autoSavePath = path
	m.autoSaveInterval = interval
	m.sinceAutoSave = 0
}

// AutoSaveEnabled reports whether auto-save is configured.
func (m *LayoutManager) AutoSaveEnabled() bool {
	return m.autoSavePath != "" && m.autoSaveInterval > 0
}

// Tick advances the auto-save timer by dt and applies preset directory
// changes. It reports whether the layout was auto-saved.
func (m *LayoutManager) Tick(dt time.Duration) bool {
	if m.watcher != nil && m.watcher.Poll() {
		if err := m.LoadUserPresets(); err != nil {
			logger().Warn("failed to reload presets", "error", err)
		}
	}
	if !m.AutoSaveEnabled() {
		return false
	}
	m.sinceAutoSave += dt
	if m.sinceAutoSave < m.autoSaveInterval {
		return false
	}
	m.sinceAutoSave = 0
	return m.SaveLayout(m.autoSavePath)
}

// Close stops watching the preset directory.
func (m *LayoutManager) Close() error {
	if m.watcher == nil {
		return nil
	}
	err := m.watcher.Close()
	m.watcher = nil
	return err
}
