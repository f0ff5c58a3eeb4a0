package editorui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestLayoutManager(t *testing.T, opts ...LayoutOption) (*LayoutManager, *DockingManager) {
	t.Helper()
	windows := NewWindowRegistry()
	for _, name := range []string{"MainWindow", "SceneViewWindow", "PropertyGridWindow", "SceneViewWindow1", "SceneViewWindow2"} {
		windows.CreateWindow(name, name, Rect{W: 100, H: 100})
	}
	docking := NewDockingManager(windows)
	m := NewLayoutManager(windows, docking, NewTabSystem(), opts...)
	t.Cleanup(func() { m.Close() })
	return m, docking
}

func TestLayoutManager_BuiltInPresets(t *testing.T) {
	m, docking := newTestLayoutManager(t)

	presets := m.Presets()
	if len(presets) != 3 {
		t.Fatalf("Expected 3 built-in presets, got %d", len(presets))
	}
	for _, p := range presets {
		if !p.BuiltIn || p.Category != BuiltInCategory {
			t.Errorf("Expected %s to be a built-in", p.Name)
		}
	}

	if !m.LoadPreset("Default") {
		t.Fatal("Expected Default to load")
	}
	root := docking.GetDockSpace("MainDockSpace")
	if root == nil || !root.IsSplit() || !root.IsVertical() || root.SplitRatio() != 0.7 {
		t.Fatalf("Expected a side-by-side 0.7 split, got %+v", root)
	}
	if docking.HostOf("SceneViewWindow").Name() != "SceneView" || docking.HostOf("PropertyGridWindow").Name() != "PropertyGrid" {
		t.Error("Expected scene view and property grid in their leaves")
	}
	rels := docking.Relationships()
	if len(rels) != 1 || rels[0].Zone != DockZoneRight || rels[0].Ratio != 0.3 {
		t.Errorf("Expected the property grid docked right of the scene view, got %+v", rels)
	}
	if m.LastLoadedPreset() != "Default" {
		t.Errorf("Expected last preset Default, got %q", m.LastLoadedPreset())
	}

	if !m.LoadPreset("Dual View") {
		t.Fatal("Expected Dual View to load")
	}
	root = docking.GetDockSpace("MainDockSpace")
	if root.IsVertical() || root.Child(0).Name() != "TopView" {
		t.Error("Expected Dual View to stack two views")
	}
	if docking.IsDocked("SceneViewWindow") {
		t.Error("Expected windows absent from the preset to be undocked")
	}

	if m.LoadPreset("Missing") {
		t.Error("Expected an unknown preset to fail")
	}
	if m.DeletePreset("Default") {
		t.Error("Expected built-ins to be undeletable")
	}
	if m.SavePreset("Compact", "", "") {
		t.Error("Expected built-in names to be rejected")
	}
}

func TestLayoutManager_UserPresetsOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "presets")
	m, docking := newTestLayoutManager(t, WithPresetDir(dir))

	if err := m.LoadUserPresets(); err != nil {
		t.Fatalf("Expected a missing directory to be fine, got %v", err)
	}
	m.LoadPreset("Default")
	if !m.SavePreset("Mine", "my layout", "") {
		t.Fatal("Expected SavePreset to succeed")
	}
	p, ok := m.Preset("Mine")
	if !ok || p.Category != UserCategory || p.BuiltIn {
		t.Fatalf("Expected a user preset, got %+v", p)
	}
	if _, err := os.Stat(filepath.Join(dir, "Mine.json")); err != nil {
		t.Fatalf("Expected preset file, got %v", err)
	}

	os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name":"Broken"`), 0o644)
	os.WriteFile(filepath.Join(dir, "Default.json"), []byte(`{"name":"Default","data":{"version":1}}`), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`hello`), 0o644)

	other, otherDocking := newTestLayoutManager(t, WithPresetDir(dir))
	if err := other.LoadUserPresets(); err != nil {
		t.Fatalf("LoadUserPresets failed: %v", err)
	}
	if got := other.PresetsInCategory(UserCategory); len(got) != 1 || got[0].Name != "Mine" || got[0].Description != "my layout" {
		t.Fatalf("Expected only Mine to load, got %+v", got)
	}
	if def, _ := other.Preset("Default"); !def.BuiltIn {
		t.Error("Expected the built-in Default to win over a file")
	}
	if !other.LoadPreset("Mine") {
		t.Fatal("Expected Mine to load")
	}
	if otherDocking.GetDockSpace("SceneView") == nil || docking.GetDockSpace("SceneView") == nil {
		t.Error("Expected the saved layout to be restored")
	}

	if !m.DeletePreset("Mine") {
		t.Fatal("Expected DeletePreset to succeed")
	}
	if _, err := os.Stat(filepath.Join(dir, "Mine.json")); !os.IsNotExist(err) {
		t.Error("Expected the preset file to be removed")
	}
}

func TestLayoutManager_SaveAndLoadFile(t *testing.T) {
	m, docking := newTestLayoutManager(t)
	path := filepath.Join(t.TempDir(), "layout.json")

	m.LoadPreset("Default")
	if err := m.SaveLayoutFile(path); err != nil {
		t.Fatalf("SaveLayoutFile failed: %v", err)
	}
	m.LoadPreset("Compact")
	if docking.GetDockSpace("MainDockSpace") != nil {
		t.Fatal("Expected Compact to have no dock spaces")
	}
	if err := m.LoadLayoutFile(path); err != nil {
		t.Fatalf("LoadLayoutFile failed: %v", err)
	}
	if docking.GetDockSpace("MainDockSpace") == nil {
		t.Error("Expected the saved dock layout back")
	}

	if m.LoadLayout(filepath.Join(t.TempDir(), "missing.json")) {
		t.Error("Expected loading a missing file to fail")
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestLayoutManager_ExportImport(t *testing.T) {
	bus := NewEventBus()
	var loads []string
	bus.Subscribe(EventLayoutLoaded, "", func(ev Event) bool {
		loads = append(loads, ev.Payload.(string))
		return false
	})
	m, docking := newTestLayoutManager(t, WithLayoutEventBus(bus))

	m.LoadPreset("Dual View")
	s, ok := m.ExportLayout()
	if !ok {
		t.Fatal("Expected ExportLayout to succeed")
	}
	m.LoadPreset("Compact")
	if !m.ImportLayout(s) {
		t.Fatal("Expected ImportLayout to succeed")
	}
	if docking.GetDockSpace("TopView") == nil {
		t.Error("Expected imported layout to be applied")
	}
	if m.ImportLayout(`{"version":"x"}`) {
		t.Error("Expected a bad document to be rejected")
	}
	if len(loads) != 3 || loads[0] != "Dual View" || loads[2] != "" {
		t.Errorf("Expected three load events, got %q", loads)
	}
}

func TestLayoutManager_AutoSave(t *testing.T) {
	m, _ := newTestLayoutManager(t)
	path := filepath.Join(t.TempDir(), "autosave.json")

	if m.Tick(time.Minute) {
		t.Error("Expected no auto-save when disabled")
	}
	m.SetAutoSave(path, 10*time.Second)
	if !m.AutoSaveEnabled() {
		t.Fatal("Expected auto-save to be enabled")
	}
	if m.Tick(4 * time.Second) {
		t.Error("Expected no save before the interval")
	}
	if !m.Tick(6 * time.Second) {
		t.Error("Expected a save once the interval elapsed")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected auto-save file, got %v", err)
	}
	if m.Tick(time.Second) {
		t.Error("Expected the timer to restart after saving")
	}
}

func TestLayoutManager_WatchPresets(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestLayoutManager(t, WithPresetDir(dir))
	if err := m.WatchPresets(); err != nil {
		t.Fatalf("WatchPresets failed: %v", err)
	}
	if err := m.WatchPresets(); err != nil {
		t.Errorf("Expected a second WatchPresets to be a no-op, got %v", err)
	}

	raw, err := encodePreset(&LayoutPreset{Name: "Dropped", Category: "Team", Data: []byte(`{"version":1}`)})
	if err != nil {
		t.Fatalf("encodePreset failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Dropped.json"), raw, 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.Tick(0)
		if _, ok := m.Preset("Dropped"); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	p, ok := m.Preset("Dropped")
	if !ok {
		t.Fatal("Expected the watcher to pick up the new preset")
	}
	if p.Category != "Team" {
		t.Errorf("Expected category Team, got %q", p.Category)
	}
}

func TestValidPresetName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Mine", true},
		{"a_b", true},
		{"Dual View", true},
		{"", false},
		{"  ", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
		{"a:b", false},
		{"a\nb", false},
	}
	for _, tt := range tests {
		if got := ValidPresetName(tt.name); got != tt.want {
			t.Errorf("ValidPresetName(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestLayoutManager_PresetNamesDoNotShareFiles(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestLayoutManager(t, WithPresetDir(dir))

	if !m.SavePreset("a_b", "", "") {
		t.Fatal("Expected SavePreset to succeed")
	}
	if m.SavePreset("a/b", "", "") || m.SavePreset("a:b", "", "") {
		t.Error("Expected names with separators to be rejected")
	}
	if m.DeletePreset("a/b") {
		t.Error("Expected DeletePreset of a rejected name to fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "a_b.json")); err != nil {
		t.Errorf("Expected a_b.json to survive, got %v", err)
	}
	if _, ok := m.Preset("a_b"); !ok {
		t.Error("Expected a_b to remain")
	}
}
