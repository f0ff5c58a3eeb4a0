package editorui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Preset categories.
const (
	BuiltInCategory = "Built-in"
	UserCategory    = "User"
)

// LayoutPreset is a named layout. Data holds a layout document as JSON.
type LayoutPreset struct {
	Name        string
	Description string
	Category    string
	BuiltIn     bool
	Data        []byte
}

// builtInPresets returns the presets shipped with the editor.
func builtInPresets() []*LayoutPreset {
	mainWindow := func(title string, w, h float32) map[string]WindowState {
		return map[string]WindowState{
			"MainWindow": {
				Name:      "MainWindow",
				Title:     title,
				IsVisible: true,
				Position:  [2]float32{100, 100},
				Size:      [2]float32{w, h},
			},
		}
	}
	leaf := func(id string, x, y, w, h float32, windows ...string) DockSpaceState {
		return DockSpaceState{ID: id, Name: id, Position: [2]float32{x, y}, Size: [2]float32{w, h}, Windows: windows}
	}

	defaultDoc := &LayoutDocument{
		Version: CurrentLayoutVersion,
		Windows: mainWindow("Editor", 1280, 720),
		DockLayout: &DockLayoutState{
			DockSpaces: []DockSpaceState{
				{
					ID: "MainDockSpace", Name: "MainDockSpace",
					Size:    [2]float32{1280, 720},
					IsSplit: true, IsVertical: true, SplitRatio: 0.7,
					Children: []string{"SceneView", "PropertyGrid"},
					Windows:  []string{},
				},
				leaf("SceneView", 0, 0, 896, 720, "SceneViewWindow"),
				leaf("PropertyGrid", 896, 0, 384, 720, "PropertyGridWindow"),
			},
			Relationships: []RelationshipState{
				{Source: "PropertyGridWindow", Target: "SceneViewWindow", Zone: int(DockZoneRight), Ratio: 0.3},
			},
		},
	}

	dualDoc := &LayoutDocument{
		Version: CurrentLayoutVersion,
		Windows: mainWindow("Editor - Dual View", 1280, 720),
		DockLayout: &DockLayoutState{
			DockSpaces: []DockSpaceState{
				{
					ID: "MainDockSpace", Name: "MainDockSpace",
					Size:    [2]float32{1280, 720},
					IsSplit: true, SplitRatio: 0.5,
					Children: []string{"TopView", "BottomView"},
					Windows:  []string{},
				},
				leaf("TopView", 0, 0, 1280, 360, "SceneViewWindow1"),
				leaf("BottomView", 0, 360, 1280, 360, "SceneViewWindow2"),
			},
			Relationships: []RelationshipState{
				{Source: "SceneViewWindow2", Target: "SceneViewWindow1", Zone: int(DockZoneBottom), Ratio: 0.5},
			},
		},
	}

	compactDoc := &LayoutDocument{
		Version: CurrentLayoutVersion,
		Windows: mainWindow("Editor - Compact", 1024, 768),
		TabArrangements: &TabArrangementState{
			Containers: []TabContainerState{{
				ID: "MainTabs", Name: "MainTabs",
				Size:      [2]float32{1024, 768},
				ActiveTab: "SceneTab",
				Tabs: []TabState{
					{Name: "SceneTab", Title: "Scene", IsVisible: true, Order: 0, Content: "SceneViewWindow", ContentType: "SceneView"},
					{Name: "PropertiesTab", Title: "Properties", IsVisible: true, Order: 1, Content: "PropertyGridWindow", ContentType: "PropertyGrid"},
				},
			}},
			Groups: []TabGroupState{},
		},
	}

	mk := func(name, desc string, doc *LayoutDocument) *LayoutPreset {
		data, err := json.Marshal(doc)
		if err != nil {
			panic(fmt.Sprintf("editorui: encoding built-in preset %q: %v", name, err))
		}
		return &LayoutPreset{Name: name, Description: desc, Category: BuiltInCategory, BuiltIn: true, Data: data}
	}
	return []*LayoutPreset{
		mk("Default", "Default editor layout with property grid and scene view", defaultDoc),
		mk("Dual View", "Split screen with two scene views", dualDoc),
		mk("Compact", "Space-efficient layout with tabbed views", compactDoc),
	}
}

// encodePreset builds the on-disk form {name, description, category, data}.
func encodePreset(p *LayoutPreset) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	for _, kv := range [][2]string{{"name", p.Name}, {"description", p.Description}, {"category", p.Category}} {
		if out, err = sjson.SetBytes(out, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	if out, err = sjson.SetRawBytes(out, "data", p.Data); err != nil {
		return nil, err
	}
	return pretty.Pretty(out), nil
}

// decodePreset reads a preset file. The name defaults to fallback and the
// category to UserCategory. The data must be a valid layout document.
func decodePreset(raw []byte, fallback string) (*LayoutPreset, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed preset JSON", ErrInvalidLayout)
	}
	doc := gjson.ParseBytes(raw)
	data := doc.Get("data")
	if !data.IsObject() {
		return nil, fmt.Errorf("%w: preset has no data object", ErrInvalidLayout)
	}
	if _, err := ParseLayout([]byte(data.Raw)); err != nil {
		return nil, err
	}
	p := &LayoutPreset{
		Name:        doc.Get("name").String(),
		Description: doc.Get("description").String(),
		Category:    doc.Get("category").String(),
		Data:        []byte(data.Raw),
	}
	if p.Name == "" {
		p.Name = fallback
	}
	if p.Category == "" {
		p.Category = UserCategory
	}
	return p, nil
}

// ValidPresetName reports whether name can be stored as a preset file: it
// must be non-empty and free of path separators, colons and control
// characters, and may not be "." or "..".
func ValidPresetName(name string) bool {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return r == '/' || r == '\\' || r == ':' || unicode.IsControl(r)
	})
}

// presetFileName maps a valid preset name to its file name.
func presetFileName(name string) string {
	return name + ".json"
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
