package editorui

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrInvalidLayout is returned for layout data that cannot be loaded.
var ErrInvalidLayout = errors.New("invalid layout")

// LayoutSerializer converts the window, dock and tab state to and from
// layout documents. A nil component is neither saved nor restored.
type LayoutSerializer struct {
	Windows *WindowRegistry
	Docking *DockingManager
	Tabs    *TabSystem
}

// Document captures the current state.
func (s *LayoutSerializer) Document() *LayoutDocument {
	doc := &LayoutDocument{Version: CurrentLayoutVersion}
	if s.Windows != nil {
		doc.Windows = make(map[string]WindowState, s.Windows.Len())
		for _, w := range s.Windows.Windows() {
			doc.Windows[w.Name] = WindowState{
				Name:        w.Name,
				Title:       w.Title,
				IsVisible:   w.Visible,
				IsMinimized: w.Minimized,
				IsMaximized: w.Maximized,
				Position:    vec2Array(w.Position),
				Size:        vec2Array(w.Size),
				Type:        int(w.Type),
				Flags:       uint32(w.Flags),
				Monitor:     w.Monitor,
			}
		}
	}
	if s.Docking != nil {
		doc.DockLayout = dockLayoutState(s.Docking)
	}
	if s.Tabs != nil {
		doc.TabArrangements = tabArrangementState(s.Tabs)
	}
	return doc
}

func dockLayoutState(m *DockingManager) *DockLayoutState {
	st := &DockLayoutState{
		DockSpaces:    []DockSpaceState{},
		Relationships: []RelationshipState{},
	}
	for _, d := range m.AllDockSpaces() {
		ds := DockSpaceState{
			ID:       d.id,
			Name:     d.name,
			Position: vec2Array(d.Position()),
			Size:     vec2Array(d.Size()),
			IsSplit:  d.split,
			Windows:  d.WindowNames(),
		}
		if d.split {
			ds.IsVertical = d.vertical
			ds.SplitRatio = d.ratio
			ds.Children = []string{d.children[0], d.children[1]}
		}
		st.DockSpaces = append(st.DockSpaces, ds)
	}
	for _, r := range m.Relationships() {
		st.Relationships = append(st.Relationships, RelationshipState{
			Source: r.Source,
			Target: r.Target,
			Zone:   int(r.Zone),
			Ratio:  r.Ratio,
		})
	}
	return st
}

func tabArrangementState(ts *TabSystem) *TabArrangementState {
	st := &TabArrangementState{
		Containers: []TabContainerState{},
		Groups:     []TabGroupState{},
	}
	for _, c := range ts.Containers() {
		cs := TabContainerState{
			ID:       c.ID,
			Name:     c.Name,
			Position: vec2Array(c.Position),
			Size:     vec2Array(c.Size),
			Tabs:     []TabState{},
		}
		if t, ok := c.ActiveTab(); ok {
			cs.ActiveTab = t.Name
		}
		for _, t := range c.Tabs() {
			cs.Tabs = append(cs.Tabs, TabState{
				Name:        t.Name,
				Title:       t.Title,
				IsVisible:   t.Visible,
				CanClose:    t.CanClose,
				Order:       t.Order,
				Content:     t.Content,
				ContentType: t.ContentType,
			})
		}
		st.Containers = append(st.Containers, cs)
	}
	for _, g := range ts.Groups() {
		st.Groups = append(st.Groups, TabGroupState{ID: g.ID, Name: g.Name, Containers: append([]string{}, g.Containers...)})
	}
	return st
}

// Serialize encodes the current state as indented JSON.
func (s *LayoutSerializer) Serialize() ([]byte, error) {
	data, err := json.Marshal(s.Document())
	if err != nil {
		return nil, fmt.Errorf("encoding layout: %w", err)
	}
	return pretty.Pretty(data), nil
}

// ParseLayout decodes layout JSON without applying it. The version must be an
// integer of at least 1; a version newer than CurrentLayoutVersion is
// accepted with a warning. Split dock spaces need a ratio strictly between
// 0 and 1.
func ParseLayout(data []byte) (*LayoutDocument, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidLayout)
	}
	version := gjson.GetBytes(data, "version")
	if !version.Exists() {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidLayout)
	}
	if version.Type != gjson.Number || version.Num != float64(int64(version.Num)) || version.Int() < 1 {
		return nil, fmt.Errorf("%w: bad version %s", ErrInvalidLayout, version.Raw)
	}
	if v := version.Int(); v > CurrentLayoutVersion {
		logger().Warn("layout version is newer than supported; loading best effort", "version", v, "supported", CurrentLayoutVersion)
	}
	var doc LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	if doc.DockLayout != nil {
		for _, ds := range doc.DockLayout.DockSpaces {
			if ds.IsSplit && !validSplitRatio(ds.SplitRatio) {
				return nil, fmt.Errorf("%w: dock space %q has split ratio %v", ErrInvalidLayout, ds.ID, ds.SplitRatio)
			}
		}
	}
	return &doc, nil
}

// Deserialize parses data and, only if the whole document decodes, replaces
// the current state with it. Windows, dock spaces and tab containers that
// the document names but that do not exist are skipped.
func (s *LayoutSerializer) Deserialize(data []byte) error {
	doc, err := ParseLayout(data)
	if err != nil {
		return err
	}
	s.Apply(doc)
	return nil
}

// Apply replaces the current state with doc. Windows missing from doc keep
// their state; a missing dock layout or tab section clears that component.
func (s *LayoutSerializer) Apply(doc *LayoutDocument) {
	if s.Windows != nil {
		for name, ws := range doc.Windows {
			w, ok := s.Windows.FindWindow(name)
			if !ok {
				logger().Debug("layout names unknown window", "window", name)
				continue
			}
			applyWindowState(w, ws)
		}
	}
	if s.Docking != nil {
		s.Docking.restoreLayout(doc.DockLayout)
	}
	if s.Tabs != nil {
		restoreTabArrangement(s.Tabs, doc.TabArrangements)
	}
}

func applyWindowState(w *Window, ws WindowState) {
	if ws.Title != "" {
		w.Title = ws.Title
	}
	w.Visible = ws.IsVisible
	w.Minimized = ws.IsMinimized
	w.Maximized = ws.IsMaximized && !ws.IsMinimized
	w.Position = arrayVec2(ws.Position)
	w.Size = arrayVec2(ws.Size)
	w.Type = WindowType(ws.Type)
	w.Flags = WindowFlags(ws.Flags)
	w.Monitor = ws.Monitor
}

// restoreLayout rebuilds the dock trees from st. Nodes not referenced as a
// child become registered roots in document order. Each node is attached at
// most once, so cyclic or shared child references are dropped. A split node
// without a usable ratio is restored as a leaf.
func (m *DockingManager) restoreLayout(st *DockLayoutState) {
	m.Clear()
	if st == nil {
		return
	}

	byID := make(map[string]*DockSpaceState, len(st.DockSpaces))
	var ids []string
	isChild := make(map[string]bool)
	for i := range st.DockSpaces {
		ds := &st.DockSpaces[i]
		if ds.ID == "" || byID[ds.ID] != nil {
			continue
		}
		byID[ds.ID] = ds
		ids = append(ids, ds.ID)
		if ds.IsSplit && validSplitRatio(ds.SplitRatio) {
			for _, c := range ds.Children {
				if c != ds.ID {
					isChild[c] = true
				}
			}
		}
	}

	placed := make(map[string]bool)
	docked := make(map[string]bool)
	var build func(d *DockSpace, ds *DockSpaceState)
	build = func(d *DockSpace, ds *DockSpaceState) {
		placed[ds.ID] = true
		if ds.IsSplit && validSplitRatio(ds.SplitRatio) && len(ds.Children) == 2 {
			c0, c1 := byID[ds.Children[0]], byID[ds.Children[1]]
			if c0 != nil && c1 != nil && c0 != c1 && !placed[c0.ID] && !placed[c1.ID] {
				first := m.arena.create(c0.ID, c0.Name)
				second := m.arena.create(c1.ID, c1.Name)
				first.rect = RectFrom(arrayVec2(c0.Position), arrayVec2(c0.Size))
				second.rect = RectFrom(arrayVec2(c1.Position), arrayVec2(c1.Size))
				d.attach(ds.IsVertical, ds.SplitRatio, first, second)
				build(first, c0)
				build(second, c1)
				return
			}
		}
		for _, name := range ds.Windows {
			w, ok := m.windows.FindWindow(name)
			if !ok || docked[name] {
				continue
			}
			if d.DockWindow(w, w.Name, w.Title) {
				docked[name] = true
			}
		}
	}

	for _, id := range ids {
		ds := byID[id]
		if isChild[id] || placed[id] {
			continue
		}
		d := m.createDockSpace(ds.ID, ds.Name)
		d.rect = RectFrom(arrayVec2(ds.Position), arrayVec2(ds.Size))
		build(d, ds)
		d.SetRect(d.rect)
	}

	for _, rs := range st.Relationships {
		m.restoreRelationship(DockRelationship{Source: rs.Source, Target: rs.Target, Zone: DockZone(rs.Zone), Ratio: rs.Ratio})
	}
}

func restoreTabArrangement(ts *TabSystem, st *TabArrangementState) {
	ts.Clear()
	if st == nil {
		return
	}
	for _, cs := range st.Containers {
		if cs.ID == "" || ts.Container(cs.ID) != nil {
			continue
		}
		c := ts.createContainer(cs.ID, cs.Name)
		c.Position = arrayVec2(cs.Position)
		c.Size = arrayVec2(cs.Size)
		tabs := make([]Tab, 0, len(cs.Tabs))
		for _, t := range cs.Tabs {
			tabs = append(tabs, Tab{
				Name:        t.Name,
				Title:       t.Title,
				Visible:     t.IsVisible,
				CanClose:    t.CanClose,
				Order:       t.Order,
				Content:     t.Content,
				ContentType: t.ContentType,
			})
		}
		c.restoreTabs(tabs, 0)
		if cs.ActiveTab != "" {
			c.SetActiveTabByName(cs.ActiveTab)
		}
	}
	for _, gs := range st.Groups {
		if gs.ID == "" {
			continue
		}
		ts.createGroup(gs.ID, gs.Name, gs.Containers)
	}
}
