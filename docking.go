package editorui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// DockRelationship records that Source was last docked against Target's Zone.
// It is bookkeeping for layout files; the dock tree is the structural model.
type DockRelationship struct {
	Source string
	Target string
	Zone   DockZone
	Ratio  float32
}

// DragPhase is the state of the interactive docking state machine.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragDragging
)

// dragState tracks the single active window drag.
type dragState struct {
	phase  DragPhase
	window string

	// Free-floating fallback captured when the drag began.
	detachedPos  Vec2
	detachedSize Vec2

	target  string
	zone    DockZone
	preview Rect
	ghost   Rect
}

// floatingRect is the last free-floating geometry of a window.
type floatingRect struct {
	pos, size Vec2
}

// DockingOption configures a DockingManager.
type DockingOption func(*DockingManager)

// WithEdgeBand sets the width of the edge drop bands.
func WithEdgeBand(band float32) DockingOption {
	return func(m *DockingManager) {
		if band > 0 {
			m.edgeBand = band
		}
	}
}

// WithDefaultRatio sets the share given to a window dropped on an edge.
func WithDefaultRatio(ratio float32) DockingOption {
	return func(m *DockingManager) {
		if ratio > 0 && ratio < 1 {
			m.defaultRatio = ratio
		}
	}
}

// WithSnapper enables snapping of free-floating drops.
func WithSnapper(s *WindowSnapper) DockingOption {
	return func(m *DockingManager) {
		m.snapper = s
	}
}

// WithEmbedded marks windows whose content is shown elsewhere, such as in a
// tab container. They get no floating frame.
func WithEmbedded(fn func(name string) bool) DockingOption {
	return func(m *DockingManager) {
		m.embedded = fn
	}
}

// WithEventBus publishes dock and detach notifications on bus.
func WithEventBus(bus *EventBus) DockingOption {
	return func(m *DockingManager) {
		m.bus = bus
	}
}

// DockingManager owns the dock space trees, routes dock and undock requests,
// and runs the drag-to-dock state machine. It is the only component that
// mutates dock spaces.
type DockingManager struct {
	windows *WindowRegistry
	arena   *dockArena

	spaces     map[string]string // registered name -> node id
	spaceOrder []string
	root       string
	auto       map[string]bool // spaces created to host a floating drop target

	relationships []DockRelationship
	floating      map[string]floatingRect

	drag     dragState
	resizing splitterDrag

	edgeBand     float32
	defaultRatio float32
	snapper      *WindowSnapper
	bus          *EventBus
	embedded     func(name string) bool
}

// NewDockingManager creates a manager over the given window registry.
func NewDockingManager(windows *WindowRegistry, opts ...DockingOption) *DockingManager {
	m := &DockingManager{
		windows:      windows,
		arena:        newDockArena(),
		spaces:       make(map[string]string),
		auto:         make(map[string]bool),
		floating:     make(map[string]floatingRect),
		edgeBand:     DefaultDockEdgeBand,
		defaultRatio: 0.5,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Windows returns the registry the manager resolves window names against.
func (m *DockingManager) Windows() *WindowRegistry { return m.windows }

// EdgeBand returns the width of the edge drop bands.
func (m *DockingManager) EdgeBand() float32 { return m.edgeBand }

// DefaultRatio returns the share given to a window dropped on an edge.
func (m *DockingManager) DefaultRatio() float32 { return m.defaultRatio }

// CreateDockSpace registers a new root dock space. If the name is taken the
// existing dock space is returned. The first dock space becomes the root.
func (m *DockingManager) CreateDockSpace(name string) *DockSpace {
	return m.createDockSpace("", name)
}

func (m *DockingManager) createDockSpace(id, name string) *DockSpace {
	if existing := m.registered(name); existing != nil {
		logger().Warn("dock space already exists", "name", name)
		return existing
	}
	d := m.arena.create(id, name)
	m.spaces[name] = d.id
	m.spaceOrder = append(m.spaceOrder, name)
	if m.root == "" {
		m.root = name
	}
	logger().Debug("dock space created", "name", name, "id", d.id)
	return d
}

func (m *DockingManager) registered(name string) *DockSpace {
	id, ok := m.spaces[name]
	if !ok {
		return nil
	}
	return m.arena.get(id)
}

// GetDockSpace finds a dock space by name: registered roots first, then
// any node in the trees (children are named "<parent>.0" and "<parent>.1").
func (m *DockingManager) GetDockSpace(name string) *DockSpace {
	if d := m.registered(name); d != nil {
		return d
	}
	var found *DockSpace
	for _, root := range m.DockSpaces() {
		root.Walk(func(n *DockSpace) bool {
			if n.name == name {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// DockSpaceByID returns the node with the given id, or nil.
func (m *DockingManager) DockSpaceByID(id string) *DockSpace {
	return m.arena.get(id)
}

// DockSpaces returns the registered root dock spaces in creation order.
func (m *DockingManager) DockSpaces() []*DockSpace {
	out := make([]*DockSpace, 0, len(m.spaceOrder))
	for _, name := range m.spaceOrder {
		if d := m.registered(name); d != nil {
			out = append(out, d)
		}
	}
	return out
}

// AllDockSpaces returns every node of every tree, each tree depth-first.
func (m *DockingManager) AllDockSpaces() []*DockSpace {
	var out []*DockSpace
	for _, root := range m.DockSpaces() {
		root.Walk(func(n *DockSpace) bool {
			out = append(out, n)
			return true
		})
	}
	return out
}

// RemoveDockSpace destroys a registered dock space and its subtree. Windows
// docked beneath it become free-floating; the windows themselves survive.
func (m *DockingManager) RemoveDockSpace(name string) bool {
	d := m.registered(name)
	if d == nil {
		return false
	}
	for _, n := range m.treeWindowNames(d) {
		m.dropRelationships(n)
		m.restoreFloating(n)
	}
	m.arena.removeTree(d.id)
	delete(m.spaces, name)
	delete(m.auto, name)
	for i, n := range m.spaceOrder {
		if n == name {
			m.spaceOrder = append(m.spaceOrder[:i], m.spaceOrder[i+1:]...)
			break
		}
	}
	if m.root == name {
		m.root = ""
		if len(m.spaceOrder) > 0 {
			m.root = m.spaceOrder[0]
		}
	}
	return true
}

// SetRootDockSpace chooses which registered dock space fills the viewport.
func (m *DockingManager) SetRootDockSpace(name string) bool {
	if m.registered(name) == nil {
		return false
	}
	m.root = name
	return true
}

// RootDockSpace returns the dock space that fills the viewport, or nil.
func (m *DockingManager) RootDockSpace() *DockSpace {
	return m.registered(m.root)
}

// Clear removes every dock space and relationship and cancels any drag.
func (m *DockingManager) Clear() {
	m.arena = newDockArena()
	m.spaces = make(map[string]string)
	m.spaceOrder = nil
	m.root = ""
	m.auto = make(map[string]bool)
	m.relationships = nil
	m.resizing = splitterDrag{}
	m.CancelWindowDrag()
}

// HostOf returns the leaf hosting the named window, or nil if it floats.
func (m *DockingManager) HostOf(windowName string) *DockSpace {
	for _, root := range m.DockSpaces() {
		if leaf := root.FindLeaf(windowName); leaf != nil {
			return leaf
		}
	}
	return nil
}

// IsDocked reports whether the named window is hosted by a dock space.
func (m *DockingManager) IsDocked(windowName string) bool {
	return m.HostOf(windowName) != nil
}

func (m *DockingManager) treeWindowNames(d *DockSpace) []string {
	var names []string
	d.Walk(func(n *DockSpace) bool {
		names = append(names, n.WindowNames()...)
		return true
	})
	return names
}

// DockWindow docks a registered window as a tab into the named leaf.
func (m *DockingManager) DockWindow(spaceName, windowName string) bool {
	leaf := m.GetDockSpace(spaceName)
	w, ok := m.windows.FindWindow(windowName)
	if leaf == nil || !ok || !w.Dockable() || leaf.IsSplit() {
		return false
	}
	if leaf.HasWindow(windowName) {
		leaf.SetActiveWindow(windowName)
		return true
	}
	m.rememberFloating(w)
	leaf = m.undock(windowName, leaf)
	if !leaf.DockWindow(w, w.Name, w.Title) {
		return false
	}
	m.publish(EventWindowDocked, windowName, leaf.name)
	return true
}

// DockWindowToWindow docks source against target at zone. Center adds source
// as a tab of target's leaf; edge zones split that leaf, giving source the
// ratio share on the zone's side. A free-floating target first gets a dock
// space of its own. Self-docking, unknown windows, DockZoneNone and ratios
// outside (0,1) are rejected without changes.
func (m *DockingManager) DockWindowToWindow(source, target string, zone DockZone, ratio float32) bool {
	zone = zone.Normalize()
	if source == target || zone == DockZoneNone || math32.IsNaN(ratio) || ratio <= 0 || ratio >= 1 {
		return false
	}
	src, ok := m.windows.FindWindow(source)
	if !ok || !src.Dockable() {
		return false
	}
	tgt, ok := m.windows.FindWindow(target)
	if !ok || !tgt.Dockable() {
		return false
	}

	m.rememberFloating(src)
	leaf := m.HostOf(target)
	if leaf == nil {
		leaf = m.hostFloating(tgt)
	}
	leaf = m.undock(source, leaf)

	if zone == DockZoneCenter {
		leaf.DockWindow(src, src.Name, src.Title)
	} else {
		share := ratio
		if !zone.sourceFirst() {
			share = 1 - ratio
		}
		leaf.Split(zone.splitsVertically(), share)
		slot := 1
		if zone.sourceFirst() {
			leaf.swapChildren()
			slot = 0
		}
		leaf.Child(slot).DockWindow(src, src.Name, src.Title)
	}

	m.setRelationship(DockRelationship{Source: source, Target: target, Zone: zone, Ratio: ratio})
	logger().Debug("window docked", "source", source, "target", target, "zone", zone)
	m.publish(EventWindowDocked, source, target)
	return true
}

// DetachWindow undocks a window and restores its last free-floating
// geometry. Detaching a floating window succeeds without changes.
func (m *DockingManager) DetachWindow(windowName string) bool {
	if _, ok := m.windows.FindWindow(windowName); !ok {
		return false
	}
	m.dropRelationships(windowName)
	if m.HostOf(windowName) == nil {
		return true
	}
	m.undock(windowName, nil)
	m.restoreFloating(windowName)
	logger().Debug("window detached", "window", windowName)
	m.publish(EventWindowDetached, windowName, "")
	return true
}

// undock removes a window from its host leaf and collapses the leaf if it
// became empty. keep is a leaf the caller still needs; if the collapse moves
// keep's content into its parent, the parent is returned in its place.
func (m *DockingManager) undock(windowName string, keep *DockSpace) *DockSpace {
	host := m.HostOf(windowName)
	if host == nil {
		return keep
	}
	host.UndockWindow(windowName)
	if host == keep || len(host.windows) > 0 {
		return keep
	}
	parent := host.Parent()
	if parent == nil {
		if root := host.name; m.auto[root] && keep != host {
			m.RemoveDockSpace(root)
		}
		return keep
	}
	keepIsSibling := keep != nil && (parent.children[0] == keep.id || parent.children[1] == keep.id)
	if p := host.collapse(); p != nil && keepIsSibling {
		return p
	}
	return keep
}

// hostFloating wraps a free-floating window in a new dock space covering its rect.
func (m *DockingManager) hostFloating(w *Window) *DockSpace {
	name := w.Name + "_DockSpace"
	for i := 2; m.registered(name) != nil; i++ {
		name = fmt.Sprintf("%s_DockSpace%d", w.Name, i)
	}
	m.rememberFloating(w)
	d := m.createDockSpace("", name)
	m.auto[name] = true
	d.SetRect(w.Rect())
	d.DockWindow(w, w.Name, w.Title)
	return d
}

// rememberFloating records the geometry of a window that is not docked.
func (m *DockingManager) rememberFloating(w *Window) {
	if m.HostOf(w.Name) == nil {
		m.floating[w.Name] = floatingRect{pos: w.Position, size: w.Size}
	}
}

func (m *DockingManager) restoreFloating(windowName string) {
	w, ok := m.windows.FindWindow(windowName)
	if !ok {
		return
	}
	if f, ok := m.floating[windowName]; ok {
		w.Position = f.pos
		w.Size = f.size
	}
}

// restoreRelationship adds a record read from a layout file if both windows exist.
func (m *DockingManager) restoreRelationship(r DockRelationship) bool {
	if _, ok := m.windows.FindWindow(r.Source); !ok {
		return false
	}
	if _, ok := m.windows.FindWindow(r.Target); !ok {
		return false
	}
	r.Zone = r.Zone.Normalize()
	m.setRelationship(r)
	return true
}

// Relationships returns a copy of the relationship records.
func (m *DockingManager) Relationships() []DockRelationship {
	return append([]DockRelationship(nil), m.relationships...)
}

// setRelationship stores r, replacing any record with the same source.
func (m *DockingManager) setRelationship(r DockRelationship) {
	for i := range m.relationships {
		if m.relationships[i].Source == r.Source {
			m.relationships[i] = r
			return
		}
	}
	m.relationships = append(m.relationships, r)
}

// dropRelationships removes records naming the window as source or target.
func (m *DockingManager) dropRelationships(windowName string) {
	kept := m.relationships[:0]
	for _, r := range m.relationships {
		if r.Source != windowName && r.Target != windowName {
			kept = append(kept, r)
		}
	}
	m.relationships = kept
}

func (m *DockingManager) publish(kind EventKind, window, other string) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(Event{Kind: kind, Target: window, Payload: other})
}

// BeginWindowDrag starts dragging a window. It fails while another drag is
// active and for unknown, undockable or immovable windows.
func (m *DockingManager) BeginWindowDrag(windowName string) bool {
	if m.drag.phase != DragIdle {
		return false
	}
	w, ok := m.windows.FindWindow(windowName)
	if !ok || !w.Dockable() || w.Flags.Has(WindowFlagNoMove) {
		return false
	}
	pos, size := w.Position, w.Size
	if f, ok := m.floating[windowName]; ok && m.HostOf(windowName) != nil {
		pos, size = f.pos, f.size
	}
	m.drag = dragState{
		phase:        DragDragging,
		window:       windowName,
		detachedPos:  pos,
		detachedSize: size,
	}
	m.windows.BringToFront(windowName)
	logger().Debug("drag begin", "window", windowName)
	return true
}

// UpdateWindowDrag recomputes the drop target and preview for the pointer.
// Window rects are only read.
func (m *DockingManager) UpdateWindowDrag(mouse Vec2) {
	if m.drag.phase != DragDragging {
		return
	}
	m.drag.target, m.drag.zone = m.FindDockTarget(mouse)
	m.drag.preview = Rect{}
	m.drag.ghost = Rect{}
	if m.drag.target != "" {
		if tgt, ok := m.windows.FindWindow(m.drag.target); ok {
			m.drag.preview = ZonePreviewRect(tgt.Rect(), m.drag.zone, m.defaultRatio)
		}
		if m.snapper != nil {
			m.snapper.ClearGuides()
		}
		return
	}
	m.drag.ghost = m.floatingDrop(mouse)
}

// floatingDrop is where the dragged window lands if released at mouse with no target.
func (m *DockingManager) floatingDrop(mouse Vec2) Rect {
	r := RectFrom(mouse, m.drag.detachedSize)
	if m.snapper != nil {
		pos, _ := m.snapper.Snap(m.drag.window, r)
		r.X, r.Y = pos.X, pos.Y
	}
	return r
}

// EndWindowDrag drops the dragged window at mouse. With a target it is
// docked there; otherwise it is detached and placed at the pointer. The
// manager returns to idle either way.
func (m *DockingManager) EndWindowDrag(mouse Vec2) bool {
	if m.drag.phase != DragDragging {
		return false
	}
	name := m.drag.window
	target, zone := m.FindDockTarget(mouse)

	var ok bool
	if target != "" {
		ok = m.DockWindowToWindow(name, target, zone, m.defaultRatio)
	} else {
		drop := m.floatingDrop(mouse)
		m.floating[name] = floatingRect{pos: m.drag.detachedPos, size: m.drag.detachedSize}
		if ok = m.DetachWindow(name); ok {
			if w, found := m.windows.FindWindow(name); found {
				w.Position = drop.Pos()
				w.Size = drop.Size()
				m.floating[name] = floatingRect{pos: w.Position, size: w.Size}
			}
		}
	}
	logger().Debug("drag end", "window", name, "target", target, "zone", zone, "ok", ok)
	m.CancelWindowDrag()
	return ok
}

// CancelWindowDrag abandons the drag without touching the tree.
func (m *DockingManager) CancelWindowDrag() {
	m.drag = dragState{}
	if m.snapper != nil {
		m.snapper.ClearGuides()
	}
}

// IsDragging reports whether a window drag is active.
func (m *DockingManager) IsDragging() bool { return m.drag.phase == DragDragging }

// DraggingWindow returns the name of the dragged window, or "".
func (m *DockingManager) DraggingWindow() string { return m.drag.window }

// DragTarget returns the current drop target and zone of the active drag.
func (m *DockingManager) DragTarget() (string, DockZone) { return m.drag.target, m.drag.zone }

// DragPreview returns the highlighted drop area, or an empty rect.
func (m *DockingManager) DragPreview() Rect { return m.drag.preview }

// FindDockTarget returns the window and zone under mouse. Windows are tested
// topmost first. The dragged window, undockable or hidden windows, minimized
// floating windows and inactive tabs are skipped.
func (m *DockingManager) FindDockTarget(mouse Vec2) (string, DockZone) {
	for _, w := range m.windows.TopmostFirst() {
		if w.Name == m.drag.window || !w.Dockable() || !w.Visible {
			continue
		}
		host := m.HostOf(w.Name)
		if host == nil && w.Minimized {
			continue
		}
		if host != nil {
			if active, ok := host.ActiveWindow(); !ok || active.Name != w.Name {
				continue
			}
		}
		if zone := ResolveZone(w.Rect(), mouse, m.edgeBand); zone != DockZoneNone {
			return w.Name, zone
		}
	}
	return "", DockZoneNone
}

// Layout fits the root dock space to viewport and re-lays out the other trees
// in place.
func (m *DockingManager) Layout(viewport Rect) {
	if m.snapper != nil {
		m.snapper.SetScreenSize(viewport.Size())
	}
	for _, d := range m.DockSpaces() {
		if d.name == m.root {
			d.SetRect(viewport)
		} else {
			d.SetRect(d.rect)
		}
	}
}
