package editorui

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/chewxy/math32"
)

// TabDragThreshold is how far the pointer must travel with the button held
// on a tab or title bar before the window starts dragging. A shorter press
// is a click.
const TabDragThreshold float32 = 4

// pendingDrag is a press on a drag handle that has not yet moved far enough
// to start a window drag.
type pendingDrag struct {
	window string
	start  Vec2
}

// Editor owns the docking, layout and property components of one editor
// instance and drives them once per frame.
//
// Usage:
//
//	ed, err := editorui.NewEditor(cfg)
//	ed.Windows.CreateWindow("Inspector", "Inspector", rect)
//	ed.AddPanel("Inspector", panel)
//	for !window.ShouldClose() {
//	    ed.Frame(input, viewport, dt)
//	    ed.Render(dl)
//	}
type Editor struct {
	Config  Config
	Style   Style
	Windows *WindowRegistry
	Docking *DockingManager
	Tabs    *TabSystem
	Layout  *LayoutManager
	Snapper *WindowSnapper
	Bus     *EventBus
	Toasts  *ToastState

	panels     map[string]*PropertyPanel // window name -> panel
	panelOrder []string
	focused    string

	pending      pendingDrag
	viewport     Rect
	unsubscribe  []func()
	frameCounter uint64
}

// NewEditor builds an editor from cfg. User presets are loaded from the
// configured directory; failures there are logged, not returned.
func NewEditor(cfg Config) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Message: err.Error(), Err: err}
	}
	SetVerbose(cfg.Verbose)

	e := &Editor{
		Config:  cfg,
		Style:   cfg.Style(),
		Windows: NewWindowRegistry(),
		Tabs:    NewTabSystem(),
		Bus:     NewEventBus(),
		Toasts:  &ToastState{},
		panels:  make(map[string]*PropertyPanel),
	}
	e.Snapper = NewWindowSnapper(e.Windows, cfg.Snap)
	e.Docking = NewDockingManager(e.Windows,
		WithEdgeBand(cfg.Docking.EdgeBand),
		WithDefaultRatio(cfg.Docking.DefaultRatio),
		WithSnapper(e.Snapper),
		WithEventBus(e.Bus),
		WithEmbedded(func(name string) bool { return e.tabHost(name) != nil }),
	)
	e.Layout = NewLayoutManager(e.Windows, e.Docking, e.Tabs,
		WithPresetDir(cfg.Layout.PresetDir),
		WithLayoutEventBus(e.Bus),
	)
	if err := e.Layout.LoadUserPresets(); err != nil {
		logger().Warn("failed to load user presets", "dir", cfg.Layout.PresetDir, "error", err)
	}
	if cfg.Layout.WatchPresets {
		if err := e.Layout.WatchPresets(); err != nil {
			logger().Warn("preset directory not watched", "dir", cfg.Layout.PresetDir, "error", err)
		}
	}
	e.Layout.SetAutoSave(cfg.Layout.AutoSavePath, cfg.Layout.AutoSaveInterval)

	e.unsubscribe = append(e.unsubscribe,
		e.Bus.Subscribe(EventPointerPressed, "", func(ev Event) bool {
			if _, ok := e.panels[ev.Target]; ok {
				e.focused = ev.Target
			}
			return false
		}),
		e.Bus.Subscribe(EventKeyPressed, "", func(ev Event) bool {
			switch {
			case ev.Key == KeyEscape && e.Docking.IsDragging():
				e.Docking.CancelWindowDrag()
				return true
			case ShortcutSave.Matches(ev):
				e.SaveLayout()
				return true
			}
			return false
		}),
		e.Bus.Subscribe(EventLayoutLoaded, "", func(ev Event) bool {
			if name, _ := ev.Payload.(string); name != "" {
				e.Toasts.ToastInfo(fmt.Sprintf("Layout %q loaded", name))
			}
			return false
		}),
		e.Bus.Subscribe(EventPropertyRejected, "", func(ev Event) bool {
			if r, ok := ev.Payload.(PropertyRejection); ok {
				e.Toasts.ToastWarning(rejectionMessage(r))
			}
			return false
		}),
	)
	return e, nil
}

func rejectionMessage(r PropertyRejection) string {
	msg := r.Err.Error()
	var verr *ValidationError
	if errors.As(r.Err, &verr) {
		msg = verr.Message
	}
	if r.Label == "" {
		return msg
	}
	return r.Label + ": " + msg
}

// SaveLayout writes the layout to the auto-save path and reports the result
// as a toast. Ctrl+S calls it. It does nothing without an auto-save path.
func (e *Editor) SaveLayout() bool {
	path := e.Config.Layout.AutoSavePath
	if path == "" {
		return false
	}
	if err := e.Layout.SaveLayoutFile(path); err != nil {
		logger().Error("failed to save layout", "path", path, "error", err)
		e.Toasts.ToastError("Layout not saved")
		return false
	}
	e.Toasts.ToastSuccess("Layout saved")
	return true
}

// AddPanel shows panel inside the named window's content area. The panel
// uses the configured undo depth and publishes its changes on the editor bus.
func (e *Editor) AddPanel(windowName string, panel *PropertyPanel) bool {
	if panel == nil {
		return false
	}
	if _, ok := e.Windows.FindWindow(windowName); !ok {
		return false
	}
	if _, exists := e.panels[windowName]; !exists {
		e.panelOrder = append(e.panelOrder, windowName)
	}
	panel.UndoSystem().SetMaxUndoLevels(e.Config.Undo.MaxLevels)
	panel.SetEventBus(e.Bus)
	e.panels[windowName] = panel
	if e.focused == "" {
		e.focused = windowName
	}
	return true
}

// RemovePanel detaches the panel shown in a window.
func (e *Editor) RemovePanel(windowName string) {
	delete(e.panels, windowName)
	e.panelOrder = slices.DeleteFunc(e.panelOrder, func(n string) bool { return n == windowName })
	if e.focused == windowName {
		e.focused = ""
	}
}

// Panel returns the panel shown in a window, or nil.
func (e *Editor) Panel(windowName string) *PropertyPanel { return e.panels[windowName] }

// FocusedPanel returns the panel receiving undo shortcuts, or nil.
func (e *Editor) FocusedPanel() *PropertyPanel { return e.panels[e.focused] }

// WindowAt returns the topmost visible window containing p, or "".
// A docked window counts only while it is its leaf's active tab, and a tab
// container's body belongs to the window its active tab shows.
func (e *Editor) WindowAt(p Vec2) string {
	for _, c := range e.Tabs.Containers() {
		active, ok := c.ActiveTab()
		if !ok || !e.tabBody(c).Contains(p) {
			continue
		}
		if w, ok := e.Windows.FindWindow(active.Content); ok && w.Visible && !w.Minimized {
			return w.Name
		}
	}
	for _, w := range e.Windows.TopmostFirst() {
		if w.Visible && !w.Minimized && e.tabHost(w.Name) == nil && e.showing(w.Name) && w.Rect().Contains(p) {
			return w.Name
		}
	}
	return ""
}

// showing reports whether a window's content is on screen.
func (e *Editor) showing(name string) bool {
	if c := e.tabHost(name); c != nil {
		active, ok := c.ActiveTab()
		return ok && active.Content == name
	}
	host := e.Docking.HostOf(name)
	if host == nil {
		return true
	}
	active, ok := host.ActiveWindow()
	return ok && active.Name == name
}

// tabHost returns the tab container showing a window as tab content, or nil.
func (e *Editor) tabHost(name string) *TabContainer {
	for _, c := range e.Tabs.Containers() {
		for _, t := range c.Tabs() {
			if t.Content == name {
				return c
			}
		}
	}
	return nil
}

// tabBody returns the area of a tab container below its tab bar.
func (e *Editor) tabBody(c *TabContainer) Rect {
	body := RectFrom(c.Position, c.Size)
	return Rect{X: body.X, Y: body.Y + e.Style.TabBarHeight, W: body.W, H: max(body.H-e.Style.TabBarHeight, 0)}
}

// ContentRect returns the area of a window below its tab bar or title bar.
// For tab content it is the body of the tab container.
func (e *Editor) ContentRect(name string) (Rect, bool) {
	w, ok := e.Windows.FindWindow(name)
	if !ok || !w.Visible || w.Minimized || !e.showing(name) {
		return Rect{}, false
	}
	if c := e.tabHost(name); c != nil {
		r := e.tabBody(c)
		return r, r.W > 0 && r.H > 0
	}
	r := w.Rect()
	header := e.Style.TabBarHeight
	if e.Docking.HostOf(name) == nil {
		header = e.Style.TitleBarHeight
		if w.Flags.Has(WindowFlagNoTitleBar) {
			header = 0
		}
	}
	r.Y += header
	r.H = max(r.H-header, 0)
	return r, r.W > 0 && r.H > 0
}

// dragHandleAt returns the window whose tab or floating title bar is under p.
func (e *Editor) dragHandleAt(p Vec2) string {
	for _, w := range e.Windows.TopmostFirst() {
		if !w.Visible || w.Minimized || e.Docking.HostOf(w.Name) != nil || e.tabHost(w.Name) != nil || w.Flags.Has(WindowFlagNoTitleBar) {
			continue
		}
		r := w.Rect()
		if (Rect{X: r.X, Y: r.Y, W: r.W, H: e.Style.TitleBarHeight}).Contains(p) {
			return w.Name
		}
		if r.Contains(p) {
			return ""
		}
	}
	return e.Docking.TabAt(p, e.Style)
}

// Frame runs one frame: toast timers, layout, event dispatch, window drags,
// splitter and tab input, panels, preset reloads and auto-save.
func (e *Editor) Frame(in *InputState, viewport Rect, dt time.Duration) {
	e.frameCounter++
	e.viewport = viewport
	e.Toasts.Update(dt)
	e.Docking.Layout(viewport)
	if in == nil {
		e.Layout.Tick(dt)
		return
	}
	mouse := in.MousePos()
	e.Bus.DispatchInput(in, e.WindowAt(mouse))

	if e.Docking.IsDragging() {
		switch {
		case in.MouseDown(MouseButtonLeft):
			e.Docking.UpdateWindowDrag(mouse)
		default:
			e.Docking.EndWindowDrag(mouse)
			e.Docking.Layout(viewport)
		}
		e.Layout.Tick(dt)
		return
	}

	consumed := e.Docking.HandleInput(in, e.Style)
	if in.MouseClicked(MouseButtonLeft) && !e.Docking.resizingSplit() {
		if name := e.dragHandleAt(mouse); name != "" {
			e.pending = pendingDrag{window: name, start: mouse}
		}
	}
	if e.pending.window != "" {
		d := mouse.Sub(e.pending.start)
		switch {
		case !in.MouseDown(MouseButtonLeft):
			e.pending = pendingDrag{}
		case math32.Hypot(d.X, d.Y) >= TabDragThreshold:
			if e.Docking.BeginWindowDrag(e.pending.window) {
				e.Docking.UpdateWindowDrag(mouse)
			}
			e.pending = pendingDrag{}
			e.Layout.Tick(dt)
			return
		}
	}

	e.updateTabContainers(in)
	if !consumed {
		for _, name := range e.panelOrder {
			if r, ok := e.ContentRect(name); ok {
				e.panels[name].Update(in, r, e.Style)
			}
		}
		if p := e.FocusedPanel(); p != nil {
			p.HandleInput(in)
		}
	}
	e.Layout.Tick(dt)
}

// tabHeader returns the header rect of every tab of a container.
func (e *Editor) tabHeader(c *TabContainer) []Rect {
	rects := make([]Rect, 0, c.TabCount())
	x := c.Position.X
	for _, t := range c.Tabs() {
		w := e.Style.TextWidth(t.Title) + 2*SpaceMD
		rects = append(rects, Rect{X: x, Y: c.Position.Y, W: w, H: e.Style.TabBarHeight})
		x += w + SpaceXS
	}
	return rects
}

func (e *Editor) updateTabContainers(in *InputState) {
	for _, c := range e.Tabs.Containers() {
		body := RectFrom(c.Position, c.Size)
		if body.W <= 0 || body.H <= 0 || !body.Contains(in.MousePos()) {
			continue
		}
		c.HandleInput(in)
		if !in.MouseClicked(MouseButtonLeft) {
			continue
		}
		for i, r := range e.tabHeader(c) {
			if r.Contains(in.MousePos()) {
				c.SetActiveTab(i)
			}
		}
	}
}

// Render draws dock spaces, floating windows, tab containers, panels and
// toasts.
func (e *Editor) Render(dl *DrawList) {
	e.Docking.Render(dl, e.Style)
	for _, c := range e.Tabs.Containers() {
		e.renderTabContainer(dl, c)
	}
	for _, name := range e.panelOrder {
		if r, ok := e.ContentRect(name); ok {
			e.panels[name].Draw(dl, r, e.Style)
		}
	}
	e.Toasts.Draw(dl, e.viewport, e.Style)
}

func (e *Editor) renderTabContainer(dl *DrawList, c *TabContainer) {
	body := RectFrom(c.Position, c.Size)
	if body.W <= 0 || body.H <= 0 {
		return
	}
	dl.AddRect(body, e.Style.DockBgColor)
	tabs := c.Tabs()
	for i, r := range e.tabHeader(c) {
		if !tabs[i].Visible {
			continue
		}
		bg := e.Style.TabColor
		if i == c.ActiveIndex() {
			bg = e.Style.TabActiveColor
		}
		dl.AddRect(r, bg)
		dl.AddTextClipped(Vec2{X: r.X + SpaceMD, Y: r.Y + (r.H-e.Style.CharHeight)/2}, tabs[i].Title, r.W-SpaceMD, e.Style.TextColor, e.Style)
	}
}

// FrameCount returns the number of frames run.
func (e *Editor) FrameCount() uint64 { return e.frameCounter }

// Close releases the editor's subscriptions and stops the preset watcher.
func (e *Editor) Close() error {
	for _, u := range e.unsubscribe {
		u()
	}
	e.unsubscribe = nil
	return e.Layout.Close()
}
