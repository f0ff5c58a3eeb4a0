package editorui

// WindowType classifies editor windows. Values are persisted in layout files.
type WindowType int

const (
	WindowTypePanel WindowType = iota
	WindowTypeViewport
	WindowTypeTool
	WindowTypeDialog
)

func (t WindowType) String() string {
	switch t {
	case WindowTypePanel:
		return "Panel"
	case WindowTypeViewport:
		return "Viewport"
	case WindowTypeTool:
		return "Tool"
	case WindowTypeDialog:
		return "Dialog"
	}
	return "Unknown"
}

// WindowFlags is a bit set of window behaviors. Persisted as an unsigned integer.
type WindowFlags uint32

const (
	WindowFlagNoMove WindowFlags = 1 << iota
	WindowFlagNoResize
	WindowFlagNoDocking
	WindowFlagNoTitleBar
)

// Has reports whether all bits of f are set.
func (w WindowFlags) Has(f WindowFlags) bool { return w&f == f }

// Window is an editor window. The registry owns windows; dock spaces only refer to them by name.
type Window struct {
	Name      string
	Title     string
	Type      WindowType
	Flags     WindowFlags
	Visible   bool
	Minimized bool
	Maximized bool
	Position  Vec2
	Size      Vec2
	Monitor   string
}

// Rect returns the window's screen rectangle.
func (w *Window) Rect() Rect {
	return RectFrom(w.Position, w.Size)
}

// Dockable reports whether the window may take part in docking.
func (w *Window) Dockable() bool {
	return !w.Flags.Has(WindowFlagNoDocking)
}

// WindowRegistry owns the editor's windows and their z-order.
type WindowRegistry struct {
	windows map[string]*Window
	order   []string // back-to-front
}

// NewWindowRegistry creates an empty registry.
func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{windows: make(map[string]*Window)}
}

// Register adds w on top of the z-order. It returns false if w is nil,
// unnamed, or a window with the same name exists.
func (r *WindowRegistry) Register(w *Window) bool {
	if w == nil || w.Name == "" {
		return false
	}
	if _, exists := r.windows[w.Name]; exists {
		return false
	}
	if w.Title == "" {
		w.Title = w.Name
	}
	r.windows[w.Name] = w
	r.order = append(r.order, w.Name)
	return true
}

// CreateWindow registers a visible window with the given name, title and rect.
func (r *WindowRegistry) CreateWindow(name, title string, rect Rect) *Window {
	w := &Window{
		Name:     name,
		Title:    title,
		Visible:  true,
		Position: rect.Pos(),
		Size:     rect.Size(),
	}
	if !r.Register(w) {
		return nil
	}
	return w
}

// Unregister removes a window. It returns false if the name is unknown.
func (r *WindowRegistry) Unregister(name string) bool {
	if _, ok := r.windows[name]; !ok {
		return false
	}
	delete(r.windows, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// FindWindow looks up a window by name.
func (r *WindowRegistry) FindWindow(name string) (*Window, bool) {
	w, ok := r.windows[name]
	return w, ok
}

// Windows returns all windows back-to-front.
func (r *WindowRegistry) Windows() []*Window {
	out := make([]*Window, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.windows[n])
	}
	return out
}

// TopmostFirst returns all windows front-to-back.
func (r *WindowRegistry) TopmostFirst() []*Window {
	out := make([]*Window, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.windows[r.order[i]])
	}
	return out
}

// BringToFront moves a window to the top of the z-order.
func (r *WindowRegistry) BringToFront(name string) bool {
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			r.order = append(r.order, name)
			return true
		}
	}
	return false
}

// Len returns the number of registered windows.
func (r *WindowRegistry) Len() int {
	return len(r.order)
}
