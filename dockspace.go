package editorui

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"
)

// Split ratios are clamped to this range so both children stay interactable.
const (
	MinSplitRatio float32 = 0.05
	MaxSplitRatio float32 = 0.95
)

// DockedWindow is a tab entry in a leaf dock space.
type DockedWindow struct {
	Name   string
	Title  string
	Window *Window
}

// dockArena stores dock space nodes by id. Nodes refer to their parent and
// children by id, and every lookup checks that the node still exists.
type dockArena struct {
	nodes map[string]*DockSpace
}

func newDockArena() *dockArena {
	return &dockArena{nodes: make(map[string]*DockSpace)}
}

func (a *dockArena) get(id string) *DockSpace {
	if id == "" {
		return nil
	}
	return a.nodes[id]
}

func (a *dockArena) create(id, name string) *DockSpace {
	if id == "" {
		id = uuid.NewString()
	}
	d := &DockSpace{id: id, name: name, arena: a}
	a.nodes[id] = d
	return d
}

// removeTree deletes a node and everything beneath it.
func (a *dockArena) removeTree(id string) {
	d := a.get(id)
	if d == nil {
		return
	}
	if d.split {
		a.removeTree(d.children[0])
		a.removeTree(d.children[1])
	}
	delete(a.nodes, id)
}

// DockSpace is one node of the docking tree: either a leaf holding an ordered
// set of tabbed windows or a branch with exactly two children.
//
// Children are laid out from the branch's own rect on every SetRect call.
type DockSpace struct {
	id    string
	name  string
	arena *dockArena

	parent   string
	children [2]string

	split    bool
	vertical bool
	ratio    float32

	rect Rect

	windows []DockedWindow
	active  int
}

// NewDockSpace creates a standalone root dock space with its own node store.
// Dock spaces that take part in a DockingManager are created through it instead.
func NewDockSpace(name string) *DockSpace {
	return newDockArena().create("", name)
}

// ID returns the stable id of the node.
func (d *DockSpace) ID() string { return d.id }

// Name returns the node's name.
func (d *DockSpace) Name() string { return d.name }

// Rect returns the node's current rectangle.
func (d *DockSpace) Rect() Rect { return d.rect }

// Position returns the top-left corner of the node.
func (d *DockSpace) Position() Vec2 { return d.rect.Pos() }

// Size returns the node's extent.
func (d *DockSpace) Size() Vec2 { return d.rect.Size() }

// IsSplit reports whether the node is a branch.
func (d *DockSpace) IsSplit() bool { return d.split }

// IsLeaf reports whether the node can hold windows.
func (d *DockSpace) IsLeaf() bool { return !d.split }

// IsVertical reports whether a branch places its children side by side.
func (d *DockSpace) IsVertical() bool { return d.vertical }

// SplitRatio returns the share of the branch given to its first child.
func (d *DockSpace) SplitRatio() float32 { return d.ratio }

// Parent returns the parent node, or nil for a root.
func (d *DockSpace) Parent() *DockSpace { return d.arena.get(d.parent) }

// Root walks up to the root of this node's tree.
func (d *DockSpace) Root() *DockSpace {
	n := d
	for p := n.Parent(); p != nil; p = n.Parent() {
		n = p
	}
	return n
}

// Children returns the two children of a branch, or nil for a leaf.
func (d *DockSpace) Children() []*DockSpace {
	if !d.split {
		return nil
	}
	out := make([]*DockSpace, 0, 2)
	for _, id := range d.children {
		if c := d.arena.get(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first (0) or second (1) child, or nil.
func (d *DockSpace) Child(i int) *DockSpace {
	if !d.split || i < 0 || i > 1 {
		return nil
	}
	return d.arena.get(d.children[i])
}

// DockedWindows returns a copy of the tab list in display order.
func (d *DockSpace) DockedWindows() []DockedWindow {
	return append([]DockedWindow(nil), d.windows...)
}

// WindowNames returns the names of the docked windows in display order.
func (d *DockSpace) WindowNames() []string {
	names := make([]string, len(d.windows))
	for i, w := range d.windows {
		names[i] = w.Name
	}
	return names
}

// HasWindow reports whether a window with the given name is docked here.
func (d *DockSpace) HasWindow(name string) bool {
	return d.windowIndex(name) >= 0
}

func (d *DockSpace) windowIndex(name string) int {
	for i, w := range d.windows {
		if w.Name == name {
			return i
		}
	}
	return -1
}

// Split turns a leaf into a branch. It fails if the node is already split or
// ratio is not strictly between 0 and 1; ratios closer than MinSplitRatio to
// either end are clamped. Existing windows move into the first child.
func (d *DockSpace) Split(isVertical bool, ratio float32) bool {
	if d.split || !validSplitRatio(ratio) {
		return false
	}
	first := d.arena.create("", d.name+".0")
	second := d.arena.create("", d.name+".1")
	first.windows, first.active = d.windows, d.active
	d.windows, d.active = nil, 0
	d.attach(isVertical, ratio, first, second)
	logger().Debug("dock space split", "name", d.name, "vertical", isVertical, "ratio", d.ratio)
	return true
}

func validSplitRatio(ratio float32) bool {
	return !math32.IsNaN(ratio) && ratio > 0 && ratio < 1
}

// attach makes first and second the children of d.
func (d *DockSpace) attach(isVertical bool, ratio float32, first, second *DockSpace) {
	first.parent, second.parent = d.id, d.id
	d.children = [2]string{first.id, second.id}
	d.split = true
	d.vertical = isVertical
	d.ratio = clampf(ratio, MinSplitRatio, MaxSplitRatio)
	d.SetRect(d.rect)
}

// swapChildren exchanges the contents of the two children so that the second
// child's windows appear in the first slot.
func (d *DockSpace) swapChildren() {
	if !d.split {
		return
	}
	d.children[0], d.children[1] = d.children[1], d.children[0]
	d.SetRect(d.rect)
}

// SetSplitRatio changes a branch's ratio, clamped to [MinSplitRatio, MaxSplitRatio].
func (d *DockSpace) SetSplitRatio(ratio float32) bool {
	if !d.split || math32.IsNaN(ratio) {
		return false
	}
	d.ratio = clampf(ratio, MinSplitRatio, MaxSplitRatio)
	d.SetRect(d.rect)
	return true
}

// DockWindow appends a window to a leaf's tabs and makes it the active, visible tab.
// It fails for branches, nil windows and windows already docked here.
func (d *DockSpace) DockWindow(w *Window, name, title string) bool {
	if d.split || w == nil {
		return false
	}
	if name == "" {
		name = w.Name
	}
	if title == "" {
		title = w.Title
	}
	if d.HasWindow(name) {
		return false
	}
	d.windows = append(d.windows, DockedWindow{Name: name, Title: title, Window: w})
	d.active = len(d.windows) - 1
	w.Visible = true
	w.Minimized = false
	d.layoutWindows()
	return true
}

// UndockWindow removes a window from a leaf's tabs.
func (d *DockSpace) UndockWindow(name string) bool {
	i := d.windowIndex(name)
	if i < 0 {
		return false
	}
	d.windows = append(d.windows[:i], d.windows[i+1:]...)
	if i < d.active {
		d.active--
	}
	if d.active >= len(d.windows) {
		d.active = max(0, len(d.windows)-1)
	}
	return true
}

// ActiveWindow returns the active tab of a leaf.
func (d *DockSpace) ActiveWindow() (DockedWindow, bool) {
	if d.active < 0 || d.active >= len(d.windows) {
		return DockedWindow{}, false
	}
	return d.windows[d.active], true
}

// SetActiveWindow activates a tab by window name.
func (d *DockSpace) SetActiveWindow(name string) bool {
	i := d.windowIndex(name)
	if i < 0 {
		return false
	}
	d.active = i
	return true
}

// Clear removes both children (and everything beneath them) and all docked windows.
func (d *DockSpace) Clear() {
	if d.split {
		d.arena.removeTree(d.children[0])
		d.arena.removeTree(d.children[1])
	}
	d.children = [2]string{}
	d.split = false
	d.vertical = false
	d.ratio = 0
	d.windows = nil
	d.active = 0
}

// collapse removes an empty leaf from its parent by promoting its sibling's
// content into the parent. It returns the parent, or nil if nothing changed.
func (d *DockSpace) collapse() *DockSpace {
	if d.split || len(d.windows) > 0 {
		return nil
	}
	parent := d.Parent()
	if parent == nil {
		return nil
	}
	siblingID := parent.children[0]
	if siblingID == d.id {
		siblingID = parent.children[1]
	}
	sibling := d.arena.get(siblingID)
	delete(d.arena.nodes, d.id)
	if sibling == nil {
		parent.children = [2]string{}
		parent.split = false
		return parent
	}

	parent.split = sibling.split
	parent.vertical = sibling.vertical
	parent.ratio = sibling.ratio
	parent.children = sibling.children
	parent.windows = sibling.windows
	parent.active = sibling.active
	for _, id := range parent.children {
		if c := d.arena.get(id); c != nil {
			c.parent = parent.id
		}
	}
	delete(d.arena.nodes, sibling.id)
	parent.SetRect(parent.rect)
	return parent
}

// SetRect assigns the node's rectangle and re-derives the children's
// rectangles from it.
func (d *DockSpace) SetRect(r Rect) {
	d.rect = r
	if !d.split {
		d.layoutWindows()
		return
	}
	first, second := splitRect(r, d.vertical, d.ratio)
	if c := d.arena.get(d.children[0]); c != nil {
		c.SetRect(first)
	}
	if c := d.arena.get(d.children[1]); c != nil {
		c.SetRect(second)
	}
}

// layoutWindows gives every docked window the leaf's content area.
func (d *DockSpace) layoutWindows() {
	for _, dw := range d.windows {
		if dw.Window != nil {
			dw.Window.Position = d.rect.Pos()
			dw.Window.Size = d.rect.Size()
		}
	}
}

// splitRect divides r at ratio along the split axis.
func splitRect(r Rect, vertical bool, ratio float32) (Rect, Rect) {
	if vertical {
		w := math32.Round(r.W * ratio)
		return Rect{X: r.X, Y: r.Y, W: w, H: r.H},
			Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
	}
	h := math32.Round(r.H * ratio)
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h},
		Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
}

// SplitterRect returns the draggable divider of a branch, thickness pixels wide.
func (d *DockSpace) SplitterRect(thickness float32) Rect {
	if !d.split {
		return Rect{}
	}
	first, _ := splitRect(d.rect, d.vertical, d.ratio)
	if d.vertical {
		return Rect{X: first.X + first.W - thickness/2, Y: d.rect.Y, W: thickness, H: d.rect.H}
	}
	return Rect{X: d.rect.X, Y: first.Y + first.H - thickness/2, W: d.rect.W, H: thickness}
}

// Walk visits the node and its descendants depth-first, first child first.
// Returning false from fn stops the walk.
func (d *DockSpace) Walk(fn func(*DockSpace) bool) bool {
	if !fn(d) {
		return false
	}
	for _, c := range d.Children() {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// LeafAt returns the leaf whose rect contains p, or nil.
func (d *DockSpace) LeafAt(p Vec2) *DockSpace {
	if !d.rect.Contains(p) {
		return nil
	}
	if !d.split {
		return d
	}
	for _, c := range d.Children() {
		if leaf := c.LeafAt(p); leaf != nil {
			return leaf
		}
	}
	return nil
}

// FindLeaf returns the leaf beneath d hosting the named window, or nil.
func (d *DockSpace) FindLeaf(windowName string) *DockSpace {
	var found *DockSpace
	d.Walk(func(n *DockSpace) bool {
		if n.HasWindow(windowName) {
			found = n
			return false
		}
		return true
	})
	return found
}
