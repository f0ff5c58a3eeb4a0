package editorui

// splitterDrag tracks an in-progress divider resize.
type splitterDrag struct {
	nodeID string
}

// resizingSplit reports whether a divider is being dragged.
func (m *DockingManager) resizingSplit() bool { return m.resizing.nodeID != "" }

// tabRects returns the header rect of every tab in a leaf.
func tabRects(leaf *DockSpace, style Style) []Rect {
	rects := make([]Rect, len(leaf.windows))
	x := leaf.rect.X
	for i, dw := range leaf.windows {
		w := style.TextWidth(dw.Title) + 2*SpaceMD
		rects[i] = Rect{X: x, Y: leaf.rect.Y, W: w, H: style.TabBarHeight}
		x += w + SpaceXS
	}
	return rects
}

// TabAt returns the window whose tab header is under p, or "".
func (m *DockingManager) TabAt(p Vec2, style Style) string {
	for _, d := range m.AllDockSpaces() {
		if d.split {
			continue
		}
		for i, r := range tabRects(d, style) {
			if r.Contains(p) {
				return d.windows[i].Name
			}
		}
	}
	return ""
}

// SplitterAt returns the branch whose divider is under p, or nil.
func (m *DockingManager) SplitterAt(p Vec2, style Style) *DockSpace {
	for _, d := range m.AllDockSpaces() {
		if d.split && d.SplitterRect(style.SplitterThickness).Contains(p) {
			return d
		}
	}
	return nil
}

// HandleInput resizes splits by dragging dividers and activates tabs on click.
// It returns true when the input was consumed.
func (m *DockingManager) HandleInput(in *InputState, style Style) bool {
	if in == nil || m.IsDragging() {
		return false
	}
	mouse := in.MousePos()

	if m.resizing.nodeID != "" {
		d := m.arena.get(m.resizing.nodeID)
		if d == nil || !in.MouseDown(MouseButtonLeft) {
			m.resizing = splitterDrag{}
			return d != nil
		}
		if d.vertical && d.rect.W > 0 {
			d.SetSplitRatio((mouse.X - d.rect.X) / d.rect.W)
		} else if !d.vertical && d.rect.H > 0 {
			d.SetSplitRatio((mouse.Y - d.rect.Y) / d.rect.H)
		}
		return true
	}

	if !in.MouseClicked(MouseButtonLeft) {
		return false
	}
	if d := m.SplitterAt(mouse, style); d != nil {
		m.resizing = splitterDrag{nodeID: d.id}
		return true
	}
	if name := m.TabAt(mouse, style); name != "" {
		if host := m.HostOf(name); host != nil {
			host.SetActiveWindow(name)
		}
		return true
	}
	return false
}

// Render draws every dock tree, floating windows' frames and the drag preview.
func (m *DockingManager) Render(dl *DrawList, style Style) {
	for _, root := range m.DockSpaces() {
		root.Walk(func(d *DockSpace) bool {
			m.renderNode(dl, d, style)
			return true
		})
	}

	for _, w := range m.windows.Windows() {
		if !w.Visible || w.Minimized || m.HostOf(w.Name) != nil {
			continue
		}
		if m.embedded != nil && m.embedded(w.Name) {
			continue
		}
		r := w.Rect()
		dl.AddRect(r, style.FloatingBgColor)
		if !w.Flags.Has(WindowFlagNoTitleBar) {
			bar := Rect{X: r.X, Y: r.Y, W: r.W, H: style.TitleBarHeight}
			dl.AddRect(bar, style.TitleBarColor)
			dl.AddTextClipped(Vec2{X: bar.X + SpaceSM, Y: bar.Y + (bar.H-style.CharHeight)/2},
				w.Title, bar.W-2*SpaceSM, style.TitleBarTextColor, style)
		}
		dl.AddRectOutline(r, style.DockBorderColor, style.BorderSize)
	}

	if !m.IsDragging() {
		return
	}
	if p := m.drag.preview; p.W > 0 && p.H > 0 {
		dl.AddRect(p, style.PreviewColor)
		dl.AddRectOutline(p, style.PreviewBorderColor, 2)
	}
	if g := m.drag.ghost; g.W > 0 && g.H > 0 {
		dl.AddRectOutline(g, style.PreviewBorderColor, 1)
	}
	if m.snapper != nil {
		m.snapper.DrawGuides(dl, style)
	}
}

func (m *DockingManager) renderNode(dl *DrawList, d *DockSpace, style Style) {
	if d.split {
		color := style.SplitterColor
		if m.resizing.nodeID == d.id {
			color = style.SplitterHotColor
		}
		dl.AddRect(d.SplitterRect(style.SplitterThickness), color)
		return
	}
	dl.AddRect(d.rect, style.DockBgColor)
	dl.AddRectOutline(d.rect, style.DockBorderColor, style.BorderSize)
	if len(d.windows) == 0 {
		return
	}
	dl.PushClipRect(d.rect)
	for i, r := range tabRects(d, style) {
		bg := style.TabColor
		if i == d.active {
			bg = style.TabActiveColor
		}
		dl.AddRect(r, bg)
		dl.AddText(Vec2{X: r.X + SpaceMD, Y: r.Y + (r.H-style.CharHeight)/2}, d.windows[i].Title, style.TextColor, style)
	}
	dl.PopClipRect()
}
