package editorui

// DockZone is the edge or center of a target where a dragged window lands.
// Values are persisted as integers in layout files.
type DockZone int

const (
	DockZoneNone DockZone = iota
	DockZoneLeft
	DockZoneRight
	DockZoneTop
	DockZoneBottom
	DockZoneCenter
	DockZoneTopLeft
	DockZoneTopRight
	DockZoneBottomLeft
	DockZoneBottomRight
)

// DefaultDockEdgeBand is the default width of the edge drop bands in pixels.
const DefaultDockEdgeBand float32 = 50

func (z DockZone) String() string {
	switch z {
	case DockZoneNone:
		return "None"
	case DockZoneLeft:
		return "Left"
	case DockZoneRight:
		return "Right"
	case DockZoneTop:
		return "Top"
	case DockZoneBottom:
		return "Bottom"
	case DockZoneCenter:
		return "Center"
	case DockZoneTopLeft:
		return "TopLeft"
	case DockZoneTopRight:
		return "TopRight"
	case DockZoneBottomLeft:
		return "BottomLeft"
	case DockZoneBottomRight:
		return "BottomRight"
	}
	return "Unknown"
}

// IsEdge reports whether z splits the target rather than tabbing into it.
func (z DockZone) IsEdge() bool {
	switch z {
	case DockZoneLeft, DockZoneRight, DockZoneTop, DockZoneBottom:
		return true
	}
	return false
}

// Normalize maps corner zones onto the horizontal edge they share and
// leaves the other zones unchanged. Unknown values become DockZoneNone.
func (z DockZone) Normalize() DockZone {
	switch z {
	case DockZoneTopLeft, DockZoneBottomLeft:
		return DockZoneLeft
	case DockZoneTopRight, DockZoneBottomRight:
		return DockZoneRight
	}
	if z < DockZoneNone || z > DockZoneBottomRight {
		return DockZoneNone
	}
	return z
}

// splitsVertically reports whether docking into z places the windows side by side.
func (z DockZone) splitsVertically() bool {
	return z == DockZoneLeft || z == DockZoneRight
}

// sourceFirst reports whether the dropped window becomes the first child of the split.
func (z DockZone) sourceFirst() bool {
	return z == DockZoneLeft || z == DockZoneTop
}

// ResolveZone returns the zone of r that p falls in, or DockZoneNone when p is
// outside r. Left and Right bands are checked before Top and Bottom, so corners
// resolve to the side; Center is the fallback.
func ResolveZone(r Rect, p Vec2, band float32) DockZone {
	if !r.Contains(p) {
		return DockZoneNone
	}
	if band <= 0 {
		return DockZoneCenter
	}
	switch {
	case p.X < r.X+band:
		return DockZoneLeft
	case p.X > r.X+r.W-band:
		return DockZoneRight
	case p.Y < r.Y+band:
		return DockZoneTop
	case p.Y > r.Y+r.H-band:
		return DockZoneBottom
	}
	return DockZoneCenter
}

// ZonePreviewRect returns the area a window dropped on r at zone would occupy.
// ratio is the share of r given to the dropped window.
func ZonePreviewRect(r Rect, zone DockZone, ratio float32) Rect {
	ratio = clampf(ratio, MinSplitRatio, MaxSplitRatio)
	switch zone.Normalize() {
	case DockZoneLeft:
		return Rect{X: r.X, Y: r.Y, W: r.W * ratio, H: r.H}
	case DockZoneRight:
		w := r.W * ratio
		return Rect{X: r.X + r.W - w, Y: r.Y, W: w, H: r.H}
	case DockZoneTop:
		return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H * ratio}
	case DockZoneBottom:
		h := r.H * ratio
		return Rect{X: r.X, Y: r.Y + r.H - h, W: r.W, H: h}
	case DockZoneCenter:
		return r
	}
	return Rect{}
}
