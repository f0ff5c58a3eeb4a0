package editorui

import (
	"slices"

	"github.com/chewxy/math32"
)

// SnapSettings configures window snapping.
type SnapSettings struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	SnapDistance  float32 `yaml:"snap_distance" toml:"snap_distance"`
	SnapToEdges   bool    `yaml:"snap_to_edges" toml:"snap_to_edges"`
	SnapToWindows bool    `yaml:"snap_to_windows" toml:"snap_to_windows"`
	SnapToGrid    bool    `yaml:"snap_to_grid" toml:"snap_to_grid"`
	GridSize      float32 `yaml:"grid_size" toml:"grid_size"`
	ShowGuides    bool    `yaml:"show_guides" toml:"show_guides"`
}

// DefaultSnapSettings returns edge and window snapping within 10px, grid off.
func DefaultSnapSettings() SnapSettings {
	return SnapSettings{
		Enabled:       true,
		SnapDistance:  10,
		SnapToEdges:   true,
		SnapToWindows: true,
		SnapToGrid:    false,
		GridSize:      20,
		ShowGuides:    true,
	}
}

// SnapGuide represents a visual snap guide line.
type SnapGuide struct {
	X1, Y1, X2, Y2 float32
	Horizontal     bool
}

// snapCandidate is a possible snapped coordinate on one axis.
type snapCandidate struct {
	dist  float32
	value float32 // new window X or Y
	guide SnapGuide
}

// WindowSnapper snaps a dragged window's position to screen edges, other
// windows and a grid.
type WindowSnapper struct {
	windows      *WindowRegistry
	screenSize   Vec2
	settings     SnapSettings
	activeGuides []SnapGuide
}

// NewWindowSnapper creates a snapper that reads other windows from the registry.
func NewWindowSnapper(windows *WindowRegistry, settings SnapSettings) *WindowSnapper {
	return &WindowSnapper{
		windows:      windows,
		settings:     settings,
		activeGuides: make([]SnapGuide, 0, 4),
	}
}

// SetScreenSize updates the screen size for edge snapping.
func (s *WindowSnapper) SetScreenSize(size Vec2) {
	s.screenSize = size
}

// Settings returns the snap settings.
func (s *WindowSnapper) Settings() SnapSettings { return s.settings }

// SetSettings updates the snap settings.
func (s *WindowSnapper) SetSettings(settings SnapSettings) {
	s.settings = settings
}

// Snap returns the snapped position for the named window occupying r, and a
// copy of the guides it produced. On each axis the closest candidate within
// SnapDistance wins; the grid is used only on axes where nothing else matched.
func (s *WindowSnapper) Snap(name string, r Rect) (Vec2, []SnapGuide) {
	s.activeGuides = s.activeGuides[:0]
	if !s.settings.Enabled {
		return r.Pos(), nil
	}

	var xs, ys []snapCandidate
	if s.settings.SnapToEdges && s.screenSize.X > 0 && s.screenSize.Y > 0 {
		xs, ys = s.screenCandidates(r, xs, ys)
	}
	if s.settings.SnapToWindows && s.windows != nil {
		for _, other := range s.windows.Windows() {
			if other.Name == name || !other.Visible || other.Minimized {
				continue
			}
			xs, ys = windowCandidates(r, other.Rect(), xs, ys)
		}
	}

	pos := r.Pos()
	bestX, okX := s.closest(xs)
	bestY, okY := s.closest(ys)
	if okX {
		pos.X = bestX.value
		s.activeGuides = append(s.activeGuides, bestX.guide)
	}
	if okY {
		pos.Y = bestY.value
		s.activeGuides = append(s.activeGuides, bestY.guide)
	}
	if s.settings.SnapToGrid && s.settings.GridSize > 0 {
		if !okX {
			pos.X = snapToGrid(pos.X, s.settings.GridSize)
		}
		if !okY {
			pos.Y = snapToGrid(pos.Y, s.settings.GridSize)
		}
	}
	if !s.settings.ShowGuides {
		s.activeGuides = s.activeGuides[:0]
	}
	return pos, slices.Clone(s.activeGuides)
}

func (s *WindowSnapper) closest(cands []snapCandidate) (snapCandidate, bool) {
	var best snapCandidate
	found := false
	for _, c := range cands {
		if c.dist > s.settings.SnapDistance {
			continue
		}
		if !found || c.dist < best.dist {
			best = c
			found = true
		}
	}
	return best, found
}

// screenCandidates adds the screen edges and center lines.
func (s *WindowSnapper) screenCandidates(r Rect, xs, ys []snapCandidate) ([]snapCandidate, []snapCandidate) {
	sw, sh := s.screenSize.X, s.screenSize.Y
	vertical := func(x float32) SnapGuide { return SnapGuide{X1: x, Y1: 0, X2: x, Y2: sh} }
	horizontal := func(y float32) SnapGuide { return SnapGuide{X1: 0, Y1: y, X2: sw, Y2: y, Horizontal: true} }

	xs = append(xs,
		snapCandidate{dist: math32.Abs(r.X), value: 0, guide: vertical(0)},
		snapCandidate{dist: math32.Abs(r.X + r.W - sw), value: sw - r.W, guide: vertical(sw)},
		snapCandidate{dist: math32.Abs(r.X + r.W/2 - sw/2), value: sw/2 - r.W/2, guide: vertical(sw / 2)},
	)
	ys = append(ys,
		snapCandidate{dist: math32.Abs(r.Y), value: 0, guide: horizontal(0)},
		snapCandidate{dist: math32.Abs(r.Y + r.H - sh), value: sh - r.H, guide: horizontal(sh)},
		snapCandidate{dist: math32.Abs(r.Y + r.H/2 - sh/2), value: sh/2 - r.H/2, guide: horizontal(sh / 2)},
	)
	return xs, ys
}

// windowCandidates adds abutting and aligned edges of another window.
func windowCandidates(r, o Rect, xs, ys []snapCandidate) ([]snapCandidate, []snapCandidate) {
	y1, y2 := math32.Min(r.Y, o.Y), math32.Max(r.Y+r.H, o.Y+o.H)
	x1, x2 := math32.Min(r.X, o.X), math32.Max(r.X+r.W, o.X+o.W)
	vertical := func(x float32) SnapGuide { return SnapGuide{X1: x, Y1: y1, X2: x, Y2: y2} }
	horizontal := func(y float32) SnapGuide { return SnapGuide{X1: x1, Y1: y, X2: x2, Y2: y, Horizontal: true} }

	left, right := o.X, o.X+o.W
	top, bottom := o.Y, o.Y+o.H
	xs = append(xs,
		snapCandidate{dist: math32.Abs(r.X + r.W - left), value: left - r.W, guide: vertical(left)},
		snapCandidate{dist: math32.Abs(r.X - left), value: left, guide: vertical(left)},
		snapCandidate{dist: math32.Abs(r.X - right), value: right, guide: vertical(right)},
		snapCandidate{dist: math32.Abs(r.X + r.W - right), value: right - r.W, guide: vertical(right)},
	)
	ys = append(ys,
		snapCandidate{dist: math32.Abs(r.Y + r.H - top), value: top - r.H, guide: horizontal(top)},
		snapCandidate{dist: math32.Abs(r.Y - top), value: top, guide: horizontal(top)},
		snapCandidate{dist: math32.Abs(r.Y - bottom), value: bottom, guide: horizontal(bottom)},
		snapCandidate{dist: math32.Abs(r.Y + r.H - bottom), value: bottom - r.H, guide: horizontal(bottom)},
	)
	return xs, ys
}

// snapToGrid rounds v to the nearest multiple of grid.
func snapToGrid(v, grid float32) float32 {
	return math32.Round(v/grid) * grid
}

// DrawGuides draws the active snap guide lines.
func (s *WindowSnapper) DrawGuides(dl *DrawList, style Style) {
	for _, g := range s.activeGuides {
		dl.AddLine(Vec2{X: g.X1, Y: g.Y1}, Vec2{X: g.X2, Y: g.Y2}, style.GuideColor, 1)
	}
}

// ActiveGuides returns a copy of the guides produced by the last Snap call.
func (s *WindowSnapper) ActiveGuides() []SnapGuide {
	return slices.Clone(s.activeGuides)
}

// ClearGuides clears the active snap guides.
func (s *WindowSnapper) ClearGuides() {
	s.activeGuides = s.activeGuides[:0]
}
