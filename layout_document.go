package editorui

// CurrentLayoutVersion is the layout file version written by this package.
// Files with a newer version are loaded best-effort.
const CurrentLayoutVersion = 1

// LayoutDocument is the persisted form of a layout.
type LayoutDocument struct {
	Version         int                    `json:"version"`
	Windows         map[string]WindowState `json:"windows,omitempty"`
	DockLayout      *DockLayoutState       `json:"dockLayout,omitempty"`
	TabArrangements *TabArrangementState   `json:"tabArrangements,omitempty"`
}

// WindowState is the persisted state of one window, keyed by name in LayoutDocument.
type WindowState struct {
	Name        string     `json:"name,omitempty"`
	Title       string     `json:"title"`
	IsVisible   bool       `json:"isVisible"`
	IsMinimized bool       `json:"isMinimized"`
	IsMaximized bool       `json:"isMaximized"`
	Position    [2]float32 `json:"position"`
	Size        [2]float32 `json:"size"`
	Type        int        `json:"type"`
	Flags       uint32     `json:"flags"`
	Monitor     string     `json:"monitor,omitempty"`
}

// DockLayoutState is the persisted dock tree: a flat node list linked by id.
type DockLayoutState struct {
	DockSpaces    []DockSpaceState    `json:"dockSpaces"`
	Relationships []RelationshipState `json:"relationships"`
}

// DockSpaceState is one persisted dock space node.
type DockSpaceState struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Position   [2]float32 `json:"position"`
	Size       [2]float32 `json:"size"`
	IsSplit    bool       `json:"isSplit"`
	IsVertical bool       `json:"isVertical,omitempty"`
	SplitRatio float32    `json:"splitRatio,omitempty"`
	Children   []string   `json:"children,omitempty"`
	Windows    []string   `json:"windows"`
}

// RelationshipState is a persisted DockRelationship.
type RelationshipState struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Zone   int     `json:"zone"`
	Ratio  float32 `json:"ratio,omitempty"`
}

// TabArrangementState is the persisted tab system.
type TabArrangementState struct {
	Containers []TabContainerState `json:"containers"`
	Groups     []TabGroupState     `json:"groups"`
}

// TabContainerState is one persisted tab container. ActiveTab names the active tab.
type TabContainerState struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Position  [2]float32 `json:"position"`
	Size      [2]float32 `json:"size"`
	ActiveTab string     `json:"activeTab,omitempty"`
	Tabs      []TabState `json:"tabs"`
}

// TabState is one persisted tab.
type TabState struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	IsVisible   bool   `json:"isVisible"`
	CanClose    bool   `json:"canClose"`
	Order       int    `json:"order"`
	Content     string `json:"content,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// TabGroupState is one persisted tab group.
type TabGroupState struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Containers []string `json:"containers"`
}

func vec2Array(v Vec2) [2]float32 { return [2]float32{v.X, v.Y} }

func arrayVec2(a [2]float32) Vec2 { return Vec2{X: a[0], Y: a[1]} }
