package editorui

import (
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Tab is one entry of a TabContainer. Content names the window shown by the tab.
type Tab struct {
	Name        string
	Title       string
	Visible     bool
	CanClose    bool
	Order       int
	Content     string
	ContentType string
}

// TabContainer is an ordered set of tabs with one active tab.
//
// Usage:
//
//	c := tabs.CreateContainer("MainTabs")
//	c.AddTab(editorui.Tab{Name: "Scene", Content: "SceneView"})
//	c.AddTab(editorui.Tab{Name: "Props", Content: "PropertyGrid"})
//
// Tab switching:
// - Ctrl+PgUp/PgDown to cycle tabs
type TabContainer struct {
	ID       string
	Name     string
	Position Vec2
	Size     Vec2

	tabs   []Tab
	active int
}

// AddTab appends a tab. Tabs are unique by name; a duplicate returns false.
// A tab without a title uses its name, and its Order is its position.
func (c *TabContainer) AddTab(t Tab) bool {
	if t.Name == "" || c.tabIndex(t.Name) >= 0 {
		return false
	}
	if t.Title == "" {
		t.Title = t.Name
	}
	t.Order = len(c.tabs)
	c.tabs = append(c.tabs, t)
	return true
}

// RemoveTab removes a tab by name.
// Returns true if the tab was found and removed.
func (c *TabContainer) RemoveTab(name string) bool {
	i := c.tabIndex(name)
	if i < 0 {
		return false
	}
	c.tabs = append(c.tabs[:i], c.tabs[i+1:]...)
	if i < c.active {
		c.active--
	}
	if c.active >= len(c.tabs) {
		c.active = max(0, len(c.tabs)-1)
	}
	c.renumber()
	return true
}

// Tab returns a tab by name.
func (c *TabContainer) Tab(name string) (Tab, bool) {
	if i := c.tabIndex(name); i >= 0 {
		return c.tabs[i], true
	}
	return Tab{}, false
}

// Tabs returns a copy of the tabs in display order.
func (c *TabContainer) Tabs() []Tab {
	return slices.Clone(c.tabs)
}

// TabCount returns the number of tabs.
func (c *TabContainer) TabCount() int {
	return len(c.tabs)
}

// ActiveIndex returns the index of the active tab.
func (c *TabContainer) ActiveIndex() int {
	return c.active
}

// ActiveTab returns the active tab, or false if the container is empty.
func (c *TabContainer) ActiveTab() (Tab, bool) {
	if c.active < 0 || c.active >= len(c.tabs) {
		return Tab{}, false
	}
	return c.tabs[c.active], true
}

// SetActiveTab sets the active tab by index.
func (c *TabContainer) SetActiveTab(index int) {
	if index >= 0 && index < len(c.tabs) {
		c.active = index
	}
}

// SetActiveTabByName sets the active tab by name.
// Returns true if the tab was found and activated.
func (c *TabContainer) SetActiveTabByName(name string) bool {
	if i := c.tabIndex(name); i >= 0 {
		c.active = i
		return true
	}
	return false
}

// NextTab cycles to the next tab (wraps around).
func (c *TabContainer) NextTab() {
	if len(c.tabs) == 0 {
		return
	}
	c.active = (c.active + 1) % len(c.tabs)
}

// PrevTab cycles to the previous tab (wraps around).
func (c *TabContainer) PrevTab() {
	if len(c.tabs) == 0 {
		return
	}
	c.active--
	if c.active < 0 {
		c.active = len(c.tabs) - 1
	}
}

// MoveTab moves a tab to a new index, keeping the active tab selected.
func (c *TabContainer) MoveTab(name string, to int) bool {
	from := c.tabIndex(name)
	if from < 0 || to < 0 || to >= len(c.tabs) {
		return false
	}
	active := c.tabs[c.active].Name
	t := c.tabs[from]
	c.tabs = slices.Delete(c.tabs, from, from+1)
	c.tabs = slices.Insert(c.tabs, to, t)
	c.renumber()
	c.active = c.tabIndex(active)
	return true
}

// HandleInput cycles tabs with Ctrl+PgUp/PgDown.
func (c *TabContainer) HandleInput(input *InputState) bool {
	if input == nil {
		return false
	}
	if input.Pressed(ShortcutPrevTab) {
		c.PrevTab()
		return true
	}
	if input.Pressed(ShortcutNextTab) {
		c.NextTab()
		return true
	}
	return false
}

func (c *TabContainer) tabIndex(name string) int {
	for i, t := range c.tabs {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (c *TabContainer) renumber() {
	for i := range c.tabs {
		c.tabs[i].Order = i
	}
}

// restoreTabs replaces the tab list, sorting by the persisted Order.
func (c *TabContainer) restoreTabs(tabs []Tab, active int) {
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Order < tabs[j].Order })
	c.tabs = c.tabs[:0]
	for _, t := range tabs {
		if t.Name == "" || c.tabIndex(t.Name) >= 0 {
			continue
		}
		c.tabs = append(c.tabs, t)
	}
	c.renumber()
	c.active = 0
	c.SetActiveTab(active)
}

// TabGroup groups tab containers by id.
type TabGroup struct {
	ID         string
	Name       string
	Containers []string
}

// TabSystem owns the editor's tab containers and tab groups.
type TabSystem struct {
	containers map[string]*TabContainer
	order      []string
	groups     map[string]*TabGroup
	groupOrder []string
}

// NewTabSystem creates an empty tab system.
func NewTabSystem() *TabSystem {
	return &TabSystem{
		containers: make(map[string]*TabContainer),
		groups:     make(map[string]*TabGroup),
	}
}

// CreateContainer creates a container with a fresh id.
func (s *TabSystem) CreateContainer(name string) *TabContainer {
	return s.createContainer(uuid.NewString(), name)
}

func (s *TabSystem) createContainer(id, name string) *TabContainer {
	if c, ok := s.containers[id]; ok {
		return c
	}
	c := &TabContainer{ID: id, Name: name}
	s.containers[id] = c
	s.order = append(s.order, id)
	return c
}

// Container returns a container by id.
func (s *TabSystem) Container(id string) *TabContainer {
	return s.containers[id]
}

// ContainerByName returns the first container with the given name.
func (s *TabSystem) ContainerByName(name string) *TabContainer {
	for _, id := range s.order {
		if c := s.containers[id]; c.Name == name {
			return c
		}
	}
	return nil
}

// RemoveContainer deletes a container and drops it from every group.
func (s *TabSystem) RemoveContainer(id string) bool {
	if _, ok := s.containers[id]; !ok {
		return false
	}
	delete(s.containers, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	for _, g := range s.groups {
		g.Containers = slices.DeleteFunc(g.Containers, func(o string) bool { return o == id })
	}
	return true
}

// Containers returns the containers in creation order.
func (s *TabSystem) Containers() []*TabContainer {
	out := make([]*TabContainer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.containers[id])
	}
	return out
}

// CreateGroup creates a group over existing container ids. Unknown ids are dropped.
func (s *TabSystem) CreateGroup(name string, containerIDs ...string) *TabGroup {
	return s.createGroup(uuid.NewString(), name, containerIDs)
}

func (s *TabSystem) createGroup(id, name string, containerIDs []string) *TabGroup {
	g := &TabGroup{ID: id, Name: name}
	for _, cid := range containerIDs {
		if _, ok := s.containers[cid]; ok && !slices.Contains(g.Containers, cid) {
			g.Containers = append(g.Containers, cid)
		}
	}
	if _, exists := s.groups[id]; !exists {
		s.groupOrder = append(s.groupOrder, id)
	}
	s.groups[id] = g
	return g
}

// Group returns a group by id.
func (s *TabSystem) Group(id string) *TabGroup {
	return s.groups[id]
}

// Groups returns the groups in creation order.
func (s *TabSystem) Groups() []*TabGroup {
	out := make([]*TabGroup, 0, len(s.groupOrder))
	for _, id := range s.groupOrder {
		out = append(out, s.groups[id])
	}
	return out
}

// Clear removes all containers and groups.
func (s *TabSystem) Clear() {
	s.containers = make(map[string]*TabContainer)
	s.order = nil
	s.groups = make(map[string]*TabGroup)
	s.groupOrder = nil
}
