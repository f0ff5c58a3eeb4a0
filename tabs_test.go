package editorui

import "testing"

func TestTabContainer_AddRemove(t *testing.T) {
	ts := NewTabSystem()
	c := ts.CreateContainer("Main")

	if !c.AddTab(Tab{Name: "Scene", Content: "SceneView"}) || !c.AddTab(Tab{Name: "Props", Title: "Properties"}) {
		t.Fatal("Expected tabs to be added")
	}
	if c.AddTab(Tab{Name: "Scene"}) {
		t.Error("Expected duplicate tab name to be rejected")
	}
	if c.AddTab(Tab{}) {
		t.Error("Expected unnamed tab to be rejected")
	}
	if c.TabCount() != 2 {
		t.Errorf("Expected 2 tabs, got %d", c.TabCount())
	}
	scene, _ := c.Tab("Scene")
	if scene.Title != "Scene" || scene.Order != 0 {
		t.Errorf("Expected default title and order 0, got %+v", scene)
	}

	if !c.RemoveTab("Scene") {
		t.Error("RemoveTab returned false for existing tab")
	}
	if c.RemoveTab("Scene") {
		t.Error("RemoveTab returned true for removed tab")
	}
	props, _ := c.Tab("Props")
	if props.Order != 0 {
		t.Errorf("Expected Props to be renumbered to 0, got %d", props.Order)
	}
}

func TestTabContainer_TabSwitching(t *testing.T) {
	c := NewTabSystem().CreateContainer("Main")
	c.AddTab(Tab{Name: "A"})
	c.AddTab(Tab{Name: "B"})
	c.AddTab(Tab{Name: "C"})

	if c.ActiveIndex() != 0 {
		t.Errorf("Expected first tab active, got %d", c.ActiveIndex())
	}
	c.NextTab()
	c.NextTab()
	c.NextTab()
	if c.ActiveIndex() != 0 {
		t.Errorf("Expected NextTab to wrap to 0, got %d", c.ActiveIndex())
	}
	c.PrevTab()
	if c.ActiveIndex() != 2 {
		t.Errorf("Expected PrevTab to wrap to 2, got %d", c.ActiveIndex())
	}
	c.SetActiveTab(10)
	if c.ActiveIndex() != 2 {
		t.Error("Expected out-of-range SetActiveTab to be ignored")
	}
	if !c.SetActiveTabByName("B") || c.ActiveIndex() != 1 {
		t.Error("Expected SetActiveTabByName to activate B")
	}
	if c.SetActiveTabByName("Z") {
		t.Error("Expected SetActiveTabByName to fail for unknown tab")
	}
}

func TestTabContainer_RemoveActiveAdjusts(t *testing.T) {
	c := NewTabSystem().CreateContainer("Main")
	c.AddTab(Tab{Name: "A"})
	c.AddTab(Tab{Name: "B"})
	c.AddTab(Tab{Name: "C"})
	c.SetActiveTab(2)

	c.RemoveTab("A")
	if active, _ := c.ActiveTab(); active.Name != "C" {
		t.Errorf("Expected C to stay active, got %s", active.Name)
	}
	c.RemoveTab("C")
	if active, _ := c.ActiveTab(); active.Name != "B" {
		t.Errorf("Expected B to become active, got %s", active.Name)
	}
	c.RemoveTab("B")
	if _, ok := c.ActiveTab(); ok {
		t.Error("Expected no active tab in an empty container")
	}
}

func TestTabContainer_MoveTab(t *testing.T) {
	c := NewTabSystem().CreateContainer("Main")
	c.AddTab(Tab{Name: "A"})
	c.AddTab(Tab{Name: "B"})
	c.AddTab(Tab{Name: "C"})
	c.SetActiveTabByName("A")

	if !c.MoveTab("A", 2) {
		t.Fatal("Expected MoveTab to succeed")
	}
	tabs := c.Tabs()
	if tabs[0].Name != "B" || tabs[2].Name != "A" || tabs[2].Order != 2 {
		t.Errorf("Expected order B,C,A, got %v,%v,%v", tabs[0].Name, tabs[1].Name, tabs[2].Name)
	}
	if active, _ := c.ActiveTab(); active.Name != "A" {
		t.Errorf("Expected A to stay active, got %s", active.Name)
	}
	if c.MoveTab("A", 3) || c.MoveTab("Z", 0) {
		t.Error("Expected invalid moves to fail")
	}
}

func TestTabContainer_KeyboardNavigation(t *testing.T) {
	c := NewTabSystem().CreateContainer("Main")
	c.AddTab(Tab{Name: "A"})
	c.AddTab(Tab{Name: "B"})

	in := NewInputState()
	in.SetKey(KeyPageDown, true)
	if c.HandleInput(in) {
		t.Error("Expected PageDown without Ctrl to be ignored")
	}
	in.ModCtrl = true
	if !c.HandleInput(in) || c.ActiveIndex() != 1 {
		t.Error("Expected Ctrl+PageDown to select the next tab")
	}
	in.Reset()
	in.SetKey(KeyPageDown, false)
	in.SetKey(KeyPageUp, true)
	if !c.HandleInput(in) || c.ActiveIndex() != 0 {
		t.Error("Expected Ctrl+PageUp to select the previous tab")
	}
}

func TestTabContainer_RestoreTabsSortsByOrder(t *testing.T) {
	c := NewTabSystem().CreateContainer("Main")
	c.restoreTabs([]Tab{
		{Name: "Second", Order: 5},
		{Name: "First", Order: 1},
		{Name: "First", Order: 2},
	}, 1)
	tabs := c.Tabs()
	if len(tabs) != 2 || tabs[0].Name != "First" || tabs[1].Name != "Second" {
		t.Errorf("Expected First, Second, got %+v", tabs)
	}
	if c.ActiveIndex() != 1 {
		t.Errorf("Expected active index 1, got %d", c.ActiveIndex())
	}
}

func TestTabSystem_ContainersAndGroups(t *testing.T) {
	ts := NewTabSystem()
	a := ts.CreateContainer("A")
	b := ts.CreateContainer("B")
	if a.ID == "" || a.ID == b.ID {
		t.Error("Expected unique container ids")
	}
	if ts.Container(a.ID) != a || ts.ContainerByName("B") != b {
		t.Error("Expected lookups by id and name to work")
	}

	g := ts.CreateGroup("Group", a.ID, b.ID, a.ID, "missing")
	if len(g.Containers) != 2 {
		t.Errorf("Expected 2 unique known containers in the group, got %v", g.Containers)
	}
	if !ts.RemoveContainer(a.ID) {
		t.Fatal("Expected RemoveContainer to succeed")
	}
	if len(ts.Group(g.ID).Containers) != 1 {
		t.Error("Expected the removed container to leave the group")
	}
	if len(ts.Containers()) != 1 || len(ts.Groups()) != 1 {
		t.Error("Expected one container and one group")
	}

	ts.Clear()
	if len(ts.Containers()) != 0 || len(ts.Groups()) != 0 {
		t.Error("Expected Clear to remove everything")
	}
}
