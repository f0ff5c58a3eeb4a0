/*
Package editorui provides the window management core of a level editor:
dockable windows, tab containers, saved layouts and property panels with
undo and redo.

# Overview

An Editor owns every subsystem and is driven once per frame. Windows are
registered by name; a DockingManager arranges them into split trees of
DockSpace nodes, a LayoutManager saves and restores those trees as JSON, and
PropertyPanel values are edited through PropertyEditor widgets whose changes
are recorded as undoable commands.

Rendering is backend-neutral. Render fills a DrawList with rectangles and
text; backend/opengl draws it.

# Quick Start

	cfg, _ := editorui.LoadConfig("editor.yaml")
	ed, _ := editorui.NewEditor(cfg)
	defer ed.Close()

	ed.Windows.CreateWindow("SceneViewWindow", "Scene", editorui.Rect{W: 400, H: 300})
	ed.Windows.CreateWindow("PropertyGridWindow", "Properties", editorui.Rect{W: 400, H: 300})
	ed.Layout.LoadPreset("Default")
	ed.AddPanel("PropertyGridWindow", panel)

	for !window.ShouldClose() {
	    ed.Frame(input, viewport, dt)

	    dl := editorui.AcquireDrawList()
	    ed.Render(dl)
	    renderer.Render(dl)
	    editorui.ReleaseDrawList(dl)
	}

# Docking

Every dock space is a binary tree. A leaf holds docked windows shown as
tabs; a branch holds exactly two children named "<name>.0" and "<name>.1"
split side by side (vertical) or stacked, with a ratio clamped to
[MinSplitRatio, MaxSplitRatio].

	ed.Docking.DockWindowToWindow("Console", "SceneViewWindow", editorui.DockZoneBottom, 0.3)

Dropping onto a window's edge band splits its leaf and puts the dragged
window on that side; the center adds it as a tab. Corner zones resolve to
the adjacent side. Emptied leaves collapse into their sibling.

Dragging starts when a title bar or tab moves TabDragThreshold pixels with
the left button held. While dragging, the window under the pointer is found
topmost first, ignoring the dragged window and inactive tabs.

# Layouts

Layouts are JSON documents carrying a version, window states, dock trees
and tab containers. Loading validates the whole document before touching
any state, so a rejected file leaves the current layout intact.

	ed.Layout.SavePreset("Mine", "Two views", "User")
	ed.Layout.LoadPreset("Dual View")

Built-in presets cannot be overwritten or deleted. User presets live as one
file each in the preset directory. With watch_presets set, files added or
changed there are picked up while the editor runs.

# Properties

A PropertyPanel binds registered properties to a PropertyTarget. Each edit
is validated, executed as a PropertyCommand and pushed on the undo stack.
Batches group several edits into one entry and are applied atomically: if
any step fails, the ones already applied are rolled back.

	panel.BeginBatchEdit("Reset transform")
	panel.HandlePropertyEdit("position", editorui.Vec3Value(mgl32.Vec3{}))
	panel.HandlePropertyEdit("rotation", editorui.Vec3Value(mgl32.Vec3{}))
	panel.EndBatchEdit()

# Keyboard Shortcuts Reference

Editor:

	Ctrl+Z           Undo in the focused panel
	Ctrl+Y           Redo in the focused panel
	Ctrl+Shift+Z     Redo in the focused panel
	Ctrl+S           Save the layout to the auto-save path
	Ctrl+PgUp        Previous tab in a tab container
	Ctrl+PgDown      Next tab in a tab container
	Escape           Cancel a window drag

Property editors:

	Enter, Tab       Commit the edited text
	Escape           Cancel the edit
	Backspace        Delete the last character
	Ctrl+C           Copy the edited text
	Ctrl+V           Paste into the edited text

On macOS the Command key acts as Ctrl.

# Configuration

LoadConfig reads YAML or TOML by extension. A missing file yields
DefaultConfig.

	docking:
	  edge_band: 50
	  default_ratio: 0.5
	undo:
	  max_levels: 100
	layout:
	  preset_dir: layouts/presets
	  watch_presets: true
	  autosave_path: layouts/autosave.json
	  autosave_interval: 5m

# Logging

The package logs through log/slog. SetLogger replaces the handler and
SetVerbose enables debug output.
*/
package editorui
