package editorui

import "testing"

func TestInputState_Edges(t *testing.T) {
	in := NewInputState()
	in.SetMouseButton(MouseButtonLeft, true)
	in.SetKey(KeyZ, true)
	if !in.MouseClicked(MouseButtonLeft) || !in.KeyPressed(KeyZ) {
		t.Fatal("Expected press edges on the first frame")
	}

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	in.SetKey(KeyZ, true)
	if in.MouseClicked(MouseButtonLeft) || in.KeyPressed(KeyZ) {
		t.Error("Expected no press edges while held")
	}
	if !in.MouseDown(MouseButtonLeft) || !in.KeyDown(KeyZ) {
		t.Error("Expected button and key to stay down")
	}

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	if !in.MouseReleased(MouseButtonLeft) || in.MouseDown(MouseButtonLeft) {
		t.Error("Expected a release edge")
	}
	if in.MouseClicked(MouseButtonCount) || in.KeyPressed(KeyCount) {
		t.Error("Expected out-of-range queries to report false")
	}
}

func TestInputState_MouseDeltaAndChars(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(10, 20)
	in.Reset()
	in.SetMousePos(15, 18)
	if d := in.MouseDelta(); d != (Vec2{X: 5, Y: -2}) {
		t.Errorf("Expected delta {5 -2}, got %+v", d)
	}

	in.AddInputChar('a')
	in.MouseWheelY = 1
	in.Reset()
	if len(in.InputChars) != 0 || in.MouseWheelY != 0 {
		t.Error("Expected Reset to clear typed characters and wheel")
	}
}

func TestInputState_Pressed(t *testing.T) {
	in := NewInputState()
	in.ModCtrl = true
	in.SetKey(KeyZ, true)
	if !in.Pressed(ShortcutUndo) {
		t.Error("Expected Ctrl+Z to match undo")
	}
	if in.Pressed(ShortcutRedoAlt) {
		t.Error("Expected Ctrl+Z not to match Ctrl+Shift+Z")
	}
	in.ModAlt = true
	if in.Pressed(ShortcutUndo) {
		t.Error("Expected extra modifiers to break the match")
	}

	ev := Event{Kind: EventKeyPressed, Key: KeyS, Mods: Modifiers{Ctrl: true}}
	if !ShortcutSave.Matches(ev) {
		t.Error("Expected Ctrl+S event to match save")
	}
	ev.Kind = EventTextInput
	if ShortcutSave.Matches(ev) {
		t.Error("Expected non-key events not to match")
	}
}
