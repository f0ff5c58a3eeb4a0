package editorui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyC
	KeyS
	KeyV
	KeyY
	KeyZ
	KeyCount
)

// InputState holds input state for the current frame.
// It is populated by a platform adapter such as backend/opengl.GLFWInputAdapter.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	MouseWheelY float32

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	// Unicode characters typed this frame.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool

	lastMouse Vec2
}

// Shortcut is a key pressed with an exact set of modifiers.
type Shortcut struct {
	Key  Key
	Mods Modifiers
}

// Editor shortcuts. On macOS the backend reports Command as Ctrl.
var (
	ShortcutUndo    = Shortcut{Key: KeyZ, Mods: Modifiers{Ctrl: true}}
	ShortcutRedo    = Shortcut{Key: KeyY, Mods: Modifiers{Ctrl: true}}
	ShortcutRedoAlt = Shortcut{Key: KeyZ, Mods: Modifiers{Ctrl: true, Shift: true}}
	ShortcutCopy    = Shortcut{Key: KeyC, Mods: Modifiers{Ctrl: true}}
	ShortcutPaste   = Shortcut{Key: KeyV, Mods: Modifiers{Ctrl: true}}
	ShortcutSave    = Shortcut{Key: KeyS, Mods: Modifiers{Ctrl: true}}
	ShortcutPrevTab = Shortcut{Key: KeyPageUp, Mods: Modifiers{Ctrl: true}}
	ShortcutNextTab = Shortcut{Key: KeyPageDown, Mods: Modifiers{Ctrl: true}}
)

// Matches reports whether a key event is this shortcut.
func (sc Shortcut) Matches(ev Event) bool {
	return ev.Kind == EventKeyPressed && ev.Key == sc.Key && ev.Mods == sc.Mods
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelY = 0
	s.lastMouse = Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the mouse position as a vector.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDelta returns how far the mouse moved since the last Reset.
func (s *InputState) MouseDelta() Vec2 {
	return Vec2{X: s.MouseX - s.lastMouse.X, Y: s.MouseY - s.lastMouse.Y}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// Mods returns the modifiers held this frame.
func (s *InputState) Mods() Modifiers {
	return Modifiers{Ctrl: s.ModCtrl, Shift: s.ModShift, Alt: s.ModAlt}
}

// Pressed reports whether sc's key was pressed this frame with exactly its
// modifiers held.
func (s *InputState) Pressed(sc Shortcut) bool {
	return s.KeyPressed(sc.Key) && s.Mods() == sc.Mods
}

// ConsumeInputChars clears all typed characters for this frame.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
