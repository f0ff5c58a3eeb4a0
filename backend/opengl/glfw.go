package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/editorui"
)

// GLFWInputAdapter feeds GLFW window input into an editorui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *editorui.InputState
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  editorui.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Begin clears per-frame state. Call it before glfw.PollEvents so the
// callbacks fill the new frame.
func (a *GLFWInputAdapter) Begin() {
	a.input.Reset()
}

// Update samples the cursor and modifiers after events were polled.
func (a *GLFWInputAdapter) Update() *editorui.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl) ||
		a.pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *editorui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == editorui.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// Auto-repeat re-fires the press edge for text editing keys.
		a.input.SetKey(k, false)
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.MouseWheelY += float32(yoff)
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

var glfwKeys = map[glfw.Key]editorui.Key{
	glfw.KeyTab:       editorui.KeyTab,
	glfw.KeyLeft:      editorui.KeyLeft,
	glfw.KeyRight:     editorui.KeyRight,
	glfw.KeyUp:        editorui.KeyUp,
	glfw.KeyDown:      editorui.KeyDown,
	glfw.KeyPageUp:    editorui.KeyPageUp,
	glfw.KeyPageDown:  editorui.KeyPageDown,
	glfw.KeyHome:      editorui.KeyHome,
	glfw.KeyEnd:       editorui.KeyEnd,
	glfw.KeyDelete:    editorui.KeyDelete,
	glfw.KeyBackspace: editorui.KeyBackspace,
	glfw.KeyEnter:     editorui.KeyEnter,
	glfw.KeyKPEnter:   editorui.KeyEnter,
	glfw.KeyEscape:    editorui.KeyEscape,
	glfw.KeyC:         editorui.KeyC,
	glfw.KeyS:         editorui.KeyS,
	glfw.KeyV:         editorui.KeyV,
	glfw.KeyY:         editorui.KeyY,
	glfw.KeyZ:         editorui.KeyZ,
}

// glfwKeyToKey maps a GLFW key to an editorui key, or KeyNone.
func glfwKeyToKey(key glfw.Key) editorui.Key {
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return editorui.KeyNone
}

func glfwMouseButton(button glfw.MouseButton) (editorui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return editorui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return editorui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return editorui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
