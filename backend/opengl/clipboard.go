package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/editorui"
)

// GLFWClipboard is an editorui.ClipboardProvider backed by the GLFW window's
// system clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

var _ editorui.ClipboardProvider = (*GLFWClipboard)(nil)

// NewGLFWClipboard creates a clipboard for window.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
