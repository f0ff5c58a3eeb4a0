package editorui

import (
	"strings"
	"unicode"
)

// ClipboardProvider abstracts system clipboard access for text fields.
// backend/opengl.GLFWClipboard implements it with GLFW.
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" if it holds no text.
	GetText() string
	SetText(text string)
}

var clipboardProvider ClipboardProvider

// SetClipboardProvider sets the clipboard used by Ctrl+C and Ctrl+V in
// string and number fields. Nil disables copy and paste.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// ClipboardGetText returns the clipboard text, or "" without a provider.
func ClipboardGetText() string {
	if clipboardProvider != nil {
		return clipboardProvider.GetText()
	}
	return ""
}

// ClipboardSetText copies text to the clipboard. It does nothing without a provider.
func ClipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}

// pasteText returns the clipboard text reduced to a single line of printable
// characters, or "" unless input holds Ctrl+V this frame.
func pasteText(input *InputState) string {
	if !input.Pressed(ShortcutPaste) {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, ClipboardGetText())
}

// copyText copies text if input holds Ctrl+C this frame.
func copyText(input *InputState, text string) {
	if input.Pressed(ShortcutCopy) {
		ClipboardSetText(text)
	}
}
