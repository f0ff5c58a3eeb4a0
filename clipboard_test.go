package editorui

import "testing"

type memClipboard struct{ text string }

func (c *memClipboard) GetText() string     { return c.text }
func (c *memClipboard) SetText(text string) { c.text = text }

func useClipboard(t *testing.T, text string) *memClipboard {
	t.Helper()
	cb := &memClipboard{text: text}
	SetClipboardProvider(cb)
	t.Cleanup(func() { SetClipboardProvider(nil) })
	return cb
}

func TestStringEditor_PasteAndCopy(t *testing.T) {
	cb := useClipboard(t, "line\none")
	e := &StringEditor{}
	e.SetValue(StringValue("x"))
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	e.Update(step(in, 10, 10, true), r)
	step(in, 10, 10, false)
	in.ModCtrl = true
	in.SetKey(KeyV, true)
	res := e.Update(in, r)
	if s, _ := res.Value.Str(); s != "xlineone" {
		t.Errorf("Expected pasted text on one line, got %q", s)
	}

	step(in, 10, 10, false)
	in.SetKey(KeyV, false)
	in.SetKey(KeyC, true)
	e.Update(in, r)
	if cb.text != "xlineone" {
		t.Errorf("Expected Ctrl+C to copy the field, got %q", cb.text)
	}
}

func TestNumberEditor_PasteFiltersDigits(t *testing.T) {
	useClipboard(t, "1a2.5")
	e := NewPropertyEditor(KindFloat).(*NumberEditor)
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	e.Update(step(in, 10, 10, true), r)
	e.Update(step(in, 10, 10, false), r)
	step(in, 10, 10, false)
	in.ModCtrl = true
	in.SetKey(KeyV, true)
	e.Update(in, r)

	step(in, 10, 10, false)
	in.ModCtrl = false
	in.SetKey(KeyEnter, true)
	res := e.Update(in, r)
	if f, _ := res.Value.Float(); f != 12.5 {
		t.Errorf("Expected 12.5 from the digits of the clipboard, got %v", f)
	}
}

func TestClipboard_NoProvider(t *testing.T) {
	SetClipboardProvider(nil)
	ClipboardSetText("ignored")
	if ClipboardGetText() != "" {
		t.Error("Expected empty text without a provider")
	}
}
