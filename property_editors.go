package editorui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/chewxy/math32"
)

// dragThreshold is the pointer travel that turns a press on a number field
// into a drag instead of a click.
const dragThreshold = 3

// EditResult reports what an editor did during one Update.
type EditResult struct {
	// Value is the editor's current value.
	Value PropertyValue
	// Active is true while the editor holds an interaction (drag or text focus).
	Active bool
	// Commit is true when Value should be written to the property.
	Commit bool
}

// PropertyEditor edits one property value inside a row rect.
type PropertyEditor interface {
	Kind() PropertyKind
	SetValue(v PropertyValue)
	Value() PropertyValue
	Update(input *InputState, r Rect) EditResult
	Draw(dl *DrawList, r Rect, style Style)
}

// NewPropertyEditor returns the editor for a value kind, or nil when the kind
// has no editor.
func NewPropertyEditor(kind PropertyKind) PropertyEditor {
	switch kind {
	case KindBool:
		return &BoolEditor{}
	case KindInt:
		return &NumberEditor{kind: KindInt, Step: 1}
	case KindFloat:
		return &NumberEditor{kind: KindFloat, Step: 0.1}
	case KindString:
		return &StringEditor{}
	case KindVec2, KindVec3, KindVec4:
		return &VectorEditor{kind: kind, Step: 0.1, fields: make([]numberField, kind.Components())}
	case KindCollection:
		return &CollectionEditor{ElemKind: KindString}
	}
	return nil
}

// BoolEditor toggles a bool when its box is clicked.
type BoolEditor struct {
	value bool
}

func (e *BoolEditor) Kind() PropertyKind { return KindBool }

func (e *BoolEditor) SetValue(v PropertyValue) {
	if b, ok := v.Bool(); ok {
		e.value = b
	}
}

func (e *BoolEditor) Value() PropertyValue { return BoolValue(e.value) }

func (e *BoolEditor) Update(input *InputState, r Rect) EditResult {
	if input != nil && input.MouseClicked(MouseButtonLeft) && checkboxRect(r).Contains(input.MousePos()) {
		e.value = !e.value
		return EditResult{Value: e.Value(), Commit: true}
	}
	return EditResult{Value: e.Value()}
}

func (e *BoolEditor) Draw(dl *DrawList, r Rect, style Style) {
	box := checkboxRect(r)
	dl.AddRect(box, style.InputBgColor)
	dl.AddRectOutline(box, style.DockBorderColor, style.BorderSize)
	if e.value {
		dl.AddRect(box.Inset(SpaceXS+1), style.TextColor)
	}
}

func checkboxRect(r Rect) Rect {
	size := math32.Min(r.H-SpaceSM, 14)
	return Rect{X: r.X, Y: r.Y + (r.H-size)/2, W: size, H: size}
}

// numberField is the drag-or-type state of one numeric field.
// Dragging horizontally changes the value by Step per pixel; a press released
// without moving switches to text entry.
type numberField struct {
	dragging bool
	moved    bool
	editing  bool
	startX   float32
	start    float32
	text     string
}

// update returns the field's value, whether it is mid-interaction, and
// whether the value should be committed.
func (f *numberField) update(input *InputState, r Rect, v, step float32, integer bool) (float32, bool, bool) {
	if input == nil {
		return v, f.dragging || f.editing, false
	}
	round := func(x float32) float32 {
		if integer {
			return math32.Round(x)
		}
		return x
	}

	if !f.dragging && !f.editing && input.MouseClicked(MouseButtonLeft) && r.Contains(input.MousePos()) {
		f.dragging = true
		f.moved = false
		f.startX = input.MouseX
		f.start = v
	}

	if f.dragging {
		dx := input.MouseX - f.startX
		if math32.Abs(dx) >= dragThreshold {
			f.moved = true
		}
		if input.MouseDown(MouseButtonLeft) {
			if f.moved {
				v = round(f.start + math32.Round(dx)*step)
			}
			return v, true, false
		}
		f.dragging = false
		if !f.moved {
			f.editing = true
			f.text = formatNumber(v, integer)
			return v, true, false
		}
		return v, false, v != f.start
	}

	if f.editing {
		for _, ch := range string(input.InputChars) + pasteText(input) {
			if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
				f.text += string(ch)
			}
		}
		copyText(input, f.text)
		if input.KeyPressed(KeyBackspace) && len(f.text) > 0 {
			f.text = f.text[:len(f.text)-1]
		}
		if input.KeyPressed(KeyEscape) {
			f.editing = false
			return v, false, false
		}
		confirm := input.KeyPressed(KeyEnter) || input.KeyPressed(KeyTab) ||
			(input.MouseClicked(MouseButtonLeft) && !r.Contains(input.MousePos()))
		if confirm {
			f.editing = false
			parsed, err := strconv.ParseFloat(strings.TrimSpace(f.text), 32)
			if err != nil {
				return v, false, false
			}
			nv := round(float32(parsed))
			return nv, false, nv != v
		}
		return v, true, false
	}
	return v, false, false
}

func (f *numberField) draw(dl *DrawList, r Rect, v float32, integer bool, style Style) {
	bg := style.InputBgColor
	text := formatNumber(v, integer)
	if f.editing {
		bg = style.InputActiveColor
		text = f.text + "|"
	} else if f.dragging {
		bg = style.InputActiveColor
	}
	dl.AddRect(r, bg)
	if f.editing {
		dl.AddRectOutline(r, style.FocusColor, style.BorderSize)
	}
	ty := r.Y + (r.H-style.CharHeight*style.FontScale)/2
	dl.AddTextClipped(Vec2{X: r.X + SpaceSM, Y: ty}, text, r.W-SpaceSM*2, style.TextColor, style)
}

func formatNumber(v float32, integer bool) string {
	if integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}

// NumberEditor edits an int or float value.
type NumberEditor struct {
	kind  PropertyKind
	Step  float32
	value float32
	field numberField
}

func (e *NumberEditor) Kind() PropertyKind { return e.kind }

// SetStep sets the value change per dragged pixel.
func (e *NumberEditor) SetStep(step float32) {
	if step > 0 {
		e.Step = step
	}
}

func (e *NumberEditor) SetValue(v PropertyValue) {
	if v.Kind() != e.kind {
		return
	}
	n, _ := v.Number()
	e.value = float32(n)
}

func (e *NumberEditor) Value() PropertyValue {
	if e.kind == KindInt {
		return IntValue(int32(e.value))
	}
	return FloatValue(e.value)
}

func (e *NumberEditor) Update(input *InputState, r Rect) EditResult {
	v, active, commit := e.field.update(input, r, e.value, e.Step, e.kind == KindInt)
	e.value = v
	return EditResult{Value: e.Value(), Active: active, Commit: commit}
}

func (e *NumberEditor) Draw(dl *DrawList, r Rect, style Style) {
	e.field.draw(dl, r, e.value, e.kind == KindInt, style)
}

// VectorEditor edits a vec2, vec3 or vec4 with one number field per component.
type VectorEditor struct {
	kind   PropertyKind
	Step   float32
	value  PropertyValue
	fields []numberField
}

func (e *VectorEditor) Kind() PropertyKind { return e.kind }

// SetStep sets the value change per dragged pixel.
func (e *VectorEditor) SetStep(step float32) {
	if step > 0 {
		e.Step = step
	}
}

func (e *VectorEditor) SetValue(v PropertyValue) {
	if v.Kind() == e.kind {
		e.value = v
	}
}

func (e *VectorEditor) Value() PropertyValue {
	if e.value.Kind() != e.kind {
		return ZeroValue(e.kind)
	}
	return e.value
}

func (e *VectorEditor) fieldRect(r Rect, i int) Rect {
	n := float32(len(e.fields))
	w := (r.W - SpaceXS*(n-1)) / n
	return Rect{X: r.X + float32(i)*(w+SpaceXS), Y: r.Y, W: w, H: r.H}
}

func (e *VectorEditor) Update(input *InputState, r Rect) EditResult {
	res := EditResult{}
	value := e.Value()
	for i := range e.fields {
		v, active, commit := e.fields[i].update(input, e.fieldRect(r, i), value.Component(i), e.Step, false)
		value = value.WithComponent(i, v)
		res.Active = res.Active || active
		res.Commit = res.Commit || commit
	}
	e.value = value
	res.Value = value
	return res
}

func (e *VectorEditor) Draw(dl *DrawList, r Rect, style Style) {
	value := e.Value()
	for i := range e.fields {
		e.fields[i].draw(dl, e.fieldRect(r, i), value.Component(i), false, style)
	}
}

// StringEditor edits a string. Clicking focuses the field; Enter, Tab or a
// click elsewhere commits, Escape discards. Ctrl+C and Ctrl+V copy and paste
// through the ClipboardProvider.
type StringEditor struct {
	value   string
	buffer  string
	focused bool
}

func (e *StringEditor) Kind() PropertyKind { return KindString }

func (e *StringEditor) SetValue(v PropertyValue) {
	if s, ok := v.Str(); ok {
		e.value = s
	}
}

func (e *StringEditor) Value() PropertyValue { return StringValue(e.value) }

// Focused reports whether the field has keyboard focus.
func (e *StringEditor) Focused() bool { return e.focused }

func (e *StringEditor) Update(input *InputState, r Rect) EditResult {
	if input == nil {
		return EditResult{Value: e.Value(), Active: e.focused}
	}
	inside := r.Contains(input.MousePos())
	if !e.focused {
		if input.MouseClicked(MouseButtonLeft) && inside {
			e.focused = true
			e.buffer = e.value
			return EditResult{Value: e.Value(), Active: true}
		}
		return EditResult{Value: e.Value()}
	}

	for _, ch := range input.InputChars {
		if unicode.IsPrint(ch) {
			e.buffer += string(ch)
		}
	}
	input.ConsumeInputChars()
	e.buffer += pasteText(input)
	copyText(input, e.buffer)
	if input.KeyPressed(KeyBackspace) {
		e.buffer = dropLastGrapheme(e.buffer)
	}
	if input.KeyPressed(KeyEscape) {
		e.focused = false
		return EditResult{Value: e.Value()}
	}
	if input.KeyPressed(KeyEnter) || input.KeyPressed(KeyTab) || (input.MouseClicked(MouseButtonLeft) && !inside) {
		e.focused = false
		changed := e.buffer != e.value
		e.value = e.buffer
		return EditResult{Value: e.Value(), Commit: changed}
	}
	return EditResult{Value: StringValue(e.buffer), Active: true}
}

func (e *StringEditor) Draw(dl *DrawList, r Rect, style Style) {
	bg := style.InputBgColor
	text := e.value
	if e.focused {
		bg = style.InputActiveColor
		text = e.buffer + "|"
	}
	dl.AddRect(r, bg)
	if e.focused {
		dl.AddRectOutline(r, style.FocusColor, style.BorderSize)
	}
	ty := r.Y + (r.H-style.CharHeight*style.FontScale)/2
	dl.AddTextClipped(Vec2{X: r.X + SpaceSM, Y: ty}, text, r.W-SpaceSM*2, style.TextColor, style)
}

// CollectionEditor shows the item count with buttons that append a zero item
// or remove the last one.
type CollectionEditor struct {
	// ElemKind is the kind of appended items when the collection is empty.
	ElemKind PropertyKind
	value    PropertyValue
}

func (e *CollectionEditor) Kind() PropertyKind { return KindCollection }

func (e *CollectionEditor) SetValue(v PropertyValue) {
	if v.Kind() != KindCollection {
		return
	}
	e.value = v.Clone()
	if first, ok := v.Index(0); ok && first.IsValid() {
		e.ElemKind = first.Kind()
	}
}

func (e *CollectionEditor) Value() PropertyValue {
	if e.value.Kind() != KindCollection {
		return CollectionValue()
	}
	return e.value
}

func (e *CollectionEditor) buttons(r Rect) (add, remove Rect) {
	size := r.H
	remove = Rect{X: r.X + r.W - size, Y: r.Y, W: size, H: size}
	add = Rect{X: remove.X - size - SpaceXS, Y: r.Y, W: size, H: size}
	return add, remove
}

func (e *CollectionEditor) Update(input *InputState, r Rect) EditResult {
	value := e.Value()
	if input == nil || !input.MouseClicked(MouseButtonLeft) {
		return EditResult{Value: value}
	}
	add, remove := e.buttons(r)
	switch p := input.MousePos(); {
	case add.Contains(p):
		e.value = value.Append(ZeroValue(e.ElemKind))
		return EditResult{Value: e.value, Commit: true}
	case remove.Contains(p) && value.Len() > 0:
		e.value = value.RemoveAt(value.Len() - 1)
		return EditResult{Value: e.value, Commit: true}
	}
	return EditResult{Value: value}
}

func (e *CollectionEditor) Draw(dl *DrawList, r Rect, style Style) {
	add, remove := e.buttons(r)
	ty := r.Y + (r.H-style.CharHeight*style.FontScale)/2
	dl.AddTextClipped(Vec2{X: r.X, Y: ty}, e.Value().String(), add.X-r.X-SpaceSM, style.TextColor, style)
	for _, b := range []struct {
		rect  Rect
		label string
	}{{add, "+"}, {remove, "-"}} {
		dl.AddRect(b.rect, style.InputBgColor)
		lx := b.rect.X + (b.rect.W-style.TextWidth(b.label))/2
		dl.AddText(Vec2{X: lx, Y: ty}, b.label, style.TextColor, style)
	}
}
