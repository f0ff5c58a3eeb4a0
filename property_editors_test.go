package editorui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// step advances input by one frame with the pointer at (x, y) and the left
// button in the given state.
func step(in *InputState, x, y float32, down bool) *InputState {
	in.Reset()
	in.SetMousePos(x, y)
	in.SetMouseButton(MouseButtonLeft, down)
	return in
}

func TestNewPropertyEditor(t *testing.T) {
	tests := []struct {
		kind PropertyKind
		want PropertyKind
	}{
		{KindBool, KindBool},
		{KindInt, KindInt},
		{KindFloat, KindFloat},
		{KindString, KindString},
		{KindVec3, KindVec3},
		{KindCollection, KindCollection},
	}
	for _, tt := range tests {
		e := NewPropertyEditor(tt.kind)
		if e == nil || e.Kind() != tt.want {
			t.Errorf("Expected an editor for %s", tt.kind)
		}
	}
	if NewPropertyEditor(KindInvalid) != nil {
		t.Error("Expected no editor for an invalid kind")
	}
}

func TestBoolEditor_Toggle(t *testing.T) {
	e := &BoolEditor{}
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	res := e.Update(step(in, 5, 10, true), r)
	if !res.Commit {
		t.Fatal("Expected a click on the box to commit")
	}
	if b, _ := res.Value.Bool(); !b {
		t.Error("Expected the value to toggle to true")
	}
	if res := e.Update(step(in, 80, 10, false), r); res.Commit {
		t.Error("Expected no commit without a click")
	}
}

func TestNumberEditor_DragCommitsOnRelease(t *testing.T) {
	e := NewPropertyEditor(KindFloat).(*NumberEditor)
	e.SetStep(0.5)
	e.SetValue(FloatValue(10))
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	if res := e.Update(step(in, 20, 10, true), r); !res.Active || res.Commit {
		t.Fatal("Expected press to start an interaction without committing")
	}
	res := e.Update(step(in, 30, 10, true), r)
	if !res.Active || res.Commit {
		t.Error("Expected drag to stay uncommitted while held")
	}
	if f, _ := res.Value.Float(); f != 15 {
		t.Errorf("Expected live value 15, got %v", f)
	}
	res = e.Update(step(in, 30, 10, false), r)
	if res.Active || !res.Commit {
		t.Error("Expected release to commit once")
	}
	if f, _ := res.Value.Float(); f != 15 {
		t.Errorf("Expected committed value 15, got %v", f)
	}
	if res := e.Update(step(in, 30, 10, false), r); res.Commit {
		t.Error("Expected no second commit")
	}
}

func TestNumberEditor_IntDragRounds(t *testing.T) {
	e := NewPropertyEditor(KindInt).(*NumberEditor)
	e.SetStep(0.3)
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	e.Update(step(in, 10, 10, true), r)
	e.Update(step(in, 20, 10, true), r)
	res := e.Update(step(in, 20, 10, false), r)
	if i, ok := res.Value.Int(); !ok || i != 3 {
		t.Errorf("Expected int 3, got %v", res.Value)
	}
}

func TestNumberEditor_ClickThenType(t *testing.T) {
	e := NewPropertyEditor(KindInt).(*NumberEditor)
	e.SetValue(IntValue(7))
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	e.Update(step(in, 10, 10, true), r)
	if res := e.Update(step(in, 10, 10, false), r); !res.Active || res.Commit {
		t.Fatal("Expected a click without movement to start text entry")
	}

	step(in, 10, 10, false)
	for _, ch := range "2x4" {
		in.AddInputChar(ch)
	}
	e.Update(in, r)

	step(in, 10, 10, false)
	in.SetKey(KeyEnter, true)
	res := e.Update(in, r)
	if !res.Commit {
		t.Fatal("Expected Enter to commit")
	}
	if i, _ := res.Value.Int(); i != 724 {
		t.Errorf("Expected 724, got %v", res.Value)
	}
}

func TestNumberEditor_EscapeCancels(t *testing.T) {
	e := NewPropertyEditor(KindFloat).(*NumberEditor)
	e.SetValue(FloatValue(1))
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	e.Update(step(in, 10, 10, true), r)
	e.Update(step(in, 10, 10, false), r)
	step(in, 10, 10, false)
	in.AddInputChar('9')
	in.SetKey(KeyEscape, true)
	res := e.Update(in, r)
	if res.Active || res.Commit {
		t.Error("Expected Escape to end entry without committing")
	}
	if f, _ := res.Value.Float(); f != 1 {
		t.Errorf("Expected value to stay 1, got %v", f)
	}
}

func TestVectorEditor_DragsOneComponent(t *testing.T) {
	e := NewPropertyEditor(KindVec3).(*VectorEditor)
	e.SetStep(1)
	e.SetValue(Vec3Value(mgl32.Vec3{1, 2, 3}))
	r := Rect{W: 300, H: 20}
	in := NewInputState()

	e.Update(step(in, 150, 10, true), r)
	e.Update(step(in, 155, 10, true), r)
	res := e.Update(step(in, 155, 10, false), r)
	if !res.Commit {
		t.Fatal("Expected release to commit")
	}
	v, _ := res.Value.Vec3()
	if v != (mgl32.Vec3{1, 7, 3}) {
		t.Errorf("Expected only the second component to change, got %v", v)
	}
}

func TestStringEditor_EditAndCommit(t *testing.T) {
	e := &StringEditor{}
	e.SetValue(StringValue("ab"))
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	if res := e.Update(step(in, 10, 10, true), r); !res.Active || !e.Focused() {
		t.Fatal("Expected click to focus")
	}
	step(in, 10, 10, false)
	in.AddInputChar('c')
	in.SetKey(KeyBackspace, true)
	e.Update(in, r)
	if len(in.InputChars) != 0 {
		t.Error("Expected focused editor to consume typed characters")
	}

	step(in, 10, 10, false)
	in.SetKey(KeyBackspace, false)
	in.AddInputChar('d')
	in.SetKey(KeyEnter, true)
	res := e.Update(in, r)
	if !res.Commit || e.Focused() {
		t.Fatal("Expected Enter to commit and drop focus")
	}
	if s, _ := res.Value.Str(); s != "abd" {
		t.Errorf("Expected abd, got %q", s)
	}
}

func TestStringEditor_ClickOutsideCommits(t *testing.T) {
	e := &StringEditor{}
	r := Rect{W: 100, H: 20}
	in := NewInputState()

	e.Update(step(in, 10, 10, true), r)
	step(in, 10, 10, false)
	in.AddInputChar('z')
	e.Update(in, r)
	res := e.Update(step(in, 300, 10, true), r)
	if !res.Commit {
		t.Error("Expected a click elsewhere to commit")
	}
}

func TestCollectionEditor_AddRemove(t *testing.T) {
	e := &CollectionEditor{ElemKind: KindInt}
	e.SetValue(CollectionValue(StringValue("a")))
	r := Rect{W: 200, H: 20}
	in := NewInputState()

	res := e.Update(step(in, 165, 10, true), r)
	if !res.Commit || res.Value.Len() != 2 {
		t.Fatalf("Expected + to append, got %v", res.Value)
	}
	if item, _ := res.Value.Index(1); item.Kind() != KindString {
		t.Errorf("Expected appended item to follow existing items, got %s", item.Kind())
	}

	step(in, 0, 0, false)
	res = e.Update(step(in, 190, 10, true), r)
	if !res.Commit || res.Value.Len() != 1 {
		t.Errorf("Expected - to remove the last item, got %v", res.Value)
	}
}
