package editorui

import (
	"errors"
	"testing"
)

// pickyTarget refuses writes to one property.
type pickyTarget struct {
	*MapTarget
	reject string
}

func (t *pickyTarget) SetPropertyValue(name string, value PropertyValue) bool {
	if name == t.reject {
		return false
	}
	return t.MapTarget.SetPropertyValue(name, value)
}

func newTestPanel() (*PropertyPanel, *MapTarget) {
	target := NewMapTarget(map[string]PropertyValue{
		"name":  StringValue("Camera"),
		"fov":   FloatValue(60),
		"layer": IntValue(0),
	})
	p := NewPropertyPanel("Inspector")
	p.RegisterProperty("fov", PropertyMetadata{DisplayName: "Field of View", Category: "Lens", DefaultValue: FloatValue(60), Step: 1})
	p.RegisterProperty("name", PropertyMetadata{DisplayName: "Name", Category: "General", DefaultValue: StringValue("Object")})
	p.RegisterProperty("layer", PropertyMetadata{Category: "Lens", DefaultValue: IntValue(0)})
	p.AddValidator("fov", NewRangeValidator(10, 170))
	p.SetTarget(target)
	return p, target
}

func targetFloat(t *testing.T, target PropertyTarget, name string) float32 {
	t.Helper()
	v, ok := target.PropertyValue(name)
	if !ok {
		t.Fatalf("Expected target to hold %s", name)
	}
	f, _ := v.Float()
	return f
}

func TestPropertyPanel_EditUndoRedo(t *testing.T) {
	p, target := newTestPanel()

	if !p.HandlePropertyEdit("fov", FloatValue(90)) {
		t.Fatal("Expected edit to succeed")
	}
	if got := targetFloat(t, target, "fov"); got != 90 {
		t.Errorf("Expected target fov 90, got %v", got)
	}
	if !p.Undo() {
		t.Fatal("Expected undo to succeed")
	}
	if got := targetFloat(t, target, "fov"); got != 60 {
		t.Errorf("Expected target fov 60 after undo, got %v", got)
	}
	if f, _ := p.Editor("fov").Value().Float(); f != 60 {
		t.Errorf("Expected editor to be refreshed to 60, got %v", f)
	}
	if !p.Redo() {
		t.Fatal("Expected redo to succeed")
	}
	if got := targetFloat(t, target, "fov"); got != 90 {
		t.Errorf("Expected target fov 90 after redo, got %v", got)
	}
	if p.Redo() {
		t.Error("Expected redo with an empty stack to report false")
	}
}

func TestPropertyPanel_SameValueIsNoop(t *testing.T) {
	p, _ := newTestPanel()
	if !p.HandlePropertyEdit("fov", FloatValue(60)) {
		t.Error("Expected editing to the current value to succeed")
	}
	if p.CanUndo() {
		t.Error("Expected no undo entry for an unchanged value")
	}
}

func TestPropertyPanel_RejectedEdits(t *testing.T) {
	p, target := newTestPanel()
	p.RegisterProperty("id", PropertyMetadata{DefaultValue: IntValue(1), ReadOnly: true})

	tests := []struct {
		name  string
		prop  string
		value PropertyValue
		want  error
	}{
		{"unknown", "missing", IntValue(1), ErrUnknownProperty},
		{"read-only", "id", IntValue(2), ErrReadOnly},
		{"kind mismatch", "fov", StringValue("wide"), ErrKindMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Validate(tt.prop, tt.value); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if p.HandlePropertyEdit(tt.prop, tt.value) {
				t.Error("Expected edit to be rejected")
			}
		})
	}

	if p.HandlePropertyEdit("fov", FloatValue(500)) {
		t.Error("Expected out-of-range fov to be rejected")
	}
	var verr *ValidationError
	if err := p.Validate("fov", FloatValue(500)); !errors.As(err, &verr) || verr.Property != "fov" {
		t.Errorf("Expected a ValidationError for fov, got %v", err)
	}
	if p.ValidationMessage("fov") == "" {
		t.Error("Expected a validation message after a rejected edit")
	}
	if got := targetFloat(t, target, "fov"); got != 60 {
		t.Errorf("Expected target untouched, got %v", got)
	}
	if p.CanUndo() {
		t.Error("Expected rejected edits to leave no undo entry")
	}

	p.HandlePropertyEdit("fov", FloatValue(45))
	if p.ValidationMessage("fov") != "" {
		t.Error("Expected a successful write to clear the validation message")
	}
}

func TestPropertyPanel_SetPropertyValueSkipsHistory(t *testing.T) {
	p, target := newTestPanel()
	if !p.SetPropertyValue("fov", FloatValue(30)) {
		t.Fatal("Expected SetPropertyValue to succeed")
	}
	if targetFloat(t, target, "fov") != 30 || p.CanUndo() {
		t.Error("Expected a direct write without an undo entry")
	}
	if p.SetPropertyValue("fov", FloatValue(1)) {
		t.Error("Expected validators to apply to direct writes")
	}
}

func TestPropertyPanel_BatchEdit(t *testing.T) {
	p, target := newTestPanel()

	p.BeginBatchEdit("Lens setup")
	p.HandlePropertyEdit("fov", FloatValue(35))
	p.HandlePropertyEdit("layer", IntValue(3))
	if targetFloat(t, target, "fov") != 60 {
		t.Error("Expected batched edits to wait for EndBatchEdit")
	}
	if !p.EndBatchEdit() {
		t.Fatal("Expected batch to apply")
	}
	if p.UndoCount() != 1 {
		t.Fatalf("Expected one undo entry, got %d", p.UndoCount())
	}
	p.Undo()
	layer, _ := target.PropertyValue("layer")
	if targetFloat(t, target, "fov") != 60 || !layer.Equal(IntValue(0)) {
		t.Error("Expected one undo to revert the whole batch")
	}
}

func TestPropertyPanel_BatchRevertsWithinBatch(t *testing.T) {
	p, target := newTestPanel()

	p.BeginBatchEdit("Lens")
	p.HandlePropertyEdit("fov", FloatValue(70))
	if v, _ := p.PropertyValue("fov"); !v.Equal(FloatValue(70)) {
		t.Errorf("Expected the pending value 70 inside the batch, got %v", v)
	}
	p.HandlePropertyEdit("fov", FloatValue(60))
	if !p.EndBatchEdit() {
		t.Fatal("Expected batch to apply")
	}
	if got := targetFloat(t, target, "fov"); got != 60 {
		t.Errorf("Expected the last edit of the batch to win, got %v", got)
	}
	if p.UndoCount() != 1 {
		t.Errorf("Expected one undo entry, got %d", p.UndoCount())
	}
}

func TestPropertyPanel_BatchEditsSamePropertyTwice(t *testing.T) {
	p, target := newTestPanel()

	p.BeginBatchEdit("Zoom")
	for _, fov := range []float32{70, 80, 90} {
		if !p.HandlePropertyEdit("fov", FloatValue(fov)) {
			t.Fatalf("Expected edit to %v to be accepted", fov)
		}
	}
	if p.Undo() {
		t.Error("Expected Undo to be refused while a batch is open")
	}
	p.Update(nil, Rect{W: 300, H: 200}, DefaultStyle())
	if f, _ := p.Editor("fov").Value().Float(); f != 90 {
		t.Errorf("Expected editor to show the pending 90, got %v", f)
	}
	if !p.EndBatchEdit() {
		t.Fatal("Expected batch to apply")
	}
	if got := targetFloat(t, target, "fov"); got != 90 {
		t.Errorf("Expected fov 90 after the batch, got %v", got)
	}

	if !p.Undo() {
		t.Fatal("Expected undo to succeed")
	}
	if got := targetFloat(t, target, "fov"); got != 60 {
		t.Errorf("Expected a single undo to restore 60, got %v", got)
	}
	if p.CanUndo() {
		t.Error("Expected the batch to be the only undo entry")
	}

	if !p.Redo() {
		t.Fatal("Expected redo to succeed")
	}
	if got := targetFloat(t, target, "fov"); got != 90 {
		t.Errorf("Expected redo to restore 90, got %v", got)
	}
}

func TestPropertyPanel_BatchRollsBackWhenTargetRejects(t *testing.T) {
	p, _ := newTestPanel()
	target := &pickyTarget{
		MapTarget: NewMapTarget(map[string]PropertyValue{"fov": FloatValue(60), "layer": IntValue(0)}),
		reject:    "layer",
	}
	p.SetTarget(target)

	p.BeginBatchEdit("")
	p.HandlePropertyEdit("fov", FloatValue(35))
	p.HandlePropertyEdit("layer", IntValue(3))
	if p.EndBatchEdit() {
		t.Fatal("Expected batch to fail")
	}
	if got := targetFloat(t, target, "fov"); got != 60 {
		t.Errorf("Expected fov to be rolled back to 60, got %v", got)
	}
	if p.CanUndo() {
		t.Error("Expected a failed batch to leave no undo entry")
	}
	if f, _ := p.Editor("fov").Value().Float(); f != 60 {
		t.Errorf("Expected editor refreshed to 60, got %v", f)
	}
}

func TestPropertyPanel_SetTargetClearsHistory(t *testing.T) {
	p, _ := newTestPanel()
	p.HandlePropertyEdit("fov", FloatValue(90))
	other := NewMapTarget(map[string]PropertyValue{"fov": FloatValue(20)})
	p.SetTarget(other)
	if p.CanUndo() {
		t.Error("Expected a new target to clear the history")
	}
	if v, _ := p.PropertyValue("fov"); !v.Equal(FloatValue(20)) {
		t.Errorf("Expected values read from the new target, got %v", v)
	}

	p.ClearTarget()
	if p.Target() != nil {
		t.Error("Expected ClearTarget to unbind")
	}
	if !p.HandlePropertyEdit("fov", FloatValue(40)) {
		t.Error("Expected edits without a target to be kept by the panel")
	}
	if v, _ := p.PropertyValue("fov"); !v.Equal(FloatValue(40)) {
		t.Errorf("Expected panel-held value 40, got %v", v)
	}
}

func TestPropertyPanel_PresetsAndDefaults(t *testing.T) {
	p, target := newTestPanel()
	p.AddPreset("fov", PropertyPreset{Name: "Wide", Value: FloatValue(90)})
	p.AddPreset("fov", PropertyPreset{Name: "Wide", Value: FloatValue(100)})
	if meta, _ := p.Metadata("fov"); len(meta.Presets) != 1 {
		t.Errorf("Expected a same-named preset to be replaced, got %d", len(meta.Presets))
	}
	if !p.ApplyPreset("fov", "Wide") || targetFloat(t, target, "fov") != 100 {
		t.Error("Expected preset to apply")
	}
	if p.ApplyPreset("fov", "Tele") {
		t.Error("Expected unknown preset to fail")
	}
	if !p.RemovePreset("fov", "Wide") || p.RemovePreset("fov", "Wide") {
		t.Error("Expected RemovePreset to succeed once")
	}

	p.HandlePropertyEdit("name", StringValue("Rig"))
	before := p.UndoCount()
	if !p.ResetAllToDefault() {
		t.Fatal("Expected reset to succeed")
	}
	if p.UndoCount() != before+1 {
		t.Errorf("Expected reset to add one entry, got %d", p.UndoCount()-before)
	}
	if v, _ := target.PropertyValue("name"); !v.Equal(StringValue("Object")) {
		t.Errorf("Expected name reset to Object, got %v", v)
	}
	p.Undo()
	if v, _ := target.PropertyValue("name"); !v.Equal(StringValue("Rig")) {
		t.Errorf("Expected undo to restore Rig, got %v", v)
	}
}

func TestPropertyPanel_FilterAndOrder(t *testing.T) {
	p, _ := newTestPanel()
	p.RegisterProperty("secret", PropertyMetadata{Category: "General", DefaultValue: IntValue(0), Hidden: true})

	got := p.VisibleProperties()
	want := []string{"fov", "layer", "name"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}

	p.SetFilter("  FIELD ")
	if got := p.VisibleProperties(); len(got) != 1 || got[0] != "fov" {
		t.Errorf("Expected filter on display name, got %v", got)
	}
	p.SetFilter("general")
	if got := p.VisibleProperties(); len(got) != 1 || got[0] != "name" {
		t.Errorf("Expected filter on category, got %v", got)
	}

	p.UnregisterProperty("name")
	if p.HasProperty("name") || len(p.Properties()) != 3 {
		t.Errorf("Expected name removed, got %v", p.Properties())
	}
}

func TestPropertyPanel_ChangeEvents(t *testing.T) {
	bus := NewEventBus()
	p, _ := newTestPanel()
	p.SetEventBus(bus)

	var changes []PropertyChange
	bus.Subscribe(EventPropertyChanged, "Inspector", func(ev Event) bool {
		changes = append(changes, ev.Payload.(PropertyChange))
		return false
	})
	p.HandlePropertyEdit("fov", FloatValue(80))
	p.Undo()

	if len(changes) != 2 {
		t.Fatalf("Expected 2 change events, got %d", len(changes))
	}
	if changes[0].Property != "fov" || !changes[0].OldValue.Equal(FloatValue(60)) || !changes[0].NewValue.Equal(FloatValue(80)) {
		t.Errorf("Unexpected first change %+v", changes[0])
	}
	if !changes[1].NewValue.Equal(FloatValue(60)) {
		t.Errorf("Expected undo to publish the restored value, got %v", changes[1].NewValue)
	}
}

func TestPropertyPanel_Shortcuts(t *testing.T) {
	p, target := newTestPanel()
	p.HandlePropertyEdit("fov", FloatValue(90))
	in := NewInputState()

	in.ModCtrl = true
	in.SetKey(KeyZ, true)
	if !p.HandleInput(in) || targetFloat(t, target, "fov") != 60 {
		t.Error("Expected Ctrl+Z to undo")
	}

	in.Reset()
	in.SetKey(KeyZ, false)
	in.SetKey(KeyY, true)
	if !p.HandleInput(in) || targetFloat(t, target, "fov") != 90 {
		t.Error("Expected Ctrl+Y to redo")
	}

	in.Reset()
	p.Undo()
	in.SetKey(KeyY, false)
	in.SetKey(KeyZ, false)
	in.ModShift = true
	in.SetKey(KeyZ, true)
	if !p.HandleInput(in) || targetFloat(t, target, "fov") != 90 {
		t.Error("Expected Ctrl+Shift+Z to redo")
	}

	in.Reset()
	in.ModCtrl, in.ModShift = false, false
	in.SetKey(KeyZ, false)
	in.SetKey(KeyZ, true)
	if p.HandleInput(in) {
		t.Error("Expected Z without Ctrl to be ignored")
	}
}

func TestPropertyPanel_DragRecordsOneEdit(t *testing.T) {
	target := NewMapTarget(map[string]PropertyValue{"fov": FloatValue(60)})
	p := NewPropertyPanel("Lens")
	p.RegisterProperty("fov", PropertyMetadata{DefaultValue: FloatValue(60), Step: 1})
	p.SetTarget(target)
	style := DefaultStyle()
	r := Rect{W: 400, H: 200}
	in := NewInputState()

	p.Update(step(in, 150, 10, true), r, style)
	p.Update(step(in, 160, 10, true), r, style)
	p.Update(step(in, 170, 10, true), r, style)
	if !p.Editing() {
		t.Error("Expected the panel to report an interaction")
	}
	if targetFloat(t, target, "fov") != 60 || p.CanUndo() {
		t.Error("Expected nothing written while dragging")
	}
	in.ModCtrl = true
	in.SetKey(KeyZ, true)
	if p.HandleInput(in) {
		t.Error("Expected shortcuts to be ignored mid-drag")
	}
	in.ModCtrl = false

	p.Update(step(in, 170, 10, false), r, style)
	if got := targetFloat(t, target, "fov"); got != 80 {
		t.Errorf("Expected fov 80 after release, got %v", got)
	}
	if p.UndoCount() != 1 || p.Editing() {
		t.Errorf("Expected one undo entry, got %d", p.UndoCount())
	}
}

func TestPropertyPanel_RejectedCommitRevertsEditor(t *testing.T) {
	target := NewMapTarget(map[string]PropertyValue{"name": StringValue("Cam")})
	p := NewPropertyPanel("Names")
	p.RegisterProperty("name", PropertyMetadata{DefaultValue: StringValue("")})
	p.AddValidator("name", NewLengthValidator(1, 4))
	p.SetTarget(target)
	style := DefaultStyle()
	r := Rect{W: 400, H: 200}
	in := NewInputState()

	p.Update(step(in, 200, 10, true), r, style)
	step(in, 200, 10, false)
	for _, ch := range "era" {
		in.AddInputChar(ch)
	}
	in.SetKey(KeyEnter, true)
	p.Update(in, r, style)

	if v, _ := target.PropertyValue("name"); !v.Equal(StringValue("Cam")) {
		t.Errorf("Expected target untouched, got %v", v)
	}
	if s, _ := p.Editor("name").Value().Str(); s != "Cam" {
		t.Errorf("Expected editor reverted to Cam, got %q", s)
	}
	if p.ValidationMessage("name") == "" {
		t.Error("Expected a validation message")
	}
}

func TestPropertyPanel_Draw(t *testing.T) {
	p, _ := newTestPanel()
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	p.Draw(dl, Rect{W: 400, H: 200}, DefaultStyle())
	if len(dl.CmdBuffer) == 0 {
		t.Error("Expected draw commands")
	}
}

func TestPropertyPanel_ScrollAndClip(t *testing.T) {
	p, _ := newTestPanel()
	style := DefaultStyle()
	r := Rect{W: 300, H: 2 * style.RowHeight}

	in := NewInputState()
	in.SetMousePos(10, 10)
	in.MouseWheelY = -1
	p.Update(in, r, style)
	if p.Scroll() != style.RowHeight {
		t.Errorf("Expected one row of scroll, got %v", p.Scroll())
	}

	in.MouseWheelY = -10
	p.Update(in, r, style)
	// Two headers and three properties, two rows in view.
	if want := 3 * style.RowHeight; p.Scroll() != want {
		t.Errorf("Expected scroll clamped to %v, got %v", want, p.Scroll())
	}

	if !p.ScrollToProperty("fov") || p.Scroll() != style.RowHeight {
		t.Errorf("Expected fov row at the top, got scroll %v", p.Scroll())
	}
	if !p.ScrollToProperty("name") || p.Scroll() != 3*style.RowHeight {
		t.Errorf("Expected name row at the bottom, got scroll %v", p.Scroll())
	}
	p.SetFilter("lens")
	if p.ScrollToProperty("name") {
		t.Error("Expected filtered-out property not to scroll")
	}
	if p.Scroll() != 0 {
		t.Errorf("Expected filter change to reset scroll, got %v", p.Scroll())
	}
}
