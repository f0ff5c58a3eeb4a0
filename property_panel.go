package editorui

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Errors returned when a property write is rejected.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrReadOnly        = errors.New("property is read-only")
	ErrKindMismatch    = errors.New("property kind mismatch")
	ErrTargetRejected  = errors.New("target rejected value")
)

// ValidationError reports a value rejected by a property's validators.
type ValidationError struct {
	Property string
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("property %q: %s", e.Property, e.Message)
}

// PropertyPreset is a named value offered for a property.
type PropertyPreset struct {
	Name  string
	Value PropertyValue
}

// PropertyMetadata describes a registered property. The kind of DefaultValue
// decides which editor the property gets.
type PropertyMetadata struct {
	DisplayName  string
	Description  string
	Category     string
	DefaultValue PropertyValue
	ReadOnly     bool
	Hidden       bool
	Units        string
	// Step is the value change per dragged pixel for number and vector editors.
	Step    float32
	Presets []PropertyPreset
}

// PropertyChange is the payload of an EventPropertyChanged event.
type PropertyChange struct {
	Property string
	OldValue PropertyValue
	NewValue PropertyValue
}

// PropertyRejection is the payload of an EventPropertyRejected event.
type PropertyRejection struct {
	Property string
	Label    string
	Value    PropertyValue
	Err      error
}

type panelProperty struct {
	name      string
	meta      PropertyMetadata
	editor    PropertyEditor
	validator *CompositeValidator
	value     PropertyValue
	invalid   string
}

func (p *panelProperty) label() string {
	label := p.meta.DisplayName
	if label == "" {
		label = p.name
	}
	if p.meta.Units != "" {
		label += " (" + p.meta.Units + ")"
	}
	return label
}

// PanelOption configures a PropertyPanel.
type PanelOption func(*PropertyPanel)

// WithMaxUndoLevels sets the undo depth.
func WithMaxUndoLevels(n int) PanelOption {
	return func(p *PropertyPanel) { p.undo.SetMaxUndoLevels(n) }
}

// WithPanelEventBus publishes EventPropertyChanged and EventPropertyRejected
// events on bus, addressed to the panel's name.
func WithPanelEventBus(bus *EventBus) PanelOption {
	return func(p *PropertyPanel) { p.bus = bus }
}

// PropertyPanel edits the named properties of a PropertyTarget.
//
// Edits made through HandlePropertyEdit are recorded as commands in the
// panel's undo system; SetPropertyValue writes directly without recording.
// The target is the source of truth: after Undo and Redo every editor is
// refreshed from it. Without a target, values are kept by the panel.
type PropertyPanel struct {
	name   string
	target PropertyTarget
	props  map[string]*panelProperty
	order  []string
	undo   *PropertyUndoSystem
	bus    *EventBus

	filter     string
	active     string
	scroll     float32
	viewHeight float32
	rowHeight  float32
}

// NewPropertyPanel creates an empty panel.
func NewPropertyPanel(name string, opts ...PanelOption) *PropertyPanel {
	p := &PropertyPanel{
		name:  name,
		props: make(map[string]*panelProperty),
		undo:  NewPropertyUndoSystem(DefaultMaxUndoLevels),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the panel name.
func (p *PropertyPanel) Name() string { return p.name }

// UndoSystem returns the panel's undo system.
func (p *PropertyPanel) UndoSystem() *PropertyUndoSystem { return p.undo }

// SetEventBus sets the bus for change events. Nil disables them.
func (p *PropertyPanel) SetEventBus(bus *EventBus) { p.bus = bus }

// RegisterProperty adds or replaces a property. The editor is chosen from the
// kind of meta.DefaultValue; kinds without an editor are shown as text.
func (p *PropertyPanel) RegisterProperty(name string, meta PropertyMetadata) bool {
	if name == "" {
		return false
	}
	prop := &panelProperty{
		name:      name,
		meta:      meta,
		editor:    NewPropertyEditor(meta.DefaultValue.Kind()),
		validator: NewCompositeValidator(),
		value:     meta.DefaultValue.Clone(),
	}
	if s, ok := prop.editor.(interface{ SetStep(float32) }); ok && meta.Step > 0 {
		s.SetStep(meta.Step)
	}
	if old, ok := p.props[name]; ok {
		prop.validator = old.validator
	} else {
		p.order = append(p.order, name)
	}
	p.props[name] = prop
	p.refresh(prop)
	return true
}

// UnregisterProperty removes a property and its validators.
func (p *PropertyPanel) UnregisterProperty(name string) {
	if _, ok := p.props[name]; !ok {
		return
	}
	delete(p.props, name)
	p.order = slices.DeleteFunc(p.order, func(n string) bool { return n == name })
	if p.active == name {
		p.active = ""
	}
}

// HasProperty reports whether name is registered.
func (p *PropertyPanel) HasProperty(name string) bool {
	_, ok := p.props[name]
	return ok
}

// Metadata returns a property's metadata.
func (p *PropertyPanel) Metadata(name string) (PropertyMetadata, bool) {
	prop, ok := p.props[name]
	if !ok {
		return PropertyMetadata{}, false
	}
	return prop.meta, true
}

// Editor returns the editor bound to a property, or nil.
func (p *PropertyPanel) Editor(name string) PropertyEditor {
	if prop, ok := p.props[name]; ok {
		return prop.editor
	}
	return nil
}

// Properties returns the registered names in registration order.
func (p *PropertyPanel) Properties() []string {
	return slices.Clone(p.order)
}

// SetTarget binds the panel to t and clears the undo history, whose commands
// refer to the previous target. Nil unbinds.
func (p *PropertyPanel) SetTarget(t PropertyTarget) {
	p.target = t
	p.active = ""
	p.undo.Clear()
	p.RefreshProperties()
}

// ClearTarget unbinds the panel.
func (p *PropertyPanel) ClearTarget() { p.SetTarget(nil) }

// Target returns the bound target.
func (p *PropertyPanel) Target() PropertyTarget { return p.target }

// AddValidator adds a validator to a property. Validators run in the order added.
func (p *PropertyPanel) AddValidator(name string, v Validator) bool {
	prop, ok := p.props[name]
	if !ok || v == nil {
		return false
	}
	prop.validator.Add(v)
	return true
}

// ClearValidators removes all validators of a property.
func (p *PropertyPanel) ClearValidators(name string) {
	if prop, ok := p.props[name]; ok {
		prop.validator = NewCompositeValidator()
	}
}

// Validate checks value against a property's kind, read-only flag and validators.
func (p *PropertyPanel) Validate(name string, value PropertyValue) error {
	prop, ok := p.props[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownProperty)
	}
	if prop.meta.ReadOnly {
		return fmt.Errorf("%q: %w", name, ErrReadOnly)
	}
	if want := prop.meta.DefaultValue.Kind(); want != KindInvalid && value.Kind() != want {
		return fmt.Errorf("%q: %w: want %s, got %s", name, ErrKindMismatch, want, value.Kind())
	}
	if res := prop.validator.Validate(value); !res.Valid {
		return &ValidationError{Property: name, Message: res.Message}
	}
	return nil
}

// WriteProperty validates and writes a value. It implements PropertyWriter.
func (p *PropertyPanel) WriteProperty(name string, value PropertyValue) error {
	if err := p.Validate(name, value); err != nil {
		p.props[name].setInvalid(err)
		return err
	}
	return p.store(p.props[name], value)
}

// RestoreProperty writes a previously accepted value without validation.
// It implements PropertyWriter.
func (p *PropertyPanel) RestoreProperty(name string, value PropertyValue) error {
	prop, ok := p.props[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownProperty)
	}
	return p.store(prop, value)
}

func (prop *panelProperty) setInvalid(err error) {
	if prop == nil {
		return
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		prop.invalid = verr.Message
	}
}

func (p *PropertyPanel) store(prop *panelProperty, value PropertyValue) error {
	old := prop.value
	if p.target != nil && !p.target.SetPropertyValue(prop.name, value.Clone()) {
		return fmt.Errorf("%q: %w", prop.name, ErrTargetRejected)
	}
	prop.value = value.Clone()
	prop.invalid = ""
	if prop.editor != nil {
		prop.editor.SetValue(prop.value)
	}
	if p.bus != nil {
		p.bus.Publish(Event{
			Kind:    EventPropertyChanged,
			Target:  p.name,
			Payload: PropertyChange{Property: prop.name, OldValue: old, NewValue: prop.value},
		})
	}
	return nil
}

// SetPropertyValue writes a value without recording an undo entry. It fails
// for unknown and read-only properties and for values a validator rejects.
func (p *PropertyPanel) SetPropertyValue(name string, value PropertyValue) bool {
	if err := p.WriteProperty(name, value); err != nil {
		logger().Debug("property write rejected", "panel", p.name, "property", name, "error", err)
		return false
	}
	return true
}

// PropertyValue returns the current value of a property, read from the target
// when one is bound.
func (p *PropertyPanel) PropertyValue(name string) (PropertyValue, bool) {
	prop, ok := p.props[name]
	if !ok {
		return PropertyValue{}, false
	}
	if v, ok := p.undo.PendingValue(p, name); ok {
		return v, true
	}
	if p.target != nil {
		if v, ok := p.target.PropertyValue(name); ok {
			return v, true
		}
	}
	return prop.value.Clone(), true
}

// ValidationMessage returns the message of the last rejected edit of a
// property, or "" once a later write succeeds.
func (p *PropertyPanel) ValidationMessage(name string) string {
	if prop, ok := p.props[name]; ok {
		return prop.invalid
	}
	return ""
}

// HandlePropertyEdit records an edit from the current value to newValue as an
// undoable command. Inside a batch the command is applied when the batch ends,
// and the current value is the one left by the batch's last edit of the
// property. Editing a property to its current value is a no-op.
func (p *PropertyPanel) HandlePropertyEdit(name string, newValue PropertyValue) bool {
	old, ok := p.PropertyValue(name)
	if !ok {
		return false
	}
	if err := p.Validate(name, newValue); err != nil {
		p.props[name].setInvalid(err)
		p.rejected(name, newValue, err)
		return false
	}
	if old.Equal(newValue) {
		return true
	}
	if err := p.undo.Execute(NewSetPropertyCommand(p, name, old, newValue)); err != nil {
		p.rejected(name, newValue, err)
		return false
	}
	return true
}

func (p *PropertyPanel) rejected(name string, value PropertyValue, err error) {
	logger().Debug("property edit rejected", "panel", p.name, "property", name, "error", err)
	if p.bus == nil {
		return
	}
	p.bus.Publish(Event{
		Kind:    EventPropertyRejected,
		Target:  p.name,
		Payload: PropertyRejection{Property: name, Label: p.props[name].label(), Value: value.Clone(), Err: err},
	})
}

// BeginBatchEdit starts collecting edits into one undo entry. A batch already
// in progress is kept and the call is ignored.
func (p *PropertyPanel) BeginBatchEdit(description string) bool {
	return p.undo.BeginBatch(description)
}

// EndBatchEdit applies the collected edits as one undo entry.
func (p *PropertyPanel) EndBatchEdit() bool {
	err := p.undo.EndBatch()
	if err != nil {
		logger().Warn("batch edit rolled back", "panel", p.name, "error", err)
		p.RefreshProperties()
		if p.bus != nil {
			p.bus.Publish(Event{Kind: EventPropertyRejected, Target: p.name, Payload: PropertyRejection{Err: err}})
		}
		return false
	}
	return true
}

// CancelBatchEdit drops the collected edits.
func (p *PropertyPanel) CancelBatchEdit() {
	p.undo.CancelBatch()
}

// Undo reverts the last recorded edit and refreshes every property.
func (p *PropertyPanel) Undo() bool {
	err := p.undo.Undo()
	if err != nil && !errors.Is(err, ErrNothingToUndo) {
		logger().Warn("undo failed", "panel", p.name, "error", err)
	}
	p.RefreshProperties()
	return err == nil
}

// Redo reapplies the last undone edit and refreshes every property.
func (p *PropertyPanel) Redo() bool {
	err := p.undo.Redo()
	if err != nil && !errors.Is(err, ErrNothingToRedo) {
		logger().Warn("redo failed", "panel", p.name, "error", err)
	}
	p.RefreshProperties()
	return err == nil
}

// CanUndo returns true if undo is available.
func (p *PropertyPanel) CanUndo() bool { return p.undo.CanUndo() }

// CanRedo returns true if redo is available.
func (p *PropertyPanel) CanRedo() bool { return p.undo.CanRedo() }

// UndoCount returns the number of undo entries.
func (p *PropertyPanel) UndoCount() int { return p.undo.UndoCount() }

// RedoCount returns the number of redo entries.
func (p *PropertyPanel) RedoCount() int { return p.undo.RedoCount() }

// ClearUndoHistory drops all undo and redo entries.
func (p *PropertyPanel) ClearUndoHistory() { p.undo.Clear() }

// RefreshProperties re-reads every property from the target. The editor
// holding the current interaction is left alone.
func (p *PropertyPanel) RefreshProperties() {
	for _, name := range p.order {
		p.refresh(p.props[name])
	}
}

func (p *PropertyPanel) refresh(prop *panelProperty) {
	if p.target != nil {
		if v, ok := p.target.PropertyValue(prop.name); ok {
			prop.value = v
		}
	}
	if prop.editor != nil && prop.name != p.active {
		shown := prop.value
		if v, ok := p.undo.PendingValue(p, prop.name); ok {
			shown = v
		}
		prop.editor.SetValue(shown)
	}
}

// AddPreset offers a named value for a property. A preset with the same name
// is replaced.
func (p *PropertyPanel) AddPreset(name string, preset PropertyPreset) bool {
	prop, ok := p.props[name]
	if !ok {
		return false
	}
	p.RemovePreset(name, preset.Name)
	prop.meta.Presets = append(prop.meta.Presets, PropertyPreset{Name: preset.Name, Value: preset.Value.Clone()})
	return true
}

// RemovePreset removes a named preset from a property.
func (p *PropertyPanel) RemovePreset(name, presetName string) bool {
	prop, ok := p.props[name]
	if !ok {
		return false
	}
	n := len(prop.meta.Presets)
	prop.meta.Presets = slices.DeleteFunc(prop.meta.Presets, func(pr PropertyPreset) bool { return pr.Name == presetName })
	return len(prop.meta.Presets) != n
}

// ClearPresets removes all presets of a property.
func (p *PropertyPanel) ClearPresets(name string) {
	if prop, ok := p.props[name]; ok {
		prop.meta.Presets = nil
	}
}

// ApplyPreset edits a property to one of its preset values.
func (p *PropertyPanel) ApplyPreset(name, presetName string) bool {
	prop, ok := p.props[name]
	if !ok {
		return false
	}
	for _, pr := range prop.meta.Presets {
		if pr.Name == presetName {
			return p.HandlePropertyEdit(name, pr.Value)
		}
	}
	return false
}

// ResetToDefault edits a property back to its default value.
func (p *PropertyPanel) ResetToDefault(name string) bool {
	prop, ok := p.props[name]
	if !ok {
		return false
	}
	return p.HandlePropertyEdit(name, prop.meta.DefaultValue)
}

// ResetAllToDefault resets every writable property as one undo entry.
func (p *PropertyPanel) ResetAllToDefault() bool {
	if p.undo.InBatch() {
		return false
	}
	p.BeginBatchEdit("Reset to defaults")
	for _, name := range p.order {
		if prop := p.props[name]; !prop.meta.ReadOnly && prop.meta.DefaultValue.IsValid() {
			p.HandlePropertyEdit(name, prop.meta.DefaultValue)
		}
	}
	return p.EndBatchEdit()
}

// SetFilter shows only properties whose name, display name or category
// contains s, ignoring case.
func (p *PropertyPanel) SetFilter(s string) {
	p.filter = strings.ToLower(strings.TrimSpace(s))
	p.scroll = 0
}

// Filter returns the current filter.
func (p *PropertyPanel) Filter() string { return p.filter }

func (p *PropertyPanel) matches(prop *panelProperty) bool {
	if prop.meta.Hidden {
		return false
	}
	if p.filter == "" {
		return true
	}
	for _, s := range []string{prop.name, prop.meta.DisplayName, prop.meta.Category} {
		if strings.Contains(strings.ToLower(s), p.filter) {
			return true
		}
	}
	return false
}

// VisibleProperties returns the names of non-hidden properties passing the
// filter, grouped by category. Categories appear in the order their first
// property was registered.
func (p *PropertyPanel) VisibleProperties() []string {
	var categories []string
	byCategory := make(map[string][]string)
	for _, name := range p.order {
		prop := p.props[name]
		if !p.matches(prop) {
			continue
		}
		c := prop.meta.Category
		if _, seen := byCategory[c]; !seen {
			categories = append(categories, c)
		}
		byCategory[c] = append(byCategory[c], name)
	}
	out := make([]string, 0, len(p.order))
	for _, c := range categories {
		out = append(out, byCategory[c]...)
	}
	return out
}

// panelRow is one laid-out row: a category header or a property.
type panelRow struct {
	header   bool
	category string
	prop     *panelProperty
	rect     Rect
}

// rows lays out the visible properties in r at the current scroll offset.
func (p *PropertyPanel) rows(r Rect, style Style) ([]panelRow, ListClipper) {
	var rows []panelRow
	category := ""
	for i, name := range p.VisibleProperties() {
		prop := p.props[name]
		if c := prop.meta.Category; c != "" && (i == 0 || c != category) {
			rows = append(rows, panelRow{header: true, category: c})
		}
		category = prop.meta.Category
		rows = append(rows, panelRow{prop: prop})
	}
	clip := NewListClipper(len(rows), style.RowHeight, r.H, p.scroll)
	for i := range rows {
		rows[i].rect = Rect{X: r.X, Y: clip.ItemY(i, r.Y, p.scroll), W: r.W, H: style.RowHeight}
	}
	return rows, clip
}

// Scroll returns the scroll offset in pixels.
func (p *PropertyPanel) Scroll() float32 { return p.scroll }

// ScrollToProperty scrolls the least distance that brings a property's row
// into the view of the last Update. It returns false for properties that are
// hidden or filtered out.
func (p *PropertyPanel) ScrollToProperty(name string) bool {
	rows, clip := p.rows(Rect{H: p.viewHeight}, Style{RowHeight: p.rowHeight})
	for i, row := range rows {
		if !row.header && row.prop.name == name {
			p.scroll = clip.ScrollToItem(i, p.scroll, p.viewHeight)
			return true
		}
	}
	return false
}

func editorRect(row Rect, style Style) Rect {
	return Rect{
		X: row.X + style.LabelWidth,
		Y: row.Y + 1,
		W: max(row.W-style.LabelWidth-SpaceSM, 0),
		H: row.H - 2,
	}
}

// Editing reports whether an editor holds an interaction.
func (p *PropertyPanel) Editing() bool { return p.active != "" }

// HandleInput applies the undo shortcuts: Ctrl+Z undoes, Ctrl+Y and
// Ctrl+Shift+Z redo. Shortcuts are ignored while an editor holds an
// interaction.
func (p *PropertyPanel) HandleInput(input *InputState) bool {
	if input == nil || p.active != "" {
		return false
	}
	switch {
	case input.Pressed(ShortcutRedo), input.Pressed(ShortcutRedoAlt):
		p.Redo()
		return true
	case input.Pressed(ShortcutUndo):
		p.Undo()
		return true
	}
	return false
}

// Update runs the editors of the visible rows inside r. While one editor
// holds an interaction no other editor receives input. Committed values go
// through HandlePropertyEdit; a rejected value is reverted in the editor.
// Undo shortcuts are left to HandleInput.
func (p *PropertyPanel) Update(input *InputState, r Rect, style Style) {
	p.viewHeight, p.rowHeight = r.H, style.RowHeight
	rows, clip := p.rows(r, style)
	scroll := p.scroll
	if input != nil && input.MouseWheelY != 0 && r.Contains(input.MousePos()) {
		scroll -= input.MouseWheelY * style.RowHeight
	}
	if scroll = clampf(scroll, 0, clip.MaxScroll(r.H)); scroll != p.scroll {
		p.scroll = scroll
		rows, clip = p.rows(r, style)
	}

	if p.active != "" {
		if _, ok := p.props[p.active]; !ok {
			p.active = ""
		}
	}
	for _, prop := range p.props {
		if prop.name != p.active {
			p.refresh(prop)
		}
	}

	for i, row := range rows {
		prop := row.prop
		if row.header || prop.editor == nil || prop.meta.ReadOnly {
			continue
		}
		if p.active != "" && p.active != prop.name {
			continue
		}
		// Rows scrolled out of view only finish an interaction already in progress.
		if !clip.ShouldRender(i) && p.active != prop.name {
			continue
		}
		res := prop.editor.Update(input, editorRect(row.rect, style))
		if res.Active {
			p.active = prop.name
		} else if p.active == prop.name {
			p.active = ""
		}
		if res.Commit && !p.HandlePropertyEdit(prop.name, res.Value) {
			prop.editor.SetValue(prop.value)
		}
	}
}

// Draw renders the visible rows inside r.
func (p *PropertyPanel) Draw(dl *DrawList, r Rect, style Style) {
	rows, clip := p.rows(r, style)
	dl.AddRect(r, style.RowBgColor)
	dl.PushClipRect(r)
	defer dl.PopClipRect()

	textY := func(row Rect) float32 { return row.Y + (row.H-style.CharHeight*style.FontScale)/2 }
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		row := rows[i]
		if row.header {
			dl.AddRect(row.rect, style.CategoryBgColor)
			dl.AddText(Vec2{X: row.rect.X + SpaceSM, Y: textY(row.rect)}, row.category, style.TextColor, style)
			continue
		}
		prop := row.prop
		if i%2 == 1 {
			dl.AddRect(row.rect, style.RowBgAltColor)
		}
		rowStyle := style
		if prop.meta.ReadOnly {
			rowStyle.TextColor = style.TextDisabledColor
		}
		dl.AddTextClipped(Vec2{X: row.rect.X + SpaceMD, Y: textY(row.rect)}, prop.label(), style.LabelWidth-SpaceMD*2, rowStyle.TextColor, style)

		er := editorRect(row.rect, style)
		if prop.editor != nil {
			prop.editor.Draw(dl, er, rowStyle)
		} else {
			dl.AddTextClipped(Vec2{X: er.X + SpaceSM, Y: textY(row.rect)}, prop.value.String(), er.W, rowStyle.TextColor, style)
		}
		if prop.invalid != "" {
			dl.AddRectOutline(er, style.InvalidValueColor, 1)
		}
	}
}
