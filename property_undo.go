package editorui

import "errors"

// DefaultMaxUndoLevels is the undo depth used when none is configured.
const DefaultMaxUndoLevels = 100

// Errors returned by PropertyUndoSystem.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrBatchActive   = errors.New("batch edit in progress")
)

// PropertyUndoSystem keeps bounded undo and redo stacks of property commands.
//
// Executing a command pushes it onto the undo stack and clears the redo
// stack. Once the undo stack exceeds its limit the oldest entries are
// dropped; the redo stack is never touched by that.
//
// Between BeginBatch and EndBatch, executed commands are collected instead
// of applied. EndBatch applies them in order as one BatchCommand and pushes a
// single entry. Batches do not nest.
type PropertyUndoSystem struct {
	undoStack []PropertyCommand
	redoStack []PropertyCommand

	batch *BatchCommand

	maxLevels int
}

// NewPropertyUndoSystem creates an undo system keeping at most maxLevels
// entries. Non-positive values use DefaultMaxUndoLevels.
func NewPropertyUndoSystem(maxLevels int) *PropertyUndoSystem {
	if maxLevels <= 0 {
		maxLevels = DefaultMaxUndoLevels
	}
	return &PropertyUndoSystem{maxLevels: maxLevels}
}

// Execute applies cmd and records it, or adds it to the open batch.
// A command that fails to apply is not recorded.
func (u *PropertyUndoSystem) Execute(cmd PropertyCommand) error {
	if cmd == nil {
		return nil
	}
	if u.batch != nil {
		u.batch.Add(cmd)
		return nil
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	u.push(cmd)
	return nil
}

// push adds a command and enforces the depth limit.
func (u *PropertyUndoSystem) push(cmd PropertyCommand) {
	u.undoStack = append(u.undoStack, cmd)
	u.redoStack = nil
	u.trim()
}

func (u *PropertyUndoSystem) trim() {
	if excess := len(u.undoStack) - u.maxLevels; excess > 0 {
		clear(u.undoStack[:excess])
		u.undoStack = u.undoStack[excess:]
	}
}

// Undo reverts the most recent entry and moves it to the redo stack.
func (u *PropertyUndoSystem) Undo() error {
	if u.batch != nil {
		return ErrBatchActive
	}
	if len(u.undoStack) == 0 {
		return ErrNothingToUndo
	}
	cmd := u.undoStack[len(u.undoStack)-1]
	if err := cmd.Undo(); err != nil {
		return err
	}
	u.undoStack = u.undoStack[:len(u.undoStack)-1]
	u.redoStack = append(u.redoStack, cmd)
	return nil
}

// Redo reapplies the most recently undone entry.
func (u *PropertyUndoSystem) Redo() error {
	if u.batch != nil {
		return ErrBatchActive
	}
	if len(u.redoStack) == 0 {
		return ErrNothingToRedo
	}
	cmd := u.redoStack[len(u.redoStack)-1]
	if err := cmd.Redo(); err != nil {
		return err
	}
	u.redoStack = u.redoStack[:len(u.redoStack)-1]
	u.undoStack = append(u.undoStack, cmd)
	u.trim()
	return nil
}

// BeginBatch opens a batch. It returns false, and changes nothing, if a
// batch is already open.
func (u *PropertyUndoSystem) BeginBatch(name string) bool {
	if u.batch != nil {
		logger().Warn("batch edit already active; nested batches are not supported", "active", u.batch.Name, "ignored", name)
		return false
	}
	u.batch = NewBatchCommand(name)
	return true
}

// EndBatch applies the open batch and records it as one entry. An empty batch
// records nothing. If any command fails, the batch is rolled back and not recorded.
func (u *PropertyUndoSystem) EndBatch() error {
	b := u.batch
	if b == nil {
		return nil
	}
	u.batch = nil
	if b.Len() == 0 {
		return nil
	}
	if err := b.Execute(); err != nil {
		return err
	}
	u.push(b)
	return nil
}

// CancelBatch discards the open batch without applying it.
func (u *PropertyUndoSystem) CancelBatch() {
	u.batch = nil
}

// InBatch reports whether a batch is open.
func (u *PropertyUndoSystem) InBatch() bool { return u.batch != nil }

// PendingCount returns the number of commands in the open batch.
func (u *PropertyUndoSystem) PendingCount() int {
	if u.batch == nil {
		return 0
	}
	return u.batch.Len()
}

// PendingValue returns the value the open batch leaves in property name of
// w, or false if the batch does not set it.
func (u *PropertyUndoSystem) PendingValue(w PropertyWriter, name string) (PropertyValue, bool) {
	if u.batch == nil {
		return PropertyValue{}, false
	}
	for i := len(u.batch.Commands) - 1; i >= 0; i-- {
		if c, ok := u.batch.Commands[i].(*SetPropertyCommand); ok && c.Writer == w && c.PropertyName == name {
			return c.NewValue.Clone(), true
		}
	}
	return PropertyValue{}, false
}

// Clear drops both stacks and any open batch.
func (u *PropertyUndoSystem) Clear() {
	u.undoStack = nil
	u.redoStack = nil
	u.batch = nil
}

// CanUndo returns true if undo is available.
func (u *PropertyUndoSystem) CanUndo() bool { return len(u.undoStack) > 0 }

// CanRedo returns true if redo is available.
func (u *PropertyUndoSystem) CanRedo() bool { return len(u.redoStack) > 0 }

// UndoCount returns the number of undo entries.
func (u *PropertyUndoSystem) UndoCount() int { return len(u.undoStack) }

// RedoCount returns the number of redo entries.
func (u *PropertyUndoSystem) RedoCount() int { return len(u.redoStack) }

// UndoDescription describes the entry Undo would revert.
func (u *PropertyUndoSystem) UndoDescription() string {
	if len(u.undoStack) == 0 {
		return ""
	}
	return u.undoStack[len(u.undoStack)-1].Description()
}

// RedoDescription describes the entry Redo would reapply.
func (u *PropertyUndoSystem) RedoDescription() string {
	if len(u.redoStack) == 0 {
		return ""
	}
	return u.redoStack[len(u.redoStack)-1].Description()
}

// MaxUndoLevels returns the undo depth limit.
func (u *PropertyUndoSystem) MaxUndoLevels() int { return u.maxLevels }

// SetMaxUndoLevels changes the depth limit, dropping the oldest entries if needed.
func (u *PropertyUndoSystem) SetMaxUndoLevels(n int) {
	if n <= 0 {
		return
	}
	u.maxLevels = n
	u.trim()
}
