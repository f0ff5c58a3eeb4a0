package editorui

import "fmt"

// PropertyCommand is a reversible property edit.
type PropertyCommand interface {
	Execute() error
	Undo() error
	Redo() error
	Description() string
}

// PropertyWriter applies property values for commands. Execute goes through
// the validated path; Undo and Redo restore previously accepted values.
type PropertyWriter interface {
	WriteProperty(name string, value PropertyValue) error
	RestoreProperty(name string, value PropertyValue) error
}

// SetPropertyCommand sets one property from OldValue to NewValue.
type SetPropertyCommand struct {
	Writer       PropertyWriter
	PropertyName string
	OldValue     PropertyValue
	NewValue     PropertyValue
}

// NewSetPropertyCommand creates a SetPropertyCommand.
func NewSetPropertyCommand(w PropertyWriter, name string, oldValue, newValue PropertyValue) *SetPropertyCommand {
	return &SetPropertyCommand{
		Writer:       w,
		PropertyName: name,
		OldValue:     oldValue.Clone(),
		NewValue:     newValue.Clone(),
	}
}

// Execute writes NewValue.
func (c *SetPropertyCommand) Execute() error {
	return c.Writer.WriteProperty(c.PropertyName, c.NewValue)
}

// Undo restores OldValue.
func (c *SetPropertyCommand) Undo() error {
	return c.Writer.RestoreProperty(c.PropertyName, c.OldValue)
}

// Redo restores NewValue.
func (c *SetPropertyCommand) Redo() error {
	return c.Writer.RestoreProperty(c.PropertyName, c.NewValue)
}

// Description implements PropertyCommand.
func (c *SetPropertyCommand) Description() string {
	return fmt.Sprintf("Set %s", c.PropertyName)
}

// BatchCommand runs commands as one unit: forward for Execute and Redo,
// reverse for Undo. If a command fails, the ones already applied are
// reverted and the error is returned.
type BatchCommand struct {
	Name     string
	Commands []PropertyCommand
}

// NewBatchCommand creates an empty batch.
func NewBatchCommand(name string) *BatchCommand {
	return &BatchCommand{Name: name}
}

// Add appends a command.
func (b *BatchCommand) Add(cmd PropertyCommand) {
	if cmd != nil {
		b.Commands = append(b.Commands, cmd)
	}
}

// Len returns the number of commands.
func (b *BatchCommand) Len() int { return len(b.Commands) }

// Execute implements PropertyCommand.
func (b *BatchCommand) Execute() error {
	return b.forward(PropertyCommand.Execute)
}

// Redo implements PropertyCommand.
func (b *BatchCommand) Redo() error {
	return b.forward(PropertyCommand.Redo)
}

// Undo implements PropertyCommand.
func (b *BatchCommand) Undo() error {
	for i := len(b.Commands) - 1; i >= 0; i-- {
		if err := b.Commands[i].Undo(); err != nil {
			for j := i + 1; j < len(b.Commands); j++ {
				_ = b.Commands[j].Redo()
			}
			return fmt.Errorf("undo %s: %w", b.Commands[i].Description(), err)
		}
	}
	return nil
}

func (b *BatchCommand) forward(apply func(PropertyCommand) error) error {
	for i, cmd := range b.Commands {
		if err := apply(cmd); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = b.Commands[j].Undo()
			}
			return fmt.Errorf("%s: %w", cmd.Description(), err)
		}
	}
	return nil
}

// Description implements PropertyCommand.
func (b *BatchCommand) Description() string {
	if b.Name != "" {
		return b.Name
	}
	if len(b.Commands) == 1 {
		return b.Commands[0].Description()
	}
	return fmt.Sprintf("Edit %d properties", len(b.Commands))
}
