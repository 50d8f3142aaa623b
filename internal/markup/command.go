package markup

import "github.com/dshills/pagedit/internal/engine/textarea"

// Buffer is the read-only view of a selection buffer that block
// functions receive. *textarea.Text satisfies it.
type Buffer interface {
	SelectedText() string
	CaretPosition() int
	PreviousLine() string
	CaretIsMidLine() bool
}

// Command is a markup action bound to a toolbar button.
type Command interface {
	// Apply edits t in place. On success the control is focused and the
	// caret is collapsed at the command's insertion point.
	Apply(t *textarea.Text) error
}

// Func adapts an ordinary function to Command.
type Func func(t *textarea.Text) error

// Apply implements Command.
func (f Func) Apply(t *textarea.Text) error {
	if t == nil {
		return textarea.ErrNotTextInput
	}
	return f(t)
}

// Edit is the result of a block function.
type Edit struct {
	// Text is inserted at the beginning of the caret's line.
	Text string

	// KeepCaret restores the caret to its logical position in the line,
	// which has been shifted right by len(Text).
	KeepCaret bool

	// CaretDelta moves the caret relative to the end of the inserted text.
	// Ignored when KeepCaret is set.
	CaretDelta int

	// CaretAfter, when set, finally moves the caret just past the last
	// occurrence of CaretAfter that starts before it.
	CaretAfter string
}

// Block adapts a pure block function to Command.
type Block func(b Buffer) Edit

// Apply implements Command.
func (f Block) Apply(t *textarea.Text) error {
	if t == nil {
		return textarea.ErrNotTextInput
	}
	applyEdit(t, f(t))
	return nil
}

// applyEdit inserts e.Text at the start of the caret's line and places
// the caret.
func applyEdit(t *textarea.Text, e Edit) {
	oldCaret := t.CaretPosition()

	t.MoveToBeginningOfLine()
	t.ReplaceSelectedText(e.Text)

	if e.KeepCaret {
		t.MoveCaret((oldCaret - t.CaretPosition()) + len(e.Text))
	} else {
		t.MoveCaret(e.CaretDelta)
	}
	t.MoveCaretAfter(e.CaretAfter)
}
