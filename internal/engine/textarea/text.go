package textarea

import "strings"

// Text is a selection buffer over a host Control.
// It never keeps a copy of the content; every call reads through the control.
type Text struct {
	control Control
}

// New creates a Text over the given control.
// Returns ErrNotTextInput if control is nil.
func New(control Control) (*Text, error) {
	if control == nil {
		return nil, ErrNotTextInput
	}
	return &Text{control: control}, nil
}

// Control returns the underlying host control.
func (t *Text) Control() Control {
	return t.control
}

// Content returns the full content of the control.
func (t *Text) Content() string {
	return t.control.Value()
}

// Selection returns the selection bounds clamped to the content.
func (t *Text) Selection() (start, end int) {
	start, end = t.control.Selection()
	return clampRange(start, end, len(t.control.Value()))
}

// SelectedText returns the selected substring, or "" if nothing is selected.
func (t *Text) SelectedText() string {
	start, end := t.Selection()
	if start == end {
		return ""
	}
	return t.control.Value()[start:end]
}

// CaretPosition returns the start of the selection.
func (t *Text) CaretPosition() int {
	start, _ := t.Selection()
	return start
}

// SetCaret collapses the selection to offset, clamped to the content.
func (t *Text) SetCaret(offset int) {
	offset = clamp(offset, len(t.control.Value()))
	t.control.SetSelection(offset, offset)
}

// MoveCaret moves the caret by delta bytes from CaretPosition,
// collapsing any selection. The result is clamped to the content.
func (t *Text) MoveCaret(delta int) {
	t.SetCaret(t.CaretPosition() + delta)
}

// ReplaceSelectedText replaces the selection with text and leaves the caret
// collapsed immediately after the inserted text. The control is focused and
// its scroll position is preserved.
func (t *Text) ReplaceSelectedText(text string) {
	start, end := t.Selection()
	scroll := t.control.ScrollTop()

	value := t.control.Value()
	t.control.SetValue(value[:start] + text + value[end:])
	t.control.Focus()

	caret := start + len(text)
	t.control.SetSelection(caret, caret)
	t.control.SetScrollTop(scroll)
}

// MoveToBeginningOfLine moves the caret to the start of its line.
func (t *Text) MoveToBeginningOfLine() {
	t.SetCaret(lineStart(t.control.Value(), t.CaretPosition()))
}

// PreviousLine returns the line before the caret's line, or "" when the
// caret is on the first line. A trailing carriage return is dropped.
func (t *Text) PreviousLine() string {
	value := t.control.Value()
	end := lineStart(value, t.CaretPosition()) - 1
	if end < 0 {
		return ""
	}
	start := lineStart(value, end)
	return strings.TrimSuffix(value[start:end], "\r")
}

// CaretIsMidLine reports whether the caret sits after some text on its line.
// It is false at offset 0 and directly after a line terminator.
func (t *Text) CaretIsMidLine() bool {
	pos := t.CaretPosition()
	if pos == 0 {
		return false
	}
	return t.control.Value()[pos-1] != '\n'
}

// MoveCaretAfter moves the caret just past the last occurrence of s that
// starts before the caret. It does nothing if s does not occur there.
func (t *Text) MoveCaretAfter(s string) {
	if s == "" {
		return
	}
	value := t.control.Value()
	pos := t.CaretPosition()
	limit := pos + len(s) - 1
	if limit > len(value) {
		limit = len(value)
	}
	i := strings.LastIndex(value[:limit], s)
	if i < 0 {
		return
	}
	t.SetCaret(i + len(s))
}

// Focus gives the control input focus.
func (t *Text) Focus() {
	t.control.Focus()
}

// Normalize writes the clamped, ordered selection back to the control.
// It keeps the selection extent.
func (t *Text) Normalize() {
	start, end := t.Selection()
	t.control.SetSelection(start, end)
}

// lineStart returns the offset just after the last '\n' before pos.
func lineStart(value string, pos int) int {
	return strings.LastIndexByte(value[:pos], '\n') + 1
}
