// Package textarea provides the selection buffer that markup commands edit.
//
// A Text wraps a host text input (a Control) and exposes the small set of
// queries and mutations the toolbar commands need:
//
//   - SelectedText / ReplaceSelectedText
//   - CaretPosition / MoveCaret / MoveCaretAfter
//   - MoveToBeginningOfLine / PreviousLine / CaretIsMidLine
//
// # Offsets
//
// All offsets are byte offsets into the UTF-8 content of the control.
// Selection bounds always satisfy 0 <= start <= end <= len(content); values
// reported by a host outside that range are clamped when read.
//
// # Hosts
//
// Hosts differ in how they address a selection. Offset-based hosts
// implement Control directly. Hosts that track the selection as
// line/column points implement PointControl and are adapted with
// FromPoints. Field is an in-memory Control used by headless callers.
//
// Basic usage:
//
//	field := textarea.NewField("Hello")
//	field.SetSelection(5, 5)
//
//	text, err := textarea.New(field)
//	if err != nil {
//	    return err
//	}
//	text.MoveToBeginningOfLine()
//	text.ReplaceSelectedText("## ")
//
// # Thread Safety
//
// Text is not safe for concurrent use. A single UI goroutine owns the
// control and every Text built over it.
package textarea
