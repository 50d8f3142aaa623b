// Package term is the terminal host for the markup toolbar.
//
// TextArea is a line/column text control that the markup engine drives
// through textarea.FromPoints. Editor draws a toolbar row, the text and a
// status row on a tcell screen and maps F1..F12 and mouse clicks on the
// toolbar to buttons.
//
// Keys:
//
//	F1..F12       toolbar buttons, in table order
//	Shift+arrows  extend the selection
//	Ctrl+S        save
//	Ctrl+Q        quit (twice with unsaved changes)
package term
