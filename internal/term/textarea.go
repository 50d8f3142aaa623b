package term

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/pagedit/internal/engine/textarea"
)

// TextArea is the editable body of the terminal editor. It addresses its
// selection by line and rune column, the way the screen does, and is
// handed to the markup engine through textarea.FromPoints.
//
// The selection has an anchor and a head; the head is where the cursor is
// drawn and moves when the selection is extended.
type TextArea struct {
	value     string
	anchor    textarea.Point
	head      textarea.Point
	scrollTop int
	focused   bool
	tabWidth  int
}

// NewTextArea creates a text area holding value with the caret at the start.
func NewTextArea(value string, tabWidth int) *TextArea {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &TextArea{value: value, tabWidth: tabWidth}
}

// Value implements textarea.PointControl.
func (a *TextArea) Value() string {
	return a.value
}

// SetValue implements textarea.PointControl. The selection is clamped to
// the new text.
func (a *TextArea) SetValue(v string) {
	a.value = v
	a.anchor = a.clampPoint(a.anchor)
	a.head = a.clampPoint(a.head)
}

// SelectionPoints implements textarea.PointControl. Start never follows end.
func (a *TextArea) SelectionPoints() (start, end textarea.Point) {
	if a.anchor.Compare(a.head) <= 0 {
		return a.anchor, a.head
	}
	return a.head, a.anchor
}

// SetSelectionPoints implements textarea.PointControl.
func (a *TextArea) SetSelectionPoints(start, end textarea.Point) {
	a.anchor = a.clampPoint(start)
	a.head = a.clampPoint(end)
}

// ScrollTop implements textarea.PointControl; it is the first visible line.
func (a *TextArea) ScrollTop() int {
	return a.scrollTop
}

// SetScrollTop implements textarea.PointControl.
func (a *TextArea) SetScrollTop(top int) {
	if top < 0 {
		top = 0
	}
	a.scrollTop = top
}

// Focus implements textarea.PointControl.
func (a *TextArea) Focus() {
	a.focused = true
}

// Focused reports whether Focus has been called.
func (a *TextArea) Focused() bool {
	return a.focused
}

// Head returns the cursor point.
func (a *TextArea) Head() textarea.Point {
	return a.head
}

// HasSelection reports whether the selection is non-empty.
func (a *TextArea) HasSelection() bool {
	return a.anchor != a.head
}

// Lines returns the text split at line feeds.
func (a *TextArea) Lines() []string {
	return strings.Split(a.value, "\n")
}

// LineCount returns the number of lines.
func (a *TextArea) LineCount() int {
	return strings.Count(a.value, "\n") + 1
}

// Insert replaces the selection with s and leaves the caret after it.
func (a *TextArea) Insert(s string) {
	start, end := a.selectionOffsets()
	a.value = a.value[:start] + s + a.value[end:]
	a.collapseTo(start + len(s))
}

// Backspace deletes the selection, or the grapheme before the caret.
func (a *TextArea) Backspace() {
	start, end := a.selectionOffsets()
	if start == end {
		if start == 0 {
			return
		}
		start = prevBoundary(a.value, start)
	}
	a.value = a.value[:start] + a.value[end:]
	a.collapseTo(start)
}

// Delete deletes the selection, or the grapheme after the caret.
func (a *TextArea) Delete() {
	start, end := a.selectionOffsets()
	if start == end {
		if end == len(a.value) {
			return
		}
		end = nextBoundary(a.value, end)
	}
	a.value = a.value[:start] + a.value[end:]
	a.collapseTo(start)
}

// MoveLeft moves the head one grapheme left. Without extend a selection
// collapses to its start.
func (a *TextArea) MoveLeft(extend bool) {
	if !extend && a.HasSelection() {
		start, _ := a.SelectionPoints()
		a.anchor, a.head = start, start
		return
	}
	off := a.offset(a.head)
	if off > 0 {
		off = prevBoundary(a.value, off)
	}
	a.moveHead(textarea.OffsetToPoint(a.value, off), extend)
}

// MoveRight moves the head one grapheme right. Without extend a selection
// collapses to its end.
func (a *TextArea) MoveRight(extend bool) {
	if !extend && a.HasSelection() {
		_, end := a.SelectionPoints()
		a.anchor, a.head = end, end
		return
	}
	off := a.offset(a.head)
	if off < len(a.value) {
		off = nextBoundary(a.value, off)
	}
	a.moveHead(textarea.OffsetToPoint(a.value, off), extend)
}

// MoveUp moves the head one line up, keeping its column where possible.
func (a *TextArea) MoveUp(extend bool) {
	p := a.head
	if p.Line == 0 {
		p.Column = 0
	} else {
		p.Line--
	}
	a.moveHead(a.clampPoint(p), extend)
}

// MoveDown moves the head one line down, keeping its column where possible.
func (a *TextArea) MoveDown(extend bool) {
	p := a.head
	if p.Line >= a.LineCount()-1 {
		p.Column = utf8.RuneCountInString(a.line(p.Line))
	} else {
		p.Line++
	}
	a.moveHead(a.clampPoint(p), extend)
}

// Home moves the head to the start of its line.
func (a *TextArea) Home(extend bool) {
	a.moveHead(textarea.Point{Line: a.head.Line}, extend)
}

// End moves the head to the end of its line.
func (a *TextArea) End(extend bool) {
	a.moveHead(textarea.Point{Line: a.head.Line, Column: utf8.RuneCountInString(a.line(a.head.Line))}, extend)
}

// SetCaret collapses the selection at p.
func (a *TextArea) SetCaret(p textarea.Point) {
	p = a.clampPoint(p)
	a.anchor, a.head = p, p
}

// EnsureVisible scrolls so the head line is inside a view of height lines.
func (a *TextArea) EnsureVisible(height int) {
	if height <= 0 {
		return
	}
	switch {
	case a.head.Line < a.scrollTop:
		a.scrollTop = a.head.Line
	case a.head.Line >= a.scrollTop+height:
		a.scrollTop = a.head.Line - height + 1
	}
}

func (a *TextArea) moveHead(p textarea.Point, extend bool) {
	a.head = p
	if !extend {
		a.anchor = p
	}
}

func (a *TextArea) collapseTo(off int) {
	p := textarea.OffsetToPoint(a.value, off)
	a.anchor, a.head = p, p
}

func (a *TextArea) offset(p textarea.Point) int {
	return textarea.PointToOffset(a.value, p)
}

func (a *TextArea) selectionOffsets() (int, int) {
	start, end := a.SelectionPoints()
	return a.offset(start), a.offset(end)
}

// clampPoint maps p onto an existing position.
func (a *TextArea) clampPoint(p textarea.Point) textarea.Point {
	return textarea.OffsetToPoint(a.value, a.offset(p))
}

func (a *TextArea) line(n int) string {
	lines := a.Lines()
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

// prevBoundary returns the start of the grapheme cluster ending at off.
// Line feeds are never joined with the text before them.
func prevBoundary(s string, off int) int {
	lineStart := strings.LastIndexByte(s[:off], '\n') + 1
	if lineStart == off {
		return off - 1
	}
	pos := lineStart
	rest := s[lineStart:off]
	state := -1
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if pos+len(cluster) >= off {
			return pos
		}
		pos += len(cluster)
	}
	return pos
}

// nextBoundary returns the end of the grapheme cluster starting at off.
func nextBoundary(s string, off int) int {
	if s[off] == '\n' {
		return off + 1
	}
	lineEnd := strings.IndexByte(s[off:], '\n')
	if lineEnd < 0 {
		lineEnd = len(s)
	} else {
		lineEnd += off
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[off:lineEnd], -1)
	return off + len(cluster)
}
