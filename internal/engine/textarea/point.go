package textarea

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Point is a line and column position.
// Both are 0-indexed; Column counts runes from the start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

// PointControl is a host text input that addresses its selection by
// line/column points rather than offsets.
type PointControl interface {
	Value() string
	SetValue(v string)

	// SelectionPoints returns the selection bounds as points.
	SelectionPoints() (start, end Point)
	// SetSelectionPoints sets the selection bounds.
	SetSelectionPoints(start, end Point)

	ScrollTop() int
	SetScrollTop(top int)
	Focus()
}

// FromPoints adapts a PointControl to the offset-based Control interface.
func FromPoints(pc PointControl) Control {
	if pc == nil {
		return nil
	}
	return &pointAdapter{pc: pc}
}

type pointAdapter struct {
	pc PointControl
}

func (a *pointAdapter) Value() string {
	return a.pc.Value()
}

func (a *pointAdapter) SetValue(v string) {
	a.pc.SetValue(v)
}

func (a *pointAdapter) Selection() (int, int) {
	text := a.pc.Value()
	s, e := a.pc.SelectionPoints()
	return PointToOffset(text, s), PointToOffset(text, e)
}

func (a *pointAdapter) SetSelection(start, end int) {
	text := a.pc.Value()
	a.pc.SetSelectionPoints(OffsetToPoint(text, start), OffsetToPoint(text, end))
}

func (a *pointAdapter) ScrollTop() int {
	return a.pc.ScrollTop()
}

func (a *pointAdapter) SetScrollTop(top int) {
	a.pc.SetScrollTop(top)
}

func (a *pointAdapter) Focus() {
	a.pc.Focus()
}

// OffsetToPoint converts a byte offset in text to a point.
// Offsets outside the text are clamped; an offset inside a multi-byte
// rune maps to the column of that rune.
func OffsetToPoint(text string, offset int) Point {
	offset = clamp(offset, len(text))
	for offset > 0 && offset < len(text) && !utf8.RuneStart(text[offset]) {
		offset--
	}
	before := text[:offset]
	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Point{Line: line, Column: utf8.RuneCountInString(before[lineStart:])}
}

// PointToOffset converts a point to a byte offset in text.
// Lines past the end map to len(text); columns past the end of a line map
// to the end of that line.
func PointToOffset(text string, p Point) int {
	if p.Line < 0 {
		return 0
	}
	offset := 0
	for line := 0; line < p.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}

	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += offset
	}

	col := 0
	for offset < lineEnd && col < p.Column {
		_, size := utf8.DecodeRuneInString(text[offset:lineEnd])
		offset += size
		col++
	}
	return offset
}
