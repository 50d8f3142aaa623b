package markup

import (
	"strings"

	"github.com/dshills/pagedit/internal/engine/textarea"
)

// freshLineBack moves the caret from the end of a fresh-line insertion
// back over its two trailing newlines.
const freshLineBack = -2

// Header inserts a header marker such as "##" at the start of the line.
type Header struct {
	Marker string
}

// Blockquote is the header-style command that quotes the current line.
var Blockquote = Header{Marker: ">"}

// Edit computes the header insertion for b.
func (h Header) Edit(b Buffer) Edit {
	return lineEdit(h.Marker, b.CaretIsMidLine())
}

// Apply implements Command.
func (h Header) Apply(t *textarea.Text) error {
	return Block(h.Edit).Apply(t)
}

// ListItem inserts a bullet token such as "*" or "1." at the start of the
// line.
type ListItem struct {
	Bullet string
}

// Edit computes the list item insertion for b. A newline is prepended when
// the previous line has content, so a new list is separated from the
// paragraph above it.
func (l ListItem) Edit(b Buffer) Edit {
	e := lineEdit(l.Bullet, b.CaretIsMidLine())
	if strings.TrimSpace(b.PreviousLine()) != "" {
		e.Text = "\n" + e.Text
	}
	return e
}

// Apply implements Command.
func (l ListItem) Apply(t *textarea.Text) error {
	return Block(l.Edit).Apply(t)
}

// lineEdit prefixes existing line content with token when the caret is
// mid-line, or opens a fresh token line followed by a blank line.
func lineEdit(token string, midLine bool) Edit {
	if midLine {
		return Edit{Text: token + " ", KeepCaret: true}
	}
	return Edit{Text: token + " \n\n", CaretDelta: freshLineBack}
}
