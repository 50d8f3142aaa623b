package markup

import (
	"regexp"
	"strings"

	"github.com/dshills/pagedit/internal/engine/textarea"
)

// wrapPattern splits a selection into leading whitespace, a lazy core and
// trailing whitespace. The core cannot span a line break.
var wrapPattern = regexp.MustCompile(`^(\s+)?(.+?)(\s+)?$`)

// Wrap surrounds the selection with an open and close delimiter.
type Wrap struct {
	Open  string
	Close string
}

// Replace computes the text that replaces selected and the caret movement
// to apply after insertion.
//
// Delimiters hug the trimmed content: "  word  " becomes "  **word**  ".
// An empty selection yields Open+Close with the caret moved back between
// them. Whitespace-only and multi-line selections are wrapped as is.
func (w Wrap) Replace(selected string) (text string, caretDelta int) {
	if selected == "" {
		return w.Open + w.Close, -len(w.Close)
	}
	if strings.TrimSpace(selected) == "" {
		return w.Open + selected + w.Close, 0
	}

	m := wrapPattern.FindStringSubmatch(selected)
	if m == nil {
		return w.Open + selected + w.Close, 0
	}
	return m[1] + w.Open + m[2] + w.Close + m[3], 0
}

// Apply implements Command.
func (w Wrap) Apply(t *textarea.Text) error {
	if t == nil {
		return textarea.ErrNotTextInput
	}

	text, delta := w.Replace(t.SelectedText())
	t.ReplaceSelectedText(text)
	if delta != 0 {
		t.MoveCaret(delta)
	}
	return nil
}
