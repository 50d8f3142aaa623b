package term

import (
	"testing"

	"github.com/dshills/pagedit/internal/engine/textarea"
)

func pt(line, col int) textarea.Point {
	return textarea.Point{Line: line, Column: col}
}

func TestTextAreaInsert(t *testing.T) {
	a := NewTextArea("ab\ncd", 4)
	a.SetCaret(pt(1, 1))
	a.Insert("X")

	if got := a.Value(); got != "ab\ncXd" {
		t.Errorf("value = %q", got)
	}
	if got := a.Head(); got != pt(1, 2) {
		t.Errorf("head = %v, want (1:2)", got)
	}
}

func TestTextAreaGraphemes(t *testing.T) {
	tests := []struct {
		name  string
		value string
		right textarea.Point // head after one MoveRight from the start
	}{
		{"ascii", "ab", pt(0, 1)},
		{"combining accent", "e\u0301x", pt(0, 2)},
		{"flag", "\U0001F1EB\U0001F1F7!", pt(0, 2)},
		{"line feed", "\nx", pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewTextArea(tt.value, 4)
			a.MoveRight(false)
			if got := a.Head(); got != tt.right {
				t.Errorf("MoveRight head = %v, want %v", got, tt.right)
			}
			a.MoveLeft(false)
			if got := a.Head(); got != pt(0, 0) {
				t.Errorf("MoveLeft head = %v, want (0:0)", got)
			}
		})
	}
}

func TestTextAreaBackspaceAndDelete(t *testing.T) {
	a := NewTextArea("ae\u0301", 4)
	a.End(false)
	a.Backspace()
	if got := a.Value(); got != "a" {
		t.Errorf("after backspace = %q, want %q", got, "a")
	}

	a = NewTextArea("a\nb", 4)
	a.SetCaret(pt(1, 0))
	a.Backspace()
	if got := a.Value(); got != "ab" {
		t.Errorf("join lines = %q", got)
	}
	if got := a.Head(); got != pt(0, 1) {
		t.Errorf("head = %v, want (0:1)", got)
	}

	a.End(false)
	a.Delete()
	if got := a.Value(); got != "ab" {
		t.Errorf("delete at end changed value to %q", got)
	}
	a.Home(false)
	a.Delete()
	if got := a.Value(); got != "b" {
		t.Errorf("delete at start = %q", got)
	}

	a = NewTextArea("", 4)
	a.Backspace()
	if a.Value() != "" {
		t.Error("backspace on empty text")
	}
}

func TestTextAreaSelection(t *testing.T) {
	a := NewTextArea("hello", 4)
	a.End(false)
	a.MoveLeft(true)
	a.MoveLeft(true)

	start, end := a.SelectionPoints()
	if start != pt(0, 3) || end != pt(0, 5) {
		t.Errorf("selection = %v..%v, want (0:3)..(0:5)", start, end)
	}

	a.Insert("p!")
	if got := a.Value(); got != "help!" {
		t.Errorf("replace selection = %q", got)
	}

	a.Home(true)
	a.MoveRight(false)
	if a.HasSelection() {
		t.Error("MoveRight without shift should collapse")
	}
	if got := a.Head(); got != pt(0, 5) {
		t.Errorf("collapsed head = %v, want (0:5)", got)
	}
}

func TestTextAreaVerticalMoves(t *testing.T) {
	a := NewTextArea("abcdef\nxy\nlong line", 4)
	a.SetCaret(pt(0, 5))

	a.MoveDown(false)
	if got := a.Head(); got != pt(1, 2) {
		t.Errorf("down = %v, want (1:2)", got)
	}
	a.MoveDown(false)
	if got := a.Head(); got != pt(2, 2) {
		t.Errorf("down = %v, want (2:2)", got)
	}
	a.MoveDown(false)
	if got := a.Head(); got != pt(2, 9) {
		t.Errorf("down on last line = %v, want (2:9)", got)
	}
	a.SetCaret(pt(0, 3))
	a.MoveUp(false)
	if got := a.Head(); got != pt(0, 0) {
		t.Errorf("up on first line = %v, want (0:0)", got)
	}
}

func TestTextAreaThroughSelectionBuffer(t *testing.T) {
	a := NewTextArea("\u00e9\nsecond line", 4)
	text, err := textarea.New(textarea.FromPoints(a))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a.SetSelectionPoints(pt(1, 0), pt(1, 6))
	if got := text.SelectedText(); got != "second" {
		t.Errorf("SelectedText = %q", got)
	}
	if got := text.PreviousLine(); got != "\u00e9" {
		t.Errorf("PreviousLine = %q", got)
	}

	text.ReplaceSelectedText("third")
	if got := a.Value(); got != "\u00e9\nthird line" {
		t.Errorf("value = %q", got)
	}
	if got := a.Head(); got != pt(1, 5) {
		t.Errorf("head = %v, want (1:5)", got)
	}
}

func TestTextAreaEnsureVisible(t *testing.T) {
	a := NewTextArea("0\n1\n2\n3\n4\n5\n6", 4)
	a.SetCaret(pt(5, 0))
	a.EnsureVisible(3)
	if got := a.ScrollTop(); got != 3 {
		t.Errorf("scrollTop = %d, want 3", got)
	}
	a.SetCaret(pt(1, 0))
	a.EnsureVisible(3)
	if got := a.ScrollTop(); got != 1 {
		t.Errorf("scrollTop = %d, want 1", got)
	}
}

func TestSetValueClampsSelection(t *testing.T) {
	a := NewTextArea("long text here", 4)
	a.SetSelectionPoints(pt(0, 5), pt(0, 14))
	a.SetValue("ab")
	start, end := a.SelectionPoints()
	if start != pt(0, 2) || end != pt(0, 2) {
		t.Errorf("selection = %v..%v, want (0:2)..(0:2)", start, end)
	}
}
