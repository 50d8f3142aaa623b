package markup

import (
	"errors"
	"testing"

	"github.com/dshills/pagedit/internal/engine/textarea"
)

func newText(t *testing.T, value string, start, end int) (*textarea.Text, *textarea.Field) {
	t.Helper()
	field := textarea.NewField(value)
	field.SetSelection(start, end)
	text, err := textarea.New(field)
	if err != nil {
		t.Fatalf("textarea.New: %v", err)
	}
	return text, field
}

func TestWrapHugsTrimmedContent(t *testing.T) {
	w := Wrap{Open: "**", Close: "**"}
	leads := []string{"", " ", "\t ", "\n"}
	cores := []string{"w", "word", "two words", "a  b"}
	trails := []string{"", " ", "  ", "\n"}

	for _, lead := range leads {
		for _, core := range cores {
			for _, trail := range trails {
				selected := lead + core + trail
				got, delta := w.Replace(selected)
				want := lead + "**" + core + "**" + trail
				if got != want {
					t.Errorf("Replace(%q) = %q, want %q", selected, got, want)
				}
				if delta != 0 {
					t.Errorf("Replace(%q) caret delta = %d, want 0", selected, delta)
				}
			}
		}
	}
}

func TestWrapApplySelection(t *testing.T) {
	text, field := newText(t, "say hello now", 4, 9)

	if err := (Wrap{Open: "**", Close: "**"}).Apply(text); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := field.Value(); got != "say **hello** now" {
		t.Errorf("value = %q", got)
	}
	if s, e := field.Selection(); s != 13 || e != 13 {
		t.Errorf("selection = (%d, %d), want (13, 13)", s, e)
	}
	if !field.Focused() {
		t.Error("field should be focused")
	}
}

func TestWrapApplyPaddedSelection(t *testing.T) {
	text, field := newText(t, "  word  ", 0, 8)

	if err := (Wrap{Open: "**", Close: "**"}).Apply(text); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := field.Value(); got != "  **word**  " {
		t.Errorf("value = %q, want %q", got, "  **word**  ")
	}
	if got := text.CaretPosition(); got != 12 {
		t.Errorf("caret = %d, want 12", got)
	}
}

func TestWrapEmptySelectionPlacesCaretBetween(t *testing.T) {
	tests := []struct {
		name        string
		open, close string
	}{
		{"bold", "**", "**"},
		{"italic", "_", "_"},
		{"asymmetric", "[[", "]]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, field := newText(t, "ab", 1, 1)
			if err := (Wrap{Open: tt.open, Close: tt.close}).Apply(text); err != nil {
				t.Fatalf("Apply: %v", err)
			}

			want := "a" + tt.open + tt.close + "b"
			if got := field.Value(); got != want {
				t.Errorf("value = %q, want %q", got, want)
			}
			wantCaret := 1 + len(tt.open)
			if got := text.CaretPosition(); got != wantCaret {
				t.Errorf("caret = %d, want %d", got, wantCaret)
			}
		})
	}
}

func TestWrapWhitespaceOnly(t *testing.T) {
	text, field := newText(t, "a   b", 1, 4)

	if err := (Wrap{Open: "_", Close: "_"}).Apply(text); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := field.Value(); got != "a_   _b" {
		t.Errorf("value = %q, want %q", got, "a_   _b")
	}
	if got := text.CaretPosition(); got != 6 {
		t.Errorf("caret = %d, want 6", got)
	}
}

func TestWrapMultiLineSelection(t *testing.T) {
	got, delta := (Wrap{Open: "`", Close: "`"}).Replace("x\ny")
	if got != "`x\ny`" {
		t.Errorf("Replace = %q, want %q", got, "`x\ny`")
	}
	if delta != 0 {
		t.Errorf("delta = %d, want 0", delta)
	}
}

func TestWrapDoesNotToggle(t *testing.T) {
	got, _ := (Wrap{Open: "**", Close: "**"}).Replace("**bold**")
	if got != "****bold****" {
		t.Errorf("Replace = %q, want %q", got, "****bold****")
	}
}

func TestApplyNilText(t *testing.T) {
	commands := map[string]Command{
		"wrap":   Wrap{Open: "*", Close: "*"},
		"header": Header{Marker: "#"},
		"list":   ListItem{Bullet: "*"},
		"func":   Func(func(*textarea.Text) error { return nil }),
	}
	for name, cmd := range commands {
		if err := cmd.Apply(nil); !errors.Is(err, textarea.ErrNotTextInput) {
			t.Errorf("%s: Apply(nil) = %v, want ErrNotTextInput", name, err)
		}
	}
}
