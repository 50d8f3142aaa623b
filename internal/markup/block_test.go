package markup

import "testing"

func TestHeader(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		start, end int
		marker     string
		want       string
		wantCaret  int
	}{
		{"mid-line end", "Hello", 5, 5, "##", "## Hello", 8},
		{"mid-line inside", "one\ntwo", 5, 5, "##", "one\n## two", 8},
		{"fresh empty buffer", "", 0, 0, "###", "### \n\n", 4},
		{"fresh after paragraph", "intro\n", 6, 6, "###", "intro\n### \n\n", 10},
		{"selection keeps text", "Hello world", 6, 11, "##", "## Hello world", 9},
		{"blockquote", "quote", 2, 2, ">", "> quote", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, field := newText(t, tt.value, tt.start, tt.end)
			if err := (Header{Marker: tt.marker}).Apply(text); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got := field.Value(); got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
			if s, e := field.Selection(); s != tt.wantCaret || e != tt.wantCaret {
				t.Errorf("selection = (%d, %d), want caret %d", s, e, tt.wantCaret)
			}
		})
	}
}

func TestHeaderFreshLineCaretInsideInsertion(t *testing.T) {
	text, _ := newText(t, "", 0, 0)
	if err := (Header{Marker: "###"}).Apply(text); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	inserted := len("### \n\n")
	if got := text.CaretPosition(); got != inserted-2 {
		t.Errorf("caret = %d, want %d", got, inserted-2)
	}
}

func TestListItem(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		caret     int
		bullet    string
		want      string
		wantCaret int
	}{
		{"after paragraph", "para one\n", 9, "*", "para one\n\n* \n\n", 12},
		{"top of buffer", "", 0, "1.", "1. \n\n", 3},
		{"after blank line", "a\n\n", 3, "*", "a\n\n* \n\n", 5},
		{"after whitespace line", "a\n  \n", 5, "*", "a\n  \n* \n\n", 7},
		{"mid-line first line", "item", 4, "*", "* item", 6},
		{"mid-line after paragraph", "intro\nitem", 10, "*", "intro\n\n* item", 13},
		{"ordered mid-line", "one\n\nstep", 7, "1.", "one\n\n1. step", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, field := newText(t, tt.value, tt.caret, tt.caret)
			if err := (ListItem{Bullet: tt.bullet}).Apply(text); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got := field.Value(); got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
			if got := text.CaretPosition(); got != tt.wantCaret {
				t.Errorf("caret = %d, want %d", got, tt.wantCaret)
			}
		})
	}
}

func TestListItemEditIsPure(t *testing.T) {
	b := fakeBuffer{previous: "para one", midLine: false}
	e := ListItem{Bullet: "*"}.Edit(b)
	if e.Text != "\n* \n\n" {
		t.Errorf("Text = %q, want %q", e.Text, "\n* \n\n")
	}
	if e.KeepCaret || e.CaretDelta != -2 {
		t.Errorf("edit = %+v, want CaretDelta -2", e)
	}

	e = ListItem{Bullet: "*"}.Edit(fakeBuffer{midLine: true})
	if e.Text != "* " || !e.KeepCaret {
		t.Errorf("mid-line edit = %+v", e)
	}
}

func TestBlockFunc(t *testing.T) {
	rule := Block(func(b Buffer) Edit {
		return Edit{Text: "---\n"}
	})

	text, field := newText(t, "a\nb", 3, 3)
	if err := rule.Apply(text); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := field.Value(); got != "a\n---\nb" {
		t.Errorf("value = %q", got)
	}
	if got := text.CaretPosition(); got != 6 {
		t.Errorf("caret = %d, want 6", got)
	}
}

type fakeBuffer struct {
	selected string
	caret    int
	previous string
	midLine  bool
}

func (b fakeBuffer) SelectedText() string { return b.selected }
func (b fakeBuffer) CaretPosition() int { return b.caret }
func (b fakeBuffer) PreviousLine() string { return b.previous }
func (b fakeBuffer) CaretIsMidLine() bool { return b.midLine }
