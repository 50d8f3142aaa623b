package web

// TextArea adapts a page textarea to textarea.Control.
type TextArea struct {
	el Element
}

// NewTextArea wraps el.
func NewTextArea(el Element) *TextArea {
	return &TextArea{el: el}
}

func (t *TextArea) Value() string {
	return t.el.String("value")
}

func (t *TextArea) SetValue(v string) {
	t.el.Set("value", v)
}

func (t *TextArea) Selection() (start, end int) {
	v := t.Value()
	return ByteOffset(v, t.el.Int("selectionStart")), ByteOffset(v, t.el.Int("selectionEnd"))
}

func (t *TextArea) SetSelection(start, end int) {
	v := t.Value()
	t.el.Call("setSelectionRange", UTF16Offset(v, start), UTF16Offset(v, end), "none")
}

func (t *TextArea) ScrollTop() int {
	return t.el.Int("scrollTop")
}

func (t *TextArea) SetScrollTop(top int) {
	t.el.Set("scrollTop", top)
}

func (t *TextArea) Focus() {
	t.el.Call("focus")
}
