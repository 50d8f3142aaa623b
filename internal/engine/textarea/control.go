package textarea

// Control is a host text input addressed by byte offsets.
type Control interface {
	// Value returns the full content of the control.
	Value() string
	// SetValue replaces the full content of the control.
	SetValue(v string)

	// Selection returns the selection bounds as byte offsets.
	Selection() (start, end int)
	// SetSelection sets the selection bounds. Equal bounds place a caret.
	SetSelection(start, end int)

	// ScrollTop returns the vertical scroll position in host units.
	ScrollTop() int
	// SetScrollTop restores a scroll position returned by ScrollTop.
	SetScrollTop(top int)

	// Focus gives the control input focus.
	Focus()
}

// Field is an in-memory Control.
// The zero value is an empty field with the caret at offset 0.
type Field struct {
	value     string
	start     int
	end       int
	scrollTop int
	focused   bool
}

// NewField creates a field holding value with the caret at offset 0.
func NewField(value string) *Field {
	return &Field{value: value}
}

// Value implements Control.
func (f *Field) Value() string {
	return f.value
}

// SetValue implements Control. The selection is clamped to the new content.
func (f *Field) SetValue(v string) {
	f.value = v
	f.start, f.end = clampRange(f.start, f.end, len(v))
}

// Selection implements Control.
func (f *Field) Selection() (start, end int) {
	return f.start, f.end
}

// SetSelection implements Control. Bounds are clamped and ordered.
func (f *Field) SetSelection(start, end int) {
	f.start, f.end = clampRange(start, end, len(f.value))
}

// ScrollTop implements Control.
func (f *Field) ScrollTop() int {
	return f.scrollTop
}

// SetScrollTop implements Control.
func (f *Field) SetScrollTop(top int) {
	if top < 0 {
		top = 0
	}
	f.scrollTop = top
}

// Focus implements Control.
func (f *Field) Focus() {
	f.focused = true
}

// Focused reports whether Focus has been called.
func (f *Field) Focused() bool {
	return f.focused
}

// clamp limits v to [0, max].
func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// clampRange clamps both bounds to [0, max] and orders them.
func clampRange(start, end, max int) (int, int) {
	start = clamp(start, max)
	end = clamp(end, max)
	if start > end {
		start, end = end, start
	}
	return start, end
}
