package web

// Document finds elements by id.
type Document interface {
	// ElementByID returns nil when no element has id.
	ElementByID(id string) Element
}

// Element is the part of a DOM element the host uses. Properties are
// addressed by their DOM names ("value", "selectionStart", ...).
type Element interface {
	TagName() string
	ClassName() string
	String(prop string) string
	Int(prop string) int
	Set(prop string, v any)
	Call(method string, args ...any)
	// OnClick registers fn as a click listener. The event's default
	// action is prevented.
	OnClick(fn func())
}
