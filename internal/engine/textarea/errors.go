package textarea

import "errors"

// ErrNotTextInput is returned when a Text is constructed over something
// that is not a text input.
var ErrNotTextInput = errors.New("textarea: control is not a text input")
