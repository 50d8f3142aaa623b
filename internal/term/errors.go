package term

import "errors"

// ErrNoPath indicates the editor has no file to save to.
var ErrNoPath = errors.New("no file path")
