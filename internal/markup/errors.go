package markup

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	// ErrNoCommandFunction indicates a script does not define command(buf).
	ErrNoCommandFunction = errors.New("script does not define a command function")

	// ErrBadScriptResult indicates command(buf) returned values of the wrong type.
	ErrBadScriptResult = errors.New("script returned an invalid result")
)

// ScriptError wraps a failure raised while loading or running a script.
type ScriptError struct {
	Name string // Script name as bound in the toolbar
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("markup: script %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
