package toolbar

import "errors"

// Toolbar errors.
var (
	// ErrUnknownCommand indicates no command is bound under a name or button id.
	ErrUnknownCommand = errors.New("toolbar: unknown command")

	// ErrInvalidButton indicates a configured button cannot be built.
	ErrInvalidButton = errors.New("toolbar: invalid button definition")
)
