package procstatus

import (
	"errors"
	"fmt"
)

// Monitor errors.
var (
	// ErrStalled indicates the process status stopped changing.
	ErrStalled = errors.New("process appears to have stalled")

	// ErrUnreachable indicates the status endpoint could not be queried.
	ErrUnreachable = errors.New("cannot retrieve process status")
)

// FetchError describes a failed status request.
// It matches ErrUnreachable with errors.Is.
type FetchError struct {
	ID         string // Process id
	StatusCode int    // HTTP status, 0 if no response was read
	Err        error  // Underlying error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("procstatus: process %s: http %d: %v", e.ID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("procstatus: process %s: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrUnreachable.
func (e *FetchError) Is(target error) bool {
	return target == ErrUnreachable
}
