package toolbar

import "fmt"

// Status indicates the outcome of a click.
type Status uint8

const (
	// StatusOK indicates the command ran.
	StatusOK Status = iota
	// StatusNoOp indicates nothing is bound to the button.
	StatusNoOp
	// StatusError indicates the command failed.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of dispatching a click.
type Result struct {
	Status  Status
	Command string
	Err     error

	// Caret is the caret offset after dispatch.
	Caret int
}

// OK reports whether the command ran successfully.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// String returns a short description of the result.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s: %v", r.Command, r.Status, r.Err)
	}
	return fmt.Sprintf("%s %s", r.Command, r.Status)
}
