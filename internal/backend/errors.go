// Package backend shells out to git and exposes the operations the
// interactive modes need as a small, mockable interface.
package backend

import "fmt"

// Error wraps a failed git invocation with the operation name and the
// exact command line that was run, so callers can render something more
// useful than a bare exit-status message.
type Error struct {
	Op      string
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("git: %s failed: %s (command: %s)", e.Op, e.Err, e.Command)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an *Error, formatting the command for display.
func NewError(op, command string, err error) *Error {
	return &Error{Op: op, Command: command, Err: err}
}
