// Package symbioticerr implements the single recoverable error kind the
// pipeline raises when a stage's subprocess fails, plus helpers for the
// three places that catch it and downgrade it to a benign outcome.
package symbioticerr

import "errors"

// Error is raised by a stage primitive when its subprocess fails (non-zero
// exit or spawn error), and by the driver on invariant violations.
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// New returns a new Error with the given message.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Wrap returns a new Error with the given message, wrapping err.
func Wrap(msg string, err error) *Error {
	return &Error{msg: msg, err: err}
}

// Is reports whether err is (or wraps) a *Error.
func Is(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// ErrCancelled is the sentinel returned when the pipeline is abandoned
// because of an external cancellation (keyboard interrupt equivalent).
var ErrCancelled = errors.New("symbiotic: pipeline cancelled")
