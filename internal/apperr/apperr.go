// Package apperr defines the application error type used for package-level
// sentinel errors.
package apperr

import (
	"errors"
	"fmt"
)

// Error is a templated application error. Package-level values act as
// sentinels; Fmt and Wrap return copies that still match the sentinel with
// errors.Is.
type Error struct {
	Cause    error
	Message  string
	template string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	c := e.clone()
	c.Message = fmt.Sprintf(c.template, args...)

	return c
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.Cause = err

	return c
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.base() == t.base()
}

func (e *Error) base() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

func (e *Error) clone() *Error {
	return &Error{
		Message:  e.Message,
		Cause:    e.Cause,
		template: e.base(),
	}
}
