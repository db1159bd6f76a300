package model

import (
	"errors"
	"fmt"
)

// Standard failure causes.
var (
	ErrEmptyInput        = errors.New("input is empty or contains only whitespace")
	ErrTrailingData      = errors.New("unexpected data after the top-level JSON value")
	ErrOutsideWorkingDir = errors.New("source path is outside the working directory")
	ErrStdinWithAudit    = errors.New("--stdin cannot be combined with audit")
	ErrStdinWithWriteTo  = errors.New("--stdin cannot be combined with --write-to")
	ErrStdinWithInputs   = errors.New("--stdin cannot be combined with --file or --glob")
)

// ErrorKind categorizes errors.
type ErrorKind string

const (
	// ErrorKindConfig is an invalid combination of run-time options. It is the
	// only kind that aborts a whole run.
	ErrorKindConfig ErrorKind = "config"
	// ErrorKindParse means the input is not well-formed JSON.
	ErrorKindParse ErrorKind = "parse"
	// ErrorKindWrite means the atomic write of a result failed.
	ErrorKindWrite ErrorKind = "write"
	// ErrorKindIO means the source could not be read.
	ErrorKindIO ErrorKind = "io"
)

// Kind sentinels for use with errors.Is.
var (
	ErrConfig = &Error{Kind: ErrorKindConfig}
	ErrParse  = &Error{Kind: ErrorKindParse}
	ErrWrite  = &Error{Kind: ErrorKindWrite}
	ErrIO     = &Error{Kind: ErrorKindIO}
)

// Error is a categorized failure with context.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

// NewConfigError creates a new error for an invalid option combination.
func NewConfigError(message string, err error) *Error {
	return &Error{Kind: ErrorKindConfig, Message: message, Err: err}
}

// NewParseError creates a new error for malformed JSON input.
func NewParseError(message string, err error) *Error {
	return &Error{Kind: ErrorKindParse, Message: message, Err: err}
}

// NewWriteError creates a new error for a failed atomic write.
func NewWriteError(message string, err error) *Error {
	return &Error{Kind: ErrorKindWrite, Message: message, Err: err}
}

// NewIOError creates a new error for a failed read.
func NewIOError(message string, err error) *Error {
	return &Error{Kind: ErrorKindIO, Message: message, Err: err}
}

// IsFatal reports whether err must stop the whole run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfig)
}
