package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// ExitError carries an exit code out of a command. An ExitError without Err
// has already been reported and prints nothing more.
type ExitError struct {
	Code int
	Err  error
}

// Error implements error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case m.IsFatal(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(w, "json: interrupted")

		return
	}

	_, _ = fmt.Fprintf(w, "json: %v\n", err)
}
