package domain

import (
	"bytes"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// StdinPath is the name used for standard input in diagnostics.
const StdinPath m.Path = "<stdin>"

// ValidateStdin checks that stdin mode is not combined with options it cannot
// honor. It must run before anything is read from stdin.
func ValidateStdin(mode m.Mode, writeTo m.Path, hasInputs bool) error {
	switch {
	case mode == m.ModeAudit:
		return m.NewConfigError("invalid stdin usage", m.ErrStdinWithAudit)
	case writeTo != "":
		return m.NewConfigError("invalid stdin usage", m.ErrStdinWithWriteTo)
	case hasInputs:
		return m.NewConfigError("invalid stdin usage", m.ErrStdinWithInputs)
	}

	return nil
}

// FormatStdin canonicalizes a single document read from stdin. The result has
// no trailing newline; the caller appends exactly one when writing it out.
func FormatStdin(data []byte) ([]byte, error) {
	canonical, err := Canonicalize(data)
	if err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(canonical, []byte("\n")), nil
}
