// Package controller provides the reporters that display formatting progress.
package controller

import (
	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeAudit StartMode = iota
	ModeFix
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithAuditMode sets the UI to audit mode.
func WithAuditMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAudit
	}
}

// WithFixMode sets the UI to fix mode.
func WithFixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
	}
}

// WithMode selects the start option matching a run mode.
func WithMode(mode m.Mode) StartOption {
	if mode == m.ModeFix {
		return WithFixMode()
	}

	return WithAuditMode()
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting a formatting run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayPlan(total int, jobs int)
	DisplayEvent(event m.Event)
	DisplaySummary(result m.Result)
}
