package model

// Mode selects between a read-only audit and a rewriting fix.
type Mode string

const (
	// ModeAudit reports files whose canonical form differs from their content.
	ModeAudit Mode = "audit"
	// ModeFix rewrites files to their canonical form.
	ModeFix Mode = "fix"
)

// EventKind identifies the outcome recorded by an Event.
type EventKind string

const (
	// EventWouldChange is emitted in audit mode for a non-canonical file.
	EventWouldChange EventKind = "would-change"
	// EventUnchanged is emitted in audit mode for an already canonical file.
	EventUnchanged EventKind = "unchanged"
	// EventFormatted is emitted in fix mode after a successful write.
	EventFormatted EventKind = "formatted"
	// EventError is emitted for any per-path failure.
	EventError EventKind = "error"
)

// Event describes what happened to one input path.
type Event struct {
	Kind EventKind
	Path Path
	// Destination is set only when output is mirrored under another root.
	Destination Path
	// Changed reports whether the canonical bytes differ from the source bytes.
	Changed bool
	Err     error
}

// WouldChange builds an EventWouldChange.
func WouldChange(path Path) Event {
	return Event{Kind: EventWouldChange, Path: path, Changed: true}
}

// Unchanged builds an EventUnchanged.
func Unchanged(path Path) Event {
	return Event{Kind: EventUnchanged, Path: path}
}

// Formatted builds an EventFormatted.
func Formatted(path, destination Path, changed bool) Event {
	return Event{Kind: EventFormatted, Path: path, Destination: destination, Changed: changed}
}

// Failed builds an EventError.
func Failed(path Path, err error) Event {
	return Event{Kind: EventError, Path: path, Err: err}
}
