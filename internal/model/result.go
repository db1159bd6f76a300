package model

// Result aggregates the outcome of a batch. Counters only ever grow.
type Result struct {
	Mode      Mode
	Processed int
	Changed   int
	Errors    int
}

// Record folds one event into the counters.
func (r *Result) Record(event Event) {
	r.Processed++

	if event.Kind == EventError {
		r.Errors++
		return
	}

	if event.Changed {
		r.Changed++
	}
}

// Unchanged returns how many processed files needed no change.
func (r Result) Unchanged() int {
	return r.Processed - r.Changed - r.Errors
}

// Request is the immutable description of one path's processing.
type Request struct {
	Source Path
	Mode   Mode
	// Root is the mirror root; empty means the source is rewritten in place.
	Root        Path
	Destination Path
	WorkingDir  Path
}

// Mirrored reports whether output is written under an alternate root.
func (r Request) Mirrored() bool {
	return r.Root != ""
}
