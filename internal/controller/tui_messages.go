package controller

import m "github.com/mouse-blink/jsonfmt/internal/model"

// Message types.
type planMsg struct {
	total int
	jobs  int
}

type eventMsg struct {
	event m.Event
}

type summaryMsg struct {
	result m.Result
}

// eventLine is one entry of the recent-activity list.
type eventLine struct {
	kind        m.EventKind
	path        string
	destination string
}
