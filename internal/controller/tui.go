package controller

import (
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. Error lines are
// collected while the program owns the terminal and written to errOut once it
// has exited.
type TUI struct {
	output  io.Writer
	errOut  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	config  StartConfig

	mu       sync.Mutex
	errLines []string
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, errOut io.Writer) *TUI {
	return &TUI{output: output, errOut: errOut}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options...)

	return t.startWithModel(newFormatModel(t.config.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	if !t.started {
		_ = t.Start(func(c *StartConfig) { *c = t.config })
	}
}

func (t *TUI) send(msg tea.Msg) {
	if !t.started || t.program == nil {
		return
	}

	t.program.Send(msg)
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	if t.done == nil {
		return
	}

	<-t.done
}

// Close stops the program if it is still running, waits for it to exit and
// then flushes buffered error lines.
func (t *TUI) Close() {
	if t.started && t.program != nil {
		t.program.Quit()
		t.Wait()
		t.started = false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.errLines) > 0 {
		_, _ = io.WriteString(t.errOut, strings.Join(t.errLines, ""))
		t.errLines = nil
	}
}

// DisplayPlan shows the number of files and workers.
func (t *TUI) DisplayPlan(total int, jobs int) {
	t.ensureStarted()
	t.send(planMsg{total: total, jobs: jobs})
}

// DisplayEvent records the outcome for one path.
func (t *TUI) DisplayEvent(event m.Event) {
	if event.Kind == m.EventError {
		t.mu.Lock()
		t.errLines = append(t.errLines, errorLine(event))
		t.mu.Unlock()
	}

	t.ensureStarted()
	t.send(eventMsg{event: event})
}

// DisplaySummary shows the totals and lets the program exit.
func (t *TUI) DisplaySummary(result m.Result) {
	t.ensureStarted()
	t.send(summaryMsg{result: result})
}
