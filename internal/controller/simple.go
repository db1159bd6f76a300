package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	m "github.com/mouse-blink/jsonfmt/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI reports progress as log lines. Per-file errors always go to the
// command's error stream, regardless of the log level.
type SimpleUI struct {
	cmd    *cobra.Command
	logger *slog.Logger
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, logger *slog.Logger) *SimpleUI {
	return &SimpleUI{cmd: cmd, logger: logger}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayPlan logs how many files are about to be processed.
func (s *SimpleUI) DisplayPlan(total int, jobs int) {
	s.logger.Debug("formatting", "files", total, "jobs", jobs)
}

// DisplayEvent logs the outcome for one path.
func (s *SimpleUI) DisplayEvent(event m.Event) {
	switch event.Kind {
	case m.EventWouldChange:
		s.logger.Info("would change", "path", event.Path.String())
	case m.EventUnchanged:
		s.logger.Debug("unchanged", "path", event.Path.String())
	case m.EventFormatted:
		if event.Destination != "" {
			s.logger.Info("formatted", "path", event.Path.String(), "destination", event.Destination.String())
		} else {
			s.logger.Info("formatted", "path", event.Path.String())
		}
	case m.EventError:
		writeErrorLine(s.cmd.ErrOrStderr(), event)
	}
}

// DisplaySummary logs the totals. With debug logging enabled a summary table
// is also printed to the command output.
func (s *SimpleUI) DisplaySummary(result m.Result) {
	if s.config.mode == ModeAudit {
		s.logger.Info(fmt.Sprintf("%d file(s) would change", result.Changed))
	} else {
		s.logger.Info("done", "errors", result.Errors)
	}

	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	var tableBuffer bytes.Buffer

	renderSummaryTable(&tableBuffer, result)
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func writeErrorLine(w io.Writer, event m.Event) {
	_, _ = fmt.Fprint(w, errorLine(event))
}

func errorLine(event m.Event) string {
	return fmt.Sprintf("json: error formatting %s: %v\n", event.Path, event.Err)
}

func renderSummaryTable(w io.Writer, result m.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Mode", "Processed", "Changed", "Unchanged", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	table.Append([]string{
		string(result.Mode),
		fmt.Sprintf("%d", result.Processed),
		fmt.Sprintf("%d", result.Changed),
		fmt.Sprintf("%d", result.Unchanged()),
		fmt.Sprintf("%d", result.Errors),
	})

	table.Render()
}
