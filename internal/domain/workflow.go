package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/mouse-blink/jsonfmt/internal/adapter"
	"github.com/mouse-blink/jsonfmt/internal/logging"
	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// Reporter receives progress for a formatting run. Calls are never concurrent.
type Reporter interface {
	DisplayPlan(total int, jobs int)
	DisplayEvent(event m.Event)
	DisplaySummary(result m.Result)
}

// FormatArgs describes one audit or fix run over files on disk.
type FormatArgs struct {
	Inputs  adapter.ResolveArgs
	Mode    m.Mode
	WriteTo m.Path
	// Jobs is the worker count; zero or less means one per CPU.
	Jobs int
}

// StdinArgs describes a single-document pass-through run.
type StdinArgs struct {
	Mode      m.Mode
	WriteTo   m.Path
	HasInputs bool
	In        io.Reader
	Out       io.Writer
}

// Workflow defines the operations exposed to the command layer.
type Workflow interface {
	Resolve(args adapter.ResolveArgs) ([]m.Path, error)
	Format(ctx context.Context, args FormatArgs, reporter Reporter) (m.Result, error)
	Stdin(args StdinArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	orch      Orchestrator
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapter.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		orch:      NewOrchestrator(fsAdapter),
		logger:    logger,
	}
}

// Resolve expands the input selection against the working directory when no
// root is given.
func (w *workflow) Resolve(args adapter.ResolveArgs) ([]m.Path, error) {
	if args.Root == "" {
		wd, err := w.fsAdapter.Getwd()
		if err != nil {
			return nil, err
		}

		args.Root = wd
	}

	paths, err := w.fsAdapter.Resolve(args)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("resolved inputs", "root", args.Root, "count", len(paths))

	return paths, nil
}

// Format resolves inputs and runs the orchestrator, forwarding each event to
// reporter. The summary is displayed even when the run is interrupted.
func (w *workflow) Format(ctx context.Context, args FormatArgs, reporter Reporter) (m.Result, error) {
	wd, err := w.fsAdapter.Getwd()
	if err != nil {
		return m.Result{Mode: args.Mode}, err
	}

	if args.Inputs.Root == "" {
		args.Inputs.Root = wd
	}

	if args.Mode == m.ModeFix && args.WriteTo != "" {
		args.Inputs.SkipDirs = append(args.Inputs.SkipDirs, mirrorRoot(args.WriteTo, wd))
	}

	paths, err := w.Resolve(args.Inputs)
	if err != nil {
		return m.Result{Mode: args.Mode}, err
	}

	jobs := args.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	reporter.DisplayPlan(len(paths), jobs)

	w.logger.Debug("starting run", "mode", args.Mode, "files", len(paths), "jobs", jobs, "write_to", args.WriteTo)

	result, err := w.orch.Format(ctx, paths, FormatOptions{
		Mode:       args.Mode,
		WriteTo:    args.WriteTo,
		WorkingDir: wd,
		Jobs:       jobs,
	}, reporter.DisplayEvent)
	if err != nil && m.IsFatal(err) {
		return result, err
	}

	reporter.DisplaySummary(result)

	return result, err
}

// mirrorRoot makes writeTo absolute against wd, matching ResolveDestination.
func mirrorRoot(writeTo, wd m.Path) m.Path {
	if writeTo.IsAbs() {
		return m.Path(filepath.Clean(string(writeTo)))
	}

	return m.Path(filepath.Join(string(wd), string(writeTo)))
}

// Stdin validates the option combination, then canonicalizes one document
// from args.In and writes it with a trailing newline to args.Out.
func (w *workflow) Stdin(args StdinArgs) error {
	if err := ValidateStdin(args.Mode, args.WriteTo, args.HasInputs); err != nil {
		return err
	}

	data, err := io.ReadAll(args.In)
	if err != nil {
		return m.NewIOError("cannot read standard input", err)
	}

	formatted, err := FormatStdin(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(args.Out, "%s\n", formatted); err != nil {
		return m.NewIOError("cannot write standard output", err)
	}

	return nil
}
