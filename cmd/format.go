package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/jsonfmt/internal/controller"
	"github.com/mouse-blink/jsonfmt/internal/domain"
	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// runFormat runs an audit or fix over the selected files, or over stdin when
// --stdin is given.
func runFormat(cmd *cobra.Command, mode m.Mode, writeTo string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	wf := newWorkflow(opts.logger)

	if opts.stdin {
		return runStdin(cmd, wf, opts, mode, writeTo)
	}

	useTTY := controller.IsTTY(cmd.OutOrStdout()) && !opts.plain && !opts.quiet

	ui := newUI(cmd, useTTY, opts.logger)
	if err := ui.Start(controller.WithMode(mode)); err != nil {
		return err
	}
	defer ui.Close()

	result, err := wf.Format(cmd.Context(), domain.FormatArgs{
		Inputs:  opts.inputs,
		Mode:    mode,
		WriteTo: m.Path(writeTo),
		Jobs:    opts.jobs,
	}, ui)
	if err != nil {
		return err
	}

	return resultError(result)
}

// resultError turns a finished run into an exit status: changes found by an
// audit and per-file errors in either mode both fail the run.
func resultError(result m.Result) error {
	if result.Errors > 0 {
		return &ExitError{Code: ExitFailure}
	}

	if result.Mode == m.ModeAudit && result.Changed > 0 {
		return &ExitError{Code: ExitFailure}
	}

	return nil
}

func runStdin(cmd *cobra.Command, wf domain.Workflow, opts runOptions, mode m.Mode, writeTo string) error {
	err := wf.Stdin(domain.StdinArgs{
		Mode:      mode,
		WriteTo:   m.Path(writeTo),
		HasInputs: opts.hasInputs,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
	})
	if err == nil || m.IsFatal(err) {
		return err
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "json: error formatting %s: %v\n", domain.StdinPath, err)

	return &ExitError{Code: ExitFailure}
}
