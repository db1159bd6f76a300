// Package cmd provides the root command and CLI setup for jsonfmt.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/jsonfmt/internal/adapter"
	"github.com/mouse-blink/jsonfmt/internal/controller"
	"github.com/mouse-blink/jsonfmt/internal/domain"
	m "github.com/mouse-blink/jsonfmt/internal/model"
	"github.com/spf13/cobra"
)

// newWorkflow builds the workflow for one invocation once the logger is known.
var newWorkflow = func(logger *slog.Logger) domain.Workflow {
	return domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), logger)
}

// newUI picks the reporter for one invocation.
var newUI = controller.NewUI

var fileFlags []string
var globFlags []string
var excludeFlags []string
var stdinFlag bool
var includeAIFlag bool
var includeDemosFlag bool
var quietFlag bool
var jobsFlag int
var configFlag string
var verboseFlag int
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `jsonfmt rewrites JSON documents into one canonical form: object keys
sorted, two-space indentation, " : " between keys and values, unescaped
forward slashes and a single trailing newline.

Without a subcommand jsonfmt runs an audit and exits non-zero when any
file would change.

Inputs:
  --file PATH      format a specific file (repeatable)
  --glob PATTERN   format files matching a doublestar pattern (repeatable)
  --stdin          read one document from stdin and write it to stdout

When neither --file nor --glob is given, the globs from .jsonfmt
(default **/*.json) are used.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsonfmt",
		Short:         "Canonical JSON formatter",
		Long:          rootLongDescription,
		Args:          noPositionalArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFormat(cmd, m.ModeAudit, "")
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVar(&fileFlags, "file", nil, "JSON file to format (can be repeated)")
	flags.StringArrayVar(&globFlags, "glob", nil, "doublestar pattern selecting JSON files (can be repeated)")
	flags.StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching a doublestar pattern (can be repeated)")
	flags.BoolVar(&stdinFlag, "stdin", false, "read one document from stdin and write the result to stdout")
	flags.BoolVar(&includeAIFlag, "include-ai", false, "include files under ai/imports and ai/exports")
	flags.BoolVar(&includeDemosFlag, "include-demos", false, "include files under demos directories")
	flags.BoolVar(&quietFlag, "quiet", false, "only print errors")
	flags.IntVarP(&jobsFlag, "jobs", "j", 1, "number of files formatted in parallel (0 uses every CPU)")
	flags.StringVar(&configFlag, "config", "", "config file (default .jsonfmt.{yaml,json,toml} in the working directory)")
	flags.CountVarP(&verboseFlag, "verbose", "v", "increase log verbosity")
	flags.BoolVar(&plainFlag, "plain", false, "disable the interactive progress display")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return m.NewConfigError("invalid flag", err)
	})

	cmd.AddCommand(newAuditCmd(), newFixCmd(), newListCmd())

	return cmd
}

func noPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return m.NewConfigError(fmt.Sprintf("unexpected argument %q, use --file or --glob", args[0]), nil)
	}

	return nil
}

// Execute runs the root command and exits with the code derived from its
// error. This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := execute(ctx, rootCmd)

	stop()

	if code != 0 {
		os.Exit(code)
	}
}

func execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	reportError(cmd.ErrOrStderr(), err)

	return exitCode(err)
}
