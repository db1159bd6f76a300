package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/jsonfmt/internal/adapter"
	"github.com/mouse-blink/jsonfmt/internal/config"
	"github.com/mouse-blink/jsonfmt/internal/logging"
	m "github.com/mouse-blink/jsonfmt/internal/model"
)

// runOptions is the effective configuration of one invocation: config file
// and environment values, overridden by flags the user actually set.
type runOptions struct {
	inputs    adapter.ResolveArgs
	hasInputs bool
	stdin     bool
	quiet     bool
	plain     bool
	jobs      int
	logger    *slog.Logger
}

func loadOptions(cmd *cobra.Command) (runOptions, error) {
	wd, err := os.Getwd()
	if err != nil {
		return runOptions{}, m.NewIOError("cannot determine working directory", err)
	}

	cfg, err := config.Load(wd, configFlag)
	if err != nil {
		return runOptions{}, err
	}

	flags := cmd.Flags()

	opts := runOptions{
		hasInputs: len(fileFlags) > 0 || len(globFlags) > 0,
		stdin:     stdinFlag,
		quiet:     cfg.Quiet,
		plain:     cfg.Plain,
		jobs:      cfg.Jobs,
	}

	if flags.Changed("quiet") {
		opts.quiet = quietFlag
	}

	if flags.Changed("plain") {
		opts.plain = plainFlag
	}

	if flags.Changed("jobs") {
		if jobsFlag < 0 {
			return runOptions{}, m.NewConfigError("--jobs must be zero or positive", nil)
		}

		opts.jobs = jobsFlag
	}

	includeAI := cfg.IncludeAI
	if flags.Changed("include-ai") {
		includeAI = includeAIFlag
	}

	includeDemos := cfg.IncludeDemos
	if flags.Changed("include-demos") {
		includeDemos = includeDemosFlag
	}

	opts.inputs = adapter.ResolveArgs{
		Root:         m.Path(wd),
		Files:        fileFlags,
		Globs:        globFlags,
		DefaultGlobs: cfg.Globs,
		Exclude:      append(append([]string{}, cfg.Exclude...), excludeFlags...),
		IncludeAI:    includeAI,
		IncludeDemos: includeDemos,
	}

	level, _ := logging.LevelFromString(cfg.LogLevel)
	if opts.quiet || verboseFlag > 0 {
		level = logging.LevelFromVerbosity(verboseFlag, opts.quiet)
	}

	opts.logger = logging.NewLogger(cmd.ErrOrStderr(), level)

	if cfg.Source != "" {
		opts.logger.Debug("loaded config", "file", cfg.Source)
	}

	return opts, nil
}
