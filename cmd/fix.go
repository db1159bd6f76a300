package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

var writeToFlag string

const fixLongDescription = `Rewrite files into the canonical form.

Files are replaced atomically in place. With --write-to DIR the sources are
left untouched and the formatted files are written to the same relative
locations beneath DIR; every source must then be inside the working
directory.

With --stdin a single document is read from stdin and the canonical form
is written to stdout.`

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite files into the canonical form",
		Long:  fixLongDescription,
		Args:  noPositionalArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFormat(cmd, m.ModeFix, writeToFlag)
		},
	}
	cmd.Flags().StringVar(&writeToFlag, "write-to", "", "mirror formatted files under this directory instead of rewriting in place")

	return cmd
}
