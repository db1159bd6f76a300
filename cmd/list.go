package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/jsonfmt/internal/controller"
)

const listLongDescription = `List the files an audit or fix would process, after globbing and
exclusions, without reading them.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the selected input files",
		Long:  listLongDescription,
		Args:  noPositionalArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}

			paths, err := newWorkflow(opts.logger).Resolve(opts.inputs)
			if err != nil {
				return err
			}

			controller.RenderInputs(cmd.OutOrStdout(), opts.inputs.Root, paths)

			return nil
		},
	}

	return cmd
}
