package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

const auditLongDescription = `Report files whose content differs from the canonical form.

No file is modified. The command exits with status 1 when at least one
file would change or could not be read or parsed.`

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report files that are not canonical",
		Long:  auditLongDescription,
		Args:  noPositionalArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFormat(cmd, m.ModeAudit, "")
		},
	}

	return cmd
}
