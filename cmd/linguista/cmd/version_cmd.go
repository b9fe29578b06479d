package cmd

import (
	"github.com/spf13/cobra"

	"github.com/linguista/linguista"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeLine(cmd.OutOrStdout(), linguista.Banner())
		},
	}
}
