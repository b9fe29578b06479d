package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the formatting rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.cfg.Registry()
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "KIND", "MARKERS")
			for _, r := range reg.Rules() {
				t.Row(r.Name(), r.Kind().String(), r.Describe())
			}
			return writeLine(cmd.OutOrStdout(), t.Render())
		},
	}
}
