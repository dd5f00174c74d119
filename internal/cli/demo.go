package cli

import (
	"github.com/Adda-Baaj/placeholder-client/internal/app"
	"github.com/spf13/cobra"
)

func newDemoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every operation once against user 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.withJournal(cmd, func(a *app.App) error {
				return a.RunDemo(cmd.Context(), cmd.OutOrStdout())
			})
		},
	}
}
