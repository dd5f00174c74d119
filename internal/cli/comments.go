package cli

import (
	"github.com/Adda-Baaj/placeholder-client/internal/app"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCommentsCmd(rt *runtime) *cobra.Command {
	commentsCmd := &cobra.Command{
		Use:   "comments",
		Short: "Work with post comments",
	}

	commentsCmd.AddCommand(&cobra.Command{
		Use:   "save <userId>",
		Short: "Save the comments of a user's last post to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withJournal(cmd, func(a *app.App) error {
				res, err := a.Client().SaveLastPostComments(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Comments saved to: %s\n", res.Path)
				return nil
			})
		},
	})
	return commentsCmd
}
