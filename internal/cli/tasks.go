package cli

import (
	"fmt"

	"github.com/Adda-Baaj/placeholder-client/internal/app"
	"github.com/spf13/cobra"
)

func newTasksCmd(rt *runtime) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"todos"},
		Short:   "Work with user todos",
	}

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "open <userId>",
		Short: "Print the todos a user has not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withApp(cmd, func(a *app.App) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Open tasks for user %s:\n", args[0])
				_, err := a.Client().OpenTasks(cmd.Context(), args[0])
				return err
			})
		},
	})
	return tasksCmd
}
