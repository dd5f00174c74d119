package cli

import (
	"fmt"

	"github.com/Adda-Baaj/placeholder-client/internal/app"
	"github.com/spf13/cobra"
)

func newUsersCmd(rt *runtime) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "List, fetch, create, update and delete users",
	}

	usersCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all users",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return rt.printText(cmd, func(a *app.App) (string, error) {
					return a.Client().ListUsers(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Get a user by id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.printText(cmd, func(a *app.App) (string, error) {
					return a.Client().GetUser(cmd.Context(), args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "find <username>",
			Short: "Find users by username",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.printText(cmd, func(a *app.App) (string, error) {
					return a.Client().FindUsersByUsername(cmd.Context(), args[0])
				})
			},
		},
		newCreateUserCmd(rt),
		newUpdateUserCmd(rt),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a user and print the response status code",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.printText(cmd, func(a *app.App) (string, error) {
					return a.Client().DeleteUser(cmd.Context(), args[0])
				})
			},
		},
	)
	return usersCmd
}

func newCreateUserCmd(rt *runtime) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user from a JSON payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := readPayload(cmd, data, file)
			if err != nil {
				return err
			}
			return rt.printText(cmd, func(a *app.App) (string, error) {
				return a.Client().CreateUser(cmd.Context(), payload)
			})
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the JSON payload (- for stdin)")
	return cmd
}

func newUpdateUserCmd(rt *runtime) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a user with a JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, data, file)
			if err != nil {
				return err
			}
			return rt.printText(cmd, func(a *app.App) (string, error) {
				return a.Client().UpdateUser(cmd.Context(), args[0], payload)
			})
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the JSON payload (- for stdin)")
	return cmd
}

// printText runs call and writes its text result to the command output.
func (rt *runtime) printText(cmd *cobra.Command, call func(a *app.App) (string, error)) error {
	return rt.withApp(cmd, func(a *app.App) error {
		out, err := call(a)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	})
}
