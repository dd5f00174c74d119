package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Adda-Baaj/placeholder-client/internal/placeholder"
)

const (
	demoUserID   = "1"
	demoUsername = "Tuzik"
	demoUserJSON = `{"name":"Murka","username":"Mura","email":"mura.ne@gmail.com"}`
)

// RunDemo walks through every client operation for a fixed user and prints
// each result to w. A failed comments file write is reported and the walk
// continues; any other failure stops it.
func (a *App) RunDemo(ctx context.Context, w io.Writer) error {
	c := a.client

	res, err := c.SaveLastPostComments(ctx, demoUserID)
	var writeErr *placeholder.WriteError
	switch {
	case errors.As(err, &writeErr):
		a.log.ErrorObj("comments file write failed", "error", writeErr.Error())
		fmt.Fprintf(w, "Could not save comments: %v\n", writeErr)
	case err != nil:
		return fmt.Errorf("save comments: %w", err)
	default:
		fmt.Fprintf(w, "Comments saved to: %s\n", res.Path)
	}

	fmt.Fprintf(w, "Open tasks for user %s:\n", demoUserID)
	if _, err := c.OpenTasks(ctx, demoUserID); err != nil {
		return fmt.Errorf("open tasks: %w", err)
	}

	steps := []struct {
		name string
		call func() (string, error)
	}{
		{"create user", func() (string, error) { return c.CreateUser(ctx, demoUserJSON) }},
		{"update user", func() (string, error) { return c.UpdateUser(ctx, demoUserID, demoUserJSON) }},
		{"delete user", func() (string, error) { return c.DeleteUser(ctx, demoUserID) }},
		{"list users", func() (string, error) { return c.ListUsers(ctx) }},
		{"get user", func() (string, error) { return c.GetUser(ctx, demoUserID) }},
		{"find users", func() (string, error) { return c.FindUsersByUsername(ctx, demoUsername) }},
	}
	for _, step := range steps {
		out, err := step.call()
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}
