package placeholder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Adda-Baaj/placeholder-client/internal/domain"
)

// todoWire keeps Completed optional so a missing flag can be rejected.
type todoWire struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed *bool  `json:"completed"`
}

// openTask pairs a decoded todo with the object exactly as the server sent it.
type openTask struct {
	todo domain.Todo
	raw  json.RawMessage
}

// OpenTasks returns the user's todos that are not completed, in server order,
// and prints each of them as indented JSON to the client's output. Printed
// objects keep every field the server returned.
func (c *Client) OpenTasks(ctx context.Context, userID string) ([]domain.Todo, error) {
	target, err := c.userURL(userID, "todos")
	if err != nil {
		return nil, err
	}
	raw, err := c.body(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch todos: %w", err)
	}

	tasks, err := filterOpen([]byte(raw))
	if err != nil {
		return nil, err
	}

	open := make([]domain.Todo, 0, len(tasks))
	for _, task := range tasks {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, task.raw, "", "    "); err != nil {
			return nil, fmt.Errorf("format todo %d: %w", task.todo.ID, err)
		}
		fmt.Fprintln(c.out, pretty.String())
		open = append(open, task.todo)
	}
	return open, nil
}

func filterOpen(raw []byte) ([]openTask, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &ParseError{What: "todos", Err: err}
	}

	open := make([]openTask, 0, len(items))
	for i, item := range items {
		var t todoWire
		if err := json.Unmarshal(item, &t); err != nil {
			return nil, &ParseError{What: "todos", Err: fmt.Errorf("todo[%d]: %w", i, err)}
		}
		if t.Completed == nil {
			return nil, &ParseError{What: "todos", Err: fmt.Errorf("todo[%d] has no completed flag", i)}
		}
		if *t.Completed {
			continue
		}
		open = append(open, openTask{
			todo: domain.Todo{UserID: t.UserID, ID: t.ID, Title: t.Title},
			raw:  item,
		})
	}
	return open, nil
}
