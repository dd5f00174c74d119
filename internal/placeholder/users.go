package placeholder

import (
	"context"
	"net/http"
	"net/url"
)

// ListUsers returns the whole collection as JSON text.
func (c *Client) ListUsers(ctx context.Context) (string, error) {
	return c.body(ctx, http.MethodGet, c.base, nil)
}

// GetUser returns a single user as JSON text, or whatever the API answers for an unknown id.
func (c *Client) GetUser(ctx context.Context, id string) (string, error) {
	target, err := c.userURL(id)
	if err != nil {
		return "", err
	}
	return c.body(ctx, http.MethodGet, target, nil)
}

// FindUsersByUsername returns the (possibly empty) JSON array of users with that username.
func (c *Client) FindUsersByUsername(ctx context.Context, username string) (string, error) {
	return c.body(ctx, http.MethodGet, c.base+"?username="+url.QueryEscape(username), nil)
}

// CreateUser posts userJSON verbatim and returns the created resource.
func (c *Client) CreateUser(ctx context.Context, userJSON string) (string, error) {
	return c.body(ctx, http.MethodPost, c.base, []byte(userJSON))
}

// UpdateUser puts userJSON verbatim to the user and returns the updated resource.
func (c *Client) UpdateUser(ctx context.Context, id, userJSON string) (string, error) {
	target, err := c.userURL(id)
	if err != nil {
		return "", err
	}
	return c.body(ctx, http.MethodPut, target, []byte(userJSON))
}

// DeleteUser deletes the user and returns the response status code as text.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	target, err := c.userURL(id)
	if err != nil {
		return "", err
	}
	return c.status(ctx, http.MethodDelete, target)
}
