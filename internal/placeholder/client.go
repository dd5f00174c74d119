// Package placeholder is a client for the JSONPlaceholder users collection.
package placeholder

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Adda-Baaj/placeholder-client/internal/logger"
	"github.com/Adda-Baaj/placeholder-client/pkg/httpclient"
)

const (
	// StrategyMaxID picks the post with the highest id.
	StrategyMaxID = "max_id"
	// StrategyLastElement picks the final element the server returned.
	StrategyLastElement = "last_element"
)

// Client issues requests against a users resource collection.
type Client struct {
	base      string
	baseURL   *url.URL
	exec      httpclient.Executor
	strategy  string
	outputDir string
	out       io.Writer
	recorder  ExportRecorder
	events    EventPublisher
	log       logger.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithOutputDir sets the directory comment files are written to.
func WithOutputDir(dir string) Option {
	return func(c *Client) {
		if strings.TrimSpace(dir) != "" {
			c.outputDir = dir
		}
	}
}

// WithOutput sets where open tasks are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Client) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLastPostStrategy chooses how the "last" post is selected.
func WithLastPostStrategy(strategy string) Option {
	return func(c *Client) { c.strategy = strings.ToLower(strings.TrimSpace(strategy)) }
}

// WithRecorder journals successful comment exports.
func WithRecorder(r ExportRecorder) Option {
	return func(c *Client) { c.recorder = r }
}

// WithPublisher announces successful comment exports.
func WithPublisher(p EventPublisher) Option {
	return func(c *Client) { c.events = p }
}

// WithLogger sets the structured logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a Client for the collection at baseURL.
func New(baseURL string, exec httpclient.Executor, opts ...Option) (*Client, error) {
	if exec == nil {
		return nil, fmt.Errorf("executor must not be nil")
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		base:      base,
		baseURL:   u,
		exec:      exec,
		strategy:  StrategyMaxID,
		outputDir: ".",
		out:       os.Stdout,
		log:       logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}

	switch c.strategy {
	case StrategyMaxID, StrategyLastElement:
	default:
		return nil, fmt.Errorf("unknown last post strategy %q", c.strategy)
	}
	return c, nil
}

// BaseURL returns the collection URL the client targets.
func (c *Client) BaseURL() string { return c.base }

// do performs one round trip through the executor.
func (c *Client) do(ctx context.Context, method, target string, payload []byte) (httpclient.Response, error) {
	start := time.Now()
	resp, err := c.exec.Execute(ctx, httpclient.Request{
		Method: method,
		URL:    target,
		Body:   payload,
	})
	if err != nil {
		c.log.WarnObj("request failed", "http_request", map[string]any{
			"method": method,
			"url":    target,
			"error":  err.Error(),
		})
		return nil, &RequestError{Op: method, URL: target, Err: err}
	}
	c.log.DebugObj("request completed", "http_request", map[string]any{
		"method":     method,
		"url":        target,
		"status":     resp.StatusCode(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return resp, nil
}

// body returns the response body as text.
func (c *Client) body(ctx context.Context, method, target string, payload []byte) (string, error) {
	resp, err := c.do(ctx, method, target, payload)
	if err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// status returns the decimal response status code as text.
func (c *Client) status(ctx context.Context, method, target string) (string, error) {
	resp, err := c.do(ctx, method, target, nil)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(resp.StatusCode()), nil
}

func (c *Client) userURL(id string, sub ...string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("user id is required")
	}
	parts := append([]string{c.base, url.PathEscape(id)}, sub...)
	return strings.Join(parts, "/"), nil
}

// commentsURL addresses /posts/{id}/comments at the root of the base URL's host.
func (c *Client) commentsURL(postID int) string {
	u := *c.baseURL
	u.Path = fmt.Sprintf("/posts/%d/comments", postID)
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
