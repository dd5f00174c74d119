package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyExecutor performs each request on a freshly built resty.Client and
// releases its connections before returning.
type RestyExecutor struct {
	timeout time.Duration
}

// NewRestyExecutor creates an executor. A zero timeout leaves the transport default in place.
func NewRestyExecutor(timeout time.Duration) *RestyExecutor {
	return &RestyExecutor{timeout: timeout}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing a long-lived client.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	return newRestyBaseClient(timeout)
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// Execute performs one blocking HTTP call. Transport failures are returned as-is;
// non-2xx responses are not errors.
func (r *RestyExecutor) Execute(ctx context.Context, in Request) (Response, error) {
	method := strings.ToUpper(strings.TrimSpace(in.Method))
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported http method %q", in.Method)
	}

	client := newRestyBaseClient(r.timeout)
	defer client.GetClient().CloseIdleConnections()

	req := client.R().SetContext(ctx)
	if len(in.Headers) > 0 {
		req.SetHeaders(in.Headers)
	}
	if in.Body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(in.Body)
	}

	resp, err := req.Execute(method, in.URL)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
